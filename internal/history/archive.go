package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"eduquiz/internal/kvstore"
)

const (
	QuizHistoryKey    = "quiz_history"
	HangmanHistoryKey = "hangman_history"

	schemaVersion = 1
)

var errUnknownVersion = errors.New("unknown schema version")

type envelope[T any] struct {
	Version int `json:"version"`
	Items   []T `json:"items"`
}

// Archive is the append-only record history kept in a key/value store.
// Every append rewrites the whole collection; there is no locking, so two
// processes appending at once can lose one of the writes.
type Archive struct {
	store kvstore.Store
	newID func() string
}

func NewArchive(store kvstore.Store) *Archive {
	return &Archive{
		store: store,
		newID: uuid.NewString,
	}
}

func (a *Archive) QuizAttempts(ctx context.Context) ([]QuizAttempt, error) {
	return readCollection[QuizAttempt](ctx, a.store, QuizHistoryKey)
}

// AppendQuizAttempt stores attempt and returns it with its assigned ID.
func (a *Archive) AppendQuizAttempt(ctx context.Context, attempt QuizAttempt) (QuizAttempt, error) {
	if attempt.ID == "" {
		attempt.ID = a.newID()
	}
	attempt.Answers = append([]bool(nil), attempt.Answers...)
	attempt.CategoryScores = attempt.CategoryScores.Clone()

	if err := appendItem(ctx, a.store, QuizHistoryKey, attempt); err != nil {
		return QuizAttempt{}, err
	}
	return attempt, nil
}

func (a *Archive) ClearQuizAttempts(ctx context.Context) error {
	return a.store.Remove(ctx, QuizHistoryKey)
}

func (a *Archive) HangmanRecords(ctx context.Context) ([]HangmanRecord, error) {
	return readCollection[HangmanRecord](ctx, a.store, HangmanHistoryKey)
}

// AppendHangmanRecord stores record and returns it with its assigned ID.
func (a *Archive) AppendHangmanRecord(ctx context.Context, record HangmanRecord) (HangmanRecord, error) {
	if record.ID == "" {
		record.ID = a.newID()
	}
	if err := appendItem(ctx, a.store, HangmanHistoryKey, record); err != nil {
		return HangmanRecord{}, err
	}
	return record, nil
}

func (a *Archive) ClearHangmanRecords(ctx context.Context) error {
	return a.store.Remove(ctx, HangmanHistoryKey)
}

// readCollection returns an empty slice for a missing, blank or unreadable
// payload. Only store failures are returned as errors.
func readCollection[T any](ctx context.Context, store kvstore.Store, key string) ([]T, error) {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if !ok {
		return []T{}, nil
	}

	items, err := decodeCollection[T](raw)
	if err != nil {
		log.Printf("history: ignoring unreadable %s payload: %v", key, err)
		return []T{}, nil
	}
	return items, nil
}

func appendItem[T any](ctx context.Context, store kvstore.Store, key string, item T) error {
	items, err := readCollection[T](ctx, store, key)
	if err != nil {
		return err
	}
	items = append(items, item)

	encoded, err := json.Marshal(envelope[T]{Version: schemaVersion, Items: items})
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := store.Set(ctx, key, string(encoded)); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// decodeCollection accepts the versioned envelope and the older bare array.
func decodeCollection[T any](raw string) ([]T, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return []T{}, nil
	}

	if strings.HasPrefix(raw, "[") {
		var items []T
		if err := json.Unmarshal([]byte(raw), &items); err != nil {
			return nil, err
		}
		if items == nil {
			items = []T{}
		}
		return items, nil
	}

	var payload envelope[T]
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, err
	}
	if payload.Version != schemaVersion {
		return nil, fmt.Errorf("%w: %d", errUnknownVersion, payload.Version)
	}
	if payload.Items == nil {
		payload.Items = []T{}
	}
	return payload.Items, nil
}
