package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoCollection = "kv_entries"

type MongoConfig struct {
	URI      string
	Database string
}

type mongoEntry struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MongoStore keeps one document per key, using the key as _id.
type MongoStore struct {
	client *mongo.Client
	col    *mongo.Collection
}

func NewMongoStore(ctx context.Context, config MongoConfig) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	database := config.Database
	if database == "" {
		database = "eduquiz"
	}

	return &MongoStore{
		client: client,
		col:    client.Database(database).Collection(mongoCollection),
	}, nil
}

func (m *MongoStore) Get(ctx context.Context, key string) (string, bool, error) {
	var entry mongoEntry
	err := m.col.FindOne(ctx, bson.M{"_id": key}).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", false, nil
		}
		return "", false, err
	}
	return entry.Value, true, nil
}

func (m *MongoStore) Set(ctx context.Context, key, value string) error {
	_, err := m.col.UpdateOne(
		ctx,
		bson.M{"_id": key},
		bson.M{"$set": bson.M{"value": value, "updated_at": time.Now().UTC()}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (m *MongoStore) Remove(ctx context.Context, key string) error {
	_, err := m.col.DeleteOne(ctx, bson.M{"_id": key})
	return err
}

func (m *MongoStore) Close() error {
	return m.client.Disconnect(context.Background())
}
