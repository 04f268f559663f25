package quiz

import "math/rand"

// ShuffledQuestion is a question with its options in presentation order.
// CorrectChoice is the position of the correct option after shuffling.
type ShuffledQuestion struct {
	Question
	Choices       []Option
	CorrectChoice int
}

// ShuffleOptions returns q with its options in random order. A nil rng uses
// the package-level source.
func ShuffleOptions(q Question, rng *rand.Rand) ShuffledQuestion {
	type choice struct {
		text      string
		isCorrect bool
	}

	choices := make([]choice, 0, len(q.Options))
	for idx, option := range q.Options {
		choices = append(choices, choice{
			text:      option,
			isCorrect: idx == q.CorrectIndex,
		})
	}

	swap := func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	}
	if rng != nil {
		rng.Shuffle(len(choices), swap)
	} else {
		rand.Shuffle(len(choices), swap)
	}

	shuffled := ShuffledQuestion{
		Question:      q,
		Choices:       make([]Option, len(choices)),
		CorrectChoice: -1,
	}
	for idx, candidate := range choices {
		shuffled.Choices[idx] = Option{
			Letter: string(rune('A' + idx)),
			Text:   candidate.text,
		}
		if candidate.isCorrect {
			shuffled.CorrectChoice = idx
		}
	}
	return shuffled
}

// ChoiceForLetter maps an answer letter such as "b" to a choice index.
func (s ShuffledQuestion) ChoiceForLetter(answer string) (int, bool) {
	letter := NormalizeLetter(answer)
	if letter == "" {
		return 0, false
	}
	idx := int(letter[0] - 'A')
	if idx < 0 || idx >= len(s.Choices) {
		return 0, false
	}
	return idx, true
}

func (s ShuffledQuestion) IsCorrect(choice int) bool {
	return choice == s.CorrectChoice
}
