package submission

import "github.com/resonara/resonara_backend/internal/domain"

// scoreAnswer locates the chosen option on the question and turns its weight
// table into a recorded answer plus per-frequency contributions.
func scoreAnswer(options []domain.Option, questionID, optionID string) (domain.Answer, map[string]int, error) {
	for _, opt := range options {
		if opt.ID != optionID {
			continue
		}
		ans := domain.Answer{
			QuestionID: questionID,
			OptionID:   optionID,
			Points:     opt.Points(),
		}
		return ans, opt.Weights, nil
	}
	return domain.Answer{}, nil, ErrOptionNotFound
}

// accumulate appends one answer to the submission state, rejecting a second
// answer for the same question, and returns the new answers list, frequency
// totals and overall total. Inputs are not mutated.
func accumulate(
	answers []domain.Answer,
	totals map[string]int,
	total int,
	ans domain.Answer,
	freqPoints map[string]int,
) ([]domain.Answer, map[string]int, int, error) {
	for _, existing := range answers {
		if existing.QuestionID == ans.QuestionID {
			return nil, nil, 0, ErrDuplicateAnswer
		}
	}

	newAnswers := make([]domain.Answer, len(answers), len(answers)+1)
	copy(newAnswers, answers)
	newAnswers = append(newAnswers, ans)

	newTotals := make(map[string]int, len(totals)+len(freqPoints))
	for k, v := range totals {
		newTotals[k] = v
	}
	for k, v := range freqPoints {
		newTotals[k] += v
	}

	return newAnswers, newTotals, total + ans.Points, nil
}
