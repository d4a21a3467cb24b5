package submission

import (
	"errors"
	"testing"

	"github.com/resonara/resonara_backend/internal/domain"
)

var sampleOptions = []domain.Option{
	{ID: "opt-1", Label: "Strongly agree", Weights: map[string]int{"A": 3}},
	{ID: "opt-2", Label: "Neutral", Weights: map[string]int{"A": 1, "B": 1}},
	{ID: "opt-3", Label: "Disagree", Weights: map[string]int{"C": 2}},
}

func TestScoreAnswer(t *testing.T) {
	ans, freq, err := scoreAnswer(sampleOptions, "q-1", "opt-2")
	if err != nil {
		t.Fatal(err)
	}
	if ans.Points != 2 {
		t.Errorf("points = %d, want 2", ans.Points)
	}
	if freq["A"] != 1 || freq["B"] != 1 {
		t.Errorf("freq = %v, want A:1 B:1", freq)
	}
}

func TestScoreAnswerUnknownOption(t *testing.T) {
	_, _, err := scoreAnswer(sampleOptions, "q-1", "opt-99")
	if !errors.Is(err, ErrOptionNotFound) {
		t.Fatalf("err = %v, want ErrOptionNotFound", err)
	}
}

func TestAccumulateSequentialAnswers(t *testing.T) {
	// Two answers worth 3 then 5 points must yield a running total of 8.
	answers, totals, total, err := accumulate(
		nil, map[string]int{}, 0,
		domain.Answer{QuestionID: "q-1", OptionID: "opt-1", Points: 3},
		map[string]int{"A": 3},
	)
	if err != nil {
		t.Fatal(err)
	}

	answers, totals, total, err = accumulate(
		answers, totals, total,
		domain.Answer{QuestionID: "q-2", OptionID: "opt-3", Points: 5},
		map[string]int{"C": 5},
	)
	if err != nil {
		t.Fatal(err)
	}

	if total != 8 {
		t.Errorf("total = %d, want 8", total)
	}
	if len(answers) != 2 {
		t.Errorf("len(answers) = %d, want 2", len(answers))
	}
	if totals["A"] != 3 || totals["C"] != 5 {
		t.Errorf("totals = %v, want A:3 C:5", totals)
	}
}

func TestAccumulateRejectsDuplicateQuestion(t *testing.T) {
	answers := []domain.Answer{{QuestionID: "q-1", OptionID: "opt-1", Points: 3}}

	_, _, _, err := accumulate(
		answers, map[string]int{"A": 3}, 3,
		domain.Answer{QuestionID: "q-1", OptionID: "opt-2", Points: 2},
		map[string]int{"A": 1, "B": 1},
	)
	if !errors.Is(err, ErrDuplicateAnswer) {
		t.Fatalf("err = %v, want ErrDuplicateAnswer", err)
	}
}

func TestAccumulateDoesNotMutateInputs(t *testing.T) {
	answers := []domain.Answer{{QuestionID: "q-1", OptionID: "opt-1", Points: 3}}
	totals := map[string]int{"A": 3}

	_, _, _, err := accumulate(
		answers, totals, 3,
		domain.Answer{QuestionID: "q-2", OptionID: "opt-3", Points: 2},
		map[string]int{"C": 2},
	)
	if err != nil {
		t.Fatal(err)
	}

	if len(answers) != 1 {
		t.Errorf("input answers grew to %d entries", len(answers))
	}
	if totals["C"] != 0 {
		t.Errorf("input totals mutated: %v", totals)
	}
}
