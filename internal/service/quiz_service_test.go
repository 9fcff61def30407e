package service

import (
	"testing"

	"github.com/lhochwald/unterweisung/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// correctToken returns the form token that answers question i correctly,
// wrongToken the opposite one.
func correctToken(i int) string {
	if catalog.Questions[i].Answer {
		return "richtig"
	}
	return "falsch"
}

func wrongToken(i int) string {
	if catalog.Questions[i].Answer {
		return "falsch"
	}
	return "richtig"
}

func TestEvaluateAllSubsets(t *testing.T) {
	svc := NewQuizService()
	n := len(catalog.Questions)
	require.Equal(t, 5, n)

	// Every subset of correctly answered questions: score must equal the
	// subset size and passing starts at 4 of 5.
	for mask := 0; mask < 1<<n; mask++ {
		answers := make(map[int]string)
		want := 0
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				answers[i+1] = correctToken(i)
				want++
			} else {
				answers[i+1] = wrongToken(i)
			}
		}

		result := svc.Evaluate(answers)
		assert.Equal(t, want, result.Score, "mask %b", mask)
		assert.Equal(t, n, result.Total, "mask %b", mask)
		assert.Equal(t, want >= 4, result.Passed, "mask %b", mask)
	}
}

func TestEvaluateMissingAnswerIsSkipped(t *testing.T) {
	svc := NewQuizService()

	// Four correct answers, the fifth missing: the total stays at the
	// catalog length and the missing answer counts neither way.
	answers := map[int]string{}
	for i := 0; i < 4; i++ {
		answers[i+1] = correctToken(i)
	}

	result := svc.Evaluate(answers)
	assert.Equal(t, 4, result.Score)
	assert.Equal(t, 5, result.Total)
	assert.True(t, result.Passed, "4 of 5 is exactly the threshold and passes")
}

func TestEvaluateEmptySubmission(t *testing.T) {
	svc := NewQuizService()

	result := svc.Evaluate(map[int]string{})
	assert.Equal(t, 0, result.Score)
	assert.Equal(t, 5, result.Total)
	assert.False(t, result.Passed)
}

func TestEvaluateUnknownTokenCountsAsFalse(t *testing.T) {
	svc := NewQuizService()

	// Question 2 is a false statement, so any token other than "richtig"
	// answers it correctly.
	result := svc.Evaluate(map[int]string{2: "unsinn"})
	assert.Equal(t, 1, result.Score)
	assert.False(t, result.Passed)
}
