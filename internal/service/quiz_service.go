package service

import (
	"github.com/lhochwald/unterweisung/internal/catalog"
)

// AnswerTrue is the form token for a "true" answer; anything else counts as "false".
const AnswerTrue = "richtig"

// QuizResult is the outcome of scoring one quiz submission.
type QuizResult struct {
	Score  int
	Total  int
	Passed bool
}

type QuizService interface {
	// Evaluate scores submitted answers keyed by 1-based question number.
	// A missing answer is skipped entirely: it neither scores a point nor
	// shrinks the total, which stays at the catalog length.
	Evaluate(answers map[int]string) QuizResult
}

type quizService struct{}

func NewQuizService() QuizService {
	return &quizService{}
}

func (s *quizService) Evaluate(answers map[int]string) QuizResult {
	correct := 0
	for i, question := range catalog.Questions {
		answer, ok := answers[i+1]
		if !ok {
			continue
		}
		if (answer == AnswerTrue) == question.Answer {
			correct++
		}
	}

	total := len(catalog.Questions)
	return QuizResult{
		Score:  correct,
		Total:  total,
		Passed: float64(correct)/float64(total) >= catalog.PassThreshold,
	}
}
