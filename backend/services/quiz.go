package services

import (
	"context"
	"strconv"
	"time"

	"elearning/backend/models"
	"elearning/backend/store"

	"github.com/google/uuid"
)

// QuizService grades submissions. Results are computed per call and never stored.
type QuizService struct {
	Store       store.Store
	Now         func() time.Time
	NewResultID func() string
}

func NewQuizService(st store.Store) *QuizService {
	return &QuizService{
		Store:       st,
		Now:         time.Now,
		NewResultID: uuid.NewString,
	}
}

func (s *QuizService) GetQuiz(ctx context.Context, id int) (models.Quiz, error) {
	return s.Store.Quiz(ctx, id)
}

// SubmitQuiz grades answers keyed by question id. Unanswered questions are wrong.
func (s *QuizService) SubmitQuiz(ctx context.Context, quizID, studentID int, answers map[string]int) (models.QuizResult, error) {
	quiz, err := s.Store.Quiz(ctx, quizID)
	if err != nil {
		return models.QuizResult{}, err
	}

	correct := 0
	for _, q := range quiz.Questions {
		answer, ok := answers[strconv.Itoa(q.ID)]
		if ok && answer == q.CorrectAnswer {
			correct++
		}
	}

	total := len(quiz.Questions)
	score := 0.0
	if total > 0 {
		score = float64(correct) / float64(total) * 100
	}

	return models.QuizResult{
		ID:             s.NewResultID(),
		QuizID:         quizID,
		StudentID:      studentID,
		Score:          score,
		CorrectAnswers: correct,
		TotalQuestions: total,
		SubmittedAt:    s.Now(),
	}, nil
}
