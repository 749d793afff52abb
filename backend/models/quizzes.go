package models

import "time"

type Quiz struct {
	ID        int        `json:"id" validate:"required,gt=0"`
	CourseID  int        `json:"course_id"`
	ModuleID  int        `json:"module_id"`
	Title     string     `json:"title" validate:"required"`
	Questions []Question `json:"questions" validate:"dive"`
}

type Question struct {
	ID            int      `json:"id" validate:"required,gt=0"`
	Question      string   `json:"question" validate:"required"`
	Options       []string `json:"options" validate:"min=1"`
	CorrectAnswer int      `json:"correct_answer" validate:"gte=0"`
}

// QuizResult is returned to the caller and never stored.
type QuizResult struct {
	ID             string    `json:"id"`
	QuizID         int       `json:"quiz_id"`
	StudentID      int       `json:"student_id"`
	Score          float64   `json:"score"`
	CorrectAnswers int       `json:"correct_answers"`
	TotalQuestions int       `json:"total_questions"`
	SubmittedAt    time.Time `json:"submitted_at"`
}

func (q Quiz) Clone() Quiz {
	if q.Questions != nil {
		questions := make([]Question, len(q.Questions))
		for i, question := range q.Questions {
			question.Options = append([]string(nil), question.Options...)
			questions[i] = question
		}
		q.Questions = questions
	}
	return q
}
