package controllers

import (
	"encoding/json"
	"strconv"
	"strings"

	"elearning/backend/services"
	"elearning/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type QuizzesController struct {
	Quizzes *services.QuizService
}

func NewQuizzesController(quizzes *services.QuizService) *QuizzesController {
	return &QuizzesController{Quizzes: quizzes}
}

// SubmitQuizRequest ответы приходят как {"<question id>": <option index>}
type SubmitQuizRequest struct {
	StudentID int                        `json:"student_id" example:"1"`
	Answers   map[string]json.RawMessage `json:"answers"`
}

// choices принимает числа и числовые строки ("1"), остальные ответы считаются неверными
func (r SubmitQuizRequest) choices() map[string]int {
	out := make(map[string]int, len(r.Answers))
	for questionID, raw := range r.Answers {
		if choice, ok := parseChoice(raw); ok {
			out[questionID] = choice
		}
	}
	return out
}

func parseChoice(raw json.RawMessage) (int, bool) {
	var choice *int
	if err := json.Unmarshal(raw, &choice); err == nil {
		if choice == nil {
			return 0, false
		}
		return *choice, true
	}

	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, false
	}
	return n, true
}

// GetQuiz godoc
// @Summary Get quiz
// @Tags quizzes
// @Produce json
// @Param id path int true "Quiz ID"
// @Success 200 {object} models.Quiz
// @Failure 404 {object} utils.ErrorResponse
// @Router /quizzes/{id} [get]
func (qc *QuizzesController) GetQuiz(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return utils.NotFound(c, "Quiz not found")
	}

	quiz, err := qc.Quizzes.GetQuiz(c.UserContext(), id)
	if err != nil {
		return handleError(c, err, "Quiz not found")
	}
	return utils.OK(c, quiz)
}

// SubmitQuiz godoc
// @Summary Grade quiz answers
// @Description Grades the answers without storing the result
// @Tags quizzes
// @Accept json
// @Produce json
// @Param id path int true "Quiz ID"
// @Param input body SubmitQuizRequest true "Answers"
// @Success 200 {object} models.QuizResult
// @Failure 404 {object} utils.ErrorResponse
// @Router /quizzes/{id}/submit [post]
func (qc *QuizzesController) SubmitQuiz(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return utils.NotFound(c, "Quiz not found")
	}

	var req SubmitQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	result, err := qc.Quizzes.SubmitQuiz(c.UserContext(), id, req.StudentID, req.choices())
	if err != nil {
		return handleError(c, err, "Quiz not found")
	}
	return utils.OK(c, result)
}
