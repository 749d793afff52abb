package controllers

import (
	"errors"
	"log"
	"strconv"

	"elearning/backend/services"
	"elearning/backend/store"
	"elearning/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// paramID читает целочисленный параметр пути. Нечисловой id считается отсутствующим ресурсом.
func paramID(c *fiber.Ctx, name string) (int, bool) {
	id, err := strconv.Atoi(c.Params(name))
	if err != nil {
		return 0, false
	}
	return id, true
}

func badBody(c *fiber.Ctx) error {
	return utils.Error(c, fiber.StatusBadRequest, "Cannot parse JSON")
}

// handleError переводит ошибки сервисов в HTTP ответы
func handleError(c *fiber.Ctx, err error, notFound string) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return utils.NotFound(c, notFound)
	case errors.Is(err, services.ErrAlreadyEnrolled):
		return utils.BadRequest(c, "Already enrolled")
	default:
		log.Printf("%s %s: %v", c.Method(), c.Path(), err)
		return utils.InternalServerError(c, "Internal server error")
	}
}
