package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"catalog/internal/models"
)

// ErrorHandler is the app-wide Fiber error handler. Every error raised by a
// handler or by the router itself (404 on unknown paths, 405 on known paths
// with the wrong verb) is converted here into the structured JSON body
// {"status": <code>, "error": <short-name>, "message": <detail>}; nothing
// escapes to the transport layer unhandled.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error occurred."

	var validationErr *models.DataValidationError
	var notFoundErr *models.NotFoundError
	var fiberErr *fiber.Error

	switch {
	case errors.As(err, &validationErr):
		code = fiber.StatusBadRequest
		message = validationErr.Error()
	case errors.As(err, &notFoundErr):
		code = fiber.StatusNotFound
		message = notFoundErr.Error()
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
		message = fiberErr.Message
	default:
		// Store-level or otherwise unclassified failure: log the detail,
		// keep the response generic.
		log.Printf("Internal error handling %s %s: %v", c.Method(), c.Path(), err)
	}

	return c.Status(code).JSON(fiber.Map{
		"status":  code,
		"error":   utils.StatusMessage(code),
		"message": message,
	})
}
