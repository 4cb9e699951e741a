// Package presenter fixes the wire shape of API responses. Errors are
// always {"message": "..."} with a non-2xx status.
package presenter

import "github.com/gofiber/fiber/v2"

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Message string `json:"message" example:"resume is required"`
}

// JSON writes v with the given status.
func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

// Error writes the standard error body with the given status.
func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}
