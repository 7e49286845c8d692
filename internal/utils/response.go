package utils

import "github.com/gofiber/fiber/v2"

// ErrorResponse is the body of every non-2xx relay response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SendJSON writes data as a JSON body with a 200 status.
func SendJSON(c *fiber.Ctx, data interface{}) error {
	return SendJSONWithStatus(c, fiber.StatusOK, data)
}

// SendJSONWithStatus writes data as a JSON body using the provided HTTP status code.
func SendJSONWithStatus(c *fiber.Ctx, status int, data interface{}) error {
	if status == 0 {
		status = fiber.StatusOK
	}

	return c.Status(status).JSON(data)
}

// SendError sends an error JSON response with the given status code.
func SendError(c *fiber.Ctx, status int, message string) error {
	if message == "" {
		message = "An error occurred"
	}

	return c.Status(status).JSON(ErrorResponse{Error: message})
}
