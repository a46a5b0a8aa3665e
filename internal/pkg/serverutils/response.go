package serverutils

import "github.com/gofiber/fiber/v2"

func SuccessResponse(code int, message string, data interface{}) fiber.Map {
	return fiber.Map{
		"success": true,
		"code":    code,
		"message": message,
		"data":    data,
	}
}

func ErrorResponse(code int, message string) fiber.Map {
	return fiber.Map{
		"success": false,
		"code":    code,
		"message": message,
		"data":    nil,
	}
}
