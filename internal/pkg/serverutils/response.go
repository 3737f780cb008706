package serverutils

import "github.com/gofiber/fiber/v2"

// Response is the success envelope: {message, code, data}. The code mirrors
// the transport status; failures carry only {message}.
type Response[T any] struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
	Data    T      `json:"data,omitempty"`
}

type FailureResponse struct {
	Message string `json:"message"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Message: message,
		Code:    fiber.StatusOK,
		Data:    data,
	}
}

func CreatedResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Message: message,
		Code:    fiber.StatusCreated,
		Data:    data,
	}
}

func ErrorResponse(message string) FailureResponse {
	return FailureResponse{
		Message: message,
	}
}
