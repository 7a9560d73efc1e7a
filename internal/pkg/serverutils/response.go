// FILE: internal/pkg/serverutils/response.go
package serverutils

type SuccessBody[T any] struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

type ErrorBody struct {
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func SuccessResponse[T any](message string, data T) SuccessBody[T] {
	return SuccessBody[T]{
		Status:  "success",
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(code int, message string) ErrorBody {
	return ErrorBody{
		Status:  "error",
		Code:    code,
		Message: message,
	}
}
