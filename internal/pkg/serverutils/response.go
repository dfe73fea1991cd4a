package serverutils

type ErrorBody struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func ErrorResponse(status int, message string) ErrorBody {
	return ErrorBody{
		Status:  status,
		Message: message,
	}
}
