package apierr

import (
	"net/http"
	"strings"
	"time"
)

// Response is the body of every non-2xx answer.
type Response struct {
	Message    string `json:"message"`
	HTTPStatus string `json:"httpStatus"`
	Timestamp  string `json:"timestamp"`
}

func New(code int, msg string) Response {
	return Response{
		Message:    msg,
		HTTPStatus: StatusName(code),
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
}

// StatusName turns 404 into "NOT_FOUND".
func StatusName(code int) string {
	return strings.ToUpper(strings.ReplaceAll(http.StatusText(code), " ", "_"))
}
