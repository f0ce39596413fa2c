package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"user-registry-api/internal/domain/errs"
	"user-registry-api/internal/interface/api/rest/dto/apierr"
)

const (
	msgInternal    = "internal server error"
	msgInvalidBody = "invalid request body"
	msgInvalidID   = "user_id must be a valid UUID"
)

func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrInvalidData):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrDuplicate):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError answers with the status matching the error kind. Anything
// unclassified is logged and hidden behind a generic message.
func writeError(c *gin.Context, logger *zap.Logger, op string, err error) {
	code := statusOf(err)
	if code == http.StatusInternalServerError {
		logger.Error(op+"() error", zap.Error(err))
		c.JSON(code, apierr.New(code, msgInternal))
		return
	}

	var e *errs.Error
	msg := err.Error()
	if errors.As(err, &e) {
		msg = e.Msg
	}
	c.JSON(code, apierr.New(code, msg))
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, apierr.New(http.StatusBadRequest, msg))
}
