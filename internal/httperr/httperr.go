package httperr

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-marketplace/internal/logger"
)

// ExposeInternal makes Respond send the cause of internal errors to the
// client. Only enabled in development.
var ExposeInternal bool

type HTTPError struct {
	Message string `json:"error"`
	Code    string `json:"error_code"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

// Respond translates any error returned by a use case into the JSON error
// body and status code.
func Respond(c *gin.Context, err error) {
	e, ok := As(err)
	if !ok {
		e = &Error{Kind: KindInternal, Code: "internal_error", Message: "Unexpected error.", Err: err}
	}

	if e.Kind == KindInternal {
		logger.L().Error("request failed",
			slog.String("code", e.Code),
			slog.String("path", c.FullPath()),
			slog.Any("error", err),
		)

		message := e.Message
		if ExposeInternal && e.Err != nil {
			message = e.Err.Error()
		}
		Write(c, http.StatusInternalServerError, e.Code, message)
		return
	}

	Write(c, Status(e.Kind), e.Code, e.Message)
}
