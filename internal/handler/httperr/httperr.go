// Package httperr defines the JSON error envelope every non-2xx response
// uses, shared by the handlers and the error/recovery middleware.
package httperr

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody carries the user-facing message of a failed request.
type ErrorBody struct {
	Message string `json:"message"`
}

// Response is the wire envelope. Status travels out of band; Detail is
// optional structured context such as validation fields.
type Response struct {
	Status int       `json:"-"`
	Error  ErrorBody `json:"error"`
	Detail any       `json:"detail,omitempty"`
}

// AbortWithError writes the envelope and records err on the gin context for
// the logging middleware. The underlying error never reaches the client;
// msg is the only text exposed.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("httperr: AbortWithError called with nil error")
	}

	resp := Response{
		Status: status,
		Error:  ErrorBody{Message: msg},
		Detail: detail,
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
