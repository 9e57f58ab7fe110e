package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the error body every endpoint returns.
type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
}

func New(status int, msg string) Response {
	return Response{Status: status, Error: msg}
}

// Abort renders the error body and, when err is non-nil, records the
// original error on the context for the logging middleware.
func Abort(c *gin.Context, status int, err error, msg string) {
	resp := New(status, msg)
	if err != nil {
		_ = c.Error(gin.Error{
			Err:  err,
			Type: gin.ErrorTypePublic,
			Meta: resp,
		})
	}
	c.AbortWithStatusJSON(status, resp)
}
