package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the error-path rendering of the reservation envelope: the
// success flag is always false, with an envelope code and whichever of the
// optional sections the code calls for.
type Response struct {
	Status  int               `json:"-"`
	Success bool              `json:"success"`
	Code    string            `json:"code"`
	Info    string            `json:"info,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, code, info string, fields map[string]string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Code: code, Info: info, Errors: fields}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
