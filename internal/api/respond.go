package api

import (
	"github.com/gin-gonic/gin"

	"github.com/chefincasa/backend/internal/apperrors"
)

// Envelope is the uniform response shape: {"ok":true,"data":...} on success,
// {"ok":false,"error":"..."} on failure. The failure side is produced by the
// error middleware; handlers only emit the success side.
type Envelope struct {
	OK    bool   `json:"ok"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

func respond(c *gin.Context, status int, data any) {
	c.JSON(status, Envelope{OK: true, Data: data})
}

// fail records the error for the error middleware and aborts the chain.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// bindJSON wraps ShouldBindJSON, converting validator failures into 400s with
// the shared envelope.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		fail(c, apperrors.BadRequest("corpo della richiesta non valido"))
		return false
	}
	return true
}

func bindQuery(c *gin.Context, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		fail(c, apperrors.BadRequest("parametri non validi"))
		return false
	}
	return true
}
