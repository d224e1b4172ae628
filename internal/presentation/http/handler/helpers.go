package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jjpos/jjpos-api/internal/presentation/http/dto/response"
)

// parseUUIDParam parses a UUID path parameter, responding 400 on failure.
// The boolean reports whether the handler should continue.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.BadRequest(c, "Invalid "+name+" format")
		return uuid.Nil, false
	}
	return id, true
}
