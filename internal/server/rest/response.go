package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forgeapi/notes/internal/common"
)

// successResponse is the standard success envelope: {"success":true,"data":...}.
type successResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// failureResponse is the standard error envelope. Message is always an opaque
// client-facing string; internal error detail stays in the server log.
type failureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func respondOK(c *gin.Context, status int, data any) {
	c.JSON(status, successResponse{Success: true, Data: data})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, failureResponse{Success: false, Message: message})
}

// respondServiceError maps the service error taxonomy to HTTP statuses with
// opaque messages. Unknown errors collapse to a generic 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrorInvalidInput):
		respondError(c, http.StatusBadRequest, "invalid input")
	case errors.Is(err, common.ErrorUnauthorized), errors.Is(err, common.ErrInvalidToken):
		respondError(c, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, common.ErrorNotFound):
		respondError(c, http.StatusNotFound, "not found")
	case errors.Is(err, common.ErrorConflict):
		respondError(c, http.StatusConflict, "name already taken")
	default:
		respondError(c, http.StatusInternalServerError, "internal error")
	}
}
