package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/nkchunduri/stock-tracker/internal/errors"
)

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// MessageResponse is returned by mutating endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreatedResponse is returned when a resource is created.
type CreatedResponse struct {
	ID      uint   `json:"id"`
	Message string `json:"message"`
}

// parsePathID parses a uint path parameter.
// Returns ErrInvalidInput if the parameter is not a valid positive integer.
//
//nolint:unparam // param is intentionally generic for reuse across handlers with different path params
func parsePathID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return uint(id), nil
}

// respondWithError records err on the context and stops the chain.
// middleware.ErrorHandler writes the JSON error body.
func respondWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
