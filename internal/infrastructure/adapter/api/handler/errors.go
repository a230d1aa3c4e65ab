package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/api/middleware"
)

// errorMapping pairs a domain error with its HTTP status and public message
type errorMapping struct {
	target  error
	status  int
	message string
}

// errorMappings is checked in order; the first errors.Is match wins
var errorMappings = []errorMapping{
	{domainerr.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{domainerr.ErrPinIncorrect, http.StatusNotFound, "Pin incorrect"},
	{domainerr.ErrInsufficientBalance, http.StatusNotFound, "Not enough balance"},
	{domainerr.ErrUserAlreadyExists, http.StatusConflict, "User already exists"},
	{domainerr.ErrUserLocked, http.StatusConflict, "Account is busy, please retry"},
	{domainerr.ErrInvalidTransactionType, http.StatusBadRequest, "Invalid transaction type"},
	{domainerr.ErrInvalidAmount, http.StatusBadRequest, "Invalid amount"},
	{domainerr.ErrAmountOverflow, http.StatusBadRequest, "Amount too large"},
	{domainerr.ErrInvalidEmail, http.StatusBadRequest, "Invalid email"},
	{domainerr.ErrInvalidPin, http.StatusBadRequest, "Invalid pin"},
	{domainerr.ErrInvalidUserID, http.StatusBadRequest, "Invalid user ID"},
	{domainerr.ErrInvalidRequest, http.StatusBadRequest, "Invalid request"},
	{domainerr.ErrDatabaseConnection, http.StatusServiceUnavailable, "Service unavailable"},
}

// StatusFor returns the HTTP status and public message for an error
func StatusFor(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

// respondError writes the error body for err and logs it
func respondError(c *gin.Context, logger coreport.Logger, operation string, err error) {
	status, message := StatusFor(err)

	fields := map[string]any{
		"operation":  operation,
		"status":     status,
		"error":      err.Error(),
		"request_id": c.GetString(middleware.RequestIDKey),
	}
	var logged interface{ LogFields() map[string]any }
	if errors.As(err, &logged) {
		for k, v := range logged.LogFields() {
			fields[k] = v
		}
	}

	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", fields)
	} else {
		logger.Debug("Request rejected", fields)
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

// respondBindError reports a request that could not be parsed
func respondBindError(c *gin.Context, logger coreport.Logger, operation string, err error) {
	logger.Debug("Invalid request format", map[string]any{
		"operation":  operation,
		"error":      err.Error(),
		"request_id": c.GetString(middleware.RequestIDKey),
	})
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.CodeInvalidRequest,
		Message: "Invalid request format: " + err.Error(),
	})
}
