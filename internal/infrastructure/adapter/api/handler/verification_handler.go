package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/copeonbnb/whitelist-api/internal/domain/error"
	coreport "github.com/copeonbnb/whitelist-api/internal/domain/port/core"
	"github.com/copeonbnb/whitelist-api/internal/domain/port/usecase"
	"github.com/copeonbnb/whitelist-api/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// VerificationHandler handles social verification HTTP requests
type VerificationHandler struct {
	verificationUseCase usecase.VerificationUseCase
	logger              coreport.Logger
}

// NewVerificationHandler creates a new verification handler instance
func NewVerificationHandler(
	verificationUseCase usecase.VerificationUseCase,
	logger coreport.Logger,
) *VerificationHandler {
	return &VerificationHandler{
		verificationUseCase: verificationUseCase,
		logger:              logger,
	}
}

// VerifyTelegram handles the POST /verifyTelegram endpoint
func (h *VerificationHandler) VerifyTelegram(c *gin.Context) {
	var req dto.VerifyTelegramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid telegram verification request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	result, err := h.verificationUseCase.VerifyTelegramMembership(c.Request.Context(), req.UserID, req.Username)
	if err != nil {
		statusCode := http.StatusInternalServerError
		errorMessage := "Internal server error"

		switch {
		case errors.Is(err, domainerr.ErrInvalidRequest):
			statusCode = http.StatusBadRequest
			errorMessage = "Either userId or username is required"
		case errors.Is(err, domainerr.ErrVerifierNotConfigured):
			errorMessage = "Telegram verification is not configured"
		}

		h.logger.Error("Error verifying telegram membership", map[string]any{
			"userId":   req.UserID,
			"username": req.Username,
			"error":    err.Error(),
		})

		c.JSON(statusCode, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: errorMessage,
		})
		return
	}

	c.JSON(http.StatusOK, dto.VerifyTelegramResponse{
		IsMember: result.IsMember,
		Status:   result.Status,
		UserID:   result.UserID,
		Error:    result.Error,
	})
}

// VerifyXFollow handles the POST /verifyXFollow endpoint
func (h *VerificationHandler) VerifyXFollow(c *gin.Context) {
	var req dto.VerifyXFollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid X follow verification request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	result, err := h.verificationUseCase.VerifyXFollow(c.Request.Context(), req.UserID, req.AccessToken)
	if err != nil {
		statusCode := http.StatusInternalServerError
		errorMessage := "Internal server error"

		if errors.Is(err, domainerr.ErrInvalidRequest) {
			statusCode = http.StatusBadRequest
			errorMessage = "userId and accessToken are required"
		}

		h.logger.Error("Error verifying X follow", map[string]any{
			"userId": req.UserID,
			"error":  err.Error(),
		})

		c.JSON(statusCode, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: errorMessage,
		})
		return
	}

	c.JSON(http.StatusOK, dto.VerifyXFollowResponse{
		IsFollowing: result.IsFollowing,
		Message:     result.Message,
	})
}
