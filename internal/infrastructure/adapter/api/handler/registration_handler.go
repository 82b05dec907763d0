package handler

import (
	"net/http"

	domainerr "github.com/copeonbnb/whitelist-api/internal/domain/error"
	coreport "github.com/copeonbnb/whitelist-api/internal/domain/port/core"
	"github.com/copeonbnb/whitelist-api/internal/domain/port/usecase"
	"github.com/copeonbnb/whitelist-api/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// RegistrationHandler handles wallet registration HTTP requests
type RegistrationHandler struct {
	registrationUseCase usecase.RegistrationUseCase
	logger              coreport.Logger
}

// NewRegistrationHandler creates a new registration handler instance
func NewRegistrationHandler(
	registrationUseCase usecase.RegistrationUseCase,
	logger coreport.Logger,
) *RegistrationHandler {
	return &RegistrationHandler{
		registrationUseCase: registrationUseCase,
		logger:              logger,
	}
}

// RegisterWallet handles the POST /registerWallet endpoint
func (h *RegistrationHandler) RegisterWallet(c *gin.Context) {
	var req dto.RegisterWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid registration request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	result, err := h.registrationUseCase.RegisterWallet(c.Request.Context(), req.WalletAddress, req.ReferralCode)
	if err != nil {
		statusCode := http.StatusInternalServerError
		errorMessage := "Internal server error"

		// Map domain errors to HTTP status codes
		switch {
		case domainerr.IsValidationError(err):
			statusCode = http.StatusBadRequest
			errorMessage = "Invalid wallet address"
		case domainerr.IsConflictError(err):
			statusCode = http.StatusBadRequest
			errorMessage = "Wallet already registered"
		}

		h.logger.Error("Error registering wallet", map[string]any{
			"walletAddress": req.WalletAddress,
			"error":         err.Error(),
		})

		c.JSON(statusCode, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: errorMessage,
		})
		return
	}

	c.JSON(http.StatusCreated, dto.NewRegisterWalletResponse(result))
}
