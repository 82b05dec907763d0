package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/copeonbnb/whitelist-api/internal/domain/entity"
	errs "github.com/copeonbnb/whitelist-api/internal/domain/error"
	"github.com/copeonbnb/whitelist-api/internal/domain/port/usecase"
	"github.com/copeonbnb/whitelist-api/internal/infrastructure/adapter/api/dto"
	coremocks "github.com/copeonbnb/whitelist-api/mocks/port/core"
	usecasemocks "github.com/copeonbnb/whitelist-api/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func relaxedLogger(t *testing.T) *coremocks.MockLogger {
	logger := coremocks.NewMockLogger(t)
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Maybe()
	return logger
}

func performRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestRegisterWalletEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	newRouter := func(registrationUseCase usecase.RegistrationUseCase, t *testing.T) *gin.Engine {
		router := gin.New()
		h := NewRegistrationHandler(registrationUseCase, relaxedLogger(t))
		router.POST("/registerWallet", h.RegisterWallet)
		return router
	}

	t.Run("Successful registration returns 201", func(t *testing.T) {
		mockUseCase := usecasemocks.NewMockRegistrationUseCase(t)

		result := &usecase.RegistrationResult{
			User: &entity.User{
				ID:            "user-1",
				WalletAddress: "0x1234567890123456789012345678901234567890",
				ReferralCode:  "ABCD1234",
				CreatedAt:     fixedTime,
			},
			ReferralInfo: usecase.ReferralInfo{},
		}
		mockUseCase.On("RegisterWallet", mock.Anything, "0x1234567890123456789012345678901234567890", "").
			Return(result, nil).Once()

		router := newRouter(mockUseCase, t)

		recorder := performRequest(router, http.MethodPost, "/registerWallet",
			`{"walletAddress":"0x1234567890123456789012345678901234567890"}`)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response dto.RegisterWalletResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, "user-1", response.User.ID)
		assert.Equal(t, "ABCD1234", response.User.ReferralCode)
		assert.False(t, response.ReferralInfo.HadReferralCode)
	})

	t.Run("Referral code is forwarded to the use case", func(t *testing.T) {
		mockUseCase := usecasemocks.NewMockRegistrationUseCase(t)

		referrerID := "referrer-1"
		result := &usecase.RegistrationResult{
			User: &entity.User{ID: "user-1", ReferredBy: &referrerID, CreatedAt: fixedTime},
			ReferralInfo: usecase.ReferralInfo{
				HadReferralCode: true,
				ReferrerFound:   true,
				ReferredBy:      &referrerID,
			},
		}
		mockUseCase.On("RegisterWallet", mock.Anything, mock.Anything, "REFERCOD").
			Return(result, nil).Once()

		router := newRouter(mockUseCase, t)

		recorder := performRequest(router, http.MethodPost, "/registerWallet",
			`{"walletAddress":"0x1234567890123456789012345678901234567890","referralCode":"REFERCOD"}`)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response dto.RegisterWalletResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.True(t, response.ReferralInfo.ReferrerFound)
		require.NotNil(t, response.ReferralInfo.ReferredBy)
		assert.Equal(t, "referrer-1", *response.ReferralInfo.ReferredBy)
	})

	t.Run("Missing wallet address returns 400", func(t *testing.T) {
		mockUseCase := usecasemocks.NewMockRegistrationUseCase(t)

		router := newRouter(mockUseCase, t)

		recorder := performRequest(router, http.MethodPost, "/registerWallet", `{}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var response dto.ErrorResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, errs.CodeInvalidRequest, response.Code)
		mockUseCase.AssertNotCalled(t, "RegisterWallet", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Invalid wallet address returns 400", func(t *testing.T) {
		mockUseCase := usecasemocks.NewMockRegistrationUseCase(t)
		mockUseCase.On("RegisterWallet", mock.Anything, "not-a-wallet", "").
			Return(nil, errs.ErrInvalidWalletAddress).Once()

		router := newRouter(mockUseCase, t)

		recorder := performRequest(router, http.MethodPost, "/registerWallet",
			`{"walletAddress":"not-a-wallet"}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var response dto.ErrorResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, errs.CodeInvalidWalletAddress, response.Code)
	})

	t.Run("Duplicate wallet returns 400", func(t *testing.T) {
		mockUseCase := usecasemocks.NewMockRegistrationUseCase(t)
		mockUseCase.On("RegisterWallet", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errs.ErrWalletAlreadyRegistered).Once()

		router := newRouter(mockUseCase, t)

		recorder := performRequest(router, http.MethodPost, "/registerWallet",
			`{"walletAddress":"0x1234567890123456789012345678901234567890"}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var response dto.ErrorResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, errs.CodeWalletAlreadyRegistered, response.Code)
		assert.Equal(t, "Wallet already registered", response.Message)
	})

	t.Run("Unexpected failure returns 500", func(t *testing.T) {
		mockUseCase := usecasemocks.NewMockRegistrationUseCase(t)
		mockUseCase.On("RegisterWallet", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("connection refused")).Once()

		router := newRouter(mockUseCase, t)

		recorder := performRequest(router, http.MethodPost, "/registerWallet",
			`{"walletAddress":"0x1234567890123456789012345678901234567890"}`)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)

		var response dto.ErrorResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, errs.CodeInternalServer, response.Code)
	})
}
