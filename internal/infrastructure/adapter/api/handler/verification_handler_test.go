package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	errs "github.com/copeonbnb/whitelist-api/internal/domain/error"
	"github.com/copeonbnb/whitelist-api/internal/domain/port/usecase"
	"github.com/copeonbnb/whitelist-api/internal/infrastructure/adapter/api/dto"
	usecasemocks "github.com/copeonbnb/whitelist-api/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newVerificationRouter(mockUseCase *usecasemocks.MockVerificationUseCase, t *testing.T) *gin.Engine {
	router := gin.New()
	h := NewVerificationHandler(mockUseCase, relaxedLogger(t))
	router.POST("/verifyTelegram", h.VerifyTelegram)
	router.POST("/verifyXFollow", h.VerifyXFollow)
	return router
}

func TestVerifyTelegramEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Member check returns 200", func(t *testing.T) {
		mockUseCase := usecasemocks.NewMockVerificationUseCase(t)
		mockUseCase.On("VerifyTelegramMembership", mock.Anything, int64(42), "").
			Return(&usecase.TelegramVerification{IsMember: true, Status: "member", UserID: 42}, nil).Once()

		router := newVerificationRouter(mockUseCase, t)

		recorder := performRequest(router, http.MethodPost, "/verifyTelegram", `{"userId":42}`)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response dto.VerifyTelegramResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.True(t, response.IsMember)
		assert.Equal(t, "member", response.Status)
		assert.Equal(t, int64(42), response.UserID)
		assert.Empty(t, response.Error)
	})

	t.Run("Upstream failure still returns 200 with soft error", func(t *testing.T) {
		mockUseCase := usecasemocks.NewMockVerificationUseCase(t)
		mockUseCase.On("VerifyTelegramMembership", mock.Anything, int64(42), "").
			Return(&usecase.TelegramVerification{IsMember: false, Error: "telegram verification failed for user 42: timeout"}, nil).Once()

		router := newVerificationRouter(mockUseCase, t)

		recorder := performRequest(router, http.MethodPost, "/verifyTelegram", `{"userId":42}`)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response dto.VerifyTelegramResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.False(t, response.IsMember)
		assert.Contains(t, response.Error, "timeout")
	})

	t.Run("Missing identification returns 400", func(t *testing.T) {
		mockUseCase := usecasemocks.NewMockVerificationUseCase(t)
		mockUseCase.On("VerifyTelegramMembership", mock.Anything, int64(0), "").
			Return(nil, errs.ErrInvalidRequest).Once()

		router := newVerificationRouter(mockUseCase, t)

		recorder := performRequest(router, http.MethodPost, "/verifyTelegram", `{}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var response dto.ErrorResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, errs.CodeInvalidRequest, response.Code)
	})

	t.Run("Missing bot token returns 500", func(t *testing.T) {
		mockUseCase := usecasemocks.NewMockVerificationUseCase(t)
		mockUseCase.On("VerifyTelegramMembership", mock.Anything, int64(42), "").
			Return(nil, errs.ErrVerifierNotConfigured).Once()

		router := newVerificationRouter(mockUseCase, t)

		recorder := performRequest(router, http.MethodPost, "/verifyTelegram", `{"userId":42}`)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)

		var response dto.ErrorResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, errs.CodeNotConfigured, response.Code)
		assert.Equal(t, "Telegram verification is not configured", response.Message)
	})
}

func TestVerifyXFollowEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Stubbed check returns 200", func(t *testing.T) {
		mockUseCase := usecasemocks.NewMockVerificationUseCase(t)
		mockUseCase.On("VerifyXFollow", mock.Anything, "x-user", "token").
			Return(&usecase.XFollowVerification{IsFollowing: false, Message: "X verification requires OAuth integration"}, nil).Once()

		router := newVerificationRouter(mockUseCase, t)

		recorder := performRequest(router, http.MethodPost, "/verifyXFollow",
			`{"userId":"x-user","accessToken":"token"}`)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response dto.VerifyXFollowResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.False(t, response.IsFollowing)
		assert.Contains(t, response.Message, "OAuth")
	})

	t.Run("Missing parameters return 400 before the use case", func(t *testing.T) {
		mockUseCase := usecasemocks.NewMockVerificationUseCase(t)

		router := newVerificationRouter(mockUseCase, t)

		recorder := performRequest(router, http.MethodPost, "/verifyXFollow", `{"userId":"x-user"}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var response dto.ErrorResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, errs.CodeInvalidRequest, response.Code)
		mockUseCase.AssertNotCalled(t, "VerifyXFollow", mock.Anything, mock.Anything, mock.Anything)
	})
}
