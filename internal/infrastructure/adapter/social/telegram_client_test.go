package social

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	errs "github.com/copeonbnb/whitelist-api/internal/domain/error"
	socialport "github.com/copeonbnb/whitelist-api/internal/domain/port/social"
	coremocks "github.com/copeonbnb/whitelist-api/mocks/port/core"
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

func TestGetChatMember(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful membership lookup", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/bottest-token/getChatMember", r.URL.Path)
			assert.Equal(t, "@COPEonBNB", r.URL.Query().Get("chat_id"))
			assert.Equal(t, "42", r.URL.Query().Get("user_id"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"ok":true,"result":{"status":"member","user":{"id":42}}}`))
		}))
		defer server.Close()

		client := NewTelegramClient("test-token", "@COPEonBNB", relaxedLogger(t)).WithBaseURL(server.URL)

		membership, err := client.GetChatMember(ctx, 42)

		require.NoError(t, err)
		assert.Equal(t, socialport.StatusMember, membership.Status)
		assert.Equal(t, int64(42), membership.UserID)
		assert.True(t, membership.IsMember())
	})

	t.Run("Missing bot token fails before any request", func(t *testing.T) {
		client := NewTelegramClient("", "@COPEonBNB", relaxedLogger(t))

		membership, err := client.GetChatMember(ctx, 42)

		assert.Nil(t, membership)
		assert.ErrorIs(t, err, errs.ErrVerifierNotConfigured)
	})

	t.Run("Bot API error response becomes an upstream failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"ok":false,"description":"Bad Request: user not found"}`))
		}))
		defer server.Close()

		client := NewTelegramClient("test-token", "@COPEonBNB", relaxedLogger(t)).WithBaseURL(server.URL)

		membership, err := client.GetChatMember(ctx, 42)

		assert.Nil(t, membership)
		assert.ErrorIs(t, err, errs.ErrUpstreamFailure)
		assert.Contains(t, err.Error(), "user not found")
	})

	t.Run("Unreachable API becomes an upstream failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // reject all connections

		client := NewTelegramClient("test-token", "@COPEonBNB", relaxedLogger(t)).WithBaseURL(server.URL)

		membership, err := client.GetChatMember(ctx, 42)

		assert.Nil(t, membership)
		assert.ErrorIs(t, err, errs.ErrUpstreamFailure)
	})

	t.Run("Non-JSON response becomes an upstream failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("<html>bad gateway</html>"))
		}))
		defer server.Close()

		client := NewTelegramClient("test-token", "@COPEonBNB", relaxedLogger(t)).WithBaseURL(server.URL)

		membership, err := client.GetChatMember(ctx, 42)

		assert.Nil(t, membership)
		assert.ErrorIs(t, err, errs.ErrUpstreamFailure)
	})

	t.Run("Kicked status is not membership", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"ok":true,"result":{"status":"kicked","user":{"id":42}}}`))
		}))
		defer server.Close()

		client := NewTelegramClient("test-token", "@COPEonBNB", relaxedLogger(t)).WithBaseURL(server.URL)

		membership, err := client.GetChatMember(ctx, 42)

		require.NoError(t, err)
		assert.False(t, membership.IsMember())
	})
}
