package social

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	errs "github.com/copeonbnb/whitelist-api/internal/domain/error"
	coreport "github.com/copeonbnb/whitelist-api/internal/domain/port/core"
	socialport "github.com/copeonbnb/whitelist-api/internal/domain/port/social"
)

// DefaultBaseURL is the Telegram Bot API endpoint
const DefaultBaseURL = "https://api.telegram.org"

// TelegramClient implements the TelegramVerifier port against the
// Telegram Bot API
type TelegramClient struct {
	baseURL    string
	botToken   string
	chatID     string
	httpClient *http.Client
	logger     coreport.Logger
}

// NewTelegramClient creates a new Bot API client. The chat id may be a
// numeric id or a public @channel handle.
func NewTelegramClient(botToken, chatID string, logger coreport.Logger) *TelegramClient {
	return &TelegramClient{
		baseURL:  DefaultBaseURL,
		botToken: botToken,
		chatID:   chatID,
		logger:   logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// WithBaseURL overrides the Bot API endpoint, used by tests
func (c *TelegramClient) WithBaseURL(baseURL string) *TelegramClient {
	c.baseURL = baseURL
	return c
}

// getChatMemberResponse mirrors the Bot API getChatMember envelope
type getChatMemberResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
	Result      struct {
		Status string `json:"status"`
		User   struct {
			ID int64 `json:"id"`
		} `json:"user"`
	} `json:"result"`
}

// GetChatMember looks up the membership status of a Telegram user in the
// configured channel
func (c *TelegramClient) GetChatMember(ctx context.Context, userID int64) (*socialport.ChatMembership, error) {
	if c.botToken == "" {
		return nil, errs.ErrVerifierNotConfigured
	}

	endpoint := fmt.Sprintf("%s/bot%s/getChatMember?chat_id=%s&user_id=%d",
		c.baseURL, c.botToken, url.QueryEscape(c.chatID), userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errs.NewVerificationError("telegram", userID, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Telegram Bot API request failed", map[string]any{
			"telegram_user_id": userID,
			"error":            err.Error(),
		})
		return nil, errs.NewVerificationError("telegram", userID, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.NewVerificationError("telegram", userID, err)
	}

	var apiResp getChatMemberResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, errs.NewVerificationError("telegram", userID,
			fmt.Errorf("unexpected response (status %d): %w", resp.StatusCode, err))
	}

	if !apiResp.OK {
		description := apiResp.Description
		if description == "" {
			description = fmt.Sprintf("bot api returned status %d", resp.StatusCode)
		}
		c.logger.Warn("Telegram Bot API rejected membership lookup", map[string]any{
			"telegram_user_id": userID,
			"description":      description,
		})
		return nil, errs.NewVerificationError("telegram", userID, errors.New(description))
	}

	return &socialport.ChatMembership{
		Status: apiResp.Result.Status,
		UserID: apiResp.Result.User.ID,
	}, nil
}
