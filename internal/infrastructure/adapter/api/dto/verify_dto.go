package dto

// VerifyTelegramRequest represents the API request for a Telegram
// channel membership check
type VerifyTelegramRequest struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
}

// VerifyTelegramResponse represents the API response for a membership check.
// Upstream failures surface here as a soft error field, not an HTTP error.
type VerifyTelegramResponse struct {
	IsMember bool   `json:"isMember"`
	Status   string `json:"status,omitempty"`
	UserID   int64  `json:"userId,omitempty"`
	Error    string `json:"error,omitempty"`
}

// VerifyXFollowRequest represents the API request for an X follow check
type VerifyXFollowRequest struct {
	UserID      string `json:"userId" binding:"required"`
	AccessToken string `json:"accessToken" binding:"required"`
}

// VerifyXFollowResponse represents the API response for an X follow check
type VerifyXFollowResponse struct {
	IsFollowing bool   `json:"isFollowing"`
	Message     string `json:"message,omitempty"`
}
