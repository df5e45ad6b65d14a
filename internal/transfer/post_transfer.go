package transfer

import "time"

type PostStatusUpdate struct {
	Status     *bool   `json:"status"`
	FailReason *string `json:"failReason"`
}

type MediaItem struct {
	MediaType string `json:"mediaType"`
	MediaURL  string `json:"mediaUrl"`
}

type GeneratedPost struct {
	PostID  string      `json:"postId"`
	Content string      `json:"content"`
	Media   []MediaItem `json:"media"`
}

// PostHistoryFilter selects log rows whose post matches ContentID and
// AccountID and whose created_at lies in [From, To]. MediaID is optional;
// empty means no media constraint.
type PostHistoryFilter struct {
	ContentID string
	MediaID   string
	From      time.Time
	To        time.Time
	AccountID string
}

type PostHistoryItem struct {
	PostID    string      `json:"postId"`
	ContentID string      `json:"contentId"`
	Media     []MediaItem `json:"media"`
	RequestIP *string     `json:"requestIp,omitempty"`
	AccountID *string     `json:"accountId,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
}
