package models

import "time"

// Post is one dispatch of a content toward a social media channel.
// Status stays false until the channel confirms the post; a failed
// attempt keeps status=false and records a fail reason.
type Post struct {
	ID         string    `db:"id" json:"id"`
	ContentID  string    `db:"content_id" json:"content_id"`
	ChannelID  string    `db:"channel_id" json:"channel_id"`
	AccountID  *string   `db:"account_id" json:"account_id,omitempty"`
	Status     bool      `db:"status" json:"status"`
	FailReason *string   `db:"fail_reason" json:"fail_reason,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// PostLog rows are append-only: one at generation, one per status update.
type PostLog struct {
	ID        string    `db:"id" json:"id"`
	PostID    string    `db:"post_id" json:"post_id"`
	AccountID *string   `db:"account_id" json:"account_id,omitempty"`
	RequestIP *string   `db:"request_ip" json:"request_ip,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
