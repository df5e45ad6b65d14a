package models

import "time"

type Content struct {
	ID          string    `db:"id" json:"id"`
	ContentName string    `db:"content_name" json:"content_name"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type Media struct {
	ID        string    `db:"id" json:"id"`
	ContentID string    `db:"content_id" json:"content_id"`
	MediaType string    `db:"media_type" json:"media_type"` // image, video
	MediaURL  string    `db:"media_url" json:"media_url"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
