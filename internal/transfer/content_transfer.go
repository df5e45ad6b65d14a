package transfer

import "time"

type ContentCreation struct {
	ContentName string `json:"contentName"`
}

type ContentUpdate struct {
	ContentName string `json:"contentName"`
}

type ContentMedia struct {
	ID        string `json:"id"`
	MediaType string `json:"mediaType"`
	MediaURL  string `json:"mediaUrl"`
}

// ContentDetail is a content row joined with its media list.
type ContentDetail struct {
	ID          string         `json:"id"`
	ContentName string         `json:"contentName"`
	Media       []ContentMedia `json:"media"`
	CreatedAt   time.Time      `json:"createdAt"`
}
