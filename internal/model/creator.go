package model

import "time"

// Creator represents a tracked content creator.
type Creator struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	ChannelURL *string   `json:"channelUrl,omitempty"`
	Category   *string   `json:"category,omitempty"`
	Contact    *string   `json:"contact,omitempty"`
	Notes      *string   `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
