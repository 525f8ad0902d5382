package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentState is the payment status of a single video.
type PaymentState string

const (
	PaymentPending PaymentState = "pending"
	PaymentPaid    PaymentState = "paid"
)

// Valid reports whether the state is one of the known enum values.
func (s PaymentState) Valid() bool {
	return s == PaymentPending || s == PaymentPaid
}

// Video represents a published video and its payment record.
// UploadDate is a calendar date (no time component); nil means the upload
// date was never recorded.
type Video struct {
	ID           int64           `json:"id"`
	CreatorID    int64           `json:"creatorId"`
	Title        string          `json:"title"`
	UploadDate   *time.Time      `json:"uploadDate,omitempty"`
	PaymentState PaymentState    `json:"paymentState"`
	Amount       decimal.Decimal `json:"amount"`
	Link         *string         `json:"link,omitempty"`
	Description  *string         `json:"description,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// VideoFilter narrows a video listing. Nil fields match everything.
type VideoFilter struct {
	CreatorID    *int64
	PaymentState *PaymentState
}

// VideoView is the API response shape for video listings, with the owning
// creator's name resolved.
type VideoView struct {
	Video
	CreatorName string `json:"creatorName"`
}
