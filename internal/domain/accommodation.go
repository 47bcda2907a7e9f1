package domain

import "time"

type ListingStatus string

const (
	ListingDraft         ListingStatus = "draft" // schema-reserved, no flow uses it
	ListingPendingReview ListingStatus = "pending_review"
	ListingApproved      ListingStatus = "approved"
	ListingRejected      ListingStatus = "rejected"
	ListingSuspended     ListingStatus = "suspended"
)

// Accommodation is a host-owned listing. Only approved listings are
// publicly visible and bookable; any owner edit sends the listing back
// to pending_review.
type Accommodation struct {
	ID            int64         `json:"id"`
	OwnerID       int64         `json:"owner_id"`
	Name          string        `json:"name" validate:"required"`
	Address       string        `json:"address" validate:"required"`
	Description   string        `json:"description"`
	PricePerNight int64         `json:"price_per_night" validate:"gte=0"`
	StarRating    int           `json:"star_rating" validate:"gte=0,lte=5"`
	ImageURL      string        `json:"image_url,omitempty"`
	Status        ListingStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
