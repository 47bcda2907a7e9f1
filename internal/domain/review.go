package domain

import "time"

// Review is a schema placeholder: the table is migrated so bookings can
// be reviewed later, but no review flow exists yet.
type Review struct {
	ID              int64     `json:"id" gorm:"primaryKey"`
	BookingID       int64     `json:"booking_id" gorm:"uniqueIndex"`
	UserID          int64     `json:"user_id" gorm:"index"`
	AccommodationID int64     `json:"accommodation_id" gorm:"index"`
	Rating          int       `json:"rating"`
	Comment         string    `json:"comment,omitempty" gorm:"type:text"`
	Status          string    `json:"status" gorm:"default:pending"`
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Review) TableName() string {
	return "reviews"
}
