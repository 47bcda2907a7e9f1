package domain

import "time"

// Favorite is a plain (user, accommodation) membership pair with no
// lifecycle beyond add/remove.
type Favorite struct {
	ID              int64     `json:"id" gorm:"primaryKey"`
	UserID          int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_user_accommodation"`
	AccommodationID int64     `json:"accommodation_id" gorm:"not null;index;uniqueIndex:idx_user_accommodation"`
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime"`

	Accommodation *Accommodation `json:"accommodation,omitempty" gorm:"foreignKey:AccommodationID"`
}

func (Favorite) TableName() string {
	return "favorites"
}
