package repository

import (
	"context"
	"errors"

	"stayhub/internal/domain"

	"gorm.io/gorm"
)

var (
	ErrAlreadyFavorite = errors.New("accommodation already in favorites")
	ErrFavoriteMissing = errors.New("favorite not found")
)

// FavoriteRepository stores the (user, accommodation) membership pairs.
type FavoriteRepository interface {
	Add(ctx context.Context, userID, accommodationID int64) (*domain.Favorite, error)
	Remove(ctx context.Context, userID, accommodationID int64) error
	GetByUserID(ctx context.Context, userID int64) ([]domain.Favorite, error)
	Exists(ctx context.Context, userID, accommodationID int64) (bool, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Add(ctx context.Context, userID, accommodationID int64) (*domain.Favorite, error) {
	favorite := &domain.Favorite{
		UserID:          userID,
		AccommodationID: accommodationID,
	}

	if err := r.db.WithContext(ctx).Create(favorite).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAlreadyFavorite
		}
		return nil, err
	}

	if err := r.db.WithContext(ctx).Preload("Accommodation").First(favorite, favorite.ID).Error; err != nil {
		return nil, err
	}

	return favorite, nil
}

func (r *favoriteRepository) Remove(ctx context.Context, userID, accommodationID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND accommodation_id = ?", userID, accommodationID).
		Delete(&domain.Favorite{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFavoriteMissing
	}
	return nil
}

func (r *favoriteRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Favorite, error) {
	var favorites []domain.Favorite
	err := r.db.WithContext(ctx).
		Preload("Accommodation").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}

func (r *favoriteRepository) Exists(ctx context.Context, userID, accommodationID int64) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.Favorite{}).
		Where("user_id = ? AND accommodation_id = ?", userID, accommodationID).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}
