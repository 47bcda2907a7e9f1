package repository

import (
	"context"
	"time"

	"stayhub/internal/domain"

	"gorm.io/gorm"
)

type AccommodationRepository struct {
	db *gorm.DB
}

func NewAccommodationRepository(db *gorm.DB) *AccommodationRepository {
	return &AccommodationRepository{db: db}
}

type accommodationModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	OwnerID       int64     `gorm:"column:owner_id;index"`
	Name          string    `gorm:"column:name"`
	Address       string    `gorm:"column:address"`
	Description   string    `gorm:"column:description;type:text"`
	PricePerNight int64     `gorm:"column:price_per_night"`
	StarRating    int       `gorm:"column:star_rating"`
	ImageURL      *string   `gorm:"column:image_url"`
	Status        string    `gorm:"column:status;default:pending_review;index"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (accommodationModel) TableName() string { return "accommodations" }

func toDomainAccommodation(m accommodationModel) *domain.Accommodation {
	var image string
	if m.ImageURL != nil {
		image = *m.ImageURL
	}

	return &domain.Accommodation{
		ID:            m.ID,
		OwnerID:       m.OwnerID,
		Name:          m.Name,
		Address:       m.Address,
		Description:   m.Description,
		PricePerNight: m.PricePerNight,
		StarRating:    m.StarRating,
		ImageURL:      image,
		Status:        domain.ListingStatus(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toAccommodationModel(a *domain.Accommodation) accommodationModel {
	var image *string
	if a.ImageURL != "" {
		v := a.ImageURL
		image = &v
	}

	return accommodationModel{
		ID:            a.ID,
		OwnerID:       a.OwnerID,
		Name:          a.Name,
		Address:       a.Address,
		Description:   a.Description,
		PricePerNight: a.PricePerNight,
		StarRating:    a.StarRating,
		ImageURL:      image,
		Status:        string(a.Status),
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func (r *AccommodationRepository) Create(ctx context.Context, a *domain.Accommodation) error {
	m := toAccommodationModel(a)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*a = *toDomainAccommodation(m)
	return nil
}

func (r *AccommodationRepository) GetByID(ctx context.Context, id int64) (*domain.Accommodation, error) {
	var m accommodationModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainAccommodation(m), nil
}

func (r *AccommodationRepository) Update(ctx context.Context, a *domain.Accommodation) error {
	m := toAccommodationModel(a)
	if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
		return err
	}
	*a = *toDomainAccommodation(m)
	return nil
}

func (r *AccommodationRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&accommodationModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *AccommodationRepository) ListByStatus(ctx context.Context, status domain.ListingStatus) ([]domain.Accommodation, error) {
	var models []accommodationModel
	if err := r.db.WithContext(ctx).Where("status = ?", string(status)).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	return toDomainAccommodations(models), nil
}

func (r *AccommodationRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Accommodation, error) {
	var models []accommodationModel
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	return toDomainAccommodations(models), nil
}

// UpdateStatus moves the listing to newStatus with no precondition on
// the prior status: moderation is deliberately lenient.
func (r *AccommodationRepository) UpdateStatus(ctx context.Context, id int64, newStatus domain.ListingStatus) error {
	tx := r.db.WithContext(ctx).Model(&accommodationModel{}).Where("id = ?", id).Update("status", string(newStatus))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *AccommodationRepository) CountAll(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&accommodationModel{}).Count(&cnt).Error
	return cnt, err
}

func (r *AccommodationRepository) CountByStatus(ctx context.Context, status domain.ListingStatus) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&accommodationModel{}).Where("status = ?", string(status)).Count(&cnt).Error
	return cnt, err
}

func toDomainAccommodations(models []accommodationModel) []domain.Accommodation {
	out := make([]domain.Accommodation, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainAccommodation(m))
	}
	return out
}
