package favorite

import "stayhub/internal/domain"

type AddFavoriteRequest struct {
	AccommodationID int64 `json:"accommodation_id" binding:"required"`
}

type FavoriteResponse struct {
	ID              int64                 `json:"id"`
	AccommodationID int64                 `json:"accommodation_id"`
	Accommodation   *domain.Accommodation `json:"accommodation,omitempty"`
	CreatedAt       string                `json:"created_at"`
}

func ToFavoriteResponse(f *domain.Favorite) FavoriteResponse {
	return FavoriteResponse{
		ID:              f.ID,
		AccommodationID: f.AccommodationID,
		Accommodation:   f.Accommodation,
		CreatedAt:       f.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToFavoriteListResponse(favorites []domain.Favorite) []FavoriteResponse {
	out := make([]FavoriteResponse, 0, len(favorites))
	for i := range favorites {
		out = append(out, ToFavoriteResponse(&favorites[i]))
	}
	return out
}
