package favorite

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"stayhub/internal/domain"
	"stayhub/internal/pkg/response"
	"stayhub/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListingReader checks the target accommodation exists before
// favoriting it.
type ListingReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Accommodation, error)
}

type Handler struct {
	repo     repository.FavoriteRepository
	listings ListingReader
}

func NewHandler(repo repository.FavoriteRepository, listings ListingReader) *Handler {
	return &Handler{repo: repo, listings: listings}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	favorites := rg.Group("/favorites")
	{
		favorites.GET("", h.GetFavorites)
		favorites.POST("", h.AddFavorite)
		favorites.DELETE("/:accommodationId", h.RemoveFavorite)
	}
}

func (h *Handler) GetFavorites(c *gin.Context) {
	favorites, err := h.repo.GetByUserID(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load favorites")
		return
	}

	response.Success(c, http.StatusOK, ToFavoriteListResponse(favorites))
}

func (h *Handler) AddFavorite(c *gin.Context) {
	var req AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Accommodation ID is required")
		return
	}

	if _, err := h.listings.GetByID(c.Request.Context(), req.AccommodationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Accommodation not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to add favorite")
		return
	}

	fav, err := h.repo.Add(c.Request.Context(), c.GetInt64("user_id"), req.AccommodationID)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyFavorite) {
			response.Error(c, http.StatusConflict, "CONFLICT", "This accommodation is already in your favorites")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to add favorite")
		return
	}

	response.Success(c, http.StatusCreated, ToFavoriteResponse(fav))
}

func (h *Handler) RemoveFavorite(c *gin.Context) {
	accommodationID, err := strconv.ParseInt(c.Param("accommodationId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid accommodation ID")
		return
	}

	if err := h.repo.Remove(c.Request.Context(), c.GetInt64("user_id"), accommodationID); err != nil {
		if errors.Is(err, repository.ErrFavoriteMissing) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Favorite not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to remove favorite")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"accommodation_id": accommodationID})
}
