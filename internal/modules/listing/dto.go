package listing

type ListingRequest struct {
	Name        string `json:"name" validate:"required"`
	Address     string `json:"address" validate:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" validate:"gte=0"`
	Stars       int    `json:"stars" validate:"gte=0,lte=5"`
	ImageURL    string `json:"image_url"`
}

type ModerateRequest struct {
	Status string `json:"status" binding:"required"`
}
