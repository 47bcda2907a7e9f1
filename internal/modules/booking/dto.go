package booking

type CreateBookingRequest struct {
	AccommodationID int64  `json:"accommodation_id"`
	CheckInDate     string `json:"check_in_date"`
	CheckOutDate    string `json:"check_out_date"`
	NumberOfGuests  int    `json:"number_of_guests"`
}
