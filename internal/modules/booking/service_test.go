package booking

import (
	"context"
	"testing"
	"time"

	"stayhub/internal/domain"
	"stayhub/internal/policy"
	"stayhub/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mock repositories
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) CreateIfFree(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil && args.Error(0) == nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetWithListingOwner(ctx context.Context, bookingID int64) (*domain.Booking, int64, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).(*domain.Booking), args.Get(1).(int64), args.Error(2)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error {
	args := m.Called(ctx, bookingID, status)
	return args.Error(0)
}

func (m *MockBookingRepository) GetUserReservations(ctx context.Context, userID int64) ([]repository.ReservationDetails, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]repository.ReservationDetails), args.Error(1)
}

func (m *MockBookingRepository) GetHostBookings(ctx context.Context, ownerID int64) ([]repository.HostBookingDetails, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]repository.HostBookingDetails), args.Error(1)
}

type MockListingReader struct {
	mock.Mock
}

func (m *MockListingReader) GetByID(ctx context.Context, id int64) (*domain.Accommodation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Accommodation), args.Error(1)
}

func newTestService(bookings *MockBookingRepository, listings *MockListingReader) *Service {
	s := NewService(bookings, listings)
	// pin "today" so tests are stable
	s.now = func() time.Time {
		return time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	}
	return s
}

func activeTourist(id int64) policy.Subject {
	return policy.Subject{
		ID:      id,
		Role:    domain.RoleTourist,
		Status:  domain.UserActive,
		CanBook: true,
	}
}

func activeHost(id int64) policy.Subject {
	return policy.Subject{
		ID:      id,
		Role:    domain.RoleHost,
		Status:  domain.UserActive,
		CanBook: true,
		CanHost: true,
	}
}

func TestService_Create_Success(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockListings := new(MockListingReader)

	mockListings.On("GetByID", mock.Anything, int64(10)).Return(&domain.Accommodation{
		ID:      10,
		OwnerID: 5,
		Status:  domain.ListingApproved,
	}, nil)
	mockBookings.On("CreateIfFree", mock.Anything, mock.Anything).Return(nil)

	service := newTestService(mockBookings, mockListings)

	req := CreateBookingRequest{
		AccommodationID: 10,
		CheckInDate:     "2026-09-10",
		CheckOutDate:    "2026-09-14",
		NumberOfGuests:  2,
	}

	b, err := service.Create(context.Background(), activeTourist(3), req)

	assert.NoError(t, err)
	assert.NotNil(t, b)
	assert.Equal(t, int64(999), b.ID)
	assert.Equal(t, int64(3), b.UserID)
	assert.Equal(t, domain.BookingPending, b.Status)
	mockBookings.AssertExpectations(t)
}

func TestService_Create_SuspendedUserForbidden(t *testing.T) {
	service := newTestService(new(MockBookingRepository), new(MockListingReader))

	suspended := policy.Subject{
		ID:      3,
		Role:    domain.RoleTourist,
		Status:  domain.UserSuspended,
		CanBook: true,
	}

	req := CreateBookingRequest{
		AccommodationID: 10,
		CheckInDate:     "2026-09-10",
		CheckOutDate:    "2026-09-14",
		NumberOfGuests:  2,
	}

	_, err := service.Create(context.Background(), suspended, req)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Create_BookingFlagRevoked(t *testing.T) {
	service := newTestService(new(MockBookingRepository), new(MockListingReader))

	actor := activeTourist(3)
	actor.CanBook = false

	req := CreateBookingRequest{
		AccommodationID: 10,
		CheckInDate:     "2026-09-10",
		CheckOutDate:    "2026-09-14",
		NumberOfGuests:  2,
	}

	_, err := service.Create(context.Background(), actor, req)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Create_ValidationErrors(t *testing.T) {
	service := newTestService(new(MockBookingRepository), new(MockListingReader))
	actor := activeTourist(3)

	cases := []struct {
		name string
		req  CreateBookingRequest
	}{
		{"missing accommodation", CreateBookingRequest{CheckInDate: "2026-09-10", CheckOutDate: "2026-09-12", NumberOfGuests: 1}},
		{"zero guests", CreateBookingRequest{AccommodationID: 10, CheckInDate: "2026-09-10", CheckOutDate: "2026-09-12"}},
		{"malformed date", CreateBookingRequest{AccommodationID: 10, CheckInDate: "10.09.2026", CheckOutDate: "2026-09-12", NumberOfGuests: 1}},
		{"check-out before check-in", CreateBookingRequest{AccommodationID: 10, CheckInDate: "2026-09-12", CheckOutDate: "2026-09-10", NumberOfGuests: 1}},
		{"zero-night stay", CreateBookingRequest{AccommodationID: 10, CheckInDate: "2026-09-10", CheckOutDate: "2026-09-10", NumberOfGuests: 1}},
		{"past check-in", CreateBookingRequest{AccommodationID: 10, CheckInDate: "2026-08-20", CheckOutDate: "2026-09-12", NumberOfGuests: 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.Create(context.Background(), actor, tc.req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestService_Create_CheckInToday_OK(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockListings := new(MockListingReader)

	mockListings.On("GetByID", mock.Anything, int64(10)).Return(&domain.Accommodation{
		ID:     10,
		Status: domain.ListingApproved,
	}, nil)
	mockBookings.On("CreateIfFree", mock.Anything, mock.Anything).Return(nil)

	service := newTestService(mockBookings, mockListings)

	req := CreateBookingRequest{
		AccommodationID: 10,
		CheckInDate:     "2026-09-01",
		CheckOutDate:    "2026-09-03",
		NumberOfGuests:  1,
	}

	_, err := service.Create(context.Background(), activeTourist(3), req)
	assert.NoError(t, err)
}

func TestService_Create_AccommodationNotFound(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockListings := new(MockListingReader)

	mockListings.On("GetByID", mock.Anything, int64(77)).Return(nil, gorm.ErrRecordNotFound)

	service := newTestService(mockBookings, mockListings)

	req := CreateBookingRequest{
		AccommodationID: 77,
		CheckInDate:     "2026-09-10",
		CheckOutDate:    "2026-09-12",
		NumberOfGuests:  1,
	}

	_, err := service.Create(context.Background(), activeTourist(3), req)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Create_NotApprovedListing(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockListings := new(MockListingReader)

	mockListings.On("GetByID", mock.Anything, int64(10)).Return(&domain.Accommodation{
		ID:     10,
		Status: domain.ListingPendingReview,
	}, nil)

	service := newTestService(mockBookings, mockListings)

	req := CreateBookingRequest{
		AccommodationID: 10,
		CheckInDate:     "2026-09-10",
		CheckOutDate:    "2026-09-12",
		NumberOfGuests:  1,
	}

	_, err := service.Create(context.Background(), activeTourist(3), req)
	assert.ErrorIs(t, err, ErrNotBookable)
}

func TestService_Create_Overlap(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockListings := new(MockListingReader)

	mockListings.On("GetByID", mock.Anything, int64(10)).Return(&domain.Accommodation{
		ID:     10,
		Status: domain.ListingApproved,
	}, nil)
	mockBookings.On("CreateIfFree", mock.Anything, mock.Anything).Return(repository.ErrDateOverlap)

	service := newTestService(mockBookings, mockListings)

	req := CreateBookingRequest{
		AccommodationID: 10,
		CheckInDate:     "2026-09-10",
		CheckOutDate:    "2026-09-14",
		NumberOfGuests:  2,
	}

	_, err := service.Create(context.Background(), activeTourist(3), req)
	assert.ErrorIs(t, err, ErrOverlap)
}

func TestService_Approve_Success(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockListings := new(MockListingReader)

	host := activeHost(5)
	mockBookings.On("GetWithListingOwner", mock.Anything, int64(123)).Return(&domain.Booking{
		ID:     123,
		UserID: 3,
		Status: domain.BookingPending,
	}, int64(5), nil)
	mockBookings.On("UpdateStatus", mock.Anything, int64(123), domain.BookingApproved).Return(nil)

	service := newTestService(mockBookings, mockListings)

	b, err := service.Approve(context.Background(), host, 123)

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingApproved, b.Status)
	mockBookings.AssertExpectations(t)
}

func TestService_Approve_NotOwner(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	otherHost := activeHost(8)
	mockBookings.On("GetWithListingOwner", mock.Anything, int64(123)).Return(&domain.Booking{
		ID:     123,
		Status: domain.BookingPending,
	}, int64(5), nil)

	service := newTestService(mockBookings, new(MockListingReader))

	_, err := service.Approve(context.Background(), otherHost, 123)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Approve_TouristForbidden(t *testing.T) {
	service := newTestService(new(MockBookingRepository), new(MockListingReader))

	_, err := service.Approve(context.Background(), activeTourist(3), 123)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Reject_AlreadyDecided(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	host := activeHost(5)
	mockBookings.On("GetWithListingOwner", mock.Anything, int64(123)).Return(&domain.Booking{
		ID:     123,
		Status: domain.BookingApproved,
	}, int64(5), nil)

	service := newTestService(mockBookings, new(MockListingReader))

	_, err := service.Reject(context.Background(), host, 123)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestService_Cancel_FromApproved(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	mockBookings.On("GetByID", mock.Anything, int64(123)).Return(&domain.Booking{
		ID:     123,
		UserID: 3,
		Status: domain.BookingApproved,
	}, nil)
	mockBookings.On("UpdateStatus", mock.Anything, int64(123), domain.BookingCancelled).Return(nil)

	service := newTestService(mockBookings, new(MockListingReader))

	b, err := service.Cancel(context.Background(), activeTourist(3), 123)

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, b.Status)
}

func TestService_Cancel_NotRenter(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	mockBookings.On("GetByID", mock.Anything, int64(123)).Return(&domain.Booking{
		ID:     123,
		UserID: 3,
		Status: domain.BookingPending,
	}, nil)

	service := newTestService(mockBookings, new(MockListingReader))

	_, err := service.Cancel(context.Background(), activeTourist(4), 123)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Cancel_Terminal(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	mockBookings.On("GetByID", mock.Anything, int64(123)).Return(&domain.Booking{
		ID:     123,
		UserID: 3,
		Status: domain.BookingRejected,
	}, nil)

	service := newTestService(mockBookings, new(MockListingReader))

	_, err := service.Cancel(context.Background(), activeTourist(3), 123)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestService_HostBookings_TouristForbidden(t *testing.T) {
	service := newTestService(new(MockBookingRepository), new(MockListingReader))

	_, err := service.HostBookings(context.Background(), activeTourist(3))
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestBookingStatus_Blocking(t *testing.T) {
	assert.True(t, domain.BookingPending.Blocking())
	assert.True(t, domain.BookingApproved.Blocking())
	assert.False(t, domain.BookingRejected.Blocking())
	assert.False(t, domain.BookingCancelled.Blocking())
}

func TestBooking_Overlaps_TouchingDatesDoNotConflict(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 9, d, 0, 0, 0, 0, time.UTC)
	}
	existing := &domain.Booking{CheckIn: day(10), CheckOut: day(14)}

	// back to back stays share a boundary date without conflict
	assert.False(t, existing.Overlaps(day(14), day(16)))
	assert.False(t, existing.Overlaps(day(8), day(10)))

	assert.True(t, existing.Overlaps(day(13), day(15)))
	assert.True(t, existing.Overlaps(day(9), day(11)))
	assert.True(t, existing.Overlaps(day(11), day(12)))
	assert.True(t, existing.Overlaps(day(8), day(16)))
}
