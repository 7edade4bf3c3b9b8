package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"stayhub/builders"
	"stayhub/commands"
	"stayhub/constants"
	"stayhub/dto"
	"stayhub/errors"
	"stayhub/models"
	"stayhub/services/logger"
)

// GSTRate is applied on top of the room total.
const GSTRate = 0.13

type BookingService struct {
	db     *gorm.DB
	rdb    *redis.Client
	logger logger.Logger
}

type BookingServiceOptions struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Logger logger.Logger
}

func NewBookingService(opts BookingServiceOptions) *BookingService {
	return &BookingService{
		db:     opts.DB,
		rdb:    opts.Redis,
		logger: opts.Logger,
	}
}

type holdRow struct {
	BookingID    uint
	Category     string
	NoOfRooms    int
	CheckinDate  time.Time
	CheckoutDate time.Time
}

// overlapArgs feeds the three-way OR used by every range query: fully
// contained, overlapping the start, or overlapping the end.
func overlapArgs(r DateRange) []interface{} {
	return []interface{}{r.From, r.To, r.From, r.From, r.To, r.To}
}

// LoadSnapshot reads a property's inventory, active holds and withdrawal
// windows overlapping r into an in-memory snapshot for the availability
// engine.
func LoadSnapshot(db *gorm.DB, propertyID uint, r DateRange) (*Snapshot, error) {
	var property models.Property
	if err := db.Where("id = ? AND is_deleted = false", propertyID).First(&property).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, &errors.AvailabilityError{Code: errors.ErrCodePropertyNotFound}
		}
		return nil, err
	}

	var rooms []models.Room
	if err := db.Where("property_id = ? AND is_deleted = false", propertyID).Find(&rooms).Error; err != nil {
		return nil, err
	}

	snapshot := &Snapshot{PropertyID: propertyID}
	for _, room := range rooms {
		snapshot.Inventory = append(snapshot.Inventory, CategoryInventory{
			Category:    room.Category,
			RoomNumbers: room.RoomNumbers,
		})
	}

	var holds []holdRow
	err := db.Model(&models.BookingDetail{}).
		Select("booking_details.booking_id, rooms.category, booking_details.no_of_rooms, bookings.checkin_date, bookings.checkout_date").
		Joins("JOIN bookings ON bookings.id = booking_details.booking_id").
		Joins("JOIN rooms ON rooms.id = booking_details.room_id").
		Where("bookings.property_id = ?", propertyID).
		Where("bookings.payment_status <> ?", constants.PaymentStatusDraft).
		Where("bookings.cancelled = false AND bookings.is_deleted = false").
		Where("(bookings.checkin_date >= ? AND bookings.checkout_date <= ?) OR (bookings.checkin_date <= ? AND bookings.checkout_date >= ?) OR (bookings.checkin_date <= ? AND bookings.checkout_date >= ?)",
			overlapArgs(r)...).
		Scan(&holds).Error
	if err != nil {
		return nil, err
	}
	for _, h := range holds {
		snapshot.Holds = append(snapshot.Holds, BookingHold{
			BookingID: h.BookingID,
			Category:  h.Category,
			Quantity:  h.NoOfRooms,
			Range:     DateRange{From: h.CheckinDate, To: h.CheckoutDate},
		})
	}

	var unavailability []models.RoomUnavailability
	err = db.Where("property_id = ? AND is_deleted = false", propertyID).
		Where("(from_date >= ? AND to_date <= ?) OR (from_date <= ? AND to_date >= ?) OR (from_date <= ? AND to_date >= ?)",
			overlapArgs(r)...).
		Find(&unavailability).Error
	if err != nil {
		return nil, err
	}
	for _, u := range unavailability {
		snapshot.Unavailability = append(snapshot.Unavailability, UnavailabilityWindow{
			Category:    u.RoomType,
			RoomNumbers: u.RoomNumbers,
			Range:       DateRange{From: u.FromDate, To: u.ToDate},
		})
	}

	return snapshot, nil
}

// resolveLineItems maps requested room IDs to their rooms and builds the
// engine line items. Rooms must belong to the property.
func (s *BookingService) resolveLineItems(propertyID uint, items []dto.BookingLineItemRequest) ([]models.Room, []LineItem, error) {
	var rooms []models.Room
	var lineItems []LineItem
	for _, item := range items {
		var room models.Room
		if err := s.db.Where("id = ? AND property_id = ? AND is_deleted = false", item.RoomID, propertyID).First(&room).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, nil, errors.ErrRoomNotFound
			}
			return nil, nil, err
		}
		rooms = append(rooms, room)
		lineItems = append(lineItems, LineItem{
			Category:    room.Category,
			RoomNumbers: item.RoomNumbers,
			Quantity:    item.NoOfRooms,
		})
	}
	return rooms, lineItems, nil
}

func newBookingCode() string {
	return "BK-" + strings.ToUpper(uuid.NewString()[:8])
}

// invalidateSearchCache drops the property's cached availability reports
// after a mutation changes its occupancy. Failures are logged, never
// surfaced; the 5-minute TTL bounds the staleness either way.
func (s *BookingService) invalidateSearchCache(ctx context.Context, propertyID uint) {
	if err := InvalidateBookingSearchCache(ctx, s.rdb, propertyID); err != nil {
		s.logger.Error("failed to invalidate search cache for property %d: %v", propertyID, err)
	}
}

// Create validates a booking request against a fresh snapshot and commits
// it. The property lock is held across validate+commit so two requests for
// the last room of a category cannot both pass.
func (s *BookingService) Create(ctx context.Context, req dto.CreateBookingRequest, checkin, checkout time.Time) (*models.Booking, error) {
	lock, err := AcquirePropertyLock(ctx, s.rdb, req.PropertyID)
	if err != nil {
		return nil, err
	}
	defer lock.Release(ctx)

	r := DateRange{From: checkin, To: checkout}
	snapshot, err := LoadSnapshot(s.db, req.PropertyID, r)
	if err != nil {
		return nil, err
	}

	rooms, lineItems, err := s.resolveLineItems(req.PropertyID, req.LineItems)
	if err != nil {
		return nil, err
	}

	if err := snapshot.Validate(AvailabilityRequest{Range: r, LineItems: lineItems}); err != nil {
		return nil, err
	}

	nights := int(checkout.Sub(checkin).Hours() / 24)
	total := 0.0
	details := make([]models.BookingDetail, 0, len(req.LineItems))
	for i, item := range req.LineItems {
		price := float64(rooms[i].Price * item.NoOfRooms * nights)
		total += price
		details = append(details, models.BookingDetail{
			RoomID:        item.RoomID,
			NoOfRooms:     item.NoOfRooms,
			AssignedRooms: pq.StringArray(item.RoomNumbers),
			NoOfAdults:    item.NoOfAdults,
			NoOfChildren:  item.NoOfChildren,
			Price:         price,
		})
	}
	gst := total * GSTRate

	var userID *uint
	if req.UserID != 0 {
		userID = &req.UserID
	}

	booking := builders.NewBookingBuilder().
		WithCode(newBookingCode()).
		WithProperty(req.PropertyID).
		WithUser(userID).
		WithDates(checkin, checkout).
		WithGuestInfo(req.GuestName, req.GuestPhone, req.GuestEmail).
		WithAmounts(total+gst, gst).
		WithDetails(details).
		Build()

	if err := commands.NewCreateBookingCommand(booking, s.db).Execute(); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Cannot create booking", err)
	}
	s.invalidateSearchCache(ctx, req.PropertyID)

	s.logger.Info("booking %s created for property %d (%s..%s)",
		booking.Code, req.PropertyID, checkin.Format("2006-01-02"), checkout.Format("2006-01-02"))
	return booking, nil
}

// Update revalidates and rewrites a booking's dates and line items. The
// booking's own holds are excluded from the booked count so it never
// conflicts with itself.
func (s *BookingService) Update(ctx context.Context, bookingID uint, req dto.UpdateBookingRequest, checkin, checkout time.Time) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.Preload("Details").Where("id = ? AND is_deleted = false AND cancelled = false", bookingID).First(&booking).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrBookingNotFound
		}
		return nil, err
	}

	lock, err := AcquirePropertyLock(ctx, s.rdb, booking.PropertyID)
	if err != nil {
		return nil, err
	}
	defer lock.Release(ctx)

	r := DateRange{From: checkin, To: checkout}
	snapshot, err := LoadSnapshot(s.db, booking.PropertyID, r)
	if err != nil {
		return nil, err
	}

	rooms, lineItems, err := s.resolveLineItems(booking.PropertyID, req.LineItems)
	if err != nil {
		return nil, err
	}

	if err := snapshot.Validate(AvailabilityRequest{Range: r, LineItems: lineItems, ExcludeBookingID: bookingID}); err != nil {
		return nil, err
	}

	nights := int(checkout.Sub(checkin).Hours() / 24)
	total := 0.0
	details := make([]models.BookingDetail, 0, len(req.LineItems))
	for i, item := range req.LineItems {
		price := float64(rooms[i].Price * item.NoOfRooms * nights)
		total += price
		details = append(details, models.BookingDetail{
			BookingID:     bookingID,
			RoomID:        item.RoomID,
			NoOfRooms:     item.NoOfRooms,
			AssignedRooms: pq.StringArray(item.RoomNumbers),
			NoOfAdults:    item.NoOfAdults,
			NoOfChildren:  item.NoOfChildren,
			Price:         price,
		})
	}
	gst := total * GSTRate

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("booking_id = ?", bookingID).Delete(&models.BookingDetail{}).Error; err != nil {
			return err
		}
		booking.CheckinDate = checkin
		booking.CheckoutDate = checkout
		booking.GuestName = req.GuestName
		booking.GuestEmail = req.GuestEmail
		booking.GuestPhone = req.GuestPhone
		booking.TotalAmount = total + gst
		booking.GSTAmount = gst
		booking.Details = details
		return tx.Save(&booking).Error
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Cannot update booking", err)
	}
	s.invalidateSearchCache(ctx, booking.PropertyID)

	s.logger.Info("booking %s updated (%s..%s)", booking.Code,
		checkin.Format("2006-01-02"), checkout.Format("2006-01-02"))
	return &booking, nil
}

// ExtendCheckout moves a booking's checkout date, revalidating the longer
// stay against current availability.
func (s *BookingService) ExtendCheckout(ctx context.Context, bookingID uint, checkout time.Time) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.Preload("Details.Room").Where("id = ? AND is_deleted = false AND cancelled = false", bookingID).First(&booking).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrBookingNotFound
		}
		return nil, err
	}
	if !checkout.After(booking.CheckinDate) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidDateRange, "Checkout date must be after checkin date", nil)
	}

	lock, err := AcquirePropertyLock(ctx, s.rdb, booking.PropertyID)
	if err != nil {
		return nil, err
	}
	defer lock.Release(ctx)

	r := DateRange{From: booking.CheckinDate, To: checkout}
	snapshot, err := LoadSnapshot(s.db, booking.PropertyID, r)
	if err != nil {
		return nil, err
	}

	var lineItems []LineItem
	for _, d := range booking.Details {
		lineItems = append(lineItems, LineItem{
			Category:    d.Room.Category,
			RoomNumbers: d.AssignedRooms,
			Quantity:    d.NoOfRooms,
		})
	}

	if err := snapshot.Validate(AvailabilityRequest{Range: r, LineItems: lineItems, ExcludeBookingID: bookingID}); err != nil {
		return nil, err
	}

	booking.CheckoutDate = checkout
	if err := commands.NewUpdateBookingCommand(&booking, s.db).Execute(); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Cannot extend booking", err)
	}
	s.invalidateSearchCache(ctx, booking.PropertyID)

	s.logger.Info("booking %s checkout extended to %s", booking.Code, checkout.Format("2006-01-02"))
	return &booking, nil
}

// Cancel soft-cancels a booking; its holds stop counting immediately.
func (s *BookingService) Cancel(ctx context.Context, bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.Where("id = ? AND is_deleted = false", bookingID).First(&booking).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrBookingNotFound
		}
		return nil, err
	}
	if booking.Cancelled {
		return nil, errors.ErrBookingCancelled
	}

	booking.Cancelled = true
	if err := commands.NewUpdateBookingCommand(&booking, s.db).Execute(); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Cannot cancel booking", err)
	}
	s.invalidateSearchCache(ctx, booking.PropertyID)

	s.logger.Info("booking %s cancelled", booking.Code)
	return &booking, nil
}

// ValidateUnavailability runs the same conflict validation for a proposed
// room-withdrawal declaration, excluding nothing.
func (s *BookingService) ValidateUnavailability(propertyID uint, roomType string, roomNumbers []string, from, to time.Time) error {
	r := DateRange{From: from, To: to}
	snapshot, err := LoadSnapshot(s.db, propertyID, r)
	if err != nil {
		return err
	}
	return snapshot.Validate(AvailabilityRequest{
		Range: r,
		LineItems: []LineItem{
			{Category: roomType, RoomNumbers: roomNumbers, Quantity: len(roomNumbers)},
		},
	})
}
