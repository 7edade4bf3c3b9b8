package controllers

import (
	stderrors "errors"
	"strconv"

	"stayhub/constants"
	"stayhub/dto"
	"stayhub/errors"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"
	"stayhub/services/logger"
	"stayhub/validator"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type BookingController struct {
	db      *gorm.DB
	service *services.BookingService
	melody  *melody.Melody
}

func NewBookingController(db *gorm.DB, redisCli *redis.Client, m *melody.Melody) *BookingController {
	service := services.NewBookingService(services.BookingServiceOptions{
		DB:     db,
		Redis:  redisCli,
		Logger: logger.NewDefaultLogger(logger.InfoLevel),
	})
	return &BookingController{
		db:      db,
		service: service,
		melody:  m,
	}
}

func bookingToResponse(b *models.Booking) dto.BookingResponse {
	lineItems := make([]dto.BookingLineItemResponse, 0, len(b.Details))
	for _, d := range b.Details {
		lineItems = append(lineItems, dto.BookingLineItemResponse{
			RoomID:        d.RoomID,
			Category:      d.Room.Category,
			NoOfRooms:     d.NoOfRooms,
			AssignedRooms: d.AssignedRooms,
			NoOfAdults:    d.NoOfAdults,
			NoOfChildren:  d.NoOfChildren,
			Price:         d.Price,
		})
	}
	return dto.BookingResponse{
		ID:            b.ID,
		Code:          b.Code,
		PropertyID:    b.PropertyID,
		PropertyName:  b.Property.Name,
		CheckinDate:   b.CheckinDate.Format("2006-01-02"),
		CheckoutDate:  b.CheckoutDate.Format("2006-01-02"),
		PaymentStatus: b.PaymentStatus,
		PaidAmount:    b.PaidAmount,
		TotalAmount:   b.TotalAmount,
		GSTAmount:     b.GSTAmount,
		GuestName:     b.GuestName,
		GuestEmail:    b.GuestEmail,
		GuestPhone:    b.GuestPhone,
		Cancelled:     b.Cancelled,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
		LineItems:     lineItems,
	}
}

// respondBookingError maps engine and lock errors onto HTTP statuses.
func respondBookingError(c *gin.Context, err error) {
	if availErr := errors.GetAvailabilityError(err); availErr != nil {
		response.BadRequest(c, availErr.Error())
		return
	}
	if stderrors.Is(err, errors.ErrPropertyLocked) {
		response.Conflict(c, "Another booking for this property is in progress. Please retry.")
		return
	}
	if stderrors.Is(err, errors.ErrBookingNotFound) || stderrors.Is(err, errors.ErrRoomNotFound) {
		response.NotFound(c)
		return
	}
	if appErr, ok := err.(*errors.AppError); ok {
		response.BadRequest(c, appErr.Message)
		return
	}
	response.ServerError(c)
}

func (ctl *BookingController) CreateBooking(c *gin.Context) {
	var input dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := validator.ValidateBookingRequest(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	checkin, checkout, err := validator.ParseBookingDates(input.CheckinDate, input.CheckoutDate)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	booking, err := ctl.service.Create(c.Request.Context(), input, checkin, checkout)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	services.BroadcastBookingEvent(ctl.melody, services.BookingEvent{
		Event:       "booking_created",
		BookingCode: booking.Code,
		PropertyID:  booking.PropertyID,
		Checkin:     booking.CheckinDate.Format("2006-01-02"),
		Checkout:    booking.CheckoutDate.Format("2006-01-02"),
	})

	response.Success(c, bookingToResponse(booking))
}

// GetBookings lists bookings, scoped to the owner's properties for
// owners and to the caller's own bookings for guests.
func (ctl *BookingController) GetBookings(c *gin.Context) {
	currentUserID := c.GetUint("userID")
	currentUserRole := c.GetInt("userRole")

	tx := ctl.db.Model(&models.Booking{}).
		Preload("Details.Room").
		Preload("Property").
		Where("bookings.is_deleted = false")

	switch currentUserRole {
	case constants.RoleOwner:
		tx = tx.Joins("JOIN properties ON properties.id = bookings.property_id").
			Where("properties.user_id = ?", currentUserID)
	case constants.RoleAdmin:
		// unrestricted
	default:
		tx = tx.Where("bookings.user_id = ?", currentUserID)
	}

	if propertyID := c.Query("propertyId"); propertyID != "" {
		tx = tx.Where("bookings.property_id = ?", propertyID)
	}
	if status := c.Query("paymentStatus"); status != "" {
		tx = tx.Where("bookings.payment_status = ?", status)
	}

	page := 0
	limit := 10
	if pageStr := c.Query("page"); pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	var total int64
	tx.Count(&total)

	var bookings []models.Booking
	if err := tx.Order("bookings.created_at desc").Offset(page * limit).Limit(limit).Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	bookingsResponse := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		bookingsResponse = append(bookingsResponse, bookingToResponse(&bookings[i]))
	}

	response.SuccessWithPagination(c, bookingsResponse, page, limit, int(total))
}

func (ctl *BookingController) GetBookingDetail(c *gin.Context) {
	id := c.Param("id")

	var booking models.Booking
	if err := ctl.db.Preload("Details.Room").Preload("Property").
		Where("id = ? AND is_deleted = false", id).First(&booking).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, bookingToResponse(&booking))
}

func (ctl *BookingController) UpdateBooking(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid booking id")
		return
	}

	var input dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	checkin, checkout, err := validator.ParseBookingDates(input.CheckinDate, input.CheckoutDate)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	booking, err := ctl.service.Update(c.Request.Context(), uint(id), input, checkin, checkout)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	services.BroadcastBookingEvent(ctl.melody, services.BookingEvent{
		Event:       "booking_updated",
		BookingCode: booking.Code,
		PropertyID:  booking.PropertyID,
		Checkin:     booking.CheckinDate.Format("2006-01-02"),
		Checkout:    booking.CheckoutDate.Format("2006-01-02"),
	})

	response.Success(c, bookingToResponse(booking))
}

func (ctl *BookingController) ExtendCheckout(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid booking id")
		return
	}

	var input dto.ExtendCheckoutRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	checkout, err := validator.ParseDate(input.CheckoutDate)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	booking, err := ctl.service.ExtendCheckout(c.Request.Context(), uint(id), checkout)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	services.BroadcastBookingEvent(ctl.melody, services.BookingEvent{
		Event:       "booking_extended",
		BookingCode: booking.Code,
		PropertyID:  booking.PropertyID,
		Checkin:     booking.CheckinDate.Format("2006-01-02"),
		Checkout:    booking.CheckoutDate.Format("2006-01-02"),
	})

	response.Success(c, bookingToResponse(booking))
}

func (ctl *BookingController) CancelBooking(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid booking id")
		return
	}

	booking, err := ctl.service.Cancel(c.Request.Context(), uint(id))
	if err != nil {
		if stderrors.Is(err, errors.ErrBookingCancelled) {
			response.BadRequest(c, "Booking is already cancelled")
			return
		}
		respondBookingError(c, err)
		return
	}

	services.BroadcastBookingEvent(ctl.melody, services.BookingEvent{
		Event:       "booking_cancelled",
		BookingCode: booking.Code,
		PropertyID:  booking.PropertyID,
		Checkin:     booking.CheckinDate.Format("2006-01-02"),
		Checkout:    booking.CheckoutDate.Format("2006-01-02"),
	})

	response.Success(c, bookingToResponse(booking))
}

func (ctl *BookingController) DeleteBooking(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid booking id")
		return
	}

	var booking models.Booking
	if err := ctl.db.Where("id = ? AND is_deleted = false", id).First(&booking).Error; err != nil {
		response.NotFound(c)
		return
	}

	booking.IsDeleted = true
	if err := ctl.db.Save(&booking).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}
