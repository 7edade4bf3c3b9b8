package controllers

import (
	stderrors "errors"
	"strconv"
	"time"

	"stayhub/config"
	"stayhub/dto"
	"stayhub/errors"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"
	"stayhub/services/logger"
	"stayhub/validator"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type UnavailabilityController struct {
	db      *gorm.DB
	rdb     *redis.Client
	service *services.BookingService
}

func NewUnavailabilityController(db *gorm.DB, redisCli *redis.Client) *UnavailabilityController {
	service := services.NewBookingService(services.BookingServiceOptions{
		DB:     db,
		Redis:  redisCli,
		Logger: logger.NewDefaultLogger(logger.InfoLevel),
	})
	return &UnavailabilityController{
		db:      db,
		rdb:     redisCli,
		service: service,
	}
}

// sameRoomSet reports whether two declarations withdraw the same rooms,
// ignoring order and repeats.
func sameRoomSet(a, b []string) bool {
	setA := make(map[string]bool, len(a))
	for _, room := range a {
		setA[room] = true
	}
	setB := make(map[string]bool, len(b))
	for _, room := range b {
		setB[room] = true
	}
	if len(setA) != len(setB) {
		return false
	}
	for room := range setA {
		if !setB[room] {
			return false
		}
	}
	return true
}

// hasDuplicateDeclaration scans declarations already matched on
// property, category and date range for one withdrawing the same rooms.
// On updates the record being rewritten is excluded.
func hasDuplicateDeclaration(existing []models.RoomUnavailability, roomNumbers []string, excludeID uint) bool {
	for _, u := range existing {
		if excludeID != 0 && u.ID == excludeID {
			continue
		}
		if sameRoomSet(u.RoomNumbers, roomNumbers) {
			return true
		}
	}
	return false
}

func (ctl *UnavailabilityController) findMatchingDeclarations(propertyID uint, roomType string, from, to time.Time) ([]models.RoomUnavailability, error) {
	var existing []models.RoomUnavailability
	err := ctl.db.
		Where("property_id = ? AND room_type = ? AND from_date = ? AND to_date = ? AND is_deleted = false",
			propertyID, roomType, from, to).
		Find(&existing).Error
	return existing, err
}

func unavailabilityToResponse(u models.RoomUnavailability) dto.UnavailabilityResponse {
	return dto.UnavailabilityResponse{
		ID:          u.ID,
		PropertyID:  u.PropertyID,
		RoomType:    u.RoomType,
		RoomNumbers: u.RoomNumbers,
		FromDate:    u.FromDate.Format("2006-01-02"),
		ToDate:      u.ToDate.Format("2006-01-02"),
		CreatedBy:   u.CreatedBy,
		CreatedAt:   u.CreatedAt,
	}
}

// CreateUnavailability withdraws room numbers from sale for a date range.
// The declaration goes through the same conflict validation as a booking,
// so rooms already spoken for cannot be withdrawn.
func (ctl *UnavailabilityController) CreateUnavailability(c *gin.Context) {
	var input dto.CreateUnavailabilityRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := validator.ValidateUnavailabilityRequest(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	from, to, err := validator.ParseDateRange(input.FromDate, input.ToDate)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	existing, err := ctl.findMatchingDeclarations(input.PropertyID, input.RoomType, from, to)
	if err != nil {
		response.ServerError(c)
		return
	}
	if hasDuplicateDeclaration(existing, input.RoomNumbers, 0) {
		response.BadRequest(c, "This unavailability has already been declared")
		return
	}

	if err := ctl.service.ValidateUnavailability(input.PropertyID, input.RoomType, input.RoomNumbers, from, to); err != nil {
		if availErr := errors.GetAvailabilityError(err); availErr != nil {
			response.BadRequest(c, availErr.Error())
			return
		}
		if stderrors.Is(err, errors.ErrPropertyLocked) {
			response.Conflict(c, "Another booking for this property is in progress. Please retry.")
			return
		}
		response.ServerError(c)
		return
	}

	unavailability := models.RoomUnavailability{
		PropertyID:  input.PropertyID,
		RoomType:    input.RoomType,
		RoomNumbers: pq.StringArray(input.RoomNumbers),
		FromDate:    from,
		ToDate:      to,
		CreatedBy:   c.GetUint("userID"),
	}

	if err := ctl.db.Create(&unavailability).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidateBookingSearchCache(config.Ctx, ctl.rdb, unavailability.PropertyID)

	response.Success(c, unavailabilityToResponse(unavailability))
}

func (ctl *UnavailabilityController) GetUnavailabilities(c *gin.Context) {
	tx := ctl.db.Where("is_deleted = false")
	if propertyID := c.Query("propertyId"); propertyID != "" {
		tx = tx.Where("property_id = ?", propertyID)
	}

	var unavailabilities []models.RoomUnavailability
	if err := tx.Order("from_date").Find(&unavailabilities).Error; err != nil {
		response.ServerError(c)
		return
	}

	result := make([]dto.UnavailabilityResponse, 0, len(unavailabilities))
	for _, u := range unavailabilities {
		result = append(result, unavailabilityToResponse(u))
	}

	response.SuccessWithTotal(c, result, len(result))
}

// UpdateUnavailability revalidates the new window against current
// bookings before rewriting the record.
func (ctl *UnavailabilityController) UpdateUnavailability(c *gin.Context) {
	var input dto.UpdateUnavailabilityRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var unavailability models.RoomUnavailability
	if err := ctl.db.Where("id = ? AND is_deleted = false", input.ID).First(&unavailability).Error; err != nil {
		response.NotFound(c)
		return
	}

	from, to, err := validator.ParseDateRange(input.FromDate, input.ToDate)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	existing, err := ctl.findMatchingDeclarations(input.PropertyID, input.RoomType, from, to)
	if err != nil {
		response.ServerError(c)
		return
	}
	if hasDuplicateDeclaration(existing, input.RoomNumbers, unavailability.ID) {
		response.BadRequest(c, "This unavailability has already been declared")
		return
	}

	if err := ctl.service.ValidateUnavailability(input.PropertyID, input.RoomType, input.RoomNumbers, from, to); err != nil {
		if availErr := errors.GetAvailabilityError(err); availErr != nil {
			response.BadRequest(c, availErr.Error())
			return
		}
		response.ServerError(c)
		return
	}

	unavailability.RoomType = input.RoomType
	unavailability.RoomNumbers = pq.StringArray(input.RoomNumbers)
	unavailability.FromDate = from
	unavailability.ToDate = to

	if err := ctl.db.Save(&unavailability).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidateBookingSearchCache(config.Ctx, ctl.rdb, unavailability.PropertyID)

	response.Success(c, unavailabilityToResponse(unavailability))
}

func (ctl *UnavailabilityController) DeleteUnavailability(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid unavailability id")
		return
	}

	var unavailability models.RoomUnavailability
	if err := ctl.db.Where("id = ? AND is_deleted = false", id).First(&unavailability).Error; err != nil {
		response.NotFound(c)
		return
	}

	unavailability.IsDeleted = true
	if err := ctl.db.Save(&unavailability).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidateBookingSearchCache(config.Ctx, ctl.rdb, unavailability.PropertyID)

	response.Success(c, nil)
}
