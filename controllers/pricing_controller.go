package controllers

import (
	"strconv"
	"time"

	"stayhub/config"
	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"
	"stayhub/validator"

	"github.com/gin-gonic/gin"
)

func pricingToResponse(p models.RoomPricing) dto.PricingResponse {
	return dto.PricingResponse{
		ID:         p.ID,
		PropertyID: p.PropertyID,
		RoomID:     p.RoomID,
		Category:   p.Room.Category,
		FromDate:   p.FromDate.Format("2006-01-02"),
		ToDate:     p.ToDate.Format("2006-01-02"),
		Price:      p.Price,
	}
}

func CreatePricing(c *gin.Context) {
	var input dto.CreatePricingRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	from, to, err := validator.ParseDateRange(input.FromDate, input.ToDate)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var room models.Room
	if err := config.DB.Where("id = ? AND property_id = ? AND is_deleted = false", input.RoomID, input.PropertyID).First(&room).Error; err != nil {
		response.NotFound(c)
		return
	}

	if input.Price <= 0 {
		response.BadRequest(c, "Price must be positive")
		return
	}

	pricing := models.RoomPricing{
		PropertyID: input.PropertyID,
		RoomID:     input.RoomID,
		FromDate:   from,
		ToDate:     to,
		Price:      input.Price,
		CreatedBy:  c.GetUint("userID"),
	}

	if err := config.DB.Create(&pricing).Error; err != nil {
		response.ServerError(c)
		return
	}

	pricing.Room = room
	response.Success(c, pricingToResponse(pricing))
}

func GetPricings(c *gin.Context) {
	tx := config.DB.Preload("Room").Where("is_deleted = false")
	if propertyID := c.Query("propertyId"); propertyID != "" {
		tx = tx.Where("property_id = ?", propertyID)
	}
	if roomID := c.Query("roomId"); roomID != "" {
		tx = tx.Where("room_id = ?", roomID)
	}

	var pricings []models.RoomPricing
	if err := tx.Order("from_date").Find(&pricings).Error; err != nil {
		response.ServerError(c)
		return
	}

	result := make([]dto.PricingResponse, 0, len(pricings))
	for _, p := range pricings {
		result = append(result, pricingToResponse(p))
	}

	response.SuccessWithTotal(c, result, len(result))
}

func UpdatePricing(c *gin.Context) {
	var input dto.UpdatePricingRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var pricing models.RoomPricing
	if err := config.DB.Preload("Room").Where("id = ? AND is_deleted = false", input.ID).First(&pricing).Error; err != nil {
		response.NotFound(c)
		return
	}

	from, to, err := validator.ParseDateRange(input.FromDate, input.ToDate)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if input.Price <= 0 {
		response.BadRequest(c, "Price must be positive")
		return
	}

	pricing.FromDate = from
	pricing.ToDate = to
	pricing.Price = input.Price

	if err := config.DB.Save(&pricing).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, pricingToResponse(pricing))
}

func DeletePricing(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid pricing id")
		return
	}

	var pricing models.RoomPricing
	if err := config.DB.Where("id = ? AND is_deleted = false", id).First(&pricing).Error; err != nil {
		response.NotFound(c)
		return
	}

	pricing.IsDeleted = true
	if err := config.DB.Save(&pricing).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

// GetMonthCalendar expands a room's nightly price over one month: the
// base price on every day, replaced where a pricing override covers it.
// Later overrides win on overlapping days.
func GetMonthCalendar(c *gin.Context) {
	roomIDStr := c.Query("roomId")
	roomID, err := strconv.ParseUint(roomIDStr, 10, 32)
	if err != nil {
		response.BadRequest(c, "roomId is required")
		return
	}

	monthStr := c.Query("month")
	month, err := time.Parse("2006-01", monthStr)
	if err != nil {
		response.BadRequest(c, "Invalid month, expected YYYY-MM")
		return
	}

	var room models.Room
	if err := config.DB.Where("id = ? AND is_deleted = false", roomID).First(&room).Error; err != nil {
		response.NotFound(c)
		return
	}

	monthStart := month
	monthEnd := month.AddDate(0, 1, -1)

	var overrides []models.RoomPricing
	err = config.DB.Where("room_id = ? AND is_deleted = false", roomID).
		Where("(from_date >= ? AND to_date <= ?) OR (from_date <= ? AND to_date >= ?) OR (from_date <= ? AND to_date >= ?)",
			monthStart, monthEnd, monthStart, monthStart, monthEnd, monthEnd).
		Order("created_at").
		Find(&overrides).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	var calendar []dto.CalendarDayPrice
	for day := monthStart; !day.After(monthEnd); day = day.AddDate(0, 0, 1) {
		price := room.Price
		for _, override := range overrides {
			if !day.Before(override.FromDate) && !day.After(override.ToDate) {
				price = override.Price
			}
		}
		calendar = append(calendar, dto.CalendarDayPrice{
			Date:  day.Format("2006-01-02"),
			Price: price,
		})
	}

	response.Success(c, calendar)
}

func CreateSpecialDeal(c *gin.Context) {
	var input struct {
		PropertyID         uint    `json:"propertyId" binding:"required"`
		Title              string  `json:"title" binding:"required"`
		Description        string  `json:"description"`
		DiscountPercentage float64 `json:"discountPercentage" binding:"required"`
		FromDate           string  `json:"fromDate" binding:"required"`
		ToDate             string  `json:"toDate" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	from, to, err := validator.ParseDateRange(input.FromDate, input.ToDate)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if input.DiscountPercentage <= 0 || input.DiscountPercentage > 100 {
		response.BadRequest(c, "Discount percentage must be between 0 and 100")
		return
	}

	deal := models.SpecialDeal{
		PropertyID:         input.PropertyID,
		Title:              input.Title,
		Description:        input.Description,
		DiscountPercentage: input.DiscountPercentage,
		FromDate:           from,
		ToDate:             to,
	}

	if err := config.DB.Create(&deal).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, deal)
}

func GetSpecialDeals(c *gin.Context) {
	tx := config.DB.Where("is_deleted = false")
	if propertyID := c.Query("propertyId"); propertyID != "" {
		tx = tx.Where("property_id = ?", propertyID)
	}

	var deals []models.SpecialDeal
	if err := tx.Order("from_date").Find(&deals).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, deals, len(deals))
}

func DeleteSpecialDeal(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid deal id")
		return
	}

	var deal models.SpecialDeal
	if err := config.DB.Where("id = ? AND is_deleted = false", id).First(&deal).Error; err != nil {
		response.NotFound(c)
		return
	}

	deal.IsDeleted = true
	if err := config.DB.Save(&deal).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}
