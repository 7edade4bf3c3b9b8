package controllers

import (
	"log"
	"strconv"
	"time"

	"stayhub/config"
	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"

	"github.com/gin-gonic/gin"
)

// GetBookingSearch reports, per category, how many rooms of a property
// are free for the requested range, together with the special deals
// overlapping it. The report counts whole categories; it never assigns
// room numbers.
func GetBookingSearch(c *gin.Context) {
	propertyIDStr := c.Query("propertyId")
	propertyID, err := strconv.ParseUint(propertyIDStr, 10, 32)
	if err != nil {
		response.BadRequest(c, "propertyId is required")
		return
	}

	fromStr := c.Query("fromDate")
	toStr := c.Query("toDate")
	from, parseErr := time.Parse("2006-01-02", fromStr)
	if parseErr != nil {
		response.BadRequest(c, "Invalid from date, expected YYYY-MM-DD")
		return
	}
	to, parseErr := time.Parse("2006-01-02", toStr)
	if parseErr != nil {
		response.BadRequest(c, "Invalid to date, expected YYYY-MM-DD")
		return
	}
	if to.Before(from) {
		response.BadRequest(c, "To date should not be before from date")
		return
	}

	cacheKey := services.BookingSearchCacheKey(uint(propertyID), fromStr, toStr)
	rdb, redisErr := config.ConnectRedis()

	var result dto.BookingSearchResponse
	if redisErr == nil {
		if err := services.GetFromRedis(config.Ctx, rdb, cacheKey, &result); err == nil && len(result.RoomDetails) > 0 {
			response.Success(c, result)
			return
		}
	}

	dateRange := services.DateRange{From: from, To: to}
	snapshot, err := services.LoadSnapshot(config.DB, uint(propertyID), dateRange)
	if err != nil {
		response.NotFound(c)
		return
	}

	report := snapshot.Report(dateRange)

	// pair report rows with their room ids
	var rooms []models.Room
	if err := config.DB.Where("property_id = ? AND is_deleted = false", propertyID).Find(&rooms).Error; err != nil {
		response.ServerError(c)
		return
	}
	roomIDByCategory := make(map[string]uint, len(rooms))
	for _, room := range rooms {
		roomIDByCategory[room.Category] = room.ID
	}

	roomDetails := make([]dto.RoomAvailability, 0, len(report))
	for _, row := range report {
		roomDetails = append(roomDetails, dto.RoomAvailability{
			ID:             roomIDByCategory[row.Category],
			Category:       row.Category,
			AvailableCount: row.AvailableCount,
		})
	}

	var deals []models.SpecialDeal
	err = config.DB.Where("property_id = ? AND is_deleted = false", propertyID).
		Where("(from_date >= ? AND to_date <= ?) OR (from_date <= ? AND to_date >= ?) OR (from_date <= ? AND to_date >= ?)",
			from, to, from, from, to, to).
		Find(&deals).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	dealsResponse := make([]dto.SpecialDealResponse, 0, len(deals))
	for _, deal := range deals {
		dealsResponse = append(dealsResponse, dto.SpecialDealResponse{
			ID:                 deal.ID,
			Title:              deal.Title,
			Description:        deal.Description,
			DiscountPercentage: deal.DiscountPercentage,
			FromDate:           deal.FromDate.Format("2006-01-02"),
			ToDate:             deal.ToDate.Format("2006-01-02"),
		})
	}

	result = dto.BookingSearchResponse{
		SpecialDeals: dealsResponse,
		RoomDetails:  roomDetails,
	}

	if redisErr == nil {
		if err := services.SetToRedis(config.Ctx, rdb, cacheKey, result, 5*time.Minute); err != nil {
			log.Printf("Error caching booking search result: %v", err)
		}
	}

	response.Success(c, result)
}
