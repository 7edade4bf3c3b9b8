package controllers

import (
	"time"

	"stayhub/config"
	"stayhub/constants"
	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"
	"stayhub/services/logger"

	"github.com/gin-gonic/gin"
)

// GetDashboardTotals compares today's bookings, guests and revenue
// against yesterday's, plus occupied-night counts for this month and
// last.
func GetDashboardTotals(c *gin.Context) {
	now := time.Now().UTC()
	today := now.Truncate(24 * time.Hour)
	yesterday := today.AddDate(0, 0, -1)

	var totals dto.DashboardTotals

	countBookings := func(dayStart, dayEnd time.Time) int64 {
		var n int64
		config.DB.Model(&models.Booking{}).
			Where("is_deleted = false AND cancelled = false AND payment_status <> ?", constants.PaymentStatusDraft).
			Where("created_at >= ? AND created_at < ?", dayStart, dayEnd).
			Count(&n)
		return n
	}
	totals.TodayBookingCount = countBookings(today, today.AddDate(0, 0, 1))
	totals.YesterdayBookingCount = countBookings(yesterday, today)

	countGuests := func(dayStart, dayEnd time.Time) int64 {
		var n int64
		config.DB.Model(&models.BookingDetail{}).
			Select("coalesce(sum(booking_details.no_of_adults + booking_details.no_of_children), 0)").
			Joins("JOIN bookings ON bookings.id = booking_details.booking_id").
			Where("bookings.is_deleted = false AND bookings.cancelled = false AND bookings.payment_status <> ?", constants.PaymentStatusDraft).
			Where("bookings.checkin_date >= ? AND bookings.checkin_date < ?", dayStart, dayEnd).
			Scan(&n)
		return n
	}
	totals.TodayGuestCount = countGuests(today, today.AddDate(0, 0, 1))
	totals.YesterdayGuestCount = countGuests(yesterday, today)

	sumRevenue := func(dayStart, dayEnd time.Time) float64 {
		var revenue float64
		config.DB.Model(&models.Booking{}).
			Select("coalesce(sum(paid_amount), 0)").
			Where("is_deleted = false AND cancelled = false").
			Where("updated_at >= ? AND updated_at < ?", dayStart, dayEnd).
			Scan(&revenue)
		return revenue
	}
	totals.TodayRevenue = sumRevenue(today, today.AddDate(0, 0, 1))
	totals.YesterdayRevenue = sumRevenue(yesterday, today)

	countOccupied := func(monthStart, monthEnd time.Time) int64 {
		var n int64
		config.DB.Model(&models.BookingDetail{}).
			Select("coalesce(sum(booking_details.no_of_rooms), 0)").
			Joins("JOIN bookings ON bookings.id = booking_details.booking_id").
			Where("bookings.is_deleted = false AND bookings.cancelled = false AND bookings.payment_status <> ?", constants.PaymentStatusDraft).
			Where("(bookings.checkin_date >= ? AND bookings.checkout_date <= ?) OR (bookings.checkin_date <= ? AND bookings.checkout_date >= ?) OR (bookings.checkin_date <= ? AND bookings.checkout_date >= ?)",
				monthStart, monthEnd, monthStart, monthStart, monthEnd, monthEnd).
			Scan(&n)
		return n
	}
	thisMonthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	lastMonthStart := thisMonthStart.AddDate(0, -1, 0)
	totals.CurrentMonthOccupied = countOccupied(thisMonthStart, thisMonthStart.AddDate(0, 1, -1))
	totals.LastMonthOccupied = countOccupied(lastMonthStart, thisMonthStart.AddDate(0, 0, -1))

	response.Success(c, totals)
}

// GetMonthlyRevenue is the year revenue chart: paid amounts grouped by
// booking creation month.
func GetMonthlyRevenue(c *gin.Context) {
	year := time.Now().UTC().Year()
	if yearStr := c.Query("year"); yearStr != "" {
		parsed, err := time.Parse("2006", yearStr)
		if err != nil {
			response.BadRequest(c, "Invalid year, expected YYYY")
			return
		}
		year = parsed.Year()
	}

	yearStart := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := yearStart.AddDate(1, 0, 0)

	var rows []struct {
		Month   int
		Revenue float64
	}
	err := config.DB.Model(&models.Booking{}).
		Select("extract(month from created_at)::int as month, coalesce(sum(paid_amount), 0) as revenue").
		Where("is_deleted = false AND cancelled = false").
		Where("created_at >= ? AND created_at < ?", yearStart, yearEnd).
		Group("month").
		Order("month").
		Scan(&rows).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	revenueByMonth := make(map[int]float64, len(rows))
	for _, row := range rows {
		revenueByMonth[row.Month] = row.Revenue
	}

	result := make([]dto.MonthlyRevenue, 0, 12)
	for month := 1; month <= 12; month++ {
		result = append(result, dto.MonthlyRevenue{
			Month:   month,
			Revenue: revenueByMonth[month],
		})
	}

	response.Success(c, result)
}

// GetTodayArrivals lists bookings checking in today.
func GetTodayArrivals(c *gin.Context) {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	tx := config.DB.Model(&models.Booking{}).
		Where("is_deleted = false AND cancelled = false AND payment_status <> ?", constants.PaymentStatusDraft).
		Where("checkin_date = ?", today)
	if propertyID := c.Query("propertyId"); propertyID != "" {
		tx = tx.Where("property_id = ?", propertyID)
	}

	var bookings []models.Booking
	if err := tx.Order("created_at").Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	result := make([]dto.TodayBooking, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, dto.TodayBooking{
			BookingID:     b.ID,
			Code:          b.Code,
			GuestName:     b.GuestName,
			CheckinDate:   b.CheckinDate.Format("2006-01-02"),
			CheckoutDate:  b.CheckoutDate.Format("2006-01-02"),
			PaymentStatus: b.PaymentStatus,
		})
	}

	response.SuccessWithTotal(c, result, len(result))
}

// RunAvailabilityAudit triggers the reconciliation audit on demand and
// returns the overcommitted category-days it found.
func RunAvailabilityAudit(c *gin.Context) {
	service := services.NewReconcileService(services.ReconcileServiceOptions{
		DB:     config.DB,
		Logger: logger.NewDefaultLogger(logger.InfoLevel),
	}, nil)

	issues, err := service.Audit(c.Request.Context())
	if err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, issues, len(issues))
}
