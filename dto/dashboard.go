package dto

// DashboardTotals compares today's activity against yesterday's.
type DashboardTotals struct {
	TodayBookingCount     int64   `json:"todayBookingCount"`
	YesterdayBookingCount int64   `json:"yesterdayBookingCount"`
	TodayGuestCount       int64   `json:"todayGuestCount"`
	YesterdayGuestCount   int64   `json:"yesterdayGuestCount"`
	TodayRevenue          float64 `json:"todayRevenue"`
	YesterdayRevenue      float64 `json:"yesterdayRevenue"`
	CurrentMonthOccupied  int64   `json:"currentMonthOccupied"`
	LastMonthOccupied     int64   `json:"lastMonthOccupied"`
}

// MonthlyRevenue is one month's booking revenue for the year chart.
type MonthlyRevenue struct {
	Month   int     `json:"month"`
	Revenue float64 `json:"revenue"`
}

// TodayBooking is one row of the today's-arrivals dashboard list.
type TodayBooking struct {
	BookingID     uint   `json:"bookingId"`
	Code          string `json:"code"`
	GuestName     string `json:"guestName"`
	CheckinDate   string `json:"checkinDate"`
	CheckoutDate  string `json:"checkoutDate"`
	PaymentStatus string `json:"paymentStatus"`
}
