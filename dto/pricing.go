package dto

type CreatePricingRequest struct {
	PropertyID uint   `json:"propertyId" binding:"required"`
	RoomID     uint   `json:"roomId" binding:"required"`
	FromDate   string `json:"fromDate" binding:"required"`
	ToDate     string `json:"toDate" binding:"required"`
	Price      int    `json:"price" binding:"required"`
}

type UpdatePricingRequest struct {
	ID uint `json:"id" binding:"required"`
	CreatePricingRequest
}

type PricingResponse struct {
	ID         uint   `json:"id"`
	PropertyID uint   `json:"propertyId"`
	RoomID     uint   `json:"roomId"`
	Category   string `json:"category"`
	FromDate   string `json:"fromDate"`
	ToDate     string `json:"toDate"`
	Price      int    `json:"price"`
}

// CalendarDayPrice is one day of the month price calendar: the room's base
// price unless a pricing override covers the day.
type CalendarDayPrice struct {
	Date  string `json:"date"`
	Price int    `json:"price"`
}
