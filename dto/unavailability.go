package dto

import "time"

type CreateUnavailabilityRequest struct {
	PropertyID  uint     `json:"propertyId" binding:"required"`
	RoomType    string   `json:"roomType" binding:"required"`
	RoomNumbers []string `json:"roomNumbers" binding:"required"`
	FromDate    string   `json:"fromDate" binding:"required"`
	ToDate      string   `json:"toDate" binding:"required"`
}

type UpdateUnavailabilityRequest struct {
	ID uint `json:"id" binding:"required"`
	CreateUnavailabilityRequest
}

type UnavailabilityResponse struct {
	ID          uint      `json:"id"`
	PropertyID  uint      `json:"propertyId"`
	RoomType    string    `json:"roomType"`
	RoomNumbers []string  `json:"roomNumbers"`
	FromDate    string    `json:"fromDate"`
	ToDate      string    `json:"toDate"`
	CreatedBy   uint      `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}
