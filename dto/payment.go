package dto

import "time"

type CreateTransactionRequest struct {
	BookingID uint    `json:"bookingId" binding:"required"`
	Amount    float64 `json:"amount" binding:"required"`
	Status    string  `json:"status" binding:"required"`
	Method    string  `json:"method" binding:"required"`
	Reference string  `json:"reference"`
}

type TransactionResponse struct {
	ID        uint      `json:"id"`
	BookingID uint      `json:"bookingId"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	Method    string    `json:"method"`
	Reference string    `json:"reference"`
	CreatedAt time.Time `json:"createdAt"`
}
