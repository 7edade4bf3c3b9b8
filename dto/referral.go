package dto

import "time"

type ReferralResponse struct {
	ID        uint              `json:"id"`
	Referred  ShortUserResponse `json:"referred"`
	CreatedAt time.Time         `json:"createdAt"`
}

type ReferralPointStatResponse struct {
	ID            uint      `json:"id"`
	PreviousPoint float64   `json:"previousPoint"`
	AddedPoint    float64   `json:"addedPoint"`
	CurrentPoint  float64   `json:"currentPoint"`
	CreatedAt     time.Time `json:"createdAt"`
}
