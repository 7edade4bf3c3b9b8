package dto

import "time"

type CreateRatingRequest struct {
	PropertyID  uint    `json:"propertyId" binding:"required"`
	Stars       int     `json:"stars" binding:"required"`
	Comments    string  `json:"comments"`
	Location    float64 `json:"location"`
	Comfort     float64 `json:"comfort"`
	Personnel   float64 `json:"personnel"`
	Cleanliness float64 `json:"cleanliness"`
	GoodOffer   float64 `json:"goodOffer"`
	Service     float64 `json:"service"`
}

type UpdateRatingRequest struct {
	ID          uint    `json:"id" binding:"required"`
	Stars       int     `json:"stars" binding:"required"`
	Comments    string  `json:"comments"`
	Location    float64 `json:"location"`
	Comfort     float64 `json:"comfort"`
	Personnel   float64 `json:"personnel"`
	Cleanliness float64 `json:"cleanliness"`
	GoodOffer   float64 `json:"goodOffer"`
	Service     float64 `json:"service"`
}

type CreateRatingReplyRequest struct {
	RatingID uint   `json:"ratingId" binding:"required"`
	Message  string `json:"message" binding:"required"`
}

type ShortUserResponse struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type RatingReplyResponse struct {
	ID        uint              `json:"id"`
	Message   string            `json:"message"`
	ReplyBy   ShortUserResponse `json:"replyBy"`
	CreatedAt time.Time         `json:"createdAt"`
}

type RatingResponse struct {
	ID          uint                  `json:"id"`
	PropertyID  uint                  `json:"propertyId"`
	Stars       int                   `json:"stars"`
	Comments    string                `json:"comments"`
	Location    float64               `json:"location"`
	Comfort     float64               `json:"comfort"`
	Personnel   float64               `json:"personnel"`
	Cleanliness float64               `json:"cleanliness"`
	GoodOffer   float64               `json:"goodOffer"`
	Service     float64               `json:"service"`
	RatedBy     ShortUserResponse     `json:"ratedBy"`
	Replies     []RatingReplyResponse `json:"replies"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   time.Time             `json:"updatedAt"`
}

// PropertyRatingsResponse is the review list plus its aggregate.
type PropertyRatingsResponse struct {
	Average float64          `json:"average"`
	Count   int              `json:"count"`
	Ratings []RatingResponse `json:"ratings"`
}
