package models

import (
	"fmt"
	"time"
)

// Rating is a guest's review of a property: an overall star score plus
// per-aspect sub-scores. Soft-deleted ratings drop out of listings and
// averages.
type Rating struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	PropertyID  uint          `json:"propertyId" gorm:"index"`
	UserID      uint          `json:"userId"`
	Stars       int           `json:"stars"`
	Comments    string        `json:"comments"`
	Location    float64       `json:"location"`
	Comfort     float64       `json:"comfort"`
	Personnel   float64       `json:"personnel"`
	Cleanliness float64       `json:"cleanliness"`
	GoodOffer   float64       `json:"goodOffer"`
	Service     float64       `json:"service"`
	IsDeleted   bool          `json:"isDeleted" gorm:"default:false"`
	CreatedAt   time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
	User        User          `json:"user" gorm:"foreignKey:UserID"`
	Replies     []RatingReply `json:"replies" gorm:"foreignKey:RatingID"`
}

// RatingReply is the property side of the conversation, usually the
// owner answering a review.
type RatingReply struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	RatingID  uint      `json:"ratingId" gorm:"index"`
	UserID    uint      `json:"userId"`
	Message   string    `json:"message"`
	IsDeleted bool      `json:"isDeleted" gorm:"default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	User      User      `json:"user" gorm:"foreignKey:UserID"`
}

func (r *Rating) ValidateStars() error {
	if r.Stars < 1 || r.Stars > 5 {
		return fmt.Errorf("rating only accepts the values 1 to 5, got %d", r.Stars)
	}
	return nil
}
