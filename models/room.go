package models

import (
	"fmt"
	"time"

	"github.com/lib/pq"

	"stayhub/constants"
)

// Room is a category of bookable units within a property. RoomNumbers
// enumerates the individual unit identifiers; its length is the category
// capacity.
type Room struct {
	ID                  uint           `json:"id" gorm:"primaryKey"`
	PropertyID          uint           `json:"propertyId" gorm:"index"`
	Category            string         `json:"category"`
	RoomNumbers         pq.StringArray `json:"roomNumbers" gorm:"type:text[]"`
	Price               int            `json:"price"`
	Accommodates        int            `json:"accommodates"`
	ChildrenAccommodate int            `json:"childrenAccommodate"`
	Description         string         `json:"description"`
	IsDeleted           bool           `json:"isDeleted" gorm:"default:false"`
	CreatedAt           time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt           time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	Property            Property       `json:"-" gorm:"foreignKey:PropertyID"`
}

// TotalRooms is the declared capacity of the category.
func (r *Room) TotalRooms() int {
	return len(r.RoomNumbers)
}

// HasRoomNumber reports whether number belongs to the declared set.
func (r *Room) HasRoomNumber(number string) bool {
	for _, n := range r.RoomNumbers {
		if n == number {
			return true
		}
	}
	return false
}

func (r *Room) ValidateCategory() error {
	if !constants.IsValidCategory(r.Category) {
		return fmt.Errorf("invalid category: %s", r.Category)
	}
	return nil
}
