package models

import (
	"time"

	"github.com/lib/pq"
)

// RoomUnavailability withdraws explicit room numbers of one category from
// inventory for a date range, independent of guest bookings.
type RoomUnavailability struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	PropertyID  uint           `json:"propertyId" gorm:"index"`
	RoomType    string         `json:"roomType"`
	RoomNumbers pq.StringArray `json:"roomNumbers" gorm:"type:text[]"`
	FromDate    time.Time      `json:"fromDate" gorm:"type:date;index"`
	ToDate      time.Time      `json:"toDate" gorm:"type:date;index"`
	IsDeleted   bool           `json:"isDeleted" gorm:"default:false"`
	CreatedBy   uint           `json:"createdBy"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	Property    Property       `json:"-" gorm:"foreignKey:PropertyID"`
}
