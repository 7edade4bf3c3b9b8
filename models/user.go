package models

import (
	"time"

	"github.com/lib/pq"
)

type User struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
	Name          string        `gorm:"default:New User" json:"name"`
	Email         string        `gorm:"unique" json:"email"`
	Password      string        `json:"-"`
	IsVerified    bool          `gorm:"default:false" json:"is_verified"`
	Code          string        `json:"-"`
	CodeCreatedAt time.Time     `gorm:"autoCreateTime" json:"codeCreatedAt"`
	PhoneNumber   string        `gorm:"unique;type:varchar(15);not null" json:"phoneNumber"`
	Avatar        string        `json:"avatar"`
	Role          int           `gorm:"default:0" json:"role"`
	ReferralCode  string        `gorm:"uniqueIndex" json:"referralCode"`
	Status        int           `gorm:"default:0" json:"status"`
	PropertyIDs   pq.Int64Array `json:"propertyIds" gorm:"type:integer[]"`
	Properties    []Property    `json:"properties,omitempty" gorm:"foreignKey:UserID"`
}
