package models

import "time"

// Referral records one signup attributed to an existing user's referral
// code.
type Referral struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	ReferredByID uint      `json:"referredById" gorm:"index"`
	ReferredID   uint      `json:"referredId"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	Referred     User      `json:"referred" gorm:"foreignKey:ReferredID"`
}

// ReferralPointStat is one entry in a user's referral-point ledger. Each
// credited referral appends a row carrying the balance before and after.
type ReferralPointStat struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UserID        uint      `json:"userId" gorm:"index"`
	PreviousPoint float64   `json:"previousPoint"`
	AddedPoint    float64   `json:"addedPoint"`
	CurrentPoint  float64   `json:"currentPoint"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
