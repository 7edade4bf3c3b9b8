package services

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"stayhub/config"
	"stayhub/models"
)

// ReferralBonusPoints is credited to the referrer for each verified
// signup carrying their code.
const ReferralBonusPoints = 100.0

// NewReferralCode issues the shareable code stamped on every account.
func NewReferralCode() string {
	return "RF-" + strings.ToUpper(uuid.NewString()[:8])
}

// nextPointStat appends to a user's point ledger: the new row carries
// the balance before and after the credit. A nil prev starts from zero.
func nextPointStat(prev *models.ReferralPointStat, userID uint, added float64) models.ReferralPointStat {
	previous := 0.0
	if prev != nil {
		previous = prev.CurrentPoint
	}
	return models.ReferralPointStat{
		UserID:        userID,
		PreviousPoint: previous,
		AddedPoint:    added,
		CurrentPoint:  previous + added,
	}
}

// RecordReferral attributes a fresh signup to the owner of code and
// credits them. An unknown code is ignored rather than failing the
// registration.
func RecordReferral(code string, referredID uint) error {
	var referrer models.User
	err := config.DB.Where("referral_code = ?", code).First(&referrer).Error
	if err == gorm.ErrRecordNotFound {
		return nil
	}
	if err != nil {
		return err
	}

	return config.DB.Transaction(func(tx *gorm.DB) error {
		referral := models.Referral{
			ReferredByID: referrer.ID,
			ReferredID:   referredID,
		}
		if err := tx.Create(&referral).Error; err != nil {
			return err
		}

		var prev models.ReferralPointStat
		var prevPtr *models.ReferralPointStat
		err := tx.Where("user_id = ?", referrer.ID).Order("created_at desc").First(&prev).Error
		if err == nil {
			prevPtr = &prev
		} else if err != gorm.ErrRecordNotFound {
			return err
		}

		stat := nextPointStat(prevPtr, referrer.ID, ReferralBonusPoints)
		return tx.Create(&stat).Error
	})
}
