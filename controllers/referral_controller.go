package controllers

import (
	"stayhub/config"
	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"

	"github.com/gin-gonic/gin"
)

// GetReferrals lists the signups attributed to the current user's code.
func GetReferrals(c *gin.Context) {
	currentUserID := c.GetUint("userID")

	var referrals []models.Referral
	err := config.DB.Preload("Referred").
		Where("referred_by_id = ?", currentUserID).
		Order("created_at desc").
		Find(&referrals).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	result := make([]dto.ReferralResponse, 0, len(referrals))
	for _, r := range referrals {
		result = append(result, dto.ReferralResponse{
			ID:        r.ID,
			Referred:  shortUserResponse(r.Referred),
			CreatedAt: r.CreatedAt,
		})
	}

	response.SuccessWithTotal(c, result, len(result))
}

// GetReferralPointStats returns the current user's point ledger, newest
// first; the first row carries the current balance.
func GetReferralPointStats(c *gin.Context) {
	currentUserID := c.GetUint("userID")

	var stats []models.ReferralPointStat
	err := config.DB.
		Where("user_id = ?", currentUserID).
		Order("created_at desc").
		Find(&stats).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	result := make([]dto.ReferralPointStatResponse, 0, len(stats))
	for _, s := range stats {
		result = append(result, dto.ReferralPointStatResponse{
			ID:            s.ID,
			PreviousPoint: s.PreviousPoint,
			AddedPoint:    s.AddedPoint,
			CurrentPoint:  s.CurrentPoint,
			CreatedAt:     s.CreatedAt,
		})
	}

	response.SuccessWithTotal(c, result, len(result))
}
