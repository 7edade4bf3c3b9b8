package services

import (
	"strings"
	"testing"

	"stayhub/models"
)

func TestNewReferralCode(t *testing.T) {
	code := NewReferralCode()
	if !strings.HasPrefix(code, "RF-") {
		t.Errorf("code %q missing RF- prefix", code)
	}
	if len(code) != len("RF-")+8 {
		t.Errorf("code %q has wrong length", code)
	}
	if code == NewReferralCode() {
		t.Error("two codes in a row should not collide")
	}
}

func TestNextPointStat(t *testing.T) {
	t.Run("first credit starts from zero", func(t *testing.T) {
		stat := nextPointStat(nil, 7, ReferralBonusPoints)
		if stat.PreviousPoint != 0 {
			t.Errorf("PreviousPoint = %v, want 0", stat.PreviousPoint)
		}
		if stat.CurrentPoint != ReferralBonusPoints {
			t.Errorf("CurrentPoint = %v, want %v", stat.CurrentPoint, ReferralBonusPoints)
		}
		if stat.UserID != 7 {
			t.Errorf("UserID = %d, want 7", stat.UserID)
		}
	})

	t.Run("later credits chain from the last balance", func(t *testing.T) {
		prev := &models.ReferralPointStat{UserID: 7, CurrentPoint: 250}
		stat := nextPointStat(prev, 7, ReferralBonusPoints)
		if stat.PreviousPoint != 250 {
			t.Errorf("PreviousPoint = %v, want 250", stat.PreviousPoint)
		}
		if stat.CurrentPoint != 250+ReferralBonusPoints {
			t.Errorf("CurrentPoint = %v, want %v", stat.CurrentPoint, 250+ReferralBonusPoints)
		}
	})
}
