package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/olahol/melody"
	"gorm.io/gorm"

	"stayhub/models"
	"stayhub/services/logger"
)

const (
	// AuditHorizonDays is how far ahead the nightly audit scans.
	AuditHorizonDays = 60
	DefaultTimezone  = "America/Toronto"
)

// OccupancyIssue is one category-day where holds plus withdrawn rooms
// exceed declared capacity.
type OccupancyIssue struct {
	PropertyID  uint      `json:"propertyId"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
	TotalRooms  int       `json:"totalRooms"`
	BookedCount int       `json:"bookedCount"`
	Withdrawn   int       `json:"withdrawn"`
	Deficit     int       `json:"deficit"`
}

type ReconcileService struct {
	db     *gorm.DB
	logger logger.Logger
	melody *melody.Melody
}

type ReconcileServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewReconcileService(opts ReconcileServiceOptions, m *melody.Melody) *ReconcileService {
	return &ReconcileService{
		db:     opts.DB,
		logger: opts.Logger,
		melody: m,
	}
}

// auditProperty walks every category-day in the horizon and records the
// days where the capacity invariant no longer holds.
func (s *ReconcileService) auditProperty(propertyID uint, from, to time.Time) ([]OccupancyIssue, error) {
	snapshot, err := LoadSnapshot(s.db, propertyID, DateRange{From: from, To: to})
	if err != nil {
		return nil, err
	}

	var issues []OccupancyIssue
	for _, inv := range snapshot.Inventory {
		for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
			count := snapshot.Count(inv.Category, DateRange{From: day, To: day}, 0)
			deficit := count.BookedCount + len(count.UnavailableRooms) - count.TotalRooms
			if deficit <= 0 {
				continue
			}
			issues = append(issues, OccupancyIssue{
				PropertyID:  propertyID,
				Category:    inv.Category,
				Date:        day,
				TotalRooms:  count.TotalRooms,
				BookedCount: count.BookedCount,
				Withdrawn:   len(count.UnavailableRooms),
				Deficit:     deficit,
			})
		}
	}
	return issues, nil
}

// Audit rescans every property and reports category-days that are
// overcommitted. Bookings that got through before a withdrawal was
// declared show up here.
func (s *ReconcileService) Audit(ctx context.Context) ([]OccupancyIssue, error) {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone: %w", err)
	}
	now := time.Now().In(loc)
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, AuditHorizonDays)

	var propertyIDs []uint
	if err := s.db.WithContext(ctx).Model(&models.Property{}).
		Where("is_deleted = false").Pluck("id", &propertyIDs).Error; err != nil {
		return nil, err
	}

	var all []OccupancyIssue
	for _, id := range propertyIDs {
		issues, err := s.auditProperty(id, from, to)
		if err != nil {
			s.logger.Error("audit failed for property %d: %v", id, err)
			continue
		}
		for _, issue := range issues {
			s.logger.Error("property %d %s overcommitted on %s: %d booked + %d withdrawn > %d total",
				issue.PropertyID, issue.Category, issue.Date.Format("2006-01-02"),
				issue.BookedCount, issue.Withdrawn, issue.TotalRooms)
		}
		all = append(all, issues...)
	}

	if len(all) == 0 {
		s.logger.Info("availability audit clean across %d properties", len(propertyIDs))
		return nil, nil
	}

	s.notify(all)
	return all, nil
}

// notify broadcasts the audit summary to connected operator dashboards.
func (s *ReconcileService) notify(issues []OccupancyIssue) {
	if s.melody == nil {
		return
	}
	payload, err := json.Marshal(map[string]interface{}{
		"event":  "availability_audit",
		"issues": issues,
	})
	if err != nil {
		s.logger.Error("cannot marshal audit payload: %v", err)
		return
	}
	if err := s.melody.Broadcast(payload); err != nil {
		s.logger.Error("cannot broadcast audit payload: %v", err)
	}
}

// ReconcileServiceAdapter bridges the service to the cron package without
// an import cycle.
type ReconcileServiceAdapter struct {
	service *ReconcileService
}

func NewReconcileServiceAdapter(service *ReconcileService) *ReconcileServiceAdapter {
	return &ReconcileServiceAdapter{service: service}
}

func (a *ReconcileServiceAdapter) AuditAvailability(m *melody.Melody) error {
	a.service.melody = m
	_, err := a.service.Audit(context.Background())
	return err
}
