package jobs

import (
	"log"
	"time"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// AvailabilityAuditor reconciles declared capacity against holds and
// withdrawals.
type AvailabilityAuditor interface {
	AuditAvailability(m *melody.Melody) error
}

var availabilityAuditor AvailabilityAuditor

// SetAvailabilityAuditor installs the auditor implementation.
func SetAvailabilityAuditor(auditor AvailabilityAuditor) {
	availabilityAuditor = auditor
}

// InitCronJobs registers the scheduled jobs and starts the scheduler.
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// nightly availability audit at 02:00
	_, err := c.AddFunc("0 2 * * *", func() {
		now := time.Now()
		log.Printf("Running availability audit at: %v", now)
		if availabilityAuditor == nil {
			log.Printf("Error: AvailabilityAuditor is not set")
			return
		}
		if err := availabilityAuditor.AuditAvailability(m); err != nil {
			log.Printf("Error running availability audit: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
