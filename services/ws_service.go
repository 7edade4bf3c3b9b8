package services

import (
	"encoding/json"
	"log"

	"github.com/olahol/melody"
)

// BookingEvent is pushed to connected dashboards whenever occupancy
// changes.
type BookingEvent struct {
	Event       string `json:"event"`
	BookingCode string `json:"bookingCode"`
	PropertyID  uint   `json:"propertyId"`
	Checkin     string `json:"checkin"`
	Checkout    string `json:"checkout"`
}

// BroadcastBookingEvent publishes a booking lifecycle event to all
// websocket sessions. Failures are logged, never surfaced to the caller.
func BroadcastBookingEvent(m *melody.Melody, event BookingEvent) {
	if m == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("cannot marshal booking event: %v", err)
		return
	}
	if err := m.Broadcast(payload); err != nil {
		log.Printf("cannot broadcast booking event: %v", err)
	}
}
