package commands

import (
	"gorm.io/gorm"

	"stayhub/models"
)

// BookingCommand is the interface every booking command implements.
type BookingCommand interface {
	Execute() error
}

// CreateBookingCommand persists a new booking with its line items.
type CreateBookingCommand struct {
	booking *models.Booking
	db      *gorm.DB
}

func NewCreateBookingCommand(booking *models.Booking, db *gorm.DB) *CreateBookingCommand {
	return &CreateBookingCommand{
		booking: booking,
		db:      db,
	}
}

func (c *CreateBookingCommand) Execute() error {
	return c.db.Create(c.booking).Error
}

// UpdateBookingCommand saves changes to an existing booking.
type UpdateBookingCommand struct {
	booking *models.Booking
	db      *gorm.DB
}

func NewUpdateBookingCommand(booking *models.Booking, db *gorm.DB) *UpdateBookingCommand {
	return &UpdateBookingCommand{
		booking: booking,
		db:      db,
	}
}

func (c *UpdateBookingCommand) Execute() error {
	return c.db.Save(c.booking).Error
}

// DeleteBookingCommand soft-deletes a booking.
type DeleteBookingCommand struct {
	bookingID uint
	db        *gorm.DB
}

func NewDeleteBookingCommand(bookingID uint, db *gorm.DB) *DeleteBookingCommand {
	return &DeleteBookingCommand{
		bookingID: bookingID,
		db:        db,
	}
}

func (c *DeleteBookingCommand) Execute() error {
	return c.db.Model(&models.Booking{}).Where("id = ?", c.bookingID).Update("is_deleted", true).Error
}
