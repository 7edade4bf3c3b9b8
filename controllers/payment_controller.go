package controllers

import (
	"strconv"

	"stayhub/config"
	"stayhub/constants"
	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type PaymentController struct {
	db     *gorm.DB
	rdb    *redis.Client
	melody *melody.Melody
}

func NewPaymentController(db *gorm.DB, redisCli *redis.Client, m *melody.Melody) *PaymentController {
	return &PaymentController{
		db:     db,
		rdb:    redisCli,
		melody: m,
	}
}

func transactionToResponse(t models.PaymentTransaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:        t.ID,
		BookingID: t.BookingID,
		Amount:    t.Amount,
		Status:    t.Status,
		Method:    t.Method,
		Reference: t.Reference,
		CreatedAt: t.CreatedAt,
	}
}

// CreateTransaction records a payment outcome. A successful payment moves
// the booking out of Draft, which is the moment its holds start counting
// toward occupancy.
func (ctl *PaymentController) CreateTransaction(c *gin.Context) {
	var input dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if input.Status != constants.TransactionSuccess && input.Status != constants.TransactionFailure {
		response.BadRequest(c, "Invalid transaction status")
		return
	}

	var booking models.Booking
	if err := ctl.db.Where("id = ? AND is_deleted = false AND cancelled = false", input.BookingID).First(&booking).Error; err != nil {
		response.NotFound(c)
		return
	}

	transaction := models.PaymentTransaction{
		BookingID: input.BookingID,
		Amount:    input.Amount,
		Status:    input.Status,
		Method:    input.Method,
		Reference: input.Reference,
	}

	err := ctl.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&transaction).Error; err != nil {
			return err
		}
		if input.Status != constants.TransactionSuccess {
			return nil
		}

		booking.PaidAmount += input.Amount
		if booking.PaidAmount >= booking.TotalAmount {
			booking.PaymentStatus = constants.PaymentStatusPaid
		} else {
			booking.PaymentStatus = constants.PaymentStatusPartial
		}
		return tx.Save(&booking).Error
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	if input.Status == constants.TransactionSuccess {
		// the booking just started holding rooms; cached reports are stale
		services.InvalidateBookingSearchCache(config.Ctx, ctl.rdb, booking.PropertyID)
		services.BroadcastBookingEvent(ctl.melody, services.BookingEvent{
			Event:       "booking_confirmed",
			BookingCode: booking.Code,
			PropertyID:  booking.PropertyID,
			Checkin:     booking.CheckinDate.Format("2006-01-02"),
			Checkout:    booking.CheckoutDate.Format("2006-01-02"),
		})
	}

	response.Success(c, transactionToResponse(transaction))
}

func (ctl *PaymentController) GetTransactions(c *gin.Context) {
	tx := ctl.db.Model(&models.PaymentTransaction{})
	if bookingID := c.Query("bookingId"); bookingID != "" {
		tx = tx.Where("booking_id = ?", bookingID)
	}

	var transactions []models.PaymentTransaction
	if err := tx.Order("created_at desc").Find(&transactions).Error; err != nil {
		response.ServerError(c)
		return
	}

	result := make([]dto.TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		result = append(result, transactionToResponse(t))
	}

	response.SuccessWithTotal(c, result, len(result))
}

// UpdatePaymentStatus sets a booking's payment status directly, for
// offline payments taken at the desk.
func (ctl *PaymentController) UpdatePaymentStatus(c *gin.Context) {
	var input dto.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if !constants.IsValidPaymentStatus(input.PaymentStatus) {
		response.BadRequest(c, "Invalid payment status")
		return
	}

	var booking models.Booking
	if err := ctl.db.Where("id = ? AND is_deleted = false", input.ID).First(&booking).Error; err != nil {
		response.NotFound(c)
		return
	}

	wasDraft := booking.PaymentStatus == constants.PaymentStatusDraft

	booking.PaymentStatus = input.PaymentStatus
	if input.PaidAmount > 0 {
		booking.PaidAmount = input.PaidAmount
	}

	if err := ctl.db.Save(&booking).Error; err != nil {
		response.ServerError(c)
		return
	}

	if wasDraft && booking.PaymentStatus != constants.PaymentStatusDraft {
		services.InvalidateBookingSearchCache(config.Ctx, ctl.rdb, booking.PropertyID)
		services.BroadcastBookingEvent(ctl.melody, services.BookingEvent{
			Event:       "booking_confirmed",
			BookingCode: booking.Code,
			PropertyID:  booking.PropertyID,
			Checkin:     booking.CheckinDate.Format("2006-01-02"),
			Checkout:    booking.CheckoutDate.Format("2006-01-02"),
		})
	}

	response.Success(c, bookingToResponse(&booking))
}

func (ctl *PaymentController) GetTransactionDetail(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid transaction id")
		return
	}

	var transaction models.PaymentTransaction
	if err := ctl.db.First(&transaction, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, transactionToResponse(transaction))
}
