package controllers

import (
	"strconv"

	"stayhub/config"
	"stayhub/constants"
	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"
	"stayhub/validator"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

func roomToResponse(room models.Room) dto.RoomResponse {
	return dto.RoomResponse{
		ID:                  room.ID,
		PropertyID:          room.PropertyID,
		Category:            room.Category,
		RoomNumbers:         room.RoomNumbers,
		TotalRooms:          room.TotalRooms(),
		Price:               room.Price,
		Accommodates:        room.Accommodates,
		ChildrenAccommodate: room.ChildrenAccommodate,
		CreatedAt:           room.CreatedAt,
		UpdatedAt:           room.UpdatedAt,
	}
}

func GetAllRooms(c *gin.Context) {
	propertyID := c.Query("propertyId")

	tx := config.DB.Where("is_deleted = false")
	if propertyID != "" {
		tx = tx.Where("property_id = ?", propertyID)
	}

	var rooms []models.Room
	if err := tx.Find(&rooms).Error; err != nil {
		response.ServerError(c)
		return
	}

	roomsResponse := make([]dto.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		roomsResponse = append(roomsResponse, roomToResponse(room))
	}

	response.SuccessWithTotal(c, roomsResponse, len(roomsResponse))
}

func CreateRoom(c *gin.Context) {
	var input dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	room := models.Room{
		PropertyID:          input.PropertyID,
		Category:            input.Category,
		RoomNumbers:         pq.StringArray(input.RoomNumbers),
		Price:               input.Price,
		Accommodates:        input.Accommodates,
		ChildrenAccommodate: input.ChildrenAccommodate,
		Description:         input.Description,
	}
	if err := room.ValidateCategory(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var property models.Property
	if err := config.DB.Where("id = ? AND is_deleted = false", input.PropertyID).First(&property).Error; err != nil {
		response.NotFound(c)
		return
	}

	// one room row per category within a property
	var existing models.Room
	err := config.DB.Where("property_id = ? AND category = ? AND is_deleted = false", input.PropertyID, input.Category).First(&existing).Error
	if err == nil {
		response.BadRequest(c, "This property already has a "+input.Category+" category")
		return
	}

	if err := config.DB.Create(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, roomToResponse(room))
}

func GetRoomDetail(c *gin.Context) {
	id := c.Param("id")

	var room models.Room
	if err := config.DB.Where("id = ? AND is_deleted = false", id).First(&room).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, roomToResponse(room))
}

func UpdateRoom(c *gin.Context) {
	var input dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var room models.Room
	if err := config.DB.Where("id = ? AND is_deleted = false", input.ID).First(&room).Error; err != nil {
		response.NotFound(c)
		return
	}

	room.Category = input.Category
	room.RoomNumbers = pq.StringArray(input.RoomNumbers)
	room.Price = input.Price
	room.Accommodates = input.Accommodates
	room.ChildrenAccommodate = input.ChildrenAccommodate
	room.Description = input.Description
	if err := room.ValidateCategory(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, roomToResponse(room))
}

func DeleteRoom(c *gin.Context) {
	id := c.Param("id")

	var room models.Room
	if err := config.DB.Where("id = ? AND is_deleted = false", id).First(&room).Error; err != nil {
		response.NotFound(c)
		return
	}

	room.IsDeleted = true
	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

// GetAvailableRoomNumbers lists, per category, the physical room numbers
// that are neither assigned to an overlapping booking nor withdrawn for
// the requested range. Used when assigning rooms at check-in.
func GetAvailableRoomNumbers(c *gin.Context) {
	propertyIDStr := c.Query("propertyId")
	propertyID, err := strconv.ParseUint(propertyIDStr, 10, 32)
	if err != nil {
		response.BadRequest(c, "propertyId is required")
		return
	}

	from, to, err := validator.ParseDateRange(c.Query("fromDate"), c.Query("toDate"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	dateRange := services.DateRange{From: from, To: to}
	snapshot, err := services.LoadSnapshot(config.DB, uint(propertyID), dateRange)
	if err != nil {
		response.NotFound(c)
		return
	}

	// room numbers pinned by overlapping active bookings
	var assignedRows []struct {
		Category      string
		AssignedRooms pq.StringArray `gorm:"type:text[]"`
	}
	err = config.DB.Model(&models.BookingDetail{}).
		Select("rooms.category, booking_details.assigned_rooms").
		Joins("JOIN bookings ON bookings.id = booking_details.booking_id").
		Joins("JOIN rooms ON rooms.id = booking_details.room_id").
		Where("bookings.property_id = ?", propertyID).
		Where("bookings.payment_status <> ?", constants.PaymentStatusDraft).
		Where("bookings.cancelled = false AND bookings.is_deleted = false").
		Where("(bookings.checkin_date >= ? AND bookings.checkout_date <= ?) OR (bookings.checkin_date <= ? AND bookings.checkout_date >= ?) OR (bookings.checkin_date <= ? AND bookings.checkout_date >= ?)",
			from, to, from, from, to, to).
		Scan(&assignedRows).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	taken := make(map[string]map[string]bool)
	for _, row := range assignedRows {
		if taken[row.Category] == nil {
			taken[row.Category] = make(map[string]bool)
		}
		for _, number := range row.AssignedRooms {
			taken[row.Category][number] = true
		}
	}

	result := make([]dto.AvailableRoomNumbers, 0, len(snapshot.Inventory))
	for _, inv := range snapshot.Inventory {
		count := snapshot.Count(inv.Category, dateRange, 0)
		withdrawn := make(map[string]bool, len(count.UnavailableRooms))
		for _, number := range count.UnavailableRooms {
			withdrawn[number] = true
		}

		free := make([]string, 0, len(inv.RoomNumbers))
		for _, number := range inv.RoomNumbers {
			if withdrawn[number] || (taken[inv.Category] != nil && taken[inv.Category][number]) {
				continue
			}
			free = append(free, number)
		}
		result = append(result, dto.AvailableRoomNumbers{
			Category:    inv.Category,
			RoomNumbers: free,
		})
	}

	response.Success(c, result)
}
