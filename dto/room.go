package dto

import "time"

type CreateRoomRequest struct {
	PropertyID          uint     `json:"propertyId" binding:"required"`
	Category            string   `json:"category" binding:"required"`
	RoomNumbers         []string `json:"roomNumbers" binding:"required"`
	Price               int      `json:"price" binding:"required"`
	Accommodates        int      `json:"accommodates"`
	ChildrenAccommodate int      `json:"childrenAccommodate"`
	Description         string   `json:"description"`
}

type UpdateRoomRequest struct {
	ID uint `json:"id" binding:"required"`
	CreateRoomRequest
}

type RoomResponse struct {
	ID                  uint      `json:"id"`
	PropertyID          uint      `json:"propertyId"`
	Category            string    `json:"category"`
	RoomNumbers         []string  `json:"roomNumbers"`
	TotalRooms          int       `json:"totalRooms"`
	Price               int       `json:"price"`
	Accommodates        int       `json:"accommodates"`
	ChildrenAccommodate int       `json:"childrenAccommodate"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// AvailableRoomNumbers is the per-category free room-number listing used
// when assigning physical rooms to a booking at check-in.
type AvailableRoomNumbers struct {
	Category    string   `json:"category"`
	RoomNumbers []string `json:"roomNumbers"`
}
