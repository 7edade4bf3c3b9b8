package controllers

import (
	"strconv"

	"stayhub/config"
	"stayhub/constants"
	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"

	"github.com/gin-gonic/gin"
)

func shortUserResponse(u models.User) dto.ShortUserResponse {
	return dto.ShortUserResponse{
		ID:     u.ID,
		Name:   u.Name,
		Avatar: u.Avatar,
	}
}

func ratingToResponse(r models.Rating) dto.RatingResponse {
	replies := make([]dto.RatingReplyResponse, 0, len(r.Replies))
	for _, reply := range r.Replies {
		if reply.IsDeleted {
			continue
		}
		replies = append(replies, dto.RatingReplyResponse{
			ID:        reply.ID,
			Message:   reply.Message,
			ReplyBy:   shortUserResponse(reply.User),
			CreatedAt: reply.CreatedAt,
		})
	}
	return dto.RatingResponse{
		ID:          r.ID,
		PropertyID:  r.PropertyID,
		Stars:       r.Stars,
		Comments:    r.Comments,
		Location:    r.Location,
		Comfort:     r.Comfort,
		Personnel:   r.Personnel,
		Cleanliness: r.Cleanliness,
		GoodOffer:   r.GoodOffer,
		Service:     r.Service,
		RatedBy:     shortUserResponse(r.User),
		Replies:     replies,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// averageStars ignores soft-deleted ratings; an empty list averages to 0.
func averageStars(ratings []models.Rating) float64 {
	sum, count := 0, 0
	for _, r := range ratings {
		if r.IsDeleted {
			continue
		}
		sum += r.Stars
		count++
	}
	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count)
}

func CreateRating(c *gin.Context) {
	var input dto.CreateRatingRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var property models.Property
	if err := config.DB.Where("id = ? AND is_deleted = false", input.PropertyID).First(&property).Error; err != nil {
		response.NotFound(c)
		return
	}

	rating := models.Rating{
		PropertyID:  input.PropertyID,
		UserID:      c.GetUint("userID"),
		Stars:       input.Stars,
		Comments:    input.Comments,
		Location:    input.Location,
		Comfort:     input.Comfort,
		Personnel:   input.Personnel,
		Cleanliness: input.Cleanliness,
		GoodOffer:   input.GoodOffer,
		Service:     input.Service,
	}
	if err := rating.ValidateStars(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Create(&rating).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, ratingToResponse(rating))
}

// GetPropertyRatings lists a property's reviews with their replies and
// the star average.
func GetPropertyRatings(c *gin.Context) {
	propertyID := c.Query("propertyId")
	if propertyID == "" {
		response.BadRequest(c, "propertyId is required")
		return
	}

	var ratings []models.Rating
	err := config.DB.Preload("User").Preload("Replies.User").
		Where("property_id = ? AND is_deleted = false", propertyID).
		Order("created_at desc").
		Find(&ratings).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	result := make([]dto.RatingResponse, 0, len(ratings))
	for _, r := range ratings {
		result = append(result, ratingToResponse(r))
	}

	response.Success(c, dto.PropertyRatingsResponse{
		Average: averageStars(ratings),
		Count:   len(result),
		Ratings: result,
	})
}

func UpdateRating(c *gin.Context) {
	var input dto.UpdateRatingRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var rating models.Rating
	if err := config.DB.Where("id = ? AND is_deleted = false", input.ID).First(&rating).Error; err != nil {
		response.NotFound(c)
		return
	}

	if rating.UserID != c.GetUint("userID") && c.GetInt("userRole") != constants.RoleAdmin {
		response.Forbidden(c)
		return
	}

	rating.Stars = input.Stars
	rating.Comments = input.Comments
	rating.Location = input.Location
	rating.Comfort = input.Comfort
	rating.Personnel = input.Personnel
	rating.Cleanliness = input.Cleanliness
	rating.GoodOffer = input.GoodOffer
	rating.Service = input.Service
	if err := rating.ValidateStars(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&rating).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, ratingToResponse(rating))
}

func DeleteRating(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid rating id")
		return
	}

	var rating models.Rating
	if err := config.DB.Where("id = ? AND is_deleted = false", id).First(&rating).Error; err != nil {
		response.NotFound(c)
		return
	}

	if rating.UserID != c.GetUint("userID") && c.GetInt("userRole") != constants.RoleAdmin {
		response.Forbidden(c)
		return
	}

	rating.IsDeleted = true
	if err := config.DB.Save(&rating).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

// ReplyToRating lets the property owner (or an admin) answer a review.
func ReplyToRating(c *gin.Context) {
	var input dto.CreateRatingReplyRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var rating models.Rating
	if err := config.DB.Where("id = ? AND is_deleted = false", input.RatingID).First(&rating).Error; err != nil {
		response.NotFound(c)
		return
	}

	currentUserID := c.GetUint("userID")
	if c.GetInt("userRole") == constants.RoleOwner {
		var property models.Property
		if err := config.DB.Where("id = ? AND is_deleted = false", rating.PropertyID).First(&property).Error; err != nil {
			response.NotFound(c)
			return
		}
		if property.UserID != currentUserID {
			response.Forbidden(c)
			return
		}
	}

	reply := models.RatingReply{
		RatingID: input.RatingID,
		UserID:   currentUserID,
		Message:  input.Message,
	}
	if err := config.DB.Create(&reply).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.RatingReplyResponse{
		ID:        reply.ID,
		Message:   reply.Message,
		CreatedAt: reply.CreatedAt,
	})
}

func DeleteRatingReply(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid reply id")
		return
	}

	var reply models.RatingReply
	if err := config.DB.Where("id = ? AND is_deleted = false", id).First(&reply).Error; err != nil {
		response.NotFound(c)
		return
	}

	if reply.UserID != c.GetUint("userID") && c.GetInt("userRole") != constants.RoleAdmin {
		response.Forbidden(c)
		return
	}

	reply.IsDeleted = true
	if err := config.DB.Save(&reply).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}
