package controllers

import (
	"strconv"

	"stayhub/config"
	"stayhub/constants"
	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"
	"stayhub/validator"

	"github.com/gin-gonic/gin"
)

func packageToResponse(p models.Package) dto.PackageResponse {
	return dto.PackageResponse{
		ID:          p.ID,
		PropertyID:  p.PropertyID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Inclusions:  p.Inclusions,
		CreatedAt:   p.CreatedAt,
	}
}

func packageBookingToResponse(b models.PackageBooking) dto.PackageBookingResponse {
	return dto.PackageBookingResponse{
		ID:            b.ID,
		PackageID:     b.PackageID,
		PackageName:   b.Package.Name,
		FromDate:      b.FromDate.Format("2006-01-02"),
		ToDate:        b.ToDate.Format("2006-01-02"),
		NoOfPeople:    b.NoOfPeople,
		PaymentStatus: b.PaymentStatus,
		TotalAmount:   b.TotalAmount,
		PaidAmount:    b.PaidAmount,
		Cancelled:     b.Cancelled,
		CreatedAt:     b.CreatedAt,
	}
}

func CreatePackage(c *gin.Context) {
	var input dto.CreatePackageRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var property models.Property
	if err := config.DB.Where("id = ? AND is_deleted = false", input.PropertyID).First(&property).Error; err != nil {
		response.NotFound(c)
		return
	}

	pkg := models.Package{
		PropertyID:  input.PropertyID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Inclusions:  input.Inclusions,
		Img:         input.Img,
	}

	if err := config.DB.Create(&pkg).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, packageToResponse(pkg))
}

func GetPackages(c *gin.Context) {
	tx := config.DB.Where("is_deleted = false")
	if propertyID := c.Query("propertyId"); propertyID != "" {
		tx = tx.Where("property_id = ?", propertyID)
	}

	var packages []models.Package
	if err := tx.Find(&packages).Error; err != nil {
		response.ServerError(c)
		return
	}

	result := make([]dto.PackageResponse, 0, len(packages))
	for _, pkg := range packages {
		result = append(result, packageToResponse(pkg))
	}

	response.SuccessWithTotal(c, result, len(result))
}

func GetPackageDetail(c *gin.Context) {
	id := c.Param("id")

	var pkg models.Package
	if err := config.DB.Where("id = ? AND is_deleted = false", id).First(&pkg).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, packageToResponse(pkg))
}

func UpdatePackage(c *gin.Context) {
	var input dto.UpdatePackageRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var pkg models.Package
	if err := config.DB.Where("id = ? AND is_deleted = false", input.ID).First(&pkg).Error; err != nil {
		response.NotFound(c)
		return
	}

	pkg.Name = input.Name
	pkg.Description = input.Description
	pkg.Price = input.Price
	pkg.Inclusions = input.Inclusions
	pkg.Img = input.Img

	if err := config.DB.Save(&pkg).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, packageToResponse(pkg))
}

func DeletePackage(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid package id")
		return
	}

	var pkg models.Package
	if err := config.DB.Where("id = ? AND is_deleted = false", id).First(&pkg).Error; err != nil {
		response.NotFound(c)
		return
	}

	pkg.IsDeleted = true
	if err := config.DB.Save(&pkg).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

// CreatePackageBooking books a package. Packages are priced per person
// and do not hold room inventory, so no availability validation runs.
func CreatePackageBooking(c *gin.Context) {
	var input dto.CreatePackageBookingRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	from, to, err := validator.ParseDateRange(input.FromDate, input.ToDate)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if input.NoOfPeople <= 0 {
		response.BadRequest(c, "Number of people must be positive")
		return
	}

	var pkg models.Package
	if err := config.DB.Where("id = ? AND is_deleted = false", input.PackageID).First(&pkg).Error; err != nil {
		response.NotFound(c)
		return
	}

	var userID *uint
	if input.UserID != 0 {
		userID = &input.UserID
	}

	booking := models.PackageBooking{
		PackageID:   input.PackageID,
		UserID:      userID,
		FromDate:    from,
		ToDate:      to,
		NoOfPeople:  input.NoOfPeople,
		TotalAmount: pkg.Price * float64(input.NoOfPeople),
		GuestName:   input.GuestName,
		GuestEmail:  input.GuestEmail,
		GuestPhone:  input.GuestPhone,
	}

	if err := config.DB.Create(&booking).Error; err != nil {
		response.ServerError(c)
		return
	}

	booking.Package = pkg
	response.Success(c, packageBookingToResponse(booking))
}

func GetPackageBookings(c *gin.Context) {
	tx := config.DB.Preload("Package").Where("is_deleted = false")
	if packageID := c.Query("packageId"); packageID != "" {
		tx = tx.Where("package_id = ?", packageID)
	}

	var bookings []models.PackageBooking
	if err := tx.Order("created_at desc").Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	result := make([]dto.PackageBookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, packageBookingToResponse(b))
	}

	response.SuccessWithTotal(c, result, len(result))
}

func CancelPackageBooking(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid package booking id")
		return
	}

	var booking models.PackageBooking
	if err := config.DB.Preload("Package").Where("id = ? AND is_deleted = false", id).First(&booking).Error; err != nil {
		response.NotFound(c)
		return
	}
	if booking.Cancelled {
		response.BadRequest(c, "Package booking is already cancelled")
		return
	}

	booking.Cancelled = true
	if err := config.DB.Save(&booking).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, packageBookingToResponse(booking))
}

// UpdatePackageBookingPayment moves a package booking along the payment
// lifecycle.
func UpdatePackageBookingPayment(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid package booking id")
		return
	}

	var input struct {
		PaymentStatus string  `json:"paymentStatus" binding:"required"`
		PaidAmount    float64 `json:"paidAmount"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if !constants.IsValidPaymentStatus(input.PaymentStatus) {
		response.BadRequest(c, "Invalid payment status")
		return
	}

	var booking models.PackageBooking
	if err := config.DB.Preload("Package").Where("id = ? AND is_deleted = false", id).First(&booking).Error; err != nil {
		response.NotFound(c)
		return
	}

	booking.PaymentStatus = input.PaymentStatus
	if input.PaidAmount > 0 {
		booking.PaidAmount = input.PaidAmount
	}

	if err := config.DB.Save(&booking).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, packageBookingToResponse(booking))
}
