package controllers

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"stayhub/config"
	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

func Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input.Identifier = strings.ToLower(input.Identifier)

	var user models.User
	if err := config.DB.Where("email = ? OR phone_number = ?", input.Identifier, input.Identifier).First(&user).Error; err != nil {
		response.BadRequest(c, "Invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		response.BadRequest(c, "Invalid email or password")
		return
	}

	userInfo := services.UserInfo{
		UserId: user.ID,
		Role:   user.Role,
	}

	accessToken, err := services.GenerateToken(userInfo, 60*24*3)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userResponse := dto.UserLoginResponse{
		UserID:       user.ID,
		UserName:     user.Name,
		UserEmail:    user.Email,
		UserVerified: user.IsVerified,
		UserPhone:    user.PhoneNumber,
		UserRole:     user.Role,
		UpdatedAt:    user.UpdatedAt,
		CreatedAt:    user.CreatedAt,
		UserStatus:   user.Status,
		UserAvatar:   user.Avatar,
	}

	response.Success(c, gin.H{
		"user_info":   userResponse,
		"accessToken": accessToken,
	})
}

func Logout(c *gin.Context) {
	cookies := c.Request.Cookies()
	for _, cookie := range cookies {
		c.SetCookie(cookie.Name, "", -1, "/", "", cookie.Secure, cookie.HttpOnly)
	}

	response.Success(c, nil)
}

func VerifyEmail(c *gin.Context) {
	code := c.Query("token")
	if code == "" {
		response.BadRequest(c, "Verification code is required")
		return
	}

	var user models.User
	result := config.DB.Where("code = ?", code).First(&user)
	if result.Error != nil {
		response.BadRequest(c, "Error verifying email")
		return
	}

	// codes expire after 5 minutes
	if time.Since(user.CodeCreatedAt) > 5*time.Minute {
		response.BadRequest(c, "Verification code has expired. Please request a new one.")
		return
	}

	user.IsVerified = true
	user.Code = ""
	config.DB.Save(&user)

	response.Success(c, user)
}

func RegisterUser(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := services.CreateUser(models.User{
		Email:       input.Email,
		Password:    input.Password,
		PhoneNumber: input.PhoneNumber,
	})
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if input.ReferralCode != "" {
		if err := services.RecordReferral(input.ReferralCode, user.ID); err != nil {
			log.Printf("failed to record referral for user %d: %v", user.ID, err)
		}
	}

	response.Success(c, user)
}

func ResendVerificationCode(c *gin.Context) {
	var input dto.ResendVerificationInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var user models.User
	result := config.DB.Where("email = ? OR phone_number = ?", input.Identifier, input.Identifier).First(&user)
	if result.Error != nil {
		response.BadRequest(c, "User does not exist.")
		return
	}

	err := services.RegenerateVerificationCode(user.ID)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

func ForgetPassword(c *gin.Context) {
	var input dto.ForgetPasswordInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var user models.User
	result := config.DB.Where("email = ? OR phone_number = ?", input.Identifier, input.Identifier).First(&user)
	if result.Error != nil {
		response.BadRequest(c, "User does not exist.")
		return
	}

	err := services.ResetPass(user)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

func ResetPassword(c *gin.Context) {
	var input dto.LoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var user models.User
	result := config.DB.Where("email = ? OR phone_number = ?", input.Identifier, input.Identifier).First(&user)
	if result.Error != nil {
		response.BadRequest(c, "User does not exist.")
		return
	}

	err := services.NewPass(user, input.Password)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

func VerifyCode(c *gin.Context) {
	var input dto.VerifyCodeInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid input")
		return
	}

	var user models.User
	result := config.DB.Where("email = ?", input.Email).First(&user)
	if result.Error != nil {
		response.BadRequest(c, "No user found with this email")
		return
	}

	if user.Code != input.Code {
		response.BadRequest(c, "Invalid verification code")
		return
	}

	if time.Since(user.CodeCreatedAt) > 5*time.Minute {
		response.BadRequest(c, "Verification code has expired. Please request a new one.")
		return
	}

	user.Code = ""
	if !user.IsVerified {
		user.IsVerified = true
	}

	config.DB.Save(&user)

	response.Success(c, nil)
}

// AuthGoogle signs a user in with a Google ID token, provisioning the
// account on first login.
func AuthGoogle(c *gin.Context) {
	var token struct {
		TokenId string `json:"tokenId"`
	}

	if err := c.ShouldBindJSON(&token); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	payload, err := verifyGoogleIDToken(token.TokenId)
	if err != nil {
		response.Unauthorized(c)
		return
	}
	googleUser := dto.GoogleUser{
		Name:          payload.Claims["name"].(string),
		Email:         payload.Claims["email"].(string),
		VerifiedEmail: payload.Claims["email_verified"].(bool),
		Picture:       payload.Claims["picture"].(string),
	}
	if !googleUser.VerifiedEmail {
		response.BadRequest(c, "Email has not been verified")
		return
	}

	var user models.User
	result := config.DB.Where("email = ?", googleUser.Email).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		user, err = services.CreateGoogleUser(googleUser.Name, googleUser.Email, googleUser.Picture)
		if err != nil {
			response.ServerError(c)
			return
		}
	} else if result.Error != nil {
		response.ServerError(c)
		return
	}

	userResponse := dto.UserLoginResponse{
		UserID:       user.ID,
		UserName:     user.Name,
		UserEmail:    user.Email,
		UserVerified: user.IsVerified,
		UserPhone:    user.PhoneNumber,
		UserRole:     user.Role,
		UpdatedAt:    user.UpdatedAt,
		CreatedAt:    user.CreatedAt,
		UserAvatar:   user.Avatar,
	}
	userInfo := services.UserInfo{
		UserId: user.ID,
		Role:   user.Role,
	}

	accessToken, err := services.GenerateToken(userInfo, 15)
	if err != nil {
		log.Println("Error generating access token:", err)
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"user_info":   userResponse,
		"accessToken": accessToken,
	})
}

func verifyGoogleIDToken(tokenId string) (*idtoken.Payload, error) {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	payload, err := idtoken.Validate(context.Background(), tokenId, clientID)
	if err != nil {
		return nil, err
	}
	return payload, nil
}
