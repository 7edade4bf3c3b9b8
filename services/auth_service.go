package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"net/smtp"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"stayhub/config"
	"stayhub/errors"
	"stayhub/models"
	"stayhub/validator"
)

func generateVerificationCode() (string, error) {
	code := ""

	for i := 0; i < 6; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		code += n.String()
	}

	return code, nil
}

// sendVerificationEmail mails the one-time verification code. SMTP
// settings come from the environment; with no SMTP host configured the
// code is only persisted and the mail is skipped.
func sendVerificationEmail(email string, code string) error {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return nil
	}
	port := os.Getenv("SMTP_PORT")
	from := os.Getenv("SMTP_FROM")
	password := os.Getenv("SMTP_PASSWORD")

	to := []string{email}
	subject := "Subject: Your one-time verification code\n"
	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<body>
			<p>Hello %s,</p>
			<p>Your one-time verification code is: <strong>%s</strong></p>
			<p>If you did not request this code you can safely ignore this email.</p>
		</body>
		</html>
	`, email, code)

	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" + subject + "\n" + body)

	auth := smtp.PlainAuth("", from, password, host)
	return smtp.SendMail(host+":"+port, auth, from, to, msg)
}

// CreateUser validates, hashes the password, stores the user and sends a
// verification code.
func CreateUser(user models.User) (*models.User, error) {
	if err := validator.ValidateUser(&user); err != nil {
		return nil, err
	}

	var existing models.User
	err := config.DB.Where("email = ? OR phone_number = ?", user.Email, user.PhoneNumber).First(&existing).Error
	if err == nil {
		return nil, errors.NewAppError(errors.ErrCodeUserExists, "A user with this email or phone already exists", nil)
	}
	if err != gorm.ErrRecordNotFound {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Cannot look up user", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.Password = string(hashed)

	code, err := generateVerificationCode()
	if err != nil {
		return nil, err
	}
	user.Code = code
	user.CodeCreatedAt = time.Now()
	user.ReferralCode = NewReferralCode()

	if err := config.DB.Create(&user).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Cannot create user", err)
	}

	if err := sendVerificationEmail(user.Email, code); err != nil {
		// account exists either way; the code can be resent
		fmt.Printf("failed to send verification email: %v\n", err)
	}

	return &user, nil
}

// RegenerateVerificationCode issues a fresh code for an existing user.
func RegenerateVerificationCode(userID uint) error {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return errors.ErrUserNotFound
	}

	code, err := generateVerificationCode()
	if err != nil {
		return err
	}

	user.Code = code
	user.CodeCreatedAt = time.Now()
	if err := config.DB.Save(&user).Error; err != nil {
		return err
	}

	return sendVerificationEmail(user.Email, code)
}

// ResetPass sends a password reset code to the user.
func ResetPass(user models.User) error {
	code, err := generateVerificationCode()
	if err != nil {
		return err
	}

	user.Code = code
	user.CodeCreatedAt = time.Now()
	if err := config.DB.Save(&user).Error; err != nil {
		return err
	}

	return sendVerificationEmail(user.Email, code)
}

// NewPass replaces the user's password with a fresh bcrypt hash.
func NewPass(user models.User, newPassword string) error {
	if len(newPassword) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Password must be at least 6 characters", nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.Password = string(hashed)
	return config.DB.Save(&user).Error
}

// CreateGoogleUser provisions an account for a verified Google identity.
// The random password is never used for login.
func CreateGoogleUser(name, email, picture string) (models.User, error) {
	randomPassword, err := generateVerificationCode()
	if err != nil {
		return models.User{}, err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(randomPassword), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Name:         name,
		Email:        email,
		Avatar:       picture,
		Password:     string(hashed),
		IsVerified:   true,
		ReferralCode: NewReferralCode(),
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return models.User{}, errors.NewAppError(errors.ErrCodeDBError, "Cannot create user", err)
	}
	return user, nil
}
