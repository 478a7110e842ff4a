package services

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/tetteam4/swimming-project/config"
	"github.com/tetteam4/swimming-project/internal/database"
	"github.com/tetteam4/swimming-project/internal/mailer"
	"github.com/tetteam4/swimming-project/internal/models"
	"github.com/tetteam4/swimming-project/internal/utils"
	"github.com/tetteam4/swimming-project/pkg/logger"
)

// ErrResetNotFound covers both an unknown user id and a stale or wrong OTP;
// callers get a single generic 404.
var ErrResetNotFound = errors.New("user does not exist or invalid OTP")

// RequestPasswordReset generates a fresh OTP and reset token for the user
// with the given email and dispatches the reset email. A previously pending
// OTP is overwritten, so at most one reset is valid per user at a time.
//
// An unknown email is not an error: the caller always receives the same
// generic response so account existence never leaks.
func RequestPasswordReset(email string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	user, err := FindUserByEmail(email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			logger.Log.Info("password reset requested for unknown email", zap.String("email", email))
			return nil
		}
		return err
	}

	otp, err := utils.GenerateNumericOTP(cfg.OTPLength)
	if err != nil {
		return err
	}

	resetToken, err := utils.GenerateRefreshToken(user.ID)
	if err != nil {
		return err
	}

	user.OTP = otp
	user.ResetToken = resetToken
	if err := database.DB.Save(&user).Error; err != nil {
		return err
	}
	InvalidateUserCache(user.ID)

	link := fmt.Sprintf("%s/create-new-password?otp=%s&uuidb64=%s&reset_token=%s",
		cfg.FrontendURL, otp, utils.EncodeUID(user.UUID), resetToken)

	if err := mailer.SendPasswordResetEmail(&user, link); err != nil {
		return err
	}

	logger.Log.Info("password reset email dispatched", zap.String("email", user.Email))
	return nil
}

// ChangePassword completes the reset flow: the encoded user id and OTP must
// match a pending reset exactly, otherwise nothing is mutated.
func ChangePassword(otp, uuidb64, newPassword string) error {
	id, err := utils.DecodeUID(uuidb64)
	if err != nil {
		return ErrResetNotFound
	}

	var user models.User
	if err := database.DB.Where("uuid = ? AND otp = ? AND otp <> ''", id, otp).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrResetNotFound
		}
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{
		"password":    string(hashedPassword),
		"otp":         "",
		"reset_token": "",
	}
	if err := database.DB.Model(&user).Updates(updates).Error; err != nil {
		return err
	}
	InvalidateUserCache(user.ID)

	logger.Log.Info("password changed via reset flow", zap.Uint("user_id", user.ID))
	return nil
}
