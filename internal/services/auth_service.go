package services

import (
	"errors"
	"fmt"
	"strings"

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

var (
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrPasswordMismatch   = errors.New("Passwords must match.")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("user account is disabled")
)

// TokenPair bundles the JWTs issued on login and refresh.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// RegisterUser creates an inactive user plus its profile and dispatches the
// activation email. The user must follow the emailed link before logging in.
func RegisterUser(email, firstName, lastName, username, password1, password2 string) (*models.User, error) {
	if password1 != password2 {
		return nil, ErrPasswordMismatch
	}

	user, err := models.NewUser(email, firstName, lastName, username)
	if err != nil {
		return nil, err
	}

	var existing models.User
	result := database.DB.Where("email = ?", strings.ToLower(email)).First(&existing)
	if result.Error == nil {
		return nil, ErrUserAlreadyExists
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password1), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.Password = string(hashedPassword)
	user.Profile = &models.Profile{}

	if err := database.DB.Create(user).Error; err != nil {
		return nil, err
	}

	if err := sendActivationEmail(user); err != nil {
		return nil, err
	}

	return user, nil
}

func sendActivationEmail(user *models.User) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	token, err := utils.MakeActivationToken(user)
	if err != nil {
		return err
	}

	link := fmt.Sprintf("%s/api/v1/auth/activate/%s/%s/", cfg.SiteURL, utils.EncodeUID(user.UUID), token)
	if err := mailer.SendActivationEmail(user, link); err != nil {
		return err
	}

	logger.Log.Info("activation email dispatched", zap.String("email", user.Email))
	return nil
}

// LoginUser checks credentials and issues an access/refresh token pair.
// Inactive accounts cannot log in until activated.
func LoginUser(email, password string) (*TokenPair, *models.User, error) {
	user, err := FindUserByEmail(strings.ToLower(email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, nil, ErrAccountDisabled
	}

	access, err := utils.GenerateToken(user.ID, user.IsStaff, user.IsSuperuser)
	if err != nil {
		return nil, nil, err
	}
	refresh, err := utils.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, nil, err
	}

	return &TokenPair{Access: access, Refresh: refresh}, &user, nil
}

// RefreshAccessToken exchanges a valid refresh token for a new access token.
func RefreshAccessToken(refreshToken string) (string, error) {
	userID, err := utils.ValidateRefreshToken(refreshToken)
	if err != nil {
		return "", err
	}

	user, err := FindUserByID(userID)
	if err != nil {
		return "", err
	}
	if !user.IsActive {
		return "", ErrAccountDisabled
	}

	return utils.GenerateToken(user.ID, user.IsStaff, user.IsSuperuser)
}
