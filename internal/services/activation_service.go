package services

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tetteam4/swimming-project/internal/database"
	"github.com/tetteam4/swimming-project/internal/models"
	"github.com/tetteam4/swimming-project/internal/utils"
	"github.com/tetteam4/swimming-project/pkg/logger"
)

// ErrInvalidActivationLink is the single failure surfaced for any broken
// activation attempt; callers never learn whether the id, the token or the
// account state was at fault.
var ErrInvalidActivationLink = errors.New("invalid activation link")

// ActivateUser verifies a state-bound activation token and flips the
// account active. The token covers is_active, so a consumed link can never
// verify again.
func ActivateUser(uidb64, token string) (*models.User, error) {
	id, err := utils.DecodeUID(uidb64)
	if err != nil {
		return nil, ErrInvalidActivationLink
	}

	var user models.User
	if err := database.DB.Where("uuid = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidActivationLink
		}
		return nil, err
	}

	if !utils.CheckActivationToken(&user, token) {
		return nil, ErrInvalidActivationLink
	}

	if err := database.DB.Model(&user).Update("is_active", true).Error; err != nil {
		return nil, err
	}
	InvalidateUserCache(user.ID)

	logger.Log.Info("account activated", zap.Uint("user_id", user.ID))
	return &user, nil
}
