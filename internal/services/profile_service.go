package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tetteam4/swimming-project/internal/database"
	"github.com/tetteam4/swimming-project/internal/models"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrInvalidGender   = errors.New("gender must be one of M, F or O")
)

// ProfileUpdateInput carries partial-update fields. Nil pointers leave the
// corresponding column untouched. Identity fields route to the User row,
// everything else to the Profile row.
type ProfileUpdateInput struct {
	// User fields
	FirstName *string
	LastName  *string
	Username  *string
	Email     *string

	// Profile fields
	PhoneNumber  *string
	AboutMe      *string
	Gender       *string
	Country      *string
	City         *string
	State        *string
	Address      *string
	ProfilePhoto *string
}

// GetProfileByUserID loads a user's profile with the owning user attached.
func GetProfileByUserID(userID uint) (models.Profile, error) {
	var profile models.Profile
	err := database.DB.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return profile, ErrProfileNotFound
		}
		return profile, err
	}
	return profile, nil
}

// FindProfiles retrieves a paginated list of profiles with their users.
func FindProfiles(page, limit int) ([]models.Profile, int64, error) {
	var profiles []models.Profile
	var total int64

	if err := database.DB.Model(&models.Profile{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := database.DB.Preload("User").Limit(limit).Offset(offset).Find(&profiles).Error
	if err != nil {
		return nil, 0, err
	}

	return profiles, total, nil
}

// UpdateProfile applies a partial update. The User and Profile writes share
// one transaction so a failure on either side leaves both rows untouched.
func UpdateProfile(userID uint, input ProfileUpdateInput) (models.Profile, error) {
	var profile models.Profile

	if input.Gender != nil && !models.Gender(*input.Gender).Valid() {
		return profile, ErrInvalidGender
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).First(&profile).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProfileNotFound
			}
			return err
		}

		userUpdates := map[string]interface{}{}
		if input.FirstName != nil {
			userUpdates["first_name"] = *input.FirstName
		}
		if input.LastName != nil {
			userUpdates["last_name"] = *input.LastName
		}
		if input.Username != nil {
			userUpdates["username"] = *input.Username
		}
		if input.Email != nil {
			userUpdates["email"] = *input.Email
		}
		if len(userUpdates) > 0 {
			if err := tx.Model(&models.User{}).Where("id = ?", userID).Updates(userUpdates).Error; err != nil {
				return err
			}
		}

		profileUpdates := map[string]interface{}{}
		if input.PhoneNumber != nil {
			profileUpdates["phone_number"] = *input.PhoneNumber
		}
		if input.AboutMe != nil {
			profileUpdates["about_me"] = *input.AboutMe
		}
		if input.Gender != nil {
			profileUpdates["gender"] = *input.Gender
		}
		if input.Country != nil {
			profileUpdates["country"] = *input.Country
		}
		if input.City != nil {
			profileUpdates["city"] = *input.City
		}
		if input.State != nil {
			profileUpdates["state"] = *input.State
		}
		if input.Address != nil {
			profileUpdates["address"] = *input.Address
		}
		if input.ProfilePhoto != nil {
			profileUpdates["profile_photo"] = *input.ProfilePhoto
		}
		if len(profileUpdates) > 0 {
			if err := tx.Model(&profile).Updates(profileUpdates).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return profile, err
	}

	InvalidateUserCache(userID)
	return GetProfileByUserID(userID)
}
