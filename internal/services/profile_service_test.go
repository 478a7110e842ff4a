package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tetteam4/swimming-project/internal/models"
	"github.com/tetteam4/swimming-project/internal/services"
)

func TestUpdateProfileRouting(t *testing.T) {
	setupTestDB(t)
	setupMockRedis(t)
	stubMailer(t)

	user, err := services.RegisterUser("profile@example.com", "Jane", "Doe", "", "secret123", "secret123")
	assert.NoError(t, err)

	firstName := "Janet"
	city := "Herat"
	gender := "F"
	updated, err := services.UpdateProfile(user.ID, services.ProfileUpdateInput{
		FirstName: &firstName,
		City:      &city,
		Gender:    &gender,
	})
	assert.NoError(t, err)

	// Identity fields land on the user row, the rest on the profile row.
	assert.Equal(t, "Janet", updated.User.FirstName)
	assert.Equal(t, "Herat", updated.City)
	assert.Equal(t, models.GenderFemale, updated.Gender)

	// Untouched fields keep their defaults.
	assert.Equal(t, "AF", updated.Country)
	assert.Equal(t, "+93707323964", updated.PhoneNumber)
}

func TestUpdateProfileInvalidGender(t *testing.T) {
	setupTestDB(t)
	setupMockRedis(t)
	stubMailer(t)

	user, err := services.RegisterUser("gender@example.com", "Jane", "Doe", "", "secret123", "secret123")
	assert.NoError(t, err)

	gender := "X"
	_, err = services.UpdateProfile(user.ID, services.ProfileUpdateInput{Gender: &gender})
	assert.ErrorIs(t, err, services.ErrInvalidGender)

	// The rejected update left the profile as it was.
	profile, err := services.GetProfileByUserID(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.GenderMale, profile.Gender)
}

func TestGetProfileNotFound(t *testing.T) {
	setupTestDB(t)
	setupMockRedis(t)

	_, err := services.GetProfileByUserID(999)
	assert.ErrorIs(t, err, services.ErrProfileNotFound)

	_, err = services.UpdateProfile(999, services.ProfileUpdateInput{})
	assert.ErrorIs(t, err, services.ErrProfileNotFound)
}

func TestFindProfilesPagination(t *testing.T) {
	setupTestDB(t)
	setupMockRedis(t)
	stubMailer(t)

	for _, email := range []string{"p1@example.com", "p2@example.com", "p3@example.com"} {
		_, err := services.RegisterUser(email, "Jane", "Doe", "", "secret123", "secret123")
		assert.NoError(t, err)
	}

	profiles, total, err := services.FindProfiles(1, 2)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, profiles, 2)
	assert.NotNil(t, profiles[0].User)

	profiles, _, err = services.FindProfiles(2, 2)
	assert.NoError(t, err)
	assert.Len(t, profiles, 1)
}
