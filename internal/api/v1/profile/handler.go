package profile

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tetteam4/swimming-project/config"
	"github.com/tetteam4/swimming-project/internal/models"
	"github.com/tetteam4/swimming-project/internal/services"
	"github.com/tetteam4/swimming-project/internal/utils"
)

func currentUser(c *gin.Context) (models.User, bool) {
	value, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, utils.ProfileEnvelope{
			StatusCode: http.StatusUnauthorized,
			Profile:    gin.H{"error": "Unauthorized"},
		})
		return models.User{}, false
	}
	return value.(models.User), true
}

// Me godoc
// @Summary Get the caller's profile
// @Tags profiles
// @Produce  json
// @Security Bearer
// @Success 200 {object} utils.ProfileEnvelope
// @Failure 404 {object} utils.ProfileEnvelope
// @Router /profiles/me/ [get]
func Me(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	p, err := services.GetProfileByUserID(user.ID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, utils.ProfileEnvelope{
				StatusCode: http.StatusNotFound,
				Profile:    gin.H{"error": "Profile not found"},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, utils.ProfileEnvelope{
			StatusCode: http.StatusInternalServerError,
			Profile:    gin.H{"error": "Failed to load profile"},
		})
		return
	}

	c.JSON(http.StatusOK, utils.ProfileEnvelope{
		StatusCode: http.StatusOK,
		Profile:    NewProfileResponse(&p),
	})
}

// All godoc
// @Summary List all profiles
// @Tags profiles
// @Produce  json
// @Security Bearer
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 10)"
// @Success 200 {object} utils.ProfilesEnvelope
// @Router /profiles/all/ [get]
func All(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	profiles, total, err := services.FindProfiles(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.ProfilesEnvelope{
			StatusCode: http.StatusInternalServerError,
			Profiles:   gin.H{"error": "Failed to load profiles"},
		})
		return
	}

	items := make([]ProfileResponse, 0, len(profiles))
	for i := range profiles {
		items = append(items, NewProfileResponse(&profiles[i]))
	}

	c.JSON(http.StatusOK, utils.ProfilesEnvelope{
		StatusCode: http.StatusOK,
		Profiles:   ProfileListResponse{Total: total, Items: items},
	})
}

// Update godoc
// @Summary Update the caller's profile
// @Description Partial update; accepts JSON or multipart form data with an optional profile_photo file
// @Tags profiles
// @Accept  json
// @Accept  mpfd
// @Produce  json
// @Security Bearer
// @Param   input     body   UpdateProfileInput  false  "Profile fields"
// @Success 200 {object} utils.ProfileEnvelope
// @Failure 400 {object} utils.ProfileEnvelope
// @Router /profiles/me/update/ [patch]
func Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var input services.ProfileUpdateInput
	var err error
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		input, err = bindMultipart(c)
	} else {
		input, err = bindJSON(c)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.ProfileEnvelope{
			StatusCode: http.StatusBadRequest,
			Profile:    gin.H{"error": err.Error()},
		})
		return
	}

	p, err := services.UpdateProfile(user.ID, input)
	if err != nil {
		status := http.StatusInternalServerError
		message := "Failed to update profile"
		if errors.Is(err, services.ErrInvalidGender) {
			status = http.StatusBadRequest
			message = err.Error()
		} else if errors.Is(err, services.ErrProfileNotFound) {
			status = http.StatusNotFound
			message = "Profile not found"
		}
		c.JSON(status, utils.ProfileEnvelope{
			StatusCode: status,
			Profile:    gin.H{"error": message},
		})
		return
	}

	c.JSON(http.StatusOK, utils.ProfileEnvelope{
		StatusCode: http.StatusOK,
		Profile:    NewProfileResponse(&p),
	})
}

func bindJSON(c *gin.Context) (services.ProfileUpdateInput, error) {
	var body UpdateProfileInput
	if err := c.ShouldBindJSON(&body); err != nil {
		return services.ProfileUpdateInput{}, fmt.Errorf("malformed JSON body")
	}
	return services.ProfileUpdateInput{
		Username:    body.Username,
		FirstName:   body.FirstName,
		LastName:    body.LastName,
		Email:       body.Email,
		PhoneNumber: body.PhoneNumber,
		AboutMe:     body.AboutMe,
		Gender:      body.Gender,
		Country:     body.Country,
		City:        body.City,
		State:       body.State,
		Address:     body.Address,
	}, nil
}

func bindMultipart(c *gin.Context) (services.ProfileUpdateInput, error) {
	var input services.ProfileUpdateInput

	formValue := func(key string) *string {
		if value, ok := c.GetPostForm(key); ok {
			return &value
		}
		return nil
	}

	input.Username = formValue("username")
	input.FirstName = formValue("first_name")
	input.LastName = formValue("last_name")
	input.Email = formValue("email")
	input.PhoneNumber = formValue("phone_number")
	input.AboutMe = formValue("about_me")
	input.Gender = formValue("gender")
	input.Country = formValue("country")
	input.City = formValue("city")
	input.State = formValue("state")
	input.Address = formValue("address")

	file, err := c.FormFile("profile_photo")
	if err != nil {
		// No photo in the form; field updates alone are fine.
		return input, nil
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return input, err
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
	default:
		return input, fmt.Errorf("unsupported image type %q", ext)
	}

	stored := uuid.New().String() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(cfg.MediaDir, stored)); err != nil {
		return input, fmt.Errorf("failed to store profile photo")
	}
	input.ProfilePhoto = &stored

	return input, nil
}
