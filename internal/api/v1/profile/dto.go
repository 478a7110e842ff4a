package profile

import (
	"github.com/tetteam4/swimming-project/internal/models"
)

// ProfileResponse flattens the profile with its owning user's identity
// fields, mirroring what clients render on the profile pages.
type ProfileResponse struct {
	ID           uint   `json:"id"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	ProfilePhoto string `json:"profile_photo"`
	Country      string `json:"country"`
	Address      string `json:"address"`
	State        string `json:"state"`
	Gender       string `json:"gender"`
	City         string `json:"city"`
	AboutMe      string `json:"about_me"`
	PhoneNumber  string `json:"phone_number"`
}

// UpdateProfileInput is the JSON body for partial profile updates. All
// fields are optional; identity fields route to the user record.
type UpdateProfileInput struct {
	Username    *string `json:"username"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phone_number"`
	AboutMe     *string `json:"about_me"`
	Gender      *string `json:"gender"`
	Country     *string `json:"country"`
	City        *string `json:"city"`
	State       *string `json:"state"`
	Address     *string `json:"address"`
}

type ProfileListResponse struct {
	Total int64             `json:"total"`
	Items []ProfileResponse `json:"items"`
}

func NewProfileResponse(p *models.Profile) ProfileResponse {
	resp := ProfileResponse{
		ID:           p.ID,
		ProfilePhoto: photoURL(p.ProfilePhoto),
		Country:      p.Country,
		Address:      p.Address,
		State:        p.State,
		Gender:       string(p.Gender),
		City:         p.City,
		AboutMe:      p.AboutMe,
		PhoneNumber:  p.PhoneNumber,
	}
	if p.User != nil {
		resp.Username = p.User.Username
		resp.FirstName = p.User.FirstName
		resp.LastName = p.User.LastName
		resp.FullName = p.User.FullName()
		resp.Email = p.User.Email
	}
	return resp
}

func photoURL(stored string) string {
	if stored == "" {
		return ""
	}
	return "/media/" + stored
}
