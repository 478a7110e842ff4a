package models

import "time"

// Gender is the profile gender enum.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderOther  Gender = "O"
)

// Valid reports whether g is one of the accepted enum values.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Profile extends User 1:1 with contact and demographic fields. It has no
// independent lifecycle: it is created with the user and removed with it.
type Profile struct {
	ID           uint   `gorm:"primarykey"`
	UserID       uint   `gorm:"uniqueIndex;not null"`
	User         *User  `gorm:"foreignKey:UserID"`
	PhoneNumber  string `gorm:"size:30;default:'+93707323964'"`
	AboutMe      string `gorm:"type:text;default:'say something about your self.'"`
	Gender       Gender `gorm:"size:2;default:'M'"`
	Country      string `gorm:"size:2;default:'AF'"`
	City         string `gorm:"size:255;default:'Kabul'"`
	State        string `gorm:"size:100"`
	Address      string `gorm:"size:255"`
	ProfilePhoto string `gorm:"size:255;default:'profile_default.png'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Profile) TableName() string {
	return "profiles"
}
