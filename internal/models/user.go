package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Validation failures surfaced to API clients; the exact wording is part
// of the contract.
var (
	ErrEmailRequired     = errors.New("Users must have an email address.")
	ErrEmailInvalid      = errors.New("Users must have a valid email address.")
	ErrFirstNameRequired = errors.New("Users must have a first name.")
	ErrLastNameRequired  = errors.New("Users must have a last name.")

	ErrSuperuserEmailRequired    = errors.New("Superuser must have an email address.")
	ErrSuperuserPasswordRequired = errors.New("Superuser must have a password.")
	ErrSuperuserNotStaff         = errors.New("Superuser must have is_staff=True.")
	ErrSuperuserNotSuperuser     = errors.New("Superuser must have is_superuser=True.")
)

type User struct {
	ID          uint      `gorm:"primarykey"`
	UUID        uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Username    string    `gorm:"uniqueIndex;size:150"`
	FirstName   string    `gorm:"size:255;not null"`
	LastName    string    `gorm:"size:255;not null"`
	Email       string    `gorm:"uniqueIndex;size:255;not null"`
	Password    string    `gorm:"not null"`
	OTP         string    `gorm:"size:1000"`
	ResetToken  string    `gorm:"size:1000"`
	IsStaff     bool      `gorm:"default:false"`
	IsActive    bool      `gorm:"default:false"`
	IsSuperuser bool      `gorm:"default:false"`
	DateJoined  time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Profile *Profile `gorm:"constraint:OnDelete:CASCADE"`
}

// NewUser validates the mandatory identity fields and returns an
// unpersisted user. The email is normalized and the username derived in
// BeforeSave so admin-edited records go through the same path.
func NewUser(email, firstName, lastName, username string) (*User, error) {
	if email == "" {
		return nil, ErrEmailRequired
	}
	if !strings.Contains(email, "@") {
		return nil, ErrEmailInvalid
	}
	if firstName == "" {
		return nil, ErrFirstNameRequired
	}
	if lastName == "" {
		return nil, ErrLastNameRequired
	}

	return &User{
		Email:      email,
		FirstName:  firstName,
		LastName:   lastName,
		Username:   username,
		DateJoined: time.Now(),
	}, nil
}

// NewSuperuser applies the stricter provisioning invariants on top of the
// regular user checks.
func NewSuperuser(email, firstName, lastName, password string, isStaff, isSuperuser bool) (*User, error) {
	if email == "" {
		return nil, ErrSuperuserEmailRequired
	}
	if password == "" {
		return nil, ErrSuperuserPasswordRequired
	}
	if !isStaff {
		return nil, ErrSuperuserNotStaff
	}
	if !isSuperuser {
		return nil, ErrSuperuserNotSuperuser
	}

	user, err := NewUser(email, firstName, lastName, "")
	if err != nil {
		return nil, err
	}
	user.IsStaff = true
	user.IsSuperuser = true
	user.IsActive = true
	return user, nil
}

// BeforeSave normalizes the login email and derives the username from the
// email's local part when none was supplied.
func (u *User) BeforeSave(tx *gorm.DB) error {
	u.Email = strings.ToLower(u.Email)
	if u.UUID == uuid.Nil {
		u.UUID = uuid.New()
	}
	if u.Username == "" {
		u.Username, _, _ = strings.Cut(u.Email, "@")
	}
	return nil
}

// FullName returns the title-cased display name.
func (u *User) FullName() string {
	return titleCase(u.FirstName) + " " + titleCase(u.LastName)
}

// ShortName returns the first name only.
func (u *User) ShortName() string {
	return u.FirstName
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

func (User) TableName() string {
	return "users"
}
