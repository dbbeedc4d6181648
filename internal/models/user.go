package models

import "time"

// UserType marks a profile as buyer or seller. Only sellers may create
// property listings.
type UserType string

const (
	UserTypeBuyer  UserType = "buyer"
	UserTypeSeller UserType = "seller"
)

// UserTypes lists the valid user type values.
var UserTypes = []UserType{UserTypeBuyer, UserTypeSeller}

// IsValid reports whether the value is one of the known user types.
func (t UserType) IsValid() bool {
	return t == UserTypeBuyer || t == UserTypeSeller
}

// User is an account identity. Passwords are stored as bcrypt hashes
// and never serialized.
type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"type:varchar(150);not null;uniqueIndex" json:"username"`
	Email        string    `gorm:"type:varchar(254);not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	FirstName    string    `gorm:"type:varchar(150)" json:"first_name,omitempty"`
	LastName     string    `gorm:"type:varchar(150)" json:"last_name,omitempty"`
	IsStaff      bool      `gorm:"not null" json:"is_staff"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Profile *UserProfile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"profile,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// IsSeller reports whether the user's profile carries the seller role.
func (u *User) IsSeller() bool {
	return u.Profile != nil && u.Profile.UserType == UserTypeSeller
}

// UserProfile extends a user with role and contact details. At most one
// profile exists per user.
type UserProfile struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	UserType     UserType  `gorm:"type:varchar(10);not null;default:'buyer'" json:"user_type"`
	Phone        *string   `gorm:"type:varchar(20)" json:"phone,omitempty"`
	ProfileImage string    `gorm:"type:varchar(512)" json:"profile_image,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
