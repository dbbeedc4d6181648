package forms

import (
	"regexp"
	"strings"

	"estate-portal/internal/models"
)

var (
	usernamePattern = regexp.MustCompile(`^[\w.@+-]{1,150}$`)
	emailPattern    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// RegistrationForm carries a new account submission.
type RegistrationForm struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
	UserType        string `json:"user_type"`
}

// Validate checks the registration fields.
func (f *RegistrationForm) Validate() Errors {
	var errs Errors

	f.Username = strings.TrimSpace(f.Username)
	f.Email = strings.TrimSpace(f.Email)

	if f.Username == "" {
		errs.Add("username", "This field is required.")
	} else if !usernamePattern.MatchString(f.Username) {
		errs.Add("username", "Enter a valid username (letters, digits and @/./+/-/_ only).")
	}

	if f.Email == "" {
		errs.Add("email", "This field is required.")
	} else if !emailPattern.MatchString(f.Email) {
		errs.Add("email", "Enter a valid email address.")
	}

	if len(f.Password) < 8 {
		errs.Add("password", "Password must be at least 8 characters.")
	}
	if f.Password != f.PasswordConfirm {
		errs.Add("password_confirm", "The two password fields didn't match.")
	}

	if !models.UserType(f.UserType).IsValid() {
		errs.Add("user_type", "Select a valid account type.")
	}

	return errs
}

// ProfileForm carries a profile update: account fields plus the
// profile's optional phone.
type ProfileForm struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// Validate checks the profile fields. Phone stays optional here, unlike
// the listing contact phone.
func (f *ProfileForm) Validate() Errors {
	var errs Errors

	f.Username = strings.TrimSpace(f.Username)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)

	if f.Username == "" {
		errs.Add("username", "This field is required.")
	} else if !usernamePattern.MatchString(f.Username) {
		errs.Add("username", "Enter a valid username (letters, digits and @/./+/-/_ only).")
	}

	if f.Email == "" {
		errs.Add("email", "This field is required.")
	} else if !emailPattern.MatchString(f.Email) {
		errs.Add("email", "Enter a valid email address.")
	}

	if len(f.Phone) > 20 {
		errs.Add("phone", "Phone number is too long.")
	}

	return errs
}
