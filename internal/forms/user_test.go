package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrationFormValid(t *testing.T) {
	form := RegistrationForm{
		Username:        "seller_demo",
		Email:           "seller@demo.com",
		Password:        "demo1234",
		PasswordConfirm: "demo1234",
		UserType:        "seller",
	}
	errs := form.Validate()
	require.False(t, errs.HasErrors(), errs.Error())
}

func TestRegistrationFormValidation(t *testing.T) {
	base := RegistrationForm{
		Username:        "buyer1",
		Email:           "buyer@example.com",
		Password:        "password123",
		PasswordConfirm: "password123",
		UserType:        "buyer",
	}

	tests := []struct {
		name      string
		mutate    func(*RegistrationForm)
		wantField string
	}{
		{"missing username", func(f *RegistrationForm) { f.Username = "" }, "username"},
		{"username with spaces", func(f *RegistrationForm) { f.Username = "bad name" }, "username"},
		{"missing email", func(f *RegistrationForm) { f.Email = "" }, "email"},
		{"malformed email", func(f *RegistrationForm) { f.Email = "not-an-email" }, "email"},
		{"short password", func(f *RegistrationForm) { f.Password = "short"; f.PasswordConfirm = "short" }, "password"},
		{"password mismatch", func(f *RegistrationForm) { f.PasswordConfirm = "different123" }, "password_confirm"},
		{"unknown user type", func(f *RegistrationForm) { f.UserType = "admin" }, "user_type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := base
			tt.mutate(&form)
			errs := form.Validate()
			require.True(t, errs.HasErrors())
			found := false
			for _, fe := range errs {
				if fe.Field == tt.wantField {
					found = true
				}
			}
			assert.True(t, found, "expected an error on %s, got %v", tt.wantField, errs)
		})
	}
}

func TestProfileForm(t *testing.T) {
	form := ProfileForm{Username: "seller_demo", Email: "seller@demo.com", Phone: "+20 100 123 4567"}
	assert.False(t, form.Validate().HasErrors())

	form.Phone = ""
	assert.False(t, form.Validate().HasErrors(), "phone is optional")

	form.Email = "broken"
	assert.True(t, form.Validate().HasErrors())
}
