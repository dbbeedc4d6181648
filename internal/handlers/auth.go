package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"estate-portal/internal/forms"
	"estate-portal/internal/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Register creates a new account with its buyer or seller profile and
// opens a session for it.
func (h *Handler) Register(c *gin.Context) {
	var form forms.RegistrationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed request body"})
		return
	}

	errs := form.Validate()
	if !errs.HasErrors() {
		taken, err := h.db.UsernameTaken(form.Username, 0)
		if err != nil {
			h.log.WithError(err).Error("username check failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		if taken {
			errs.Add("username", "A user with that username already exists.")
		}
	}
	if errs.HasErrors() {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), h.config.Auth.BcryptCost)
	if err != nil {
		h.log.WithError(err).Error("password hashing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	user := models.User{
		Username:     form.Username,
		Email:        form.Email,
		PasswordHash: string(hash),
	}
	profile := models.UserProfile{UserType: models.UserType(form.UserType)}

	if err := h.db.CreateUserWithProfile(&user, &profile); err != nil {
		h.log.WithError(err).Error("user create failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	session, err := h.db.CreateSession(user.ID, h.config.Auth.SessionTTL())
	if err != nil {
		h.log.WithError(err).Error("session create failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": session.Token,
		"user":  user,
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login verifies credentials and opens a session.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed request body"})
		return
	}

	user, err := h.db.GetUserByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
		h.log.WithError(err).Error("user lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	session, err := h.db.CreateSession(user.ID, h.config.Auth.SessionTTL())
	if err != nil {
		h.log.WithError(err).Error("session create failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": session.Token,
		"user":  user,
	})
}

// Logout revokes the presented session token.
func (h *Handler) Logout(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok && token != "" {
		if err := h.db.DeleteSession(token); err != nil {
			h.log.WithError(err).Warn("session delete failed")
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// GetProfile serves the authenticated user's account and profile.
func (h *Handler) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, currentUser(c))
}

// UpdateProfile updates account fields, the profile phone, and
// optionally the profile image.
func (h *Handler) UpdateProfile(c *gin.Context) {
	user := currentUser(c)

	form := forms.ProfileForm{
		Username: c.PostForm("username"),
		Email:    c.PostForm("email"),
		Phone:    c.PostForm("phone"),
	}

	errs := form.Validate()
	if !errs.HasErrors() && form.Username != user.Username {
		taken, err := h.db.UsernameTaken(form.Username, user.ID)
		if err != nil {
			h.log.WithError(err).Error("username check failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		if taken {
			errs.Add("username", "A user with that username already exists.")
		}
	}
	if errs.HasErrors() {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	user.Username = form.Username
	user.Email = form.Email
	// a profile row may be missing for accounts created outside the
	// registration flow
	if user.Profile == nil {
		user.Profile = &models.UserProfile{UserID: user.ID, UserType: models.UserTypeBuyer}
	}
	if form.Phone != "" {
		phone := form.Phone
		user.Profile.Phone = &phone
	} else {
		user.Profile.Phone = nil
	}

	var oldImage string
	if fh, err := c.FormFile("profile_image"); err == nil {
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed upload"})
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed upload"})
			return
		}

		upload := &forms.ImageUpload{FileName: fh.Filename, Data: data}
		if imgErrs := forms.ValidateImages([]*forms.ImageUpload{upload}); imgErrs.HasErrors() {
			c.JSON(http.StatusBadRequest, gin.H{"errors": imgErrs})
			return
		}

		rel, err := h.store.Save("profiles", fh.Filename, data)
		if err != nil {
			h.log.WithError(err).Error("media write failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		oldImage = user.Profile.ProfileImage
		user.Profile.ProfileImage = rel
	}

	if err := h.db.SaveUserAndProfile(user, user.Profile); err != nil {
		if user.Profile.ProfileImage != oldImage && user.Profile.ProfileImage != "" {
			_ = h.store.Remove(user.Profile.ProfileImage)
		}
		h.log.WithError(err).Error("profile update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if oldImage != "" && oldImage != user.Profile.ProfileImage {
		h.removeFiles([]string{oldImage})
	}

	c.JSON(http.StatusOK, user)
}
