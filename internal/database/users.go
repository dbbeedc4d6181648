package database

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"estate-portal/internal/models"

	"gorm.io/gorm"
)

// CreateUserWithProfile persists a new user and their profile in one
// transaction. At most one profile per user is enforced by the unique
// index on user_id.
func (gdb *GormDB) CreateUserWithProfile(user *models.User, profile *models.UserProfile) error {
	return gdb.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		profile.UserID = user.ID
		if err := tx.Create(profile).Error; err != nil {
			return err
		}
		user.Profile = profile
		return nil
	})
}

// GetUserByUsername fetches a user with their profile.
func (gdb *GormDB) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	err := gdb.db.Where("username = ?", username).Preload("Profile").First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUser fetches a user by ID with their profile.
func (gdb *GormDB) GetUser(id uint) (*models.User, error) {
	var user models.User
	err := gdb.db.Where("id = ?", id).Preload("Profile").First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UsernameTaken reports whether another user already holds the name.
func (gdb *GormDB) UsernameTaken(username string, excludeUserID uint) (bool, error) {
	var count int64
	err := gdb.db.Model(&models.User{}).
		Where("username = ? AND id <> ?", username, excludeUserID).
		Count(&count).Error
	return count > 0, err
}

// SaveUserAndProfile writes updated account and profile fields in one
// transaction.
func (gdb *GormDB) SaveUserAndProfile(user *models.User, profile *models.UserProfile) error {
	return gdb.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(user).Error; err != nil {
			return err
		}
		return tx.Save(profile).Error
	})
}

// CreateSession issues a new opaque session token for the user.
func (gdb *GormDB) CreateSession(userID uint, ttl time.Duration) (*models.Session, error) {
	var buf [32]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return nil, err
	}
	session := &models.Session{
		Token:     hex.EncodeToString(buf[:]),
		UserID:    userID,
		ExpiresAt: time.Now().Add(ttl),
	}
	if err := gdb.db.Create(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}

// GetSessionUser resolves a bearer token to its user, with profile.
// Expired sessions are deleted on sight and report not found.
func (gdb *GormDB) GetSessionUser(token string) (*models.User, error) {
	var session models.Session
	if err := gdb.db.Where("token = ?", token).First(&session).Error; err != nil {
		return nil, err
	}
	if session.Expired() {
		_ = gdb.db.Delete(&session).Error
		return nil, gorm.ErrRecordNotFound
	}
	return gdb.GetUser(session.UserID)
}

// DeleteSession revokes a session token. Unknown tokens are a no-op.
func (gdb *GormDB) DeleteSession(token string) error {
	return gdb.db.Where("token = ?", token).Delete(&models.Session{}).Error
}
