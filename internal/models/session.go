package models

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Session is an opaque bearer token identifying a logged-in user.
//
// Sessions have an explicit create/lookup/clear lifecycle instead of
// living in process-global state, so tests and handlers always go through
// the same code path.
type Session struct {
	Timestamps
	Token  uuid.UUID `gorm:"primaryKey"`
	UserID uuid.UUID
	User   User `json:"-"`
}

func (s *Session) BeforeCreate(_ *gorm.DB) error {
	s.Token = uuid.New()
	return nil
}

// CreateSession opens a new session for the user.
func CreateSession(db *gorm.DB, user User) (Session, error) {
	session := Session{UserID: user.ID}
	err := db.Create(&session).Error
	if err != nil {
		return Session{}, err
	}

	return session, nil
}

// LookupSession resolves a bearer token to its session and user.
func LookupSession(db *gorm.DB, token string) (Session, error) {
	parsed, err := uuid.Parse(token)
	if err != nil {
		return Session{}, ErrSessionTokenInvalid
	}

	var session Session
	err = db.Preload("User").First(&session, "token = ?", parsed).Error
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return Session{}, ErrSessionTokenInvalid
		}

		return Session{}, err
	}

	return session, nil
}

// ClearSession ends a session. Clearing an unknown token is not an error,
// logout is idempotent.
func ClearSession(db *gorm.DB, token string) error {
	parsed, err := uuid.Parse(token)
	if err != nil {
		return nil
	}

	return db.Delete(&Session{}, "token = ?", parsed).Error
}
