package authService

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"megaBolaoApp/models"
	"megaBolaoApp/services/common"
)

// Authenticate looks the user up by username and password and returns the
// record, or ErrNotFound when the pair matches nothing.
func Authenticate(db *gorm.DB, username, password string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "username = ? AND password = ?", username, password).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// SessionStore keeps logged-in users keyed by an opaque token. Sessions live
// in memory; a restart logs everyone out.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]models.User
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]models.User),
	}
}

// Create registers a session for the user and returns its token.
func (s *SessionStore) Create(user models.User) string {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = user
	return token
}

// Get returns the user bound to the token, if any.
func (s *SessionStore) Get(token string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.sessions[token]
	return user, ok
}

// Delete drops the session for the token. Unknown tokens are ignored.
func (s *SessionStore) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}
