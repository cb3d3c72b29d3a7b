package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/finsaarthi/scholarhub/internal/app/models"
	"github.com/finsaarthi/scholarhub/internal/pkg/apperrors"
	"github.com/finsaarthi/scholarhub/internal/pkg/auth"
)

// AddUser assigns a fresh id and creation timestamp, appends the user
// and returns the stored record. The store itself does not enforce
// email uniqueness; callers gate on EmailExists.
func (s *Store) AddUser(user models.User) models.User {
	s.mu.Lock()
	user.ID = uuid.New().String()
	user.CreatedAt = time.Now().UTC()
	s.data.Users = append(s.data.Users, user)
	events := s.commitLocked(Event{Entity: EntityUser, Action: ActionCreated, ID: user.ID})
	s.mu.Unlock()

	s.emit(events)
	return user
}

// FindUserByCredentials scans for the first user whose email matches
// exactly (case-sensitive) and whose stored password hash verifies the
// supplied password.
func (s *Store) FindUserByCredentials(email, password string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.data.Users {
		if u.Email == email && auth.CheckPassword(u.Password, password) {
			return u, nil
		}
	}
	return models.User{}, apperrors.ErrInvalidCredentials
}

// FindUserByID returns the user with the given id.
func (s *Store) FindUserByID(id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.data.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, apperrors.ErrUserNotFound
}

// EmailExists reports whether any user already has the given email.
func (s *Store) EmailExists(email string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.data.Users {
		if u.Email == email {
			return true
		}
	}
	return false
}

// UpdateUser merges the patch onto the matching user and writes the
// aggregate back.
func (s *Store) UpdateUser(id string, patch models.UserPatch) (models.User, error) {
	s.mu.Lock()

	for i := range s.data.Users {
		if s.data.Users[i].ID != id {
			continue
		}
		patch.Apply(&s.data.Users[i])
		updated := s.data.Users[i]
		events := s.commitLocked(Event{Entity: EntityUser, Action: ActionUpdated, ID: id})
		s.mu.Unlock()

		s.emit(events)
		return updated, nil
	}

	s.mu.Unlock()
	return models.User{}, apperrors.ErrUserNotFound
}

// ListUsers returns every user in storage order.
func (s *Store) ListUsers() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.User(nil), s.data.Users...)
}
