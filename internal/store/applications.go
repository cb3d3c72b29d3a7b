package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/finsaarthi/scholarhub/internal/app/models"
	"github.com/finsaarthi/scholarhub/internal/pkg/apperrors"
)

// AddApplication assigns a fresh id and submission timestamp and
// appends the application. Status stays whatever the caller supplied;
// the service layer always submits with pending. The one-application-
// per-(student, scholarship) rule is enforced by the calling layer via
// HasApplied, not here.
func (s *Store) AddApplication(app models.Application) models.Application {
	s.mu.Lock()
	app.ID = uuid.New().String()
	app.SubmittedAt = time.Now().UTC()
	s.data.Applications = append(s.data.Applications, app)
	events := s.commitLocked(Event{Entity: EntityApplication, Action: ActionCreated, ID: app.ID})
	s.mu.Unlock()

	s.emit(events)
	return app
}

// UpdateApplicationStatus merges the new status and optional notes onto
// the matching application. SubmittedAt, StudentID and ScholarshipID
// are never touched.
func (s *Store) UpdateApplicationStatus(id string, status models.ApplicationStatus, notes *string) (models.Application, error) {
	s.mu.Lock()

	for i := range s.data.Applications {
		if s.data.Applications[i].ID != id {
			continue
		}
		s.data.Applications[i].Status = status
		if notes != nil {
			s.data.Applications[i].AdminNotes = notes
		}
		updated := s.data.Applications[i]
		events := s.commitLocked(Event{Entity: EntityApplication, Action: ActionUpdated, ID: id})
		s.mu.Unlock()

		s.emit(events)
		return updated, nil
	}

	s.mu.Unlock()
	return models.Application{}, apperrors.ErrApplicationNotFound
}

// ListApplicationsByStudent returns the student's applications in
// storage order.
func (s *Store) ListApplicationsByStudent(studentID string) []models.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()

	apps := make([]models.Application, 0)
	for _, app := range s.data.Applications {
		if app.StudentID == studentID {
			apps = append(apps, app)
		}
	}
	return apps
}

// ListApplications returns every application in storage order.
func (s *Store) ListApplications() []models.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Application(nil), s.data.Applications...)
}

// FindApplicationByID returns the application with the given id.
func (s *Store) FindApplicationByID(id string) (models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, app := range s.data.Applications {
		if app.ID == id {
			return app, nil
		}
	}
	return models.Application{}, apperrors.ErrApplicationNotFound
}

// HasApplied reports whether the student already has an application for
// the scholarship. Used to gate duplicate submissions and to drive the
// "Applied" state on listings.
func (s *Store) HasApplied(studentID, scholarshipID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, app := range s.data.Applications {
		if app.StudentID == studentID && app.ScholarshipID == scholarshipID {
			return true
		}
	}
	return false
}
