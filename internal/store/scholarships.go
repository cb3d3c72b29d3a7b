package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/finsaarthi/scholarhub/internal/app/models"
	"github.com/finsaarthi/scholarhub/internal/pkg/apperrors"
)

// AddScholarship assigns a fresh id and creation timestamp, appends the
// scholarship and returns the stored record.
func (s *Store) AddScholarship(sch models.Scholarship) models.Scholarship {
	s.mu.Lock()
	sch.ID = uuid.New().String()
	sch.CreatedAt = time.Now().UTC()
	s.data.Scholarships = append(s.data.Scholarships, sch)
	events := s.commitLocked(Event{Entity: EntityScholarship, Action: ActionCreated, ID: sch.ID})
	s.mu.Unlock()

	s.emit(events)
	return sch
}

// UpdateScholarship merges the patch onto the matching scholarship.
func (s *Store) UpdateScholarship(id string, patch models.ScholarshipPatch) (models.Scholarship, error) {
	s.mu.Lock()

	for i := range s.data.Scholarships {
		if s.data.Scholarships[i].ID != id {
			continue
		}
		patch.Apply(&s.data.Scholarships[i])
		updated := s.data.Scholarships[i]
		events := s.commitLocked(Event{Entity: EntityScholarship, Action: ActionUpdated, ID: id})
		s.mu.Unlock()

		s.emit(events)
		return updated, nil
	}

	s.mu.Unlock()
	return models.Scholarship{}, apperrors.ErrScholarshipNotFound
}

// DeleteScholarship removes the scholarship and cascades: every
// application referencing it is deleted too. Referential integrity is
// the store's job here, there is no database underneath to enforce it.
func (s *Store) DeleteScholarship(id string) error {
	s.mu.Lock()

	idx := -1
	for i := range s.data.Scholarships {
		if s.data.Scholarships[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return apperrors.ErrScholarshipNotFound
	}

	s.data.Scholarships = append(s.data.Scholarships[:idx], s.data.Scholarships[idx+1:]...)

	events := []Event{{Entity: EntityScholarship, Action: ActionDeleted, ID: id}}
	kept := s.data.Applications[:0]
	for _, app := range s.data.Applications {
		if app.ScholarshipID == id {
			events = append(events, Event{Entity: EntityApplication, Action: ActionDeleted, ID: app.ID})
			continue
		}
		kept = append(kept, app)
	}
	s.data.Applications = kept

	events = s.commitLocked(events...)
	s.mu.Unlock()

	s.emit(events)
	return nil
}

// ListActiveScholarships returns every scholarship with isActive set,
// in storage order. Callers sort.
func (s *Store) ListActiveScholarships() []models.Scholarship {
	s.mu.RLock()
	defer s.mu.RUnlock()

	active := make([]models.Scholarship, 0, len(s.data.Scholarships))
	for _, sch := range s.data.Scholarships {
		if sch.IsActive {
			active = append(active, sch)
		}
	}
	return active
}

// ListScholarships returns every scholarship, inactive ones included,
// in storage order.
func (s *Store) ListScholarships() []models.Scholarship {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Scholarship(nil), s.data.Scholarships...)
}

// FindScholarshipByID returns the scholarship with the given id.
func (s *Store) FindScholarshipByID(id string) (models.Scholarship, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sch := range s.data.Scholarships {
		if sch.ID == id {
			return sch, nil
		}
	}
	return models.Scholarship{}, apperrors.ErrScholarshipNotFound
}
