package services

import (
	"github.com/rs/zerolog"

	"github.com/finsaarthi/scholarhub/internal/app/models"
	"github.com/finsaarthi/scholarhub/internal/app/models/dto"
	"github.com/finsaarthi/scholarhub/internal/pkg/apperrors"
	"github.com/finsaarthi/scholarhub/internal/store"
)

// ApplicationService defines the interface for application operations
type ApplicationService interface {
	Submit(studentID, scholarshipID string, req dto.SubmitApplicationRequest) (models.Application, error)
	GetByID(id, requesterID string, requesterRole models.RoleType) (dto.ApplicationResponse, error)
	ListByStudent(studentID string) []dto.ApplicationResponse
	ListAll() []dto.ApplicationResponse
	UpdateStatus(id string, req dto.UpdateApplicationStatusRequest) (models.Application, error)
	HasApplied(studentID, scholarshipID string) bool
	Stats() dto.AdminStatsResponse
}

// applicationServiceImpl implements the ApplicationService interface
type applicationServiceImpl struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewApplicationService creates a new application service instance
func NewApplicationService(st *store.Store, logger zerolog.Logger) ApplicationService {
	return &applicationServiceImpl{
		store:  st,
		logger: logger.With().Str("service", "application").Logger(),
	}
}

// Submit files an application for an active scholarship. The store does
// not enforce the one-per-pair invariant, so the duplicate gate lives
// here, before the record is appended.
func (s *applicationServiceImpl) Submit(studentID, scholarshipID string, req dto.SubmitApplicationRequest) (models.Application, error) {
	scholarship, err := s.store.FindScholarshipByID(scholarshipID)
	if err != nil {
		return models.Application{}, err
	}
	if !scholarship.IsActive {
		return models.Application{}, apperrors.ErrScholarshipInactive
	}

	if s.store.HasApplied(studentID, scholarshipID) {
		return models.Application{}, apperrors.ErrAlreadyApplied
	}

	documents := req.Documents
	if documents == nil {
		documents = []string{}
	}

	app := s.store.AddApplication(models.Application{
		StudentID:     studentID,
		ScholarshipID: scholarshipID,
		Status:        models.StatusPending,
		StudentDetails: models.StudentDetails{
			Name:      req.Name,
			Email:     req.Email,
			Phone:     req.Phone,
			Address:   req.Address,
			Education: req.Education,
			GPA:       req.GPA,
			Documents: documents,
		},
	})

	s.logger.Info().
		Str("applicationId", app.ID).
		Str("scholarshipId", scholarshipID).
		Msg("Application submitted")
	return app, nil
}

// GetByID returns an application to its owner or to an admin.
func (s *applicationServiceImpl) GetByID(id, requesterID string, requesterRole models.RoleType) (dto.ApplicationResponse, error) {
	app, err := s.store.FindApplicationByID(id)
	if err != nil {
		return dto.ApplicationResponse{}, err
	}

	if requesterRole != models.RoleAdmin && app.StudentID != requesterID {
		return dto.ApplicationResponse{}, apperrors.ErrPermissionDenied
	}

	return s.withScholarship(app), nil
}

// ListByStudent returns the student's applications with their
// scholarships joined in.
func (s *applicationServiceImpl) ListByStudent(studentID string) []dto.ApplicationResponse {
	return s.join(s.store.ListApplicationsByStudent(studentID))
}

// ListAll returns every application, admin view only.
func (s *applicationServiceImpl) ListAll() []dto.ApplicationResponse {
	return s.join(s.store.ListApplications())
}

// UpdateStatus applies an admin triage decision. Notes accompany only
// final decisions; for pending/under-review transitions they are
// dropped. Submission timestamp and both foreign keys are immutable.
func (s *applicationServiceImpl) UpdateStatus(id string, req dto.UpdateApplicationStatusRequest) (models.Application, error) {
	notes := req.Notes
	if !req.Status.IsDecision() {
		notes = nil
	}

	app, err := s.store.UpdateApplicationStatus(id, req.Status, notes)
	if err != nil {
		return models.Application{}, err
	}

	s.logger.Info().
		Str("applicationId", id).
		Str("status", string(req.Status)).
		Msg("Application status updated")
	return app, nil
}

// HasApplied reports whether the student already applied, driving the
// "Applied" state on listings.
func (s *applicationServiceImpl) HasApplied(studentID, scholarshipID string) bool {
	return s.store.HasApplied(studentID, scholarshipID)
}

// Stats aggregates the admin dashboard counters.
func (s *applicationServiceImpl) Stats() dto.AdminStatsResponse {
	snapshot := s.store.Snapshot()

	byState := map[string]int{
		string(models.StatusPending):     0,
		string(models.StatusUnderReview): 0,
		string(models.StatusApproved):    0,
		string(models.StatusRejected):    0,
	}
	for _, app := range snapshot.Applications {
		byState[string(app.Status)]++
	}

	active := 0
	for _, sch := range snapshot.Scholarships {
		if sch.IsActive {
			active++
		}
	}

	return dto.AdminStatsResponse{
		TotalUsers:          len(snapshot.Users),
		TotalScholarships:   len(snapshot.Scholarships),
		ActiveScholarships:  active,
		TotalApplications:   len(snapshot.Applications),
		ApplicationsByState: byState,
	}
}

func (s *applicationServiceImpl) join(apps []models.Application) []dto.ApplicationResponse {
	out := make([]dto.ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		out = append(out, s.withScholarship(app))
	}
	return out
}

func (s *applicationServiceImpl) withScholarship(app models.Application) dto.ApplicationResponse {
	resp := dto.ApplicationResponse{Application: app}
	if sch, err := s.store.FindScholarshipByID(app.ScholarshipID); err == nil {
		resp.Scholarship = &sch
	}
	return resp
}
