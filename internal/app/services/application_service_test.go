package services

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsaarthi/scholarhub/internal/app/models"
	"github.com/finsaarthi/scholarhub/internal/app/models/dto"
	"github.com/finsaarthi/scholarhub/internal/pkg/apperrors"
	"github.com/finsaarthi/scholarhub/internal/store"
)

func submitRequest() dto.SubmitApplicationRequest {
	return dto.SubmitApplicationRequest{
		Name:      "Rahul Kumar",
		Email:     "student@example.com",
		Phone:     "+91-9876543210",
		Address:   "Delhi",
		Education: "B.Tech Computer Science",
		GPA:       88.5,
	}
}

func newApplicationService(t *testing.T) (ApplicationService, *store.Store) {
	t.Helper()
	st := newSeededStore(t)
	return NewApplicationService(st, zerolog.Nop()), st
}

func TestSubmitApplication(t *testing.T) {
	svc, _ := newApplicationService(t)

	app, err := svc.Submit("student-1", "sch-1", submitRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, app.ID)
	assert.Equal(t, models.StatusPending, app.Status)
	assert.Equal(t, "student-1", app.StudentID)
	assert.Equal(t, "sch-1", app.ScholarshipID)
	assert.False(t, app.SubmittedAt.IsZero())
	assert.NotNil(t, app.StudentDetails.Documents)
	assert.True(t, svc.HasApplied("student-1", "sch-1"))
}

func TestSubmitRejectsDuplicate(t *testing.T) {
	svc, _ := newApplicationService(t)

	_, err := svc.Submit("student-1", "sch-1", submitRequest())
	require.NoError(t, err)

	_, err = svc.Submit("student-1", "sch-1", submitRequest())
	assert.ErrorIs(t, err, apperrors.ErrAlreadyApplied)

	// A different scholarship is still open to the same student
	_, err = svc.Submit("student-1", "sch-2", submitRequest())
	assert.NoError(t, err)
}

func TestSubmitGates(t *testing.T) {
	svc, st := newApplicationService(t)

	_, err := svc.Submit("student-1", "missing", submitRequest())
	assert.ErrorIs(t, err, apperrors.ErrScholarshipNotFound)

	inactive := false
	_, err = st.UpdateScholarship("sch-1", models.ScholarshipPatch{IsActive: &inactive})
	require.NoError(t, err)

	_, err = svc.Submit("student-1", "sch-1", submitRequest())
	assert.ErrorIs(t, err, apperrors.ErrScholarshipInactive)
}

func TestUpdateStatusNotesOnlyOnDecisions(t *testing.T) {
	svc, _ := newApplicationService(t)

	app, err := svc.Submit("student-1", "sch-1", submitRequest())
	require.NoError(t, err)

	notes := "needs a second reviewer"
	updated, err := svc.UpdateStatus(app.ID, dto.UpdateApplicationStatusRequest{
		Status: models.StatusUnderReview,
		Notes:  &notes,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusUnderReview, updated.Status)
	assert.Nil(t, updated.AdminNotes, "notes accompany only final decisions")

	decision := "approved on merit"
	updated, err = svc.UpdateStatus(app.ID, dto.UpdateApplicationStatusRequest{
		Status: models.StatusApproved,
		Notes:  &decision,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, updated.Status)
	require.NotNil(t, updated.AdminNotes)
	assert.Equal(t, decision, *updated.AdminNotes)

	_, err = svc.UpdateStatus("missing", dto.UpdateApplicationStatusRequest{Status: models.StatusRejected})
	assert.ErrorIs(t, err, apperrors.ErrApplicationNotFound)
}

func TestGetByIDOwnership(t *testing.T) {
	svc, _ := newApplicationService(t)

	app, err := svc.Submit("student-1", "sch-1", submitRequest())
	require.NoError(t, err)

	owned, err := svc.GetByID(app.ID, "student-1", models.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, app.ID, owned.ID)
	require.NotNil(t, owned.Scholarship)
	assert.Equal(t, "sch-1", owned.Scholarship.ID)

	_, err = svc.GetByID(app.ID, "someone-else", models.RoleStudent)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, err = svc.GetByID(app.ID, "admin-1", models.RoleAdmin)
	assert.NoError(t, err)
}

func TestListByStudentJoinsScholarships(t *testing.T) {
	svc, _ := newApplicationService(t)

	_, err := svc.Submit("student-1", "sch-1", submitRequest())
	require.NoError(t, err)
	_, err = svc.Submit("student-1", "sch-3", submitRequest())
	require.NoError(t, err)

	list := svc.ListByStudent("student-1")
	require.Len(t, list, 2)
	for _, item := range list {
		require.NotNil(t, item.Scholarship)
		assert.Equal(t, item.ScholarshipID, item.Scholarship.ID)
	}

	assert.Empty(t, svc.ListByStudent("nobody"))
}

func TestStats(t *testing.T) {
	svc, _ := newApplicationService(t)

	app, err := svc.Submit("student-1", "sch-1", submitRequest())
	require.NoError(t, err)
	_, err = svc.Submit("student-1", "sch-2", submitRequest())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(app.ID, dto.UpdateApplicationStatusRequest{Status: models.StatusApproved})
	require.NoError(t, err)

	stats := svc.Stats()
	assert.Equal(t, 2, stats.TotalUsers)
	assert.Equal(t, 3, stats.TotalScholarships)
	assert.Equal(t, 3, stats.ActiveScholarships)
	assert.Equal(t, 2, stats.TotalApplications)
	assert.Equal(t, 1, stats.ApplicationsByState[string(models.StatusPending)])
	assert.Equal(t, 1, stats.ApplicationsByState[string(models.StatusApproved)])
	assert.Equal(t, 0, stats.ApplicationsByState[string(models.StatusRejected)])
}
