package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsaarthi/scholarhub/internal/app/models"
	"github.com/finsaarthi/scholarhub/internal/pkg/apperrors"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aggregate.json")
	st := New(path, zerolog.Nop())
	require.NoError(t, st.Load())
	return st
}

func TestLoadSeedsWhenFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aggregate.json")
	st := New(path, zerolog.Nop())
	require.NoError(t, st.Load())

	snapshot := st.Snapshot()
	assert.Len(t, snapshot.Users, 2)
	assert.Len(t, snapshot.Scholarships, 3)
	assert.Empty(t, snapshot.Applications)

	// The seed is persisted immediately so the next start finds a file
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestLoadFallsBackOnCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aggregate.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	st := New(path, zerolog.Nop())
	require.NoError(t, st.Load())

	snapshot := st.Snapshot()
	assert.Len(t, snapshot.Users, 2)
	assert.Len(t, snapshot.Scholarships, 3)
}

func TestSeedPasswordsAreHashed(t *testing.T) {
	st := newTestStore(t)

	raw, err := os.ReadFile(st.path)
	require.NoError(t, err)

	var data Aggregate
	require.NoError(t, json.Unmarshal(raw, &data))
	for _, u := range data.Users {
		assert.NotEqual(t, SeedAdminPassword, u.Password)
		assert.NotEqual(t, SeedStudentPassword, u.Password)
		assert.NotEmpty(t, u.Password)
	}
}

func TestMutationsPersistAcrossRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aggregate.json")
	st := New(path, zerolog.Nop())
	require.NoError(t, st.Load())

	created := st.AddScholarship(models.Scholarship{
		Title:    "Rural Talent Scholarship",
		Amount:   20000,
		Deadline: "2025-03-01",
		Provider: "State Education Board",
		Category: models.CategoryOther,
		IsActive: true,
	})

	reopened := New(path, zerolog.Nop())
	require.NoError(t, reopened.Load())

	found, err := reopened.FindScholarshipByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rural Talent Scholarship", found.Title)
	assert.False(t, found.CreatedAt.IsZero())
}

func TestFindUserByCredentials(t *testing.T) {
	st := newTestStore(t)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"seeded admin", SeedAdminEmail, SeedAdminPassword, nil},
		{"seeded student", SeedStudentEmail, SeedStudentPassword, nil},
		{"wrong password", SeedAdminEmail, "nope", apperrors.ErrInvalidCredentials},
		{"unknown email", "ghost@example.com", SeedAdminPassword, apperrors.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := st.FindUserByCredentials(tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.email, user.Email)
		})
	}
}

func TestAddUserAssignsIDAndTimestamp(t *testing.T) {
	st := newTestStore(t)

	user := st.AddUser(models.User{
		Email:    "new@example.com",
		Password: "hash",
		Role:     models.RoleStudent,
		Name:     "New Student",
	})

	assert.NotEmpty(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())
	assert.True(t, st.EmailExists("new@example.com"))
}

func TestUpdateUserMergesPatch(t *testing.T) {
	st := newTestStore(t)

	phone := "+91-9876543210"
	updated, err := st.UpdateUser("student-1", models.UserPatch{Phone: &phone})
	require.NoError(t, err)

	assert.Equal(t, "Rahul Kumar", updated.Name)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, phone, *updated.Phone)

	_, err = st.UpdateUser("missing", models.UserPatch{Phone: &phone})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestDeleteScholarshipCascades(t *testing.T) {
	st := newTestStore(t)

	doomed := st.AddApplication(models.Application{
		StudentID:     "student-1",
		ScholarshipID: "sch-1",
		Status:        models.StatusPending,
	})
	kept := st.AddApplication(models.Application{
		StudentID:     "student-1",
		ScholarshipID: "sch-2",
		Status:        models.StatusPending,
	})

	require.NoError(t, st.DeleteScholarship("sch-1"))

	_, err := st.FindScholarshipByID("sch-1")
	assert.ErrorIs(t, err, apperrors.ErrScholarshipNotFound)

	_, err = st.FindApplicationByID(doomed.ID)
	assert.ErrorIs(t, err, apperrors.ErrApplicationNotFound)

	_, err = st.FindApplicationByID(kept.ID)
	assert.NoError(t, err)

	assert.ErrorIs(t, st.DeleteScholarship("sch-1"), apperrors.ErrScholarshipNotFound)
}

func TestUpdateApplicationStatusKeepsSubmissionFacts(t *testing.T) {
	st := newTestStore(t)

	app := st.AddApplication(models.Application{
		StudentID:     "student-1",
		ScholarshipID: "sch-1",
		Status:        models.StatusPending,
	})

	notes := "strong academic record"
	updated, err := st.UpdateApplicationStatus(app.ID, models.StatusApproved, &notes)
	require.NoError(t, err)

	assert.Equal(t, models.StatusApproved, updated.Status)
	require.NotNil(t, updated.AdminNotes)
	assert.Equal(t, notes, *updated.AdminNotes)
	assert.Equal(t, app.SubmittedAt, updated.SubmittedAt)
	assert.Equal(t, app.StudentID, updated.StudentID)
	assert.Equal(t, app.ScholarshipID, updated.ScholarshipID)

	// Nil notes leave the previous notes alone
	again, err := st.UpdateApplicationStatus(app.ID, models.StatusUnderReview, nil)
	require.NoError(t, err)
	require.NotNil(t, again.AdminNotes)
	assert.Equal(t, notes, *again.AdminNotes)

	_, err = st.UpdateApplicationStatus("missing", models.StatusApproved, nil)
	assert.ErrorIs(t, err, apperrors.ErrApplicationNotFound)
}

func TestHasApplied(t *testing.T) {
	st := newTestStore(t)

	assert.False(t, st.HasApplied("student-1", "sch-1"))

	st.AddApplication(models.Application{
		StudentID:     "student-1",
		ScholarshipID: "sch-1",
		Status:        models.StatusPending,
	})

	assert.True(t, st.HasApplied("student-1", "sch-1"))
	assert.False(t, st.HasApplied("student-1", "sch-2"))
	assert.False(t, st.HasApplied("someone-else", "sch-1"))
}

func TestListActiveScholarshipsFiltersInactive(t *testing.T) {
	st := newTestStore(t)

	inactive := false
	_, err := st.UpdateScholarship("sch-2", models.ScholarshipPatch{IsActive: &inactive})
	require.NoError(t, err)

	active := st.ListActiveScholarships()
	assert.Len(t, active, 2)
	for _, sch := range active {
		assert.NotEqual(t, "sch-2", sch.ID)
	}

	assert.Len(t, st.ListScholarships(), 3)
}

func TestSubscribeReceivesCommittedEvents(t *testing.T) {
	st := newTestStore(t)

	var got []Event
	st.Subscribe(func(ev Event) { got = append(got, ev) })

	sch := st.AddScholarship(models.Scholarship{
		Title:    "Arts Grant",
		Amount:   10000,
		Deadline: "2025-06-01",
		Category: models.CategoryOther,
		IsActive: true,
	})

	require.Len(t, got, 1)
	assert.Equal(t, EntityScholarship, got[0].Entity)
	assert.Equal(t, ActionCreated, got[0].Action)
	assert.Equal(t, sch.ID, got[0].ID)

	app := st.AddApplication(models.Application{
		StudentID:     "student-1",
		ScholarshipID: sch.ID,
		Status:        models.StatusPending,
	})
	require.NoError(t, st.DeleteScholarship(sch.ID))

	// Delete emits one event for the scholarship and one per cascaded
	// application
	require.Len(t, got, 4)
	assert.Equal(t, Event{Entity: EntityScholarship, Action: ActionDeleted, ID: sch.ID}, got[2])
	assert.Equal(t, Event{Entity: EntityApplication, Action: ActionDeleted, ID: app.ID}, got[3])
}
