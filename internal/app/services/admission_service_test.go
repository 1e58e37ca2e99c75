package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hosteldesk/hosteldesk/internal/app/auth"
	"github.com/hosteldesk/hosteldesk/internal/app/models"
	"github.com/hosteldesk/hosteldesk/internal/pkg/apperrors"
)

func validApplication() *models.AdmissionRecord {
	return &models.AdmissionRecord{
		FullName:   "Asha Patil",
		Enrollment: "EN2026001",
		Email:      "asha@example.com",
		Department: "CE",
		Year:       models.YearFirst,
		PrevMarks:  "88.5",
		Category:   models.CategoryOpen,
		Gender:     "Female",
	}
}

func newAdmissionService(store *fakeAdmissionStore) *AdmissionService {
	return NewAdmissionService(store, auth.NewAuthorizationService())
}

func TestSubmitForcesPendingAndNormalizesGender(t *testing.T) {
	store := &fakeAdmissionStore{}
	svc := newAdmissionService(store)

	app := validApplication()
	app.Status = models.AdmissionAccepted // client cannot pre-accept itself

	require.NoError(t, svc.Submit(context.Background(), app))
	assert.Equal(t, models.AdmissionPending, app.Status)
	assert.Equal(t, models.GenderFemale, app.Gender)
	assert.NotZero(t, app.ID)
}

func TestSubmitValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.AdmissionRecord)
	}{
		{"empty name", func(a *models.AdmissionRecord) { a.FullName = "  " }},
		{"empty enrollment", func(a *models.AdmissionRecord) { a.Enrollment = "" }},
		{"empty department", func(a *models.AdmissionRecord) { a.Department = "" }},
		{"bad year", func(a *models.AdmissionRecord) { a.Year = "4th" }},
		{"bad gender", func(a *models.AdmissionRecord) { a.Gender = "unknown" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := validApplication()
			tt.mutate(app)

			err := newAdmissionService(&fakeAdmissionStore{}).Submit(context.Background(), app)
			assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
		})
	}
}

func TestListFiltersByStatus(t *testing.T) {
	store := &fakeAdmissionStore{records: []models.AdmissionRecord{
		{ID: 1, Status: models.AdmissionPending},
		{ID: 2, Status: models.AdmissionAccepted},
		{ID: 3, Status: models.AdmissionAccepted},
	}}
	svc := newAdmissionService(store)

	all, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	accepted, err := svc.List(context.Background(), "accepted")
	require.NoError(t, err)
	assert.Len(t, accepted, 2)

	_, err = svc.List(context.Background(), "bogus")
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestReviewTransitions(t *testing.T) {
	store := &fakeAdmissionStore{records: []models.AdmissionRecord{
		{ID: 1, Status: models.AdmissionPending},
	}}
	svc := newAdmissionService(store)
	wardenActor := models.Actor{StaffID: 1, Role: models.RoleWarden}

	require.NoError(t, svc.Review(context.Background(), wardenActor, 1, models.AdmissionAccepted))
	assert.Equal(t, models.AdmissionAccepted, store.records[0].Status)

	// cannot move an application back to pending
	err := svc.Review(context.Background(), wardenActor, 1, models.AdmissionPending)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestReviewRequiresWarden(t *testing.T) {
	svc := newAdmissionService(&fakeAdmissionStore{})
	rectorActor := models.Actor{StaffID: 2, Role: models.RoleRector}

	err := svc.Review(context.Background(), rectorActor, 1, models.AdmissionAccepted)
	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))
}

func TestGetByIDValidatesID(t *testing.T) {
	svc := newAdmissionService(&fakeAdmissionStore{})

	_, err := svc.GetByID(context.Background(), 0)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}
