package auth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hosteldesk/hosteldesk/internal/app/hostelscope"
	"github.com/hosteldesk/hosteldesk/internal/app/models"
	"github.com/hosteldesk/hosteldesk/internal/pkg/apperrors"
)

var (
	warden    = models.Actor{StaffID: 1, Role: models.RoleWarden, SubRole: hostelscope.Shivneri}
	rector    = models.Actor{StaffID: 2, Role: models.RoleRector}
	watchman  = models.Actor{StaffID: 3, Role: models.RoleWatchman}
	firstBoys = &models.MeritList{Students: []models.ShortlistEntry{
		{AdmissionID: 1, Year: models.YearFirst, Gender: models.GenderMale},
	}}
)

func TestCanGenerate(t *testing.T) {
	svc := NewAuthorizationService()

	assert.NoError(t, svc.CanGenerate(warden))
	assert.True(t, errors.Is(svc.CanGenerate(rector), apperrors.ErrPermissionDenied))
	assert.True(t, errors.Is(svc.CanGenerate(watchman), apperrors.ErrPermissionDenied))
}

func TestCanSendForReviewScoped(t *testing.T) {
	svc := NewAuthorizationService()

	assert.NoError(t, svc.CanSendForReview(warden, firstBoys))

	// girls' hostel warden cannot forward a boys' list
	saraswati := models.Actor{StaffID: 4, Role: models.RoleWarden, SubRole: hostelscope.Saraswati}
	assert.True(t, errors.Is(svc.CanSendForReview(saraswati, firstBoys), apperrors.ErrPermissionDenied))

	// non-wardens never can
	assert.True(t, errors.Is(svc.CanSendForReview(rector, firstBoys), apperrors.ErrPermissionDenied))
}

func TestCanSendForReviewBadScopeKey(t *testing.T) {
	svc := NewAuthorizationService()

	broken := models.Actor{StaffID: 5, Role: models.RoleWarden, SubRole: "panhala"}
	err := svc.CanSendForReview(broken, firstBoys)
	assert.True(t, errors.Is(err, apperrors.ErrUnknownHostelKey))
}

func TestCanPublish(t *testing.T) {
	svc := NewAuthorizationService()

	assert.NoError(t, svc.CanPublish(rector))
	assert.True(t, errors.Is(svc.CanPublish(warden), apperrors.ErrPermissionDenied))
}

func TestWardenOnlyOperations(t *testing.T) {
	svc := NewAuthorizationService()

	assert.NoError(t, svc.CanReviewAdmissions(warden))
	assert.NoError(t, svc.CanEditSettings(warden))
	assert.True(t, errors.Is(svc.CanReviewAdmissions(rector), apperrors.ErrPermissionDenied))
	assert.True(t, errors.Is(svc.CanEditSettings(rector), apperrors.ErrPermissionDenied))
}
