package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hosteldesk/hosteldesk/internal/app/auth"
	"github.com/hosteldesk/hosteldesk/internal/app/hostelscope"
	"github.com/hosteldesk/hosteldesk/internal/app/models"
	"github.com/hosteldesk/hosteldesk/internal/pkg/apperrors"
)

var (
	warden = models.Actor{StaffID: 1, Role: models.RoleWarden, SubRole: hostelscope.Shivneri}
	rector = models.Actor{StaffID: 2, Role: models.RoleRector}
)

func newMeritListService(
	meritLists *fakeMeritListStore,
	admissions *fakeAdmissionStore,
	settings *fakeSettingsStore,
	credentials *fakeCredentialStore,
	emails *fakeEmailService,
) *MeritListService {
	logger := zerolog.Nop()
	credService := NewCredentialService(credentials, emails, logger)
	return NewMeritListService(meritLists, admissions, settings, credService, auth.NewAuthorizationService(), logger)
}

func defaultQuota() *models.QuotaConfig {
	return &models.QuotaConfig{
		DepartmentSeats:     map[string]int{"CE": 5},
		CategoryPercentages: map[string]float64{models.CategoryOpen: 100},
	}
}

func acceptedBoy(id int64, marks string) models.AdmissionRecord {
	return models.AdmissionRecord{
		ID:         id,
		FullName:   "Student",
		Enrollment: "EN001",
		Email:      "s@example.com",
		Department: "CE",
		Year:       models.YearFirst,
		PrevMarks:  marks,
		Category:   models.CategoryOpen,
		Gender:     models.GenderMale,
		Status:     models.AdmissionAccepted,
	}
}

func TestGeneratePersistsDraftPerDepartment(t *testing.T) {
	meritLists := newFakeMeritListStore()
	admissions := &fakeAdmissionStore{records: []models.AdmissionRecord{
		acceptedBoy(1, "90"),
		acceptedBoy(2, "80"),
	}}
	settings := &fakeSettingsStore{cfg: defaultQuota()}
	svc := newMeritListService(meritLists, admissions, settings, newFakeCredentialStore(), &fakeEmailService{})

	lists, err := svc.Generate(context.Background(), warden)
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, models.ListDraft, lists[0].Status)
	assert.NotZero(t, lists[0].ID)
	assert.Len(t, meritLists.lists, 1)
}

func TestGenerateRequiresWarden(t *testing.T) {
	svc := newMeritListService(newFakeMeritListStore(), &fakeAdmissionStore{}, &fakeSettingsStore{cfg: defaultQuota()}, newFakeCredentialStore(), &fakeEmailService{})

	_, err := svc.Generate(context.Background(), rector)
	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))
}

func TestGenerateConfigMissing(t *testing.T) {
	admissions := &fakeAdmissionStore{records: []models.AdmissionRecord{acceptedBoy(1, "90")}}
	svc := newMeritListService(newFakeMeritListStore(), admissions, &fakeSettingsStore{}, newFakeCredentialStore(), &fakeEmailService{})

	_, err := svc.Generate(context.Background(), warden)
	assert.True(t, errors.Is(err, apperrors.ErrConfigMissing))
}

func TestGenerateNoEligibleApplicants(t *testing.T) {
	pendingOnly := acceptedBoy(1, "90")
	pendingOnly.Status = models.AdmissionPending
	admissions := &fakeAdmissionStore{records: []models.AdmissionRecord{pendingOnly}}
	svc := newMeritListService(newFakeMeritListStore(), admissions, &fakeSettingsStore{cfg: defaultQuota()}, newFakeCredentialStore(), &fakeEmailService{})

	_, err := svc.Generate(context.Background(), warden)
	assert.True(t, errors.Is(err, apperrors.ErrNoEligibleApplicants))
}

func TestSendForReviewHappyPath(t *testing.T) {
	meritLists := newFakeMeritListStore()
	require.NoError(t, meritLists.Save(context.Background(), draftList()))
	svc := newMeritListService(meritLists, &fakeAdmissionStore{}, &fakeSettingsStore{}, newFakeCredentialStore(), &fakeEmailService{})

	list, err := svc.SendForReview(context.Background(), warden, 1)
	require.NoError(t, err)
	assert.Equal(t, models.ListSentForReview, list.Status)
	assert.Equal(t, models.ListSentForReview, meritLists.lists[1].Status)
}

func TestSendForReviewOutOfScope(t *testing.T) {
	meritLists := newFakeMeritListStore()
	require.NoError(t, meritLists.Save(context.Background(), draftList()))
	svc := newMeritListService(meritLists, &fakeAdmissionStore{}, &fakeSettingsStore{}, newFakeCredentialStore(), &fakeEmailService{})

	// Saraswati houses girls; this list holds a first-year boy.
	otherWarden := models.Actor{StaffID: 3, Role: models.RoleWarden, SubRole: hostelscope.Saraswati}
	_, err := svc.SendForReview(context.Background(), otherWarden, 1)
	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))
}

func TestSendForReviewTwiceFails(t *testing.T) {
	meritLists := newFakeMeritListStore()
	require.NoError(t, meritLists.Save(context.Background(), draftList()))
	svc := newMeritListService(meritLists, &fakeAdmissionStore{}, &fakeSettingsStore{}, newFakeCredentialStore(), &fakeEmailService{})

	_, err := svc.SendForReview(context.Background(), warden, 1)
	require.NoError(t, err)

	_, err = svc.SendForReview(context.Background(), warden, 1)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidTransition))
}

func TestSendForReviewLostRaceIsConflict(t *testing.T) {
	meritLists := newFakeMeritListStore()
	require.NoError(t, meritLists.Save(context.Background(), draftList()))
	meritLists.casDenied = true
	svc := newMeritListService(meritLists, &fakeAdmissionStore{}, &fakeSettingsStore{}, newFakeCredentialStore(), &fakeEmailService{})

	_, err := svc.SendForReview(context.Background(), warden, 1)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
}

func TestPublishDraftFails(t *testing.T) {
	meritLists := newFakeMeritListStore()
	require.NoError(t, meritLists.Save(context.Background(), draftList()))
	svc := newMeritListService(meritLists, &fakeAdmissionStore{}, &fakeSettingsStore{}, newFakeCredentialStore(), &fakeEmailService{})

	// draft must be reviewed first; publish cannot skip a state
	_, err := svc.Publish(context.Background(), rector, 1)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidTransition))
}

func TestPublishDispatchesCredentials(t *testing.T) {
	meritLists := newFakeMeritListStore()
	l := draftList()
	l.Status = models.ListSentForReview
	require.NoError(t, meritLists.Save(context.Background(), l))

	credentials := newFakeCredentialStore()
	emails := &fakeEmailService{}
	svc := newMeritListService(meritLists, &fakeAdmissionStore{}, &fakeSettingsStore{}, credentials, emails)

	list, err := svc.Publish(context.Background(), rector, 1)
	require.NoError(t, err)
	assert.Equal(t, models.ListPublished, list.Status)
	assert.True(t, credentials.issued[10])
	assert.Equal(t, 1, emails.emailsTo("boy@example.com"))
}

func TestPublishRequiresRector(t *testing.T) {
	meritLists := newFakeMeritListStore()
	l := draftList()
	l.Status = models.ListSentForReview
	require.NoError(t, meritLists.Save(context.Background(), l))
	svc := newMeritListService(meritLists, &fakeAdmissionStore{}, &fakeSettingsStore{}, newFakeCredentialStore(), &fakeEmailService{})

	_, err := svc.Publish(context.Background(), warden, 1)
	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))
}

func TestPublishSurvivesDispatchFailure(t *testing.T) {
	meritLists := newFakeMeritListStore()
	l := draftList()
	l.Status = models.ListSentForReview
	require.NoError(t, meritLists.Save(context.Background(), l))

	emails := &fakeEmailService{failFor: map[string]error{"boy@example.com": errBoom}}
	svc := newMeritListService(meritLists, &fakeAdmissionStore{}, &fakeSettingsStore{}, newFakeCredentialStore(), emails)

	list, err := svc.Publish(context.Background(), rector, 1)
	require.NoError(t, err)
	assert.Equal(t, models.ListPublished, list.Status)
	assert.Equal(t, models.ListPublished, meritLists.lists[1].Status)
}

func TestRedispatchSkipsCredentialedStudents(t *testing.T) {
	meritLists := newFakeMeritListStore()
	l := draftList()
	l.Status = models.ListSentForReview
	require.NoError(t, meritLists.Save(context.Background(), l))

	credentials := newFakeCredentialStore()
	emails := &fakeEmailService{}
	svc := newMeritListService(meritLists, &fakeAdmissionStore{}, &fakeSettingsStore{}, credentials, emails)

	_, err := svc.Publish(context.Background(), rector, 1)
	require.NoError(t, err)
	require.NoError(t, svc.RedispatchCredentials(context.Background(), rector, 1))

	// second dispatch found the credential already issued and sent nothing
	assert.Equal(t, 1, emails.emailsTo("boy@example.com"))
}

func TestRedispatchRequiresPublishedList(t *testing.T) {
	meritLists := newFakeMeritListStore()
	require.NoError(t, meritLists.Save(context.Background(), draftList()))
	svc := newMeritListService(meritLists, &fakeAdmissionStore{}, &fakeSettingsStore{}, newFakeCredentialStore(), &fakeEmailService{})

	err := svc.RedispatchCredentials(context.Background(), rector, 1)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidTransition))
}

func TestListForActorWardenSeesScopedDrafts(t *testing.T) {
	meritLists := newFakeMeritListStore()
	require.NoError(t, meritLists.Save(context.Background(), draftList()))
	svc := newMeritListService(meritLists, &fakeAdmissionStore{}, &fakeSettingsStore{}, newFakeCredentialStore(), &fakeEmailService{})

	lists, err := svc.ListForActor(context.Background(), warden, "")
	require.NoError(t, err)
	require.Len(t, lists, 1)
	require.Len(t, lists[0].Students, 1)
}

func TestListForActorRectorExcludesDrafts(t *testing.T) {
	meritLists := newFakeMeritListStore()
	require.NoError(t, meritLists.Save(context.Background(), draftList()))
	svc := newMeritListService(meritLists, &fakeAdmissionStore{}, &fakeSettingsStore{}, newFakeCredentialStore(), &fakeEmailService{})

	lists, err := svc.ListForActor(context.Background(), rector, "")
	require.NoError(t, err)
	assert.Empty(t, lists)
}

func TestListForActorRectorHostelTab(t *testing.T) {
	meritLists := newFakeMeritListStore()
	l := draftList()
	l.Status = models.ListPublished
	require.NoError(t, meritLists.Save(context.Background(), l))
	svc := newMeritListService(meritLists, &fakeAdmissionStore{}, &fakeSettingsStore{}, newFakeCredentialStore(), &fakeEmailService{})

	lists, err := svc.ListForActor(context.Background(), rector, hostelscope.Boys)
	require.NoError(t, err)
	require.Len(t, lists, 1)

	lists, err = svc.ListForActor(context.Background(), rector, hostelscope.Girls)
	require.NoError(t, err)
	assert.Empty(t, lists)

	_, err = svc.ListForActor(context.Background(), rector, "panhala")
	assert.True(t, errors.Is(err, apperrors.ErrUnknownHostelKey))
}

func TestListForActorOtherRolesForbidden(t *testing.T) {
	svc := newMeritListService(newFakeMeritListStore(), &fakeAdmissionStore{}, &fakeSettingsStore{}, newFakeCredentialStore(), &fakeEmailService{})

	watchman := models.Actor{StaffID: 4, Role: models.RoleWatchman}
	_, err := svc.ListForActor(context.Background(), watchman, "")
	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))
}

func TestPendingForWardenExcludesForwarded(t *testing.T) {
	meritLists := newFakeMeritListStore()
	require.NoError(t, meritLists.Save(context.Background(), draftList()))
	svc := newMeritListService(meritLists, &fakeAdmissionStore{}, &fakeSettingsStore{}, newFakeCredentialStore(), &fakeEmailService{})

	pending, err := svc.PendingForWarden(context.Background(), warden)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	_, err = svc.SendForReview(context.Background(), warden, 1)
	require.NoError(t, err)

	pending, err = svc.PendingForWarden(context.Background(), warden)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func draftList() *models.MeritList {
	return &models.MeritList{
		RunID:      "run",
		Department: "CE",
		Students: []models.ShortlistEntry{{
			AdmissionID:       10,
			FullName:          "First Year Boy",
			Enrollment:        "EN010",
			Email:             "boy@example.com",
			Year:              models.YearFirst,
			Gender:            models.GenderMale,
			PrevMarks:         90,
			Category:          models.CategoryOpen,
			SelectionCategory: models.CategoryOpen,
			Rank:              1,
		}},
		Status:      models.ListDraft,
		GeneratedAt: time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}
