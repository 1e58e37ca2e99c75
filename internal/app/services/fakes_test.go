package services

import (
	"context"
	"fmt"

	"github.com/hosteldesk/hosteldesk/internal/app/models"
	"github.com/hosteldesk/hosteldesk/internal/pkg/apperrors"
)

// In-memory store fakes backing the service tests.

type fakeAdmissionStore struct {
	records   []models.AdmissionRecord
	createErr error
}

func (f *fakeAdmissionStore) Create(_ context.Context, admission *models.AdmissionRecord) error {
	if f.createErr != nil {
		return f.createErr
	}
	admission.ID = int64(len(f.records) + 1)
	f.records = append(f.records, *admission)
	return nil
}

func (f *fakeAdmissionStore) GetByID(_ context.Context, id int64) (*models.AdmissionRecord, error) {
	for i := range f.records {
		if f.records[i].ID == id {
			rec := f.records[i]
			return &rec, nil
		}
	}
	return nil, apperrors.ErrAdmissionNotFound
}

func (f *fakeAdmissionStore) ListByStatus(_ context.Context, status models.AdmissionStatus) ([]models.AdmissionRecord, error) {
	var out []models.AdmissionRecord
	for _, r := range f.records {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAdmissionStore) ListAccepted(ctx context.Context) ([]models.AdmissionRecord, error) {
	return f.ListByStatus(ctx, models.AdmissionAccepted)
}

func (f *fakeAdmissionStore) ListAll(_ context.Context) ([]models.AdmissionRecord, error) {
	return append([]models.AdmissionRecord(nil), f.records...), nil
}

func (f *fakeAdmissionStore) UpdateStatus(_ context.Context, id int64, status models.AdmissionStatus) error {
	for i := range f.records {
		if f.records[i].ID == id {
			f.records[i].Status = status
			return nil
		}
	}
	return apperrors.ErrAdmissionNotFound
}

type fakeSettingsStore struct {
	cfg    *models.QuotaConfig
	getErr error
}

func (f *fakeSettingsStore) GetMeritListConfig(_ context.Context) (*models.QuotaConfig, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.cfg == nil {
		return nil, apperrors.ErrConfigMissing
	}
	return f.cfg, nil
}

func (f *fakeSettingsStore) PutMeritListConfig(_ context.Context, cfg *models.QuotaConfig) error {
	f.cfg = cfg
	return nil
}

type fakeMeritListStore struct {
	lists   map[int64]*models.MeritList
	nextID  int64
	saveErr error
	// casDenied forces UpdateStatus to report a lost race regardless of state
	casDenied bool
}

func newFakeMeritListStore() *fakeMeritListStore {
	return &fakeMeritListStore{lists: make(map[int64]*models.MeritList)}
}

func (f *fakeMeritListStore) Save(_ context.Context, list *models.MeritList) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.nextID++
	list.ID = f.nextID
	copied := *list
	f.lists[list.ID] = &copied
	return nil
}

func (f *fakeMeritListStore) GetByID(_ context.Context, id int64) (*models.MeritList, error) {
	l, ok := f.lists[id]
	if !ok {
		return nil, apperrors.ErrMeritListNotFound
	}
	copied := *l
	return &copied, nil
}

func (f *fakeMeritListStore) ListAll(_ context.Context) ([]*models.MeritList, error) {
	out := make([]*models.MeritList, 0, len(f.lists))
	for _, l := range f.lists {
		copied := *l
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeMeritListStore) UpdateStatus(_ context.Context, id int64, expected, next models.ListStatus) (bool, error) {
	if f.casDenied {
		return false, nil
	}
	l, ok := f.lists[id]
	if !ok || l.Status != expected {
		return false, nil
	}
	l.Status = next
	return true, nil
}

type fakeStaffStore struct {
	accounts map[string]*models.StaffAccount
}

func (f *fakeStaffStore) GetByUsername(_ context.Context, username string) (*models.StaffAccount, error) {
	staff, ok := f.accounts[username]
	if !ok {
		return nil, apperrors.ErrStaffNotFound
	}
	return staff, nil
}

type fakeCredentialStore struct {
	issued   map[int64]bool
	issueErr map[int64]error
}

func newFakeCredentialStore() *fakeCredentialStore {
	return &fakeCredentialStore{issued: make(map[int64]bool)}
}

func (f *fakeCredentialStore) Issue(_ context.Context, cred *models.StudentCredential) (bool, error) {
	if err := f.issueErr[cred.AdmissionID]; err != nil {
		return false, err
	}
	if f.issued[cred.AdmissionID] {
		return false, nil
	}
	f.issued[cred.AdmissionID] = true
	return true, nil
}

type sentEmail struct {
	to       string
	username string
}

type fakeEmailService struct {
	sent    []sentEmail
	failFor map[string]error
}

func (f *fakeEmailService) SendCredentialEmail(toEmail, _, username, _ string) error {
	if err := f.failFor[toEmail]; err != nil {
		return err
	}
	f.sent = append(f.sent, sentEmail{to: toEmail, username: username})
	return nil
}

func (f *fakeEmailService) emailsTo(addr string) int {
	n := 0
	for _, e := range f.sent {
		if e.to == addr {
			n++
		}
	}
	return n
}

var errBoom = fmt.Errorf("boom")
