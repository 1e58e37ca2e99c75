package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/hosteldesk/hosteldesk/internal/app/allocation"
	"github.com/hosteldesk/hosteldesk/internal/app/auth"
	"github.com/hosteldesk/hosteldesk/internal/app/hostelscope"
	"github.com/hosteldesk/hosteldesk/internal/app/models"
	"github.com/hosteldesk/hosteldesk/internal/pkg/apperrors"
)

// MeritListService runs allocation and drives the list lifecycle:
// draft -> sent_for_review -> published, strictly forward.
type MeritListService struct {
	meritListRepo MeritListStore
	admissionRepo AdmissionStore
	settingsRepo  SettingsStore
	credentials   *CredentialService
	authz         *auth.AuthorizationService
	logger        zerolog.Logger
}

// NewMeritListService creates a new merit list service instance
func NewMeritListService(
	meritListRepo MeritListStore,
	admissionRepo AdmissionStore,
	settingsRepo SettingsStore,
	credentials *CredentialService,
	authz *auth.AuthorizationService,
	logger zerolog.Logger,
) *MeritListService {
	return &MeritListService{
		meritListRepo: meritListRepo,
		admissionRepo: admissionRepo,
		settingsRepo:  settingsRepo,
		credentials:   credentials,
		authz:         authz,
		logger:        logger,
	}
}

// Generate snapshots the accepted admission pool and the quota configuration,
// runs the allocation engine, and persists one draft list per department.
// Each department's list is persisted independently; a failed insert for one
// department does not invalidate the others.
func (s *MeritListService) Generate(ctx context.Context, actor models.Actor) ([]*models.MeritList, error) {
	if err := s.authz.CanGenerate(actor); err != nil {
		return nil, err
	}

	// One snapshot per run. The engine never re-reads config or admissions
	// mid-computation, so concurrent edits cannot tear a run.
	cfg, err := s.settingsRepo.GetMeritListConfig(ctx)
	if err != nil {
		return nil, err
	}

	admissions, err := s.admissionRepo.ListAccepted(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading accepted admissions: %w", err)
	}
	if len(admissions) == 0 {
		return nil, apperrors.ErrNoEligibleApplicants
	}

	lists := allocation.Allocate(admissions, *cfg, time.Now().UTC())

	var saved []*models.MeritList
	var lastErr error
	for _, list := range lists {
		if err := s.meritListRepo.Save(ctx, list); err != nil {
			s.logger.Error().Err(err).Str("department", list.Department).Msg("Failed to persist merit list")
			lastErr = err
			continue
		}
		saved = append(saved, list)
	}

	if len(saved) == 0 && lastErr != nil {
		return nil, fmt.Errorf("no merit list could be persisted: %w", lastErr)
	}
	return saved, nil
}

// ListForActor returns the role-appropriate view over the current lists.
// Wardens see their hostel's slice of every current list, drafts included.
// The rector sees current non-draft lists, optionally narrowed to one
// hostel tab; other roles have no merit list view.
func (s *MeritListService) ListForActor(ctx context.Context, actor models.Actor, hostelKey string) ([]*models.MeritList, error) {
	all, err := s.meritListRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading merit lists: %w", err)
	}

	switch actor.Role {
	case models.RoleWarden:
		return projectLists(currentSorted(all), actor.SubRole)
	case models.RoleRector:
		visible := allocation.VisibleToRector(all)
		if hostelKey == "" {
			return visible, nil
		}
		return projectLists(visible, hostelKey)
	default:
		return nil, apperrors.NewForbiddenError("role has no merit list view")
	}
}

// PendingForWarden returns the current drafts the warden can still send for
// review.
func (s *MeritListService) PendingForWarden(ctx context.Context, actor models.Actor) ([]*models.MeritList, error) {
	if actor.Role != models.RoleWarden {
		return nil, apperrors.NewForbiddenError("only a warden has a pending review queue")
	}

	all, err := s.meritListRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading merit lists: %w", err)
	}
	return allocation.PendingForWarden(all, actor.SubRole)
}

// SendForReview forwards a draft list to the rector. The status update is a
// compare-and-set so two wardens racing on the same list cannot both succeed.
func (s *MeritListService) SendForReview(ctx context.Context, actor models.Actor, listID int64) (*models.MeritList, error) {
	list, err := s.meritListRepo.GetByID(ctx, listID)
	if err != nil {
		return nil, err
	}

	if err := s.authz.CanSendForReview(actor, list); err != nil {
		return nil, err
	}
	if list.Status != models.ListDraft {
		return nil, fmt.Errorf("%w: cannot send a %s list for review", apperrors.ErrInvalidTransition, list.Status)
	}

	ok, err := s.meritListRepo.UpdateStatus(ctx, listID, models.ListDraft, models.ListSentForReview)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.NewConflictError("merit list status changed concurrently, re-read and retry")
	}

	list.Status = models.ListSentForReview
	s.logger.Info().Int64("listId", listID).Str("department", list.Department).Msg("Merit list sent for review")
	return list, nil
}

// Publish makes a reviewed list final and triggers credential dispatch for
// every student on it. Dispatch failures do not roll the status back; the
// dispatcher is idempotent and can be re-run via RedispatchCredentials.
func (s *MeritListService) Publish(ctx context.Context, actor models.Actor, listID int64) (*models.MeritList, error) {
	if err := s.authz.CanPublish(actor); err != nil {
		return nil, err
	}

	list, err := s.meritListRepo.GetByID(ctx, listID)
	if err != nil {
		return nil, err
	}
	if list.Status != models.ListSentForReview {
		return nil, fmt.Errorf("%w: cannot publish a %s list", apperrors.ErrInvalidTransition, list.Status)
	}

	ok, err := s.meritListRepo.UpdateStatus(ctx, listID, models.ListSentForReview, models.ListPublished)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.NewConflictError("merit list status changed concurrently, re-read and retry")
	}

	list.Status = models.ListPublished
	s.logger.Info().Int64("listId", listID).Str("department", list.Department).Msg("Merit list published")

	if err := s.credentials.DispatchForList(ctx, list); err != nil {
		s.logger.Error().Err(err).Int64("listId", listID).Msg("Credential dispatch incomplete, re-dispatch to finish")
	}
	return list, nil
}

// RedispatchCredentials re-runs credential dispatch for an already published
// list. Already-credentialed students are skipped, so this is safe to invoke
// any number of times.
func (s *MeritListService) RedispatchCredentials(ctx context.Context, actor models.Actor, listID int64) error {
	if err := s.authz.CanPublish(actor); err != nil {
		return err
	}

	list, err := s.meritListRepo.GetByID(ctx, listID)
	if err != nil {
		return err
	}
	if list.Status != models.ListPublished {
		return fmt.Errorf("%w: credentials are dispatched only for published lists", apperrors.ErrInvalidTransition)
	}

	return s.credentials.DispatchForList(ctx, list)
}

// projectLists narrows each list to the students inside the hostel's scope,
// dropping lists that end up empty. The stored lists are never mutated.
func projectLists(lists []*models.MeritList, hostelKey string) ([]*models.MeritList, error) {
	var out []*models.MeritList
	for _, l := range lists {
		scoped, err := hostelscope.Scope(l.Students, hostelKey)
		if err != nil {
			return nil, err
		}
		if len(scoped) == 0 {
			continue
		}
		view := *l
		view.Students = scoped
		out = append(out, &view)
	}
	return out, nil
}

func currentSorted(all []*models.MeritList) []*models.MeritList {
	current := allocation.CurrentByDepartment(all)
	out := make([]*models.MeritList, 0, len(current))
	for _, l := range current {
		out = append(out, l)
	}
	// map order is not stable; keep the view deterministic
	sort.Slice(out, func(i, j int) bool { return out[i].Department < out[j].Department })
	return out
}
