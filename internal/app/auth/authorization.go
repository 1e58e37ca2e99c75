// Package auth holds the lifecycle authorization table. Every merit-list
// transition is gated here rather than by ad hoc role checks in handlers.
package auth

import (
	"fmt"

	"github.com/hosteldesk/hosteldesk/internal/app/hostelscope"
	"github.com/hosteldesk/hosteldesk/internal/app/models"
	"github.com/hosteldesk/hosteldesk/internal/pkg/apperrors"
)

// AuthorizationService answers who may drive which merit-list transition.
//
//	generate        warden (hostel admin)
//	send_for_review warden, and only for lists inside their hostel scope
//	publish         rector
type AuthorizationService struct{}

// NewAuthorizationService creates a new authorization service
func NewAuthorizationService() *AuthorizationService {
	return &AuthorizationService{}
}

// CanGenerate authorizes triggering an allocation run.
func (s *AuthorizationService) CanGenerate(actor models.Actor) error {
	if actor.Role != models.RoleWarden {
		return apperrors.NewForbiddenError("only a warden can generate merit lists")
	}
	return nil
}

// CanSendForReview authorizes forwarding a draft list to the rector. The
// warden must be scoped to a hostel whose students appear on the list; a
// warden cannot forward another hostel's list.
func (s *AuthorizationService) CanSendForReview(actor models.Actor, list *models.MeritList) error {
	if actor.Role != models.RoleWarden {
		return apperrors.NewForbiddenError("only a warden can send a list for review")
	}

	scoped, err := hostelscope.Scope(list.Students, actor.SubRole)
	if err != nil {
		return fmt.Errorf("resolving warden scope: %w", err)
	}
	if len(scoped) == 0 {
		return apperrors.NewForbiddenError("list is outside this warden's hostel scope")
	}
	return nil
}

// CanPublish authorizes publishing a reviewed list.
func (s *AuthorizationService) CanPublish(actor models.Actor) error {
	if actor.Role != models.RoleRector {
		return apperrors.NewForbiddenError("only the rector can publish a merit list")
	}
	return nil
}

// CanReviewAdmissions authorizes admin review of hostel applications.
func (s *AuthorizationService) CanReviewAdmissions(actor models.Actor) error {
	if actor.Role != models.RoleWarden {
		return apperrors.NewForbiddenError("only a warden can review admissions")
	}
	return nil
}

// CanEditSettings authorizes quota configuration changes.
func (s *AuthorizationService) CanEditSettings(actor models.Actor) error {
	if actor.Role != models.RoleWarden {
		return apperrors.NewForbiddenError("only a warden can edit merit list settings")
	}
	return nil
}
