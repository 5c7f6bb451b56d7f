package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"invitationtracker/internal/domain"
)

type invitationService struct {
	invitationRepo domain.InvitationRepository
	now            func() time.Time
}

// NewInvitationService creates an InvitationService with the given repository.
func NewInvitationService(invitationRepo domain.InvitationRepository) domain.InvitationService {
	return &invitationService{invitationRepo: invitationRepo, now: time.Now}
}

// ListInvitations returns the matching invitations. TotalPeople covers the
// returned records only.
func (s *invitationService) ListInvitations(ctx context.Context, filter domain.InvitationFilter) (*domain.InvitationList, error) {
	if filter.Sort != domain.SortAsc {
		filter.Sort = domain.SortDesc
	}
	invitations, err := s.invitationRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list invitations: %w", err)
	}
	return domain.NewInvitationList(invitations), nil
}

func validateInvitation(inv *domain.Invitation) error {
	var missing []string
	if strings.TrimSpace(inv.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(inv.Area) == "" {
		missing = append(missing, "area")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s required", domain.ErrInvalidInput, strings.Join(missing, ", "))
	}
	return nil
}

func (s *invitationService) CreateInvitation(ctx context.Context, inv *domain.Invitation) (*domain.Invitation, error) {
	if err := validateInvitation(inv); err != nil {
		return nil, err
	}
	now := s.now()
	inv.CreatedAt, inv.UpdatedAt = now, now
	if err := s.invitationRepo.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("create invitation: %w", err)
	}
	return inv, nil
}

// UpdateInvitation replaces the fields set in patch. Returns domain.ErrNotFound for an unknown id.
func (s *invitationService) UpdateInvitation(ctx context.Context, id string, patch domain.InvitationPatch) (*domain.Invitation, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: _id is required", domain.ErrInvalidInput)
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, fmt.Errorf("%w: name must not be empty", domain.ErrInvalidInput)
	}
	if patch.Area != nil && strings.TrimSpace(*patch.Area) == "" {
		return nil, fmt.Errorf("%w: area must not be empty", domain.ErrInvalidInput)
	}
	inv, err := s.invitationRepo.Update(ctx, id, patch, s.now())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update invitation: %w", err)
	}
	return inv, nil
}

func (s *invitationService) DeleteInvitation(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id is required", domain.ErrInvalidInput)
	}
	if err := s.invitationRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete invitation: %w", err)
	}
	return nil
}
