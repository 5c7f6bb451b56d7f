// Package memory implements the repositories on process-local maps. State is
// lost on restart; it backs the memory:// connection string and tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"invitationtracker/internal/domain"
)

// Store holds areas and invitations. The zero value is not usable; use NewStore.
type Store struct {
	mu          sync.RWMutex
	areas       []*domain.Area
	invitations map[string]*domain.Invitation
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{invitations: make(map[string]*domain.Invitation)}
}

// Areas returns the Store as a domain.AreaRepository.
func (s *Store) Areas() domain.AreaRepository { return (*areaRepository)(s) }

// Invitations returns the Store as a domain.InvitationRepository.
func (s *Store) Invitations() domain.InvitationRepository { return (*invitationRepository)(s) }

type areaRepository Store

func (r *areaRepository) List(ctx context.Context) ([]*domain.Area, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Area, 0, len(r.areas))
	for _, a := range r.areas {
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

func (r *areaRepository) Create(ctx context.Context, a *domain.Area) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a.ID = uuid.NewString()
	cp := *a
	r.areas = append(r.areas, &cp)
	return nil
}

func (r *areaRepository) CreateMany(ctx context.Context, names []string) ([]*domain.Area, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Area, 0, len(names))
	for _, name := range names {
		a := &domain.Area{ID: uuid.NewString(), Name: name}
		cp := *a
		r.areas = append(r.areas, &cp)
		out = append(out, a)
	}
	return out, nil
}

type invitationRepository Store

func matches(inv *domain.Invitation, filter domain.InvitationFilter) bool {
	if filter.Name != "" && !strings.Contains(strings.ToLower(inv.Name), strings.ToLower(filter.Name)) {
		return false
	}
	if filter.Area != "" && inv.Area != filter.Area {
		return false
	}
	return true
}

func (r *invitationRepository) List(ctx context.Context, filter domain.InvitationFilter) ([]*domain.Invitation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Invitation, 0, len(r.invitations))
	for _, inv := range r.invitations {
		if matches(inv, filter) {
			cp := *inv
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].People != out[j].People {
			if filter.Sort == domain.SortAsc {
				return out[i].People < out[j].People
			}
			return out[i].People > out[j].People
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *invitationRepository) Create(ctx context.Context, inv *domain.Invitation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv.ID = uuid.NewString()
	cp := *inv
	r.invitations[inv.ID] = &cp
	return nil
}

func (r *invitationRepository) Update(ctx context.Context, id string, patch domain.InvitationPatch, updatedAt time.Time) (*domain.Invitation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.invitations[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if patch.Name != nil {
		inv.Name = *patch.Name
	}
	if patch.Address != nil {
		inv.Address = *patch.Address
	}
	if patch.Area != nil {
		inv.Area = *patch.Area
	}
	if patch.Phone != nil {
		inv.Phone = *patch.Phone
	}
	if patch.People != nil {
		inv.People = *patch.People
	}
	inv.UpdatedAt = updatedAt
	cp := *inv
	return &cp, nil
}

func (r *invitationRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.invitations, id)
	return nil
}
