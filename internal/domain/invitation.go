package domain

import (
	"context"
	"time"
)

// Invitation is one invitee group with contact details and an attendee count.
// Area is a free-standing name, not a reference to an Area record.
// swagger:model Invitation
type Invitation struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Area      string    `json:"area"`
	Phone     string    `json:"phone"`
	People    int       `json:"people"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewInvitation returns a new Invitation with the given fields. ID is set by the repository on create.
func NewInvitation(name, address, area, phone string, people int, createdAt, updatedAt time.Time) *Invitation {
	return &Invitation{
		Name:      name,
		Address:   address,
		Area:      area,
		Phone:     phone,
		People:    people,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// SortDirection orders invitation lists by people count.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ParseSortDirection returns SortAsc for "asc" and SortDesc for anything else.
func ParseSortDirection(s string) SortDirection {
	if s == string(SortAsc) {
		return SortAsc
	}
	return SortDesc
}

// InvitationFilter selects and orders invitations. Empty Name or Area means no filter.
// Name is a case-insensitive substring; Area must match exactly.
type InvitationFilter struct {
	Name string
	Area string
	Sort SortDirection
}

// InvitationPatch lists the fields to replace on update. Nil fields are left unchanged.
type InvitationPatch struct {
	Name    *string
	Address *string
	Area    *string
	Phone   *string
	People  *int
}

// InvitationList is a filtered, sorted set of invitations with its summary counters.
// TotalPeople is summed over Invitations only.
type InvitationList struct {
	Invitations      []*Invitation
	TotalInvitations int
	TotalPeople      int
}

// NewInvitationList computes the counters for the given result set.
func NewInvitationList(invitations []*Invitation) *InvitationList {
	if invitations == nil {
		invitations = []*Invitation{}
	}
	total := 0
	for _, inv := range invitations {
		total += inv.People
	}
	return &InvitationList{
		Invitations:      invitations,
		TotalInvitations: len(invitations),
		TotalPeople:      total,
	}
}

// InvitationRepository defines storage for invitations.
type InvitationRepository interface {
	List(ctx context.Context, filter InvitationFilter) ([]*Invitation, error)
	Create(ctx context.Context, inv *Invitation) error
	// Update applies the patch and sets UpdatedAt. Returns ErrNotFound for an unknown id.
	Update(ctx context.Context, id string, patch InvitationPatch, updatedAt time.Time) (*Invitation, error)
	// Delete removes the invitation. Deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) error
}

// InvitationService defines the business operations on invitations.
type InvitationService interface {
	ListInvitations(ctx context.Context, filter InvitationFilter) (*InvitationList, error)
	CreateInvitation(ctx context.Context, inv *Invitation) (*Invitation, error)
	UpdateInvitation(ctx context.Context, id string, patch InvitationPatch) (*Invitation, error)
	DeleteInvitation(ctx context.Context, id string) error
}
