package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"invitationtracker/internal/domain"
)

func seedInvitations(t *testing.T, repo domain.InvitationRepository, specs ...domain.Invitation) []*domain.Invitation {
	t.Helper()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]*domain.Invitation, 0, len(specs))
	for i, s := range specs {
		ts := base.Add(time.Duration(i) * time.Minute)
		inv := domain.NewInvitation(s.Name, s.Address, s.Area, s.Phone, s.People, ts, ts)
		require.NoError(t, repo.Create(context.Background(), inv))
		out = append(out, inv)
	}
	return out
}

func peopleOf(invs []*domain.Invitation) []int {
	out := make([]int, 0, len(invs))
	for _, inv := range invs {
		out = append(out, inv.People)
	}
	return out
}

func TestInvitationRepository_ListFiltersAndSorts(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Invitations()
	seedInvitations(t, repo,
		domain.Invitation{Name: "Ananya", Area: "Kolkata", People: 2},
		domain.Invitation{Name: "Ravi", Area: "Salt Lake", People: 9},
		domain.Invitation{Name: "Mohanan", Area: "Kolkata", People: 5},
	)

	desc, err := repo.List(ctx, domain.InvitationFilter{Sort: domain.SortDesc})
	require.NoError(t, err)
	require.Equal(t, []int{9, 5, 2}, peopleOf(desc))

	asc, err := repo.List(ctx, domain.InvitationFilter{Sort: domain.SortAsc})
	require.NoError(t, err)
	require.Equal(t, []int{2, 5, 9}, peopleOf(asc))

	byName, err := repo.List(ctx, domain.InvitationFilter{Name: "ANAN"})
	require.NoError(t, err)
	require.Equal(t, []int{5, 2}, peopleOf(byName))

	none, err := repo.List(ctx, domain.InvitationFilter{Name: "xyz"})
	require.NoError(t, err)
	require.Empty(t, none)

	prefix, err := repo.List(ctx, domain.InvitationFilter{Area: "Kolkat"})
	require.NoError(t, err)
	require.Empty(t, prefix)

	both, err := repo.List(ctx, domain.InvitationFilter{Name: "an", Area: "Kolkata", Sort: domain.SortAsc})
	require.NoError(t, err)
	require.Equal(t, []int{2, 5}, peopleOf(both))
}

func TestInvitationRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Invitations()
	created := seedInvitations(t, repo, domain.Invitation{Name: "Ravi", Area: "Salt Lake", Phone: "555", People: 4})
	id := created[0].ID

	people := 6
	later := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	got, err := repo.Update(ctx, id, domain.InvitationPatch{People: &people}, later)
	require.NoError(t, err)
	require.Equal(t, 6, got.People)
	require.Equal(t, "555", got.Phone)
	require.Equal(t, later, got.UpdatedAt)

	_, err = repo.Update(ctx, "missing", domain.InvitationPatch{People: &people}, later)
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, "missing"))
	list, err := repo.List(ctx, domain.InvitationFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, repo.Delete(ctx, id))
	list, err = repo.List(ctx, domain.InvitationFilter{})
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestInvitationRepository_ListReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Invitations()
	seedInvitations(t, repo, domain.Invitation{Name: "Ravi", Area: "Salt Lake", People: 4})

	list, err := repo.List(ctx, domain.InvitationFilter{})
	require.NoError(t, err)
	list[0].People = 100

	again, err := repo.List(ctx, domain.InvitationFilter{})
	require.NoError(t, err)
	require.Equal(t, 4, again[0].People)
}

func TestAreaRepository_CreateManyKeepsDuplicates(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Areas()

	_, err := repo.CreateMany(ctx, domain.SeedAreaNames)
	require.NoError(t, err)
	_, err = repo.CreateMany(ctx, domain.SeedAreaNames)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, domain.NewArea("Salt Lake")))

	areas, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, areas, 2*len(domain.SeedAreaNames)+1)
	require.Equal(t, areas[0].Name, areas[len(domain.SeedAreaNames)].Name)
	require.NotEqual(t, areas[0].ID, areas[len(domain.SeedAreaNames)].ID)
	require.Equal(t, "Salt Lake", areas[len(areas)-1].Name)
}
