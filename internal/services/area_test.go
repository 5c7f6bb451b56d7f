package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"invitationtracker/internal/domain"
)

type mockAreaRepository struct {
	areas   []*domain.Area
	created []string
	err     error
}

func (m *mockAreaRepository) List(ctx context.Context) ([]*domain.Area, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.areas, nil
}

func (m *mockAreaRepository) Create(ctx context.Context, area *domain.Area) error {
	if m.err != nil {
		return m.err
	}
	area.ID = "area-1"
	m.created = append(m.created, area.Name)
	return nil
}

func (m *mockAreaRepository) CreateMany(ctx context.Context, names []string) ([]*domain.Area, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]*domain.Area, 0, len(names))
	for _, n := range names {
		m.created = append(m.created, n)
		out = append(out, &domain.Area{ID: "id-" + n, Name: n})
	}
	return out, nil
}

func TestAreaService_ListAreas(t *testing.T) {
	t.Run("nil from repository becomes empty slice", func(t *testing.T) {
		svc := NewAreaService(&mockAreaRepository{})
		got, err := svc.ListAreas(context.Background())
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Empty(t, got)
	})

	t.Run("repository error is wrapped", func(t *testing.T) {
		repoErr := errors.New("db down")
		svc := NewAreaService(&mockAreaRepository{err: repoErr})
		_, err := svc.ListAreas(context.Background())
		require.ErrorIs(t, err, repoErr)
	})
}

func TestAreaService_CreateArea(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantName string
		errIs    error
	}{
		{name: "trims name", input: "  Salt Lake ", wantName: "Salt Lake"},
		{name: "blank name rejected", input: "   ", errIs: domain.ErrInvalidInput},
		{name: "empty name rejected", input: "", errIs: domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockAreaRepository{}
			svc := NewAreaService(repo)
			got, err := svc.CreateArea(context.Background(), tt.input)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				require.Empty(t, repo.created)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantName, got.Name)
			require.Equal(t, "area-1", got.ID)
		})
	}
}

func TestAreaService_SeedAreasDoesNotDeduplicate(t *testing.T) {
	repo := &mockAreaRepository{}
	svc := NewAreaService(repo)

	first, err := svc.SeedAreas(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 5)
	_, err = svc.SeedAreas(context.Background())
	require.NoError(t, err)

	require.Equal(t, append(append([]string{}, domain.SeedAreaNames...), domain.SeedAreaNames...), repo.created)
}
