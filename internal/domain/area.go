package domain

import "context"

// SeedAreaNames is the fixed starter set inserted by AreaService.SeedAreas.
var SeedAreaNames = []string{"Basirhat", "Kolkata", "Barasat", "Bongaon", "Habra"}

// Area represents a named location invitees are associated with.
// swagger:model Area
type Area struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// NewArea returns a new Area with the given name. ID is set by the repository on create.
func NewArea(name string) *Area {
	return &Area{Name: name}
}

// AreaRepository defines storage for areas. Names are not unique.
type AreaRepository interface {
	List(ctx context.Context) ([]*Area, error)
	Create(ctx context.Context, area *Area) error
	// CreateMany inserts one area per name, without checking for duplicates.
	CreateMany(ctx context.Context, names []string) ([]*Area, error)
}

// AreaService defines the business operations on areas.
type AreaService interface {
	ListAreas(ctx context.Context) ([]*Area, error)
	CreateArea(ctx context.Context, name string) (*Area, error)
	SeedAreas(ctx context.Context) ([]*Area, error)
}
