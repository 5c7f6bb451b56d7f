package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"invitationtracker/internal/delivery/http/helpers"
	"invitationtracker/internal/domain"
)

// CreateAreaRequest is the request body for POST /areas.
type CreateAreaRequest struct {
	Name string `json:"name"`
}

// Validate implements helpers.Validator.
func (c CreateAreaRequest) Validate() []string {
	if strings.TrimSpace(c.Name) == "" {
		return []string{"name is required"}
	}
	return nil
}

type AreaController struct {
	Logger  *slog.Logger
	Service domain.AreaService
}

func NewAreaController(logger *slog.Logger, svc domain.AreaService) *AreaController {
	return &AreaController{
		Logger:  logger,
		Service: svc,
	}
}

// ListAreas godoc
// @Summary List areas
// @Description Returns every area record in store order. Names are not unique.
// @Tags areas
// @Produce json
// @Success 200 {array} domain.Area
// @Failure 500 {object} helpers.ErrorResponse "error.code: internal_error"
// @Router /areas [get]
func (c *AreaController) ListAreas(w http.ResponseWriter, r *http.Request) {
	areas, err := c.Service.ListAreas(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, areas)
}

// CreateArea godoc
// @Summary Create an area
// @Description Inserts one area. Duplicate names are accepted.
// @Tags areas
// @Accept json
// @Produce json
// @Param area body CreateAreaRequest true "Area name"
// @Success 201 {object} domain.Area
// @Failure 400 {object} helpers.ErrorResponse "error.code: bad_request"
// @Failure 500 {object} helpers.ErrorResponse "error.code: internal_error"
// @Router /areas [post]
func (c *AreaController) CreateArea(w http.ResponseWriter, r *http.Request) {
	var req CreateAreaRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	area, err := c.Service.CreateArea(r.Context(), req.Name)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, area)
}

// SeedAreas godoc
// @Summary Seed the starter areas
// @Description Inserts the fixed starter list of areas. Not idempotent: every call adds another copy of each.
// @Tags areas
// @Produce json
// @Success 200 {object} helpers.MessageResponse
// @Failure 500 {object} helpers.ErrorResponse "error.code: internal_error"
// @Router /areas/seed [get]
func (c *AreaController) SeedAreas(w http.ResponseWriter, r *http.Request) {
	areas, err := c.Service.SeedAreas(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	c.Logger.InfoContext(r.Context(), "seeded areas", "count", len(areas))
	helpers.WriteJSON(w, http.StatusOK, helpers.MessageResponse{Message: "Seeded areas"})
}
