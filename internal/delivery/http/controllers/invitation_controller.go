package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"invitationtracker/internal/delivery/http/helpers"
	"invitationtracker/internal/domain"
)

// ListInvitationsResponse is the success body for GET /invitations.
// TotalPeople sums people over Data only.
type ListInvitationsResponse struct {
	Success          bool                 `json:"success"`
	Data             []*domain.Invitation `json:"data"`
	TotalInvitations int                  `json:"totalInvitations"`
	TotalPeople      int                  `json:"totalPeople"`
}

// CreateInvitationRequest is the request body for POST /invitations. Any other field is rejected.
type CreateInvitationRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Area    string `json:"area"`
	Phone   string `json:"phone"`
	People  *int   `json:"people"`
}

// Validate implements helpers.Validator.
func (c CreateInvitationRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(c.Area) == "" {
		errs = append(errs, "area is required")
	}
	if c.People == nil {
		errs = append(errs, "people is required")
	}
	return errs
}

// UpdateInvitationRequest is the request body for PUT /invitations. Omitted fields keep their value.
type UpdateInvitationRequest struct {
	ID      string  `json:"_id"`
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Area    *string `json:"area"`
	Phone   *string `json:"phone"`
	People  *int    `json:"people"`
}

// Validate implements helpers.Validator.
func (u UpdateInvitationRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(u.ID) == "" {
		errs = append(errs, "_id is required")
	}
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		errs = append(errs, "name must not be empty")
	}
	if u.Area != nil && strings.TrimSpace(*u.Area) == "" {
		errs = append(errs, "area must not be empty")
	}
	return errs
}

type InvitationController struct {
	Logger  *slog.Logger
	Service domain.InvitationService
}

func NewInvitationController(logger *slog.Logger, svc domain.InvitationService) *InvitationController {
	return &InvitationController{
		Logger:  logger,
		Service: svc,
	}
}

// ListInvitations godoc
// @Summary List invitations
// @Description Filters by case-insensitive name substring and exact area, sorted by people (desc unless sort=asc). totalPeople sums the returned records.
// @Tags invitations
// @Produce json
// @Param name query string false "Name substring"
// @Param area query string false "Exact area name"
// @Param sort query string false "asc or desc" Enums(asc, desc)
// @Success 200 {object} controllers.ListInvitationsResponse
// @Failure 500 {object} helpers.ErrorResponse "error.code: internal_error"
// @Router /invitations [get]
func (c *InvitationController) ListInvitations(w http.ResponseWriter, r *http.Request) {
	list, err := c.Service.ListInvitations(r.Context(), helpers.ParseInvitationFilter(r))
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, ListInvitationsResponse{
		Success:          true,
		Data:             list.Invitations,
		TotalInvitations: list.TotalInvitations,
		TotalPeople:      list.TotalPeople,
	})
}

// CreateInvitation godoc
// @Summary Create an invitation
// @Description Inserts one invitation. Only name, address, area, phone and people are accepted.
// @Tags invitations
// @Accept json
// @Produce json
// @Param invitation body CreateInvitationRequest true "Invitation fields"
// @Success 201 {object} domain.Invitation
// @Failure 400 {object} helpers.ErrorResponse "error.code: bad_request"
// @Failure 500 {object} helpers.ErrorResponse "error.code: internal_error"
// @Router /invitations [post]
func (c *InvitationController) CreateInvitation(w http.ResponseWriter, r *http.Request) {
	var req CreateInvitationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	// timestamps are assigned by the service
	inv := &domain.Invitation{
		Name:    strings.TrimSpace(req.Name),
		Address: req.Address,
		Area:    strings.TrimSpace(req.Area),
		Phone:   req.Phone,
		People:  *req.People,
	}
	created, err := c.Service.CreateInvitation(r.Context(), inv)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, created)
}

// UpdateInvitation godoc
// @Summary Update an invitation
// @Description Replaces the fields present in the body on the invitation identified by _id. Last write wins.
// @Tags invitations
// @Accept json
// @Produce json
// @Param invitation body UpdateInvitationRequest true "_id plus the fields to replace"
// @Success 200 {object} domain.Invitation
// @Failure 400 {object} helpers.ErrorResponse "error.code: bad_request"
// @Failure 404 {object} helpers.ErrorResponse "error.code: not_found"
// @Failure 500 {object} helpers.ErrorResponse "error.code: internal_error"
// @Router /invitations [put]
func (c *InvitationController) UpdateInvitation(w http.ResponseWriter, r *http.Request) {
	var req UpdateInvitationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	patch := domain.InvitationPatch{
		Name:    trimmed(req.Name),
		Address: req.Address,
		Area:    trimmed(req.Area),
		Phone:   req.Phone,
		People:  req.People,
	}
	updated, err := c.Service.UpdateInvitation(r.Context(), strings.TrimSpace(req.ID), patch)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "invitation not found")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, updated)
}

// DeleteInvitation godoc
// @Summary Delete an invitation
// @Description Removes the invitation with the given id. Unknown ids succeed without effect.
// @Tags invitations
// @Produce json
// @Param id query string true "Invitation ID"
// @Success 200 {object} helpers.SuccessResponse
// @Failure 400 {object} helpers.ErrorResponse "error.code: bad_request"
// @Failure 500 {object} helpers.ErrorResponse "error.code: internal_error"
// @Router /invitations [delete]
func (c *InvitationController) DeleteInvitation(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.URL.Query().Get("id"))
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "ID required")
		return
	}
	if err := c.Service.DeleteInvitation(r.Context(), id); err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, helpers.SuccessResponse{Success: true})
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
