package http

import (
	"encoding/json"
	"net/http"

	"github.com/scooply/creamery/internal/platform/service"
	"github.com/scooply/creamery/pkg/httpx"
	"github.com/scooply/creamery/pkg/platformsdk"
)

type InvitationsHandler struct {
	InviteService *service.InviteService
}

// HandleCreate godoc
//
//	@Summary		Invite Outlet Admin
//	@Description	Issues a single-use, 7-day invitation for an email address to administer
//	@Description	the outlet, and emails the accept link best effort. Owner only.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Outlet id"
//	@Param			request	body		platformsdk.CreateInvitationRequest	true	"Invitee email"
//	@Success		201		{object}	platformsdk.InvitationResponse		"created invitation"
//	@Failure		400		{object}	platformsdk.ErrorResponse			"error, error_description"
//	@Failure		403		{object}	platformsdk.ErrorResponse			"error, error_description"
//	@Failure		404		{object}	platformsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/outlets/{id}/invitations [post].
func (h *InvitationsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user, ok := authedUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req platformsdk.CreateInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}
	if req.Email == "" {
		writeBadRequest(w, "email is required")
		return
	}

	inv, err := h.InviteService.Issue(r.Context(), r.PathValue("id"), req.Email, user.ID, user.Name)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toInvitationResponse(inv))
}

// HandleListPending godoc
//
//	@Summary		List Pending Invitations
//	@Description	Returns the outlet's open invitations. Owner only.
//	@Tags			Invitations
//	@Produce		json
//	@Param			id	path		string								true	"Outlet id"
//	@Success		200	{object}	platformsdk.InvitationListResponse	"invitations"
//	@Failure		403	{object}	platformsdk.ErrorResponse			"error, error_description"
//	@Failure		404	{object}	platformsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/outlets/{id}/invitations [get].
func (h *InvitationsHandler) HandleListPending(w http.ResponseWriter, r *http.Request) {
	user, ok := authedUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	pending, err := h.InviteService.ListPending(r.Context(), r.PathValue("id"), user.ID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := platformsdk.InvitationListResponse{Invitations: []platformsdk.InvitationResponse{}}
	for _, inv := range pending {
		resp.Invitations = append(resp.Invitations, toInvitationResponse(inv))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleAccept godoc
//
//	@Summary		Accept Invitation
//	@Description	Consumes an invitation token on behalf of the signed-in user, granting
//	@Description	them the invited role on the outlet. The session email must match the
//	@Description	invited address.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		platformsdk.AcceptInvitationRequest		true	"Invitation token"
//	@Success		200		{object}	platformsdk.AcceptInvitationResponse	"outlet_id, role"
//	@Failure		400		{object}	platformsdk.ErrorResponse				"error, error_description"
//	@Failure		403		{object}	platformsdk.ErrorResponse				"email mismatch"
//	@Failure		404		{object}	platformsdk.ErrorResponse				"unknown token"
//	@Failure		409		{object}	platformsdk.ErrorResponse				"already accepted / already admin"
//	@Failure		410		{object}	platformsdk.ErrorResponse				"expired"
//	@Security		BearerAuth
//	@Router			/v1/invitations/accept [post].
func (h *InvitationsHandler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	user, ok := authedUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req platformsdk.AcceptInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}
	if req.Token == "" {
		writeBadRequest(w, "token is required")
		return
	}

	grant, err := h.InviteService.Accept(r.Context(), req.Token, user)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, platformsdk.AcceptInvitationResponse{
		OutletID: grant.OutletID,
		Role:     grant.Role,
	})
}

// HandleCancel godoc
//
//	@Summary		Cancel Invitation
//	@Description	Removes a pending invitation. Owner only; accepted invitations cannot be
//	@Description	cancelled.
//	@Tags			Invitations
//	@Produce		json
//	@Param			id				path	string	true	"Outlet id"
//	@Param			invitationID	path	string	true	"Invitation id"
//	@Success		204	"cancelled"
//	@Failure		403	{object}	platformsdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	platformsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/outlets/{id}/invitations/{invitationID} [delete].
func (h *InvitationsHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	user, ok := authedUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	err := h.InviteService.Cancel(r.Context(), r.PathValue("id"), r.PathValue("invitationID"), user.ID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
