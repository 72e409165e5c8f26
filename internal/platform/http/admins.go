package http

import (
	"net/http"

	"github.com/scooply/creamery/internal/platform/service"
	"github.com/scooply/creamery/pkg/httpx"
	"github.com/scooply/creamery/pkg/platformsdk"
)

type AdminsHandler struct {
	OutletService *service.OutletService
}

// HandleList godoc
//
//	@Summary		List Outlet Admins
//	@Description	Returns the outlet's admin grants with user profiles. Visible to the
//	@Description	owner and existing admins.
//	@Tags			Admins
//	@Produce		json
//	@Param			id	path		string								true	"Outlet id"
//	@Success		200	{object}	platformsdk.OutletAdminListResponse	"admins"
//	@Failure		403	{object}	platformsdk.ErrorResponse			"error, error_description"
//	@Failure		404	{object}	platformsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/outlets/{id}/admins [get].
func (h *AdminsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	user, ok := authedUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	admins, err := h.OutletService.ListAdmins(r.Context(), r.PathValue("id"), user.ID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := platformsdk.OutletAdminListResponse{Admins: []platformsdk.OutletAdminResponse{}}
	for _, a := range admins {
		resp.Admins = append(resp.Admins, toAdminResponse(a))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleRemove godoc
//
//	@Summary		Revoke Outlet Admin
//	@Description	Removes a user's admin grant on the outlet. Owner only.
//	@Tags			Admins
//	@Produce		json
//	@Param			id		path	string	true	"Outlet id"
//	@Param			userID	path	string	true	"User id"
//	@Success		204	"revoked"
//	@Failure		403	{object}	platformsdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	platformsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/outlets/{id}/admins/{userID} [delete].
func (h *AdminsHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	user, ok := authedUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	err := h.OutletService.RemoveAdmin(r.Context(), r.PathValue("id"), r.PathValue("userID"), user.ID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
