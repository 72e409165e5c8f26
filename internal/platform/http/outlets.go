package http

import (
	"encoding/json"
	"net/http"

	"github.com/scooply/creamery/internal/platform/domain"
	"github.com/scooply/creamery/internal/platform/service"
	"github.com/scooply/creamery/pkg/httpx"
	"github.com/scooply/creamery/pkg/platformsdk"
)

type OutletsHandler struct {
	OutletService *service.OutletService
}

// HandleCreate godoc
//
//	@Summary		Create Outlet
//	@Description	Registers a new outlet owned by the caller. The address is geocoded when
//	@Description	no explicit coordinates are supplied; an admin_email optionally issues a
//	@Description	first admin invitation alongside.
//	@Tags			Outlets
//	@Accept			json
//	@Produce		json
//	@Param			request	body		platformsdk.CreateOutletRequest	true	"Outlet to create"
//	@Success		201		{object}	platformsdk.OutletResponse		"created outlet"
//	@Failure		400		{object}	platformsdk.ErrorResponse		"error, error_description"
//	@Failure		401		{object}	platformsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/outlets [post].
func (h *OutletsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user, ok := authedUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req platformsdk.CreateOutletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}

	outlet, err := h.OutletService.Create(r.Context(), user, service.CreateOutletInput{
		Name:             req.Name,
		Address:          req.Address,
		Pincode:          req.Pincode,
		Phone:            req.Phone,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		DeliveryRadiusKm: req.DeliveryRadiusKm,
		AdminEmail:       req.AdminEmail,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toOutletResponse(outlet, user.ID))
}

// HandleListMine godoc
//
//	@Summary		List My Outlets
//	@Description	Returns the outlets the caller owns or administers. Owned outlets carry
//	@Description	is_owner=true.
//	@Tags			Outlets
//	@Produce		json
//	@Success		200	{object}	platformsdk.OutletListResponse	"outlets"
//	@Failure		401	{object}	platformsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/outlets [get].
func (h *OutletsHandler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	user, ok := authedUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	owned, administered, err := h.OutletService.ListMine(r.Context(), user.ID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := platformsdk.OutletListResponse{Outlets: []platformsdk.OutletResponse{}}
	for _, o := range owned {
		resp.Outlets = append(resp.Outlets, toOutletResponse(o, user.ID))
	}
	for _, o := range administered {
		resp.Outlets = append(resp.Outlets, toOutletResponse(o, user.ID))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleUpdate godoc
//
//	@Summary		Update Outlet
//	@Description	Applies a partial update to an outlet. Owner only. Sending a new address
//	@Description	without coordinates re-geocodes it.
//	@Tags			Outlets
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Outlet id"
//	@Param			request	body		platformsdk.UpdateOutletRequest	true	"Fields to change"
//	@Success		200		{object}	platformsdk.OutletResponse		"updated outlet"
//	@Failure		400		{object}	platformsdk.ErrorResponse		"error, error_description"
//	@Failure		403		{object}	platformsdk.ErrorResponse		"error, error_description"
//	@Failure		404		{object}	platformsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/outlets/{id} [patch].
func (h *OutletsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user, ok := authedUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req platformsdk.UpdateOutletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}

	outlet, err := h.OutletService.Update(r.Context(), r.PathValue("id"), user.ID, domain.OutletUpdate{
		Name:             req.Name,
		Address:          req.Address,
		Pincode:          req.Pincode,
		Phone:            req.Phone,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		DeliveryRadiusKm: req.DeliveryRadiusKm,
		IsActive:         req.IsActive,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toOutletResponse(outlet, user.ID))
}

// HandleDelete godoc
//
//	@Summary		Delete Outlet
//	@Description	Permanently removes an outlet and its dependent admins, invitations, menu
//	@Description	and orders. Owner only.
//	@Tags			Outlets
//	@Produce		json
//	@Param			id	path	string	true	"Outlet id"
//	@Success		204	"deleted"
//	@Failure		403	{object}	platformsdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	platformsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/outlets/{id} [delete].
func (h *OutletsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user, ok := authedUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	if err := h.OutletService.Delete(r.Context(), r.PathValue("id"), user.ID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
