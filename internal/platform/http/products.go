package http

import (
	"encoding/json"
	"net/http"

	"github.com/scooply/creamery/internal/platform/domain"
	"github.com/scooply/creamery/internal/platform/service"
	"github.com/scooply/creamery/pkg/httpx"
	"github.com/scooply/creamery/pkg/platformsdk"
)

type ProductsHandler struct {
	ProductService *service.ProductService
}

// HandleList godoc
//
//	@Summary		List Products
//	@Description	Returns the shared catalogue. Pass include_inactive=true with a session
//	@Description	to include deactivated entries.
//	@Tags			Products
//	@Produce		json
//	@Param			include_inactive	query		bool						false	"Include deactivated products"
//	@Success		200					{object}	platformsdk.ProductListResponse	"products"
//	@Router			/v1/products [get].
func (h *ProductsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	includeInactive := r.URL.Query().Get("include_inactive") == "true"

	products, err := h.ProductService.List(r.Context(), includeInactive)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := platformsdk.ProductListResponse{Products: []platformsdk.ProductResponse{}}
	for _, p := range products {
		resp.Products = append(resp.Products, toProductResponse(p))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleCreate godoc
//
//	@Summary		Create Product
//	@Description	Adds a catalogue entry attributed to the caller.
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Param			request	body		platformsdk.CreateProductRequest	true	"Product to create"
//	@Success		201		{object}	platformsdk.ProductResponse			"created product"
//	@Failure		400		{object}	platformsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/products [post].
func (h *ProductsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user, ok := authedUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req platformsdk.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}

	product, err := h.ProductService.Create(r.Context(), user, service.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		BasePrice:   req.BasePrice,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toProductResponse(product))
}

// HandleUpdate godoc
//
//	@Summary		Update Product
//	@Description	Applies a partial update to a catalogue entry. Creator only.
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Product id"
//	@Param			request	body		platformsdk.UpdateProductRequest	true	"Fields to change"
//	@Success		200		{object}	platformsdk.ProductResponse			"updated product"
//	@Failure		403		{object}	platformsdk.ErrorResponse			"error, error_description"
//	@Failure		404		{object}	platformsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/products/{id} [patch].
func (h *ProductsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user, ok := authedUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req platformsdk.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}

	product, err := h.ProductService.Update(r.Context(), r.PathValue("id"), user.ID, domain.ProductUpdate{
		Name:        req.Name,
		Description: req.Description,
		BasePrice:   req.BasePrice,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		IsActive:    req.IsActive,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toProductResponse(product))
}

// HandleDelete godoc
//
//	@Summary		Delete Product
//	@Description	Removes a catalogue entry. Creator only.
//	@Tags			Products
//	@Produce		json
//	@Param			id	path	string	true	"Product id"
//	@Success		204	"deleted"
//	@Failure		403	{object}	platformsdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	platformsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/products/{id} [delete].
func (h *ProductsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user, ok := authedUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	if err := h.ProductService.Delete(r.Context(), r.PathValue("id"), user.ID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleMenu godoc
//
//	@Summary		Get Outlet Menu
//	@Description	Returns the outlet's customer-facing menu: active, available products
//	@Description	with effective prices.
//	@Tags			Products
//	@Produce		json
//	@Param			id	path		string						true	"Outlet id"
//	@Success		200	{object}	platformsdk.MenuResponse	"outlet_id, items"
//	@Failure		404	{object}	platformsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/outlets/{id}/menu [get].
func (h *ProductsHandler) HandleMenu(w http.ResponseWriter, r *http.Request) {
	outletID := r.PathValue("id")

	menu, err := h.ProductService.Menu(r.Context(), outletID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := platformsdk.MenuResponse{OutletID: outletID, Items: []platformsdk.MenuItemResponse{}}
	for _, item := range menu {
		resp.Items = append(resp.Items, toMenuItemResponse(item))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleSetOutletProduct godoc
//
//	@Summary		Set Outlet Menu Entry
//	@Description	Puts a product on the outlet's menu or adjusts its availability and
//	@Description	price override. Outlet managers only.
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Param			id			path	string								true	"Outlet id"
//	@Param			productID	path	string								true	"Product id"
//	@Param			request		body	platformsdk.SetOutletProductRequest	true	"Availability and pricing"
//	@Success		204	"saved"
//	@Failure		400	{object}	platformsdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	platformsdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	platformsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/outlets/{id}/products/{productID} [put].
func (h *ProductsHandler) HandleSetOutletProduct(w http.ResponseWriter, r *http.Request) {
	user, ok := authedUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req platformsdk.SetOutletProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}

	err := h.ProductService.SetOutletProduct(r.Context(),
		r.PathValue("id"), r.PathValue("productID"), user.ID,
		req.IsAvailable, req.CustomPrice)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleRemoveOutletProduct godoc
//
//	@Summary		Remove Outlet Menu Entry
//	@Description	Takes a product off the outlet's menu. Outlet managers only.
//	@Tags			Products
//	@Produce		json
//	@Param			id			path	string	true	"Outlet id"
//	@Param			productID	path	string	true	"Product id"
//	@Success		204	"removed"
//	@Failure		403	{object}	platformsdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	platformsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/outlets/{id}/products/{productID} [delete].
func (h *ProductsHandler) HandleRemoveOutletProduct(w http.ResponseWriter, r *http.Request) {
	user, ok := authedUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	err := h.ProductService.RemoveOutletProduct(r.Context(),
		r.PathValue("id"), r.PathValue("productID"), user.ID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
