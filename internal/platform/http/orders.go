package http

import (
	"encoding/json"
	"net/http"

	"github.com/scooply/creamery/internal/platform/domain"
	"github.com/scooply/creamery/internal/platform/service"
	"github.com/scooply/creamery/pkg/httpx"
	"github.com/scooply/creamery/pkg/platformsdk"
)

type OrdersHandler struct {
	OrderService *service.OrderService
}

// HandlePlace godoc
//
//	@Summary		Place Order
//	@Description	Checks out a cart against an outlet's menu. Works with or without a
//	@Description	session; an authenticated order is linked to the caller's account.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		platformsdk.PlaceOrderRequest	true	"Checkout payload"
//	@Success		201		{object}	platformsdk.OrderResponse		"created order"
//	@Failure		400		{object}	platformsdk.ErrorResponse		"error, error_description"
//	@Failure		404		{object}	platformsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/orders [post].
func (h *OrdersHandler) HandlePlace(w http.ResponseWriter, r *http.Request) {
	var req platformsdk.PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}

	var customer *domain.User
	if user, ok := authedUser(r); ok {
		customer = &user
	}

	input := service.PlaceOrderInput{
		OutletID:        req.OutletID,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		DeliveryAddress: req.DeliveryAddress,
		Pincode:         req.Pincode,
		Notes:           req.Notes,
	}
	for _, line := range req.Items {
		input.Items = append(input.Items, service.OrderLineInput{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	order, err := h.OrderService.Place(r.Context(), customer, input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toOrderResponse(order))
}

// HandleListMine godoc
//
//	@Summary		List My Orders
//	@Description	Returns the caller's orders, newest first.
//	@Tags			Orders
//	@Produce		json
//	@Success		200	{object}	platformsdk.OrderListResponse	"orders"
//	@Security		BearerAuth
//	@Router			/v1/orders [get].
func (h *OrdersHandler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	user, ok := authedUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	orders, err := h.OrderService.ListForCustomer(r.Context(), user.ID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOrderList(w, orders)
}

// HandleListForOutlet godoc
//
//	@Summary		List Outlet Orders
//	@Description	Returns an outlet's orders, newest first. Outlet managers only.
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path		string							true	"Outlet id"
//	@Success		200	{object}	platformsdk.OrderListResponse	"orders"
//	@Failure		403	{object}	platformsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/outlets/{id}/orders [get].
func (h *OrdersHandler) HandleListForOutlet(w http.ResponseWriter, r *http.Request) {
	user, ok := authedUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	orders, err := h.OrderService.ListForOutlet(r.Context(), r.PathValue("id"), user.ID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOrderList(w, orders)
}

// HandleListAssigned godoc
//
//	@Summary		List Assigned Deliveries
//	@Description	Returns the orders assigned to the caller as a courier, newest first,
//	@Description	with pickup outlet details. The caller's email must be registered as
//	@Description	a delivery agent.
//	@Tags			Orders
//	@Produce		json
//	@Success		200	{object}	platformsdk.DeliveryOrderListResponse	"assigned orders"
//	@Failure		403	{object}	platformsdk.ErrorResponse				"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/delivery/orders [get].
func (h *OrdersHandler) HandleListAssigned(w http.ResponseWriter, r *http.Request) {
	user, ok := authedUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	orders, err := h.OrderService.ListForAgent(r.Context(), user.Email)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := platformsdk.DeliveryOrderListResponse{Orders: []platformsdk.DeliveryOrderResponse{}}
	for _, o := range orders {
		resp.Orders = append(resp.Orders, toDeliveryOrderResponse(o))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleUpdate godoc
//
//	@Summary		Update Order
//	@Description	Moves an order through fulfilment and/or assigns one of the outlet's
//	@Description	couriers. Outlet managers only.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Outlet id"
//	@Param			orderID	path		string							true	"Order id"
//	@Param			request	body		platformsdk.UpdateOrderRequest	true	"Status and/or courier"
//	@Success		200		{object}	platformsdk.OrderResponse		"updated order"
//	@Failure		400		{object}	platformsdk.ErrorResponse		"error, error_description"
//	@Failure		403		{object}	platformsdk.ErrorResponse		"error, error_description"
//	@Failure		404		{object}	platformsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/outlets/{id}/orders/{orderID} [patch].
func (h *OrdersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user, ok := authedUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req platformsdk.UpdateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}

	order, err := h.OrderService.Update(r.Context(),
		r.PathValue("id"), r.PathValue("orderID"), user.ID,
		domain.OrderUpdate{
			Status:          req.Status,
			DeliveryAgentID: req.DeliveryAgentID,
		})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toOrderResponse(order))
}

func writeOrderList(w http.ResponseWriter, orders []domain.Order) {
	resp := platformsdk.OrderListResponse{Orders: []platformsdk.OrderResponse{}}
	for _, o := range orders {
		resp.Orders = append(resp.Orders, toOrderResponse(o))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}
