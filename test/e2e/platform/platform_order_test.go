package platform_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scooply/creamery/pkg/platformsdk"
)

// setupMenu creates an outlet with one menu item and returns both along
// with the owner's token.
func setupMenu(t *testing.T, env *testEnv) (string, platformsdk.OutletResponse, platformsdk.ProductResponse) {
	t.Helper()
	owner := mintToken(t, "owner-1", "owner@example.com", "Owner")

	lat, lon := 12.9352, 77.6245
	outlet := createOutlet(t, env, owner, platformsdk.CreateOutletRequest{
		Name:      "Koramangala Scoop Shop",
		Address:   "80 Feet Rd, Koramangala",
		Pincode:   "560034",
		Latitude:  &lat,
		Longitude: &lon,
	})

	var product platformsdk.ProductResponse
	status := doJSON(t, http.MethodPost, env.baseURL+"/v1/products", owner,
		platformsdk.CreateProductRequest{
			Name:      "Salted Caramel Tub",
			BasePrice: 120,
			Category:  "tubs",
			ImageURL:  "https://img.creamery.test/salted-caramel.jpg",
		}, &product)
	require.Equal(t, http.StatusCreated, status)

	status = doJSON(t, http.MethodPut,
		env.baseURL+"/v1/outlets/"+outlet.ID+"/products/"+product.ID, owner,
		platformsdk.SetOutletProductRequest{IsAvailable: true}, nil)
	require.Equal(t, http.StatusNoContent, status)

	return owner, outlet, product
}

// TestGuestOrderFlow places an order without a session and walks it
// through fulfilment as the outlet owner.
func TestGuestOrderFlow(t *testing.T) {
	env := setupPlatform(t)
	owner, outlet, product := setupMenu(t, env)

	t.Run("menu is public", func(t *testing.T) {
		var menu platformsdk.MenuResponse
		status := doJSON(t, http.MethodGet,
			env.baseURL+"/v1/outlets/"+outlet.ID+"/menu", "", nil, &menu)

		require.Equal(t, http.StatusOK, status)
		require.Len(t, menu.Items, 1)
		require.Equal(t, product.ID, menu.Items[0].ProductID)
		require.Equal(t, 120.0, menu.Items[0].Price)
	})

	var order platformsdk.OrderResponse
	t.Run("guest checkout", func(t *testing.T) {
		status := doJSON(t, http.MethodPost, env.baseURL+"/v1/orders", "",
			platformsdk.PlaceOrderRequest{
				OutletID:        outlet.ID,
				CustomerName:    "Walk-in Customer",
				CustomerPhone:   "9876543210",
				DeliveryAddress: "42 Jakkasandra Main Rd",
				Pincode:         "560034",
				Items: []platformsdk.OrderLineRequest{
					{ProductID: product.ID, Quantity: 2},
				},
			}, &order)

		require.Equal(t, http.StatusCreated, status)
		require.Equal(t, "pending", order.Status)
		require.Equal(t, 240.0, order.TotalAmount)
		require.Len(t, order.Items, 1)
		require.Equal(t, 2, order.Items[0].Quantity)
	})

	t.Run("owner sees and confirms the order", func(t *testing.T) {
		var list platformsdk.OrderListResponse
		status := doJSON(t, http.MethodGet,
			env.baseURL+"/v1/outlets/"+outlet.ID+"/orders", owner, nil, &list)
		require.Equal(t, http.StatusOK, status)
		require.Len(t, list.Orders, 1)

		confirmed := "confirmed"
		var updated platformsdk.OrderResponse
		status = doJSON(t, http.MethodPatch,
			env.baseURL+"/v1/outlets/"+outlet.ID+"/orders/"+order.ID, owner,
			platformsdk.UpdateOrderRequest{Status: &confirmed}, &updated)
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, "confirmed", updated.Status)
	})

	t.Run("courier assignment and delivery", func(t *testing.T) {
		var agent platformsdk.AgentResponse
		status := doJSON(t, http.MethodPost,
			env.baseURL+"/v1/outlets/"+outlet.ID+"/agents", owner,
			platformsdk.CreateAgentRequest{Name: "Ravi", Phone: "9000000001", Email: "ravi@example.com"}, &agent)
		require.Equal(t, http.StatusCreated, status)

		preparing := "preparing"
		var updated platformsdk.OrderResponse
		status = doJSON(t, http.MethodPatch,
			env.baseURL+"/v1/outlets/"+outlet.ID+"/orders/"+order.ID, owner,
			platformsdk.UpdateOrderRequest{Status: &preparing, DeliveryAgentID: &agent.ID}, &updated)
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, "preparing", updated.Status)
		require.Equal(t, agent.ID, updated.DeliveryAgentID)

		// The courier sees the assignment with pickup details.
		courier := mintToken(t, "courier-1", "ravi@example.com", "Ravi")
		var assigned platformsdk.DeliveryOrderListResponse
		status = doJSON(t, http.MethodGet, env.baseURL+"/v1/delivery/orders", courier, nil, &assigned)
		require.Equal(t, http.StatusOK, status)
		require.Len(t, assigned.Orders, 1)
		require.Equal(t, order.ID, assigned.Orders[0].ID)
		require.Equal(t, outlet.Name, assigned.Orders[0].OutletName)
		require.NotEmpty(t, assigned.Orders[0].OutletAddress)

		// Anyone else is refused.
		stranger := mintToken(t, "stranger-1", "stranger@example.com", "Stranger")
		var errResp platformsdk.ErrorResponse
		status = doJSON(t, http.MethodGet, env.baseURL+"/v1/delivery/orders", stranger, nil, &errResp)
		require.Equal(t, http.StatusForbidden, status)

		for _, next := range []string{"out_for_delivery", "delivered"} {
			status = doJSON(t, http.MethodPatch,
				env.baseURL+"/v1/outlets/"+outlet.ID+"/orders/"+order.ID, owner,
				platformsdk.UpdateOrderRequest{Status: &next}, &updated)
			require.Equal(t, http.StatusOK, status)
			require.Equal(t, next, updated.Status)
		}
	})

	t.Run("delivered order is terminal", func(t *testing.T) {
		cancelled := "cancelled"
		var errResp platformsdk.ErrorResponse
		status := doJSON(t, http.MethodPatch,
			env.baseURL+"/v1/outlets/"+outlet.ID+"/orders/"+order.ID, owner,
			platformsdk.UpdateOrderRequest{Status: &cancelled}, &errResp)

		require.Equal(t, http.StatusBadRequest, status)
		require.Equal(t, "invalid_status_transition", errResp.Error)
	})
}

// TestAuthenticatedOrderHistory links orders placed with a session to the
// customer's account.
func TestAuthenticatedOrderHistory(t *testing.T) {
	env := setupPlatform(t)
	_, outlet, product := setupMenu(t, env)

	customer := mintToken(t, "customer-1", "customer@example.com", "Customer")

	var order platformsdk.OrderResponse
	status := doJSON(t, http.MethodPost, env.baseURL+"/v1/orders", customer,
		platformsdk.PlaceOrderRequest{
			OutletID:        outlet.ID,
			CustomerName:    "Customer",
			CustomerPhone:   "9876543210",
			CustomerEmail:   "customer@example.com",
			DeliveryAddress: "42 Jakkasandra Main Rd",
			Pincode:         "560034",
			Items: []platformsdk.OrderLineRequest{
				{ProductID: product.ID, Quantity: 1},
			},
		}, &order)
	require.Equal(t, http.StatusCreated, status)

	var list platformsdk.OrderListResponse
	status = doJSON(t, http.MethodGet, env.baseURL+"/v1/orders", customer, nil, &list)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, list.Orders, 1)
	require.Equal(t, order.ID, list.Orders[0].ID)

	// A different account sees nothing.
	other := mintToken(t, "customer-2", "other@example.com", "Other")
	status = doJSON(t, http.MethodGet, env.baseURL+"/v1/orders", other, nil, &list)
	require.Equal(t, http.StatusOK, status)
	require.Empty(t, list.Orders)

	// Ordering off-menu is rejected.
	var errResp platformsdk.ErrorResponse
	status = doJSON(t, http.MethodPost, env.baseURL+"/v1/orders", customer,
		platformsdk.PlaceOrderRequest{
			OutletID:        outlet.ID,
			CustomerName:    "Customer",
			CustomerPhone:   "9876543210",
			DeliveryAddress: "42 Jakkasandra Main Rd",
			Pincode:         "560034",
			Items: []platformsdk.OrderLineRequest{
				{ProductID: "prod-does-not-exist", Quantity: 1},
			},
		}, &errResp)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "product_unavailable", errResp.Error)
}
