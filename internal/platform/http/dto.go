package http

import (
	"net/http"

	"github.com/scooply/creamery/internal/platform/domain"
	"github.com/scooply/creamery/internal/platform/service"
	"github.com/scooply/creamery/pkg/httpx"
	"github.com/scooply/creamery/pkg/platformsdk"
)

// authedUser rebuilds the domain user from the verified claims on the
// request context. ok is false for anonymous requests.
func authedUser(r *http.Request) (domain.User, bool) {
	ctx := r.Context()
	id := httpx.UserIDFromCtx(ctx)
	if id == "" {
		return domain.User{}, false
	}
	return domain.User{
		ID:    id,
		Name:  httpx.UserNameFromCtx(ctx),
		Email: httpx.UserEmailFromCtx(ctx),
	}, true
}

func toOutletSummary(m service.OutletMatch) platformsdk.OutletSummary {
	return platformsdk.OutletSummary{
		ID:               m.Outlet.ID,
		Name:             m.Outlet.Name,
		Address:          m.Outlet.Address,
		Pincode:          m.Outlet.Pincode,
		Phone:            m.Outlet.Phone,
		DeliveryRadiusKm: m.Outlet.DeliveryRadiusKm,
		DistanceKm:       m.DistanceKm,
	}
}

func toOutletResponse(o domain.Outlet, callerID string) platformsdk.OutletResponse {
	return platformsdk.OutletResponse{
		ID:               o.ID,
		Name:             o.Name,
		Address:          o.Address,
		Pincode:          o.Pincode,
		Phone:            o.Phone,
		Latitude:         o.Latitude,
		Longitude:        o.Longitude,
		DeliveryRadiusKm: o.DeliveryRadiusKm,
		OwnerID:          o.OwnerID,
		IsActive:         o.IsActive,
		IsOwner:          o.OwnerID == callerID,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

func toInvitationResponse(inv domain.Invitation) platformsdk.InvitationResponse {
	return platformsdk.InvitationResponse{
		ID:         inv.ID,
		Email:      inv.Email,
		OutletID:   inv.OutletID,
		Role:       inv.Role,
		Status:     inv.Status,
		ExpiresAt:  inv.ExpiresAt,
		CreatedAt:  inv.CreatedAt,
		AcceptedAt: inv.AcceptedAt,
	}
}

func toAdminResponse(a domain.OutletAdminInfo) platformsdk.OutletAdminResponse {
	return platformsdk.OutletAdminResponse{
		OutletID:  a.OutletID,
		UserID:    a.UserID,
		Role:      a.Role,
		Name:      a.User.Name,
		Email:     a.User.Email,
		CreatedAt: a.CreatedAt,
	}
}

func toProductResponse(p domain.Product) platformsdk.ProductResponse {
	return platformsdk.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		BasePrice:   p.BasePrice,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toMenuItemResponse(m domain.MenuItem) platformsdk.MenuItemResponse {
	return platformsdk.MenuItemResponse{
		ProductID:   m.Product.ID,
		Name:        m.Name,
		Description: m.Description,
		Category:    m.Category,
		ImageURL:    m.ImageURL,
		Price:       m.Price,
	}
}

func toAgentResponse(a domain.DeliveryAgent) platformsdk.AgentResponse {
	return platformsdk.AgentResponse{
		ID:        a.ID,
		OutletID:  a.OutletID,
		Name:      a.Name,
		Phone:     a.Phone,
		Email:     a.Email,
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt,
	}
}

func toOrderResponse(o domain.Order) platformsdk.OrderResponse {
	resp := platformsdk.OrderResponse{
		ID:              o.ID,
		OutletID:        o.OutletID,
		CustomerName:    o.CustomerName,
		CustomerPhone:   o.CustomerPhone,
		CustomerEmail:   o.CustomerEmail,
		DeliveryAddress: o.DeliveryAddress,
		Pincode:         o.Pincode,
		TotalAmount:     o.TotalAmount,
		Status:          o.Status,
		DeliveryAgentID: o.DeliveryAgentID,
		Notes:           o.Notes,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
	for _, item := range o.Items {
		resp.Items = append(resp.Items, platformsdk.OrderItemResponse{
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			ProductPrice: item.ProductPrice,
			ProductImage: item.ProductImage,
			Quantity:     item.Quantity,
			Subtotal:     item.Subtotal,
		})
	}
	return resp
}

func toDeliveryOrderResponse(o service.AgentOrder) platformsdk.DeliveryOrderResponse {
	return platformsdk.DeliveryOrderResponse{
		OrderResponse: toOrderResponse(o.Order),
		OutletName:    o.Outlet.Name,
		OutletAddress: o.Outlet.Address,
		OutletPhone:   o.Outlet.Phone,
	}
}
