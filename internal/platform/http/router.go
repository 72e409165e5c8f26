package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/scooply/creamery/internal/platform/service"
	"github.com/scooply/creamery/internal/platform/store"
	"github.com/scooply/creamery/pkg/httpx"
	"github.com/scooply/creamery/pkg/jwtx"
	"github.com/scooply/creamery/pkg/slogx"

	_ "github.com/scooply/creamery/api/platform" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store              store.Store
	ServiceAreaService *service.ServiceAreaService
	OutletService      *service.OutletService
	InviteService      *service.InviteService
	ProductService     *service.ProductService
	AgentService       *service.AgentService
	OrderService       *service.OrderService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerServiceability()
	r.registerOutlets()
	r.registerInvitations()
	r.registerProducts()
	r.registerAgents()
	r.registerOrders()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Creamery Platform API
//	@version		0.1.0
//	@description	Multi-tenant food-ordering platform core: service-area resolution,
//	@description	outlet and catalogue management, admin invitations and order fulfilment.
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT session token from the auth provider. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerServiceability() {
	h := &ServiceabilityHandler{ServiceAreaService: r.ServiceAreaService}

	// Public discovery endpoints, limited by IP.
	r.Mux.Handle("GET /v1/serviceability/pincode",
		httpx.Chain(http.HandlerFunc(h.HandlePincode),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /v1/serviceability/nearby",
		httpx.Chain(http.HandlerFunc(h.HandleNearby),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerOutlets() {
	h := &OutletsHandler{OutletService: r.OutletService}

	r.Mux.Handle("POST /v1/outlets",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/outlets",
		httpx.Chain(http.HandlerFunc(h.HandleListMine),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("PATCH /v1/outlets/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /v1/outlets/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	admins := &AdminsHandler{OutletService: r.OutletService}
	r.Mux.Handle("GET /v1/outlets/{id}/admins",
		httpx.Chain(http.HandlerFunc(admins.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("DELETE /v1/outlets/{id}/admins/{userID}",
		httpx.Chain(http.HandlerFunc(admins.HandleRemove),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerInvitations() {
	h := &InvitationsHandler{InviteService: r.InviteService}

	r.Mux.Handle("POST /v1/outlets/{id}/invitations",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/outlets/{id}/invitations",
		httpx.Chain(http.HandlerFunc(h.HandleListPending),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("DELETE /v1/outlets/{id}/invitations/{invitationID}",
		httpx.Chain(http.HandlerFunc(h.HandleCancel),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// Token consumption is the abuse target, so the tightest limit.
	r.Mux.Handle("POST /v1/invitations/accept",
		httpx.Chain(http.HandlerFunc(h.HandleAccept),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerProducts() {
	h := &ProductsHandler{ProductService: r.ProductService}

	r.Mux.Handle("GET /v1/products",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("POST /v1/products",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("PATCH /v1/products/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /v1/products/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// Menu reads are the storefront hot path.
	r.Mux.Handle("GET /v1/outlets/{id}/menu",
		httpx.Chain(http.HandlerFunc(h.HandleMenu),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("PUT /v1/outlets/{id}/products/{productID}",
		httpx.Chain(http.HandlerFunc(h.HandleSetOutletProduct),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /v1/outlets/{id}/products/{productID}",
		httpx.Chain(http.HandlerFunc(h.HandleRemoveOutletProduct),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerAgents() {
	h := &AgentsHandler{AgentService: r.AgentService}

	r.Mux.Handle("GET /v1/outlets/{id}/agents",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /v1/outlets/{id}/agents",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("PATCH /v1/outlets/{id}/agents/{agentID}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /v1/outlets/{id}/agents/{agentID}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerOrders() {
	h := &OrdersHandler{OrderService: r.OrderService}

	// Guest checkout is allowed, so placement is limited by IP.
	r.Mux.Handle("POST /v1/orders",
		httpx.Chain(http.HandlerFunc(h.HandlePlace),
			httpx.OptionalAuthnMiddleware(r.verifier),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/orders",
		httpx.Chain(http.HandlerFunc(h.HandleListMine),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /v1/outlets/{id}/orders",
		httpx.Chain(http.HandlerFunc(h.HandleListForOutlet),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /v1/delivery/orders",
		httpx.Chain(http.HandlerFunc(h.HandleListAssigned),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("PATCH /v1/outlets/{id}/orders/{orderID}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
