package platform_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/scooply/creamery/internal/platform/geocode"
	httpapi "github.com/scooply/creamery/internal/platform/http"
	"github.com/scooply/creamery/internal/platform/mail"
	"github.com/scooply/creamery/internal/platform/service"
	"github.com/scooply/creamery/internal/platform/store"
	"github.com/scooply/creamery/internal/platform/store/drivers/sqlite"
	"github.com/scooply/creamery/pkg/jwtx"
)

/*
 * Common helpers for platform service end-to-end tests. The whole stack
 * runs in-process: an in-memory sqlite store, a stub Nominatim server, a
 * capturing mailer and the real router behind httptest.
 */

const (
	testJWTSecret = "e2e-test-secret-0123456789abcdef"
	testIssuer    = "creamery-auth"
	testBaseURL   = "https://creamery.test"
)

// geoFixtures maps Nominatim queries (by substring) to coordinates.
// Anything else resolves to nothing, which the platform treats as an
// unresolvable location.
var geoFixtures = []struct {
	needle   string
	lat, lon string
}{
	{"Koramangala", "12.9352", "77.6245"},
	{"Indiranagar", "12.9716", "77.6412"},
	{"560095", "12.9304", "77.6231"},
}

// captureMailer records invitations instead of delivering them.
type captureMailer struct {
	mu   sync.Mutex
	sent []mail.Invitation
}

func (m *captureMailer) SendInvitation(_ context.Context, inv mail.Invitation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, inv)
	return nil
}

func (m *captureMailer) last(t *testing.T) mail.Invitation {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	require.NotEmpty(t, m.sent, "expected at least one invitation email")
	return m.sent[len(m.sent)-1]
}

type testEnv struct {
	baseURL string
	store   store.Store
	mailer  *captureMailer
}

// setupPlatform boots the full service in-process and returns its base URL
// alongside handles to the store and mailer for assertions.
func setupPlatform(t *testing.T) *testEnv {
	t.Helper()

	geoSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		for _, f := range geoFixtures {
			if strings.Contains(q, f.needle) {
				fmt.Fprintf(w, `[{"lat":%q,"lon":%q}]`, f.lat, f.lon)
				return
			}
		}
		io.WriteString(w, `[]`)
	}))
	t.Cleanup(geoSrv.Close)

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	mailer := &captureMailer{}
	geocoder := geocode.NewNominatim(geoSrv.URL)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	inviteService := &service.InviteService{
		Store:      st,
		Mailer:     mailer,
		AppBaseURL: testBaseURL,
	}
	outletService := &service.OutletService{
		Store:    st,
		Geocoder: geocoder,
		Invites:  inviteService,
	}

	router := httpapi.NewRouter(
		jwtx.NewHS256([]byte(testJWTSecret), testIssuer),
		"e2e",
		st,
		logger,
	)
	router.ServiceAreaService = &service.ServiceAreaService{Store: st, Geocoder: geocoder}
	router.OutletService = outletService
	router.InviteService = inviteService
	router.ProductService = &service.ProductService{Store: st, Outlets: outletService}
	router.AgentService = &service.AgentService{Store: st, Outlets: outletService}
	router.OrderService = &service.OrderService{Store: st, Outlets: outletService}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testEnv{baseURL: srv.URL, store: st, mailer: mailer}
}

// mintToken issues an HS256 session token the way the auth provider would.
func mintToken(t *testing.T, userID, email, name string) string {
	t.Helper()

	token, err := jwtx.SignHS256(jwtx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    testIssuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Email: email,
		Name:  name,
	}, []byte(testJWTSecret))
	require.NoError(t, err)
	return token
}

// doJSON performs a request with an optional bearer token and JSON body,
// decoding the JSON response into out when out is non-nil.
func doJSON(t *testing.T, method, rawURL, token string, body, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(t.Context(), method, rawURL, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		if len(raw) > 0 {
			require.NoError(t, json.Unmarshal(raw, out),
				"decode %s %s response: %s", method, rawURL, raw)
		}
	}

	return resp.StatusCode
}

// tokenFromAcceptURL pulls the raw invitation token out of the accept link
// that was emailed to the invitee.
func tokenFromAcceptURL(t *testing.T, acceptURL string) string {
	t.Helper()

	u, err := url.Parse(acceptURL)
	require.NoError(t, err)
	token := u.Query().Get("token")
	require.NotEmpty(t, token, "accept URL %q carries no token", acceptURL)
	return token
}
