package platform_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scooply/creamery/pkg/platformsdk"
)

const notServedMessage = "Sorry, we don't serve this area yet"

// createOutlet registers an outlet through the API and returns its
// response. Owner coordinates come from the stub geocoder unless supplied.
func createOutlet(t *testing.T, env *testEnv, token string, req platformsdk.CreateOutletRequest) platformsdk.OutletResponse {
	t.Helper()

	var outlet platformsdk.OutletResponse
	status := doJSON(t, http.MethodPost, env.baseURL+"/v1/outlets", token, req, &outlet)
	require.Equal(t, http.StatusCreated, status)
	require.NotEmpty(t, outlet.ID)
	return outlet
}

// TestServiceabilityByPincode walks the pincode check across exact
// matches, geocoded distance matches and unserved areas.
func TestServiceabilityByPincode(t *testing.T) {
	env := setupPlatform(t)
	owner := mintToken(t, "owner-1", "owner@example.com", "Owner")

	outlet := createOutlet(t, env, owner, platformsdk.CreateOutletRequest{
		Name:    "Koramangala Scoop Shop",
		Address: "80 Feet Rd, Koramangala",
		Pincode: "560034",
	})
	require.NotNil(t, outlet.Latitude, "address should have been geocoded")

	t.Run("exact pincode match", func(t *testing.T) {
		var resp platformsdk.ServiceabilityResponse
		status := doJSON(t, http.MethodGet,
			env.baseURL+"/v1/serviceability/pincode?pincode=560034", "", nil, &resp)

		require.Equal(t, http.StatusOK, status)
		require.True(t, resp.Serviceable)
		require.Len(t, resp.Outlets, 1)
		require.Equal(t, outlet.ID, resp.Outlets[0].ID)
	})

	t.Run("nearby pincode matches by distance", func(t *testing.T) {
		var resp platformsdk.ServiceabilityResponse
		status := doJSON(t, http.MethodGet,
			env.baseURL+"/v1/serviceability/pincode?pincode=560095", "", nil, &resp)

		require.Equal(t, http.StatusOK, status)
		require.True(t, resp.Serviceable)
		require.Len(t, resp.Outlets, 1)
		require.Equal(t, outlet.ID, resp.Outlets[0].ID)
		require.NotNil(t, resp.Outlets[0].DistanceKm)
		require.Less(t, *resp.Outlets[0].DistanceKm, 10.0)
	})

	t.Run("unserved pincode", func(t *testing.T) {
		var resp platformsdk.ServiceabilityResponse
		status := doJSON(t, http.MethodGet,
			env.baseURL+"/v1/serviceability/pincode?pincode=110001", "", nil, &resp)

		require.Equal(t, http.StatusOK, status)
		require.False(t, resp.Serviceable)
		require.Empty(t, resp.Outlets)
		require.Equal(t, notServedMessage, resp.Message)
	})

	t.Run("malformed pincode", func(t *testing.T) {
		var errResp platformsdk.ErrorResponse
		status := doJSON(t, http.MethodGet,
			env.baseURL+"/v1/serviceability/pincode?pincode=56003", "", nil, &errResp)

		require.Equal(t, http.StatusBadRequest, status)
		require.Equal(t, "invalid_pincode", errResp.Error)
	})
}

// TestServiceabilityByCoordinates checks the distance-based lookup.
func TestServiceabilityByCoordinates(t *testing.T) {
	env := setupPlatform(t)
	owner := mintToken(t, "owner-1", "owner@example.com", "Owner")

	outlet := createOutlet(t, env, owner, platformsdk.CreateOutletRequest{
		Name:    "Koramangala Scoop Shop",
		Address: "80 Feet Rd, Koramangala",
		Pincode: "560034",
	})

	t.Run("point inside delivery radius", func(t *testing.T) {
		var resp platformsdk.ServiceabilityResponse
		status := doJSON(t, http.MethodPost, env.baseURL+"/v1/serviceability/nearby", "",
			platformsdk.ServiceabilityByCoordinatesRequest{
				Latitude:  12.9352,
				Longitude: 77.6245,
			}, &resp)

		require.Equal(t, http.StatusOK, status)
		require.True(t, resp.Serviceable)
		require.Len(t, resp.Outlets, 1)
		require.Equal(t, outlet.ID, resp.Outlets[0].ID)
		require.NotNil(t, resp.Outlets[0].DistanceKm)
		require.Equal(t, 0.0, *resp.Outlets[0].DistanceKm)
	})

	t.Run("point outside delivery radius", func(t *testing.T) {
		var resp platformsdk.ServiceabilityResponse
		status := doJSON(t, http.MethodPost, env.baseURL+"/v1/serviceability/nearby", "",
			platformsdk.ServiceabilityByCoordinatesRequest{
				Latitude:  13.3000,
				Longitude: 77.9000,
			}, &resp)

		require.Equal(t, http.StatusOK, status)
		require.False(t, resp.Serviceable)
		require.Equal(t, notServedMessage, resp.Message)
	})

	t.Run("out of range coordinates", func(t *testing.T) {
		var errResp platformsdk.ErrorResponse
		status := doJSON(t, http.MethodPost, env.baseURL+"/v1/serviceability/nearby", "",
			platformsdk.ServiceabilityByCoordinatesRequest{
				Latitude:  95.0,
				Longitude: 77.6245,
			}, &errResp)

		require.Equal(t, http.StatusBadRequest, status)
		require.Equal(t, "invalid_coordinates", errResp.Error)
	})
}
