package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/scooply/creamery/internal/platform/service"
	"github.com/scooply/creamery/pkg/httpx"
	"github.com/scooply/creamery/pkg/platformsdk"
)

// notServiceableMessage is the caller-facing text for every "no outlets"
// outcome, whether the pincode didn't resolve or simply nothing is in
// range. The distinction lives in the logs, not the API.
const notServiceableMessage = "Sorry, we don't serve this area yet"

type ServiceabilityHandler struct {
	ServiceAreaService *service.ServiceAreaService
}

// HandlePincode godoc
//
//	@Summary		Check Serviceability By Pincode
//	@Description	Returns the outlets that can deliver to a six-digit pincode, via exact
//	@Description	pincode match or geocoded distance against each outlet's delivery radius.
//	@Tags			Serviceability
//	@Produce		json
//	@Param			pincode	query		string							true	"Six-digit pincode"
//	@Success		200		{object}	platformsdk.ServiceabilityResponse	"serviceable, outlets"
//	@Failure		400		{object}	platformsdk.ErrorResponse			"error, error_description"
//	@Router			/v1/serviceability/pincode [get].
func (h *ServiceabilityHandler) HandlePincode(w http.ResponseWriter, r *http.Request) {
	matches, err := h.ServiceAreaService.ResolveByPincode(r.Context(), r.URL.Query().Get("pincode"))
	if err != nil {
		if errors.Is(err, service.ErrLocationNotResolvable) {
			httpx.WriteJSON(w, http.StatusOK, platformsdk.ServiceabilityResponse{
				Serviceable: false,
				Message:     notServiceableMessage,
			})
			return
		}
		writeServiceError(w, r, err)
		return
	}

	writeMatches(w, matches)
}

// HandleNearby godoc
//
//	@Summary		Check Serviceability By Coordinates
//	@Description	Returns the outlets whose delivery radius covers the given point,
//	@Description	sorted nearest first. An optional max_distance_km tightens the cut-off.
//	@Tags			Serviceability
//	@Accept			json
//	@Produce		json
//	@Param			request	body		platformsdk.ServiceabilityByCoordinatesRequest	true	"Point to check"
//	@Success		200		{object}	platformsdk.ServiceabilityResponse				"serviceable, outlets"
//	@Failure		400		{object}	platformsdk.ErrorResponse						"error, error_description"
//	@Router			/v1/serviceability/nearby [post].
func (h *ServiceabilityHandler) HandleNearby(w http.ResponseWriter, r *http.Request) {
	var req platformsdk.ServiceabilityByCoordinatesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}

	matches, err := h.ServiceAreaService.ResolveByCoordinates(
		r.Context(), req.Latitude, req.Longitude, req.MaxDistanceKm)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeMatches(w, matches)
}

func writeMatches(w http.ResponseWriter, matches []service.OutletMatch) {
	if len(matches) == 0 {
		httpx.WriteJSON(w, http.StatusOK, platformsdk.ServiceabilityResponse{
			Serviceable: false,
			Message:     notServiceableMessage,
		})
		return
	}

	resp := platformsdk.ServiceabilityResponse{Serviceable: true}
	for _, m := range matches {
		resp.Outlets = append(resp.Outlets, toOutletSummary(m))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}
