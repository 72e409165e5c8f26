package http

import (
	"errors"
	"net/http"

	"github.com/scooply/creamery/internal/platform/service"
	"github.com/scooply/creamery/pkg/httpx"
	"github.com/scooply/creamery/pkg/platformsdk"
	"github.com/scooply/creamery/pkg/slogx"
)

// serviceErrors maps business-rule sentinels to wire codes. Anything not
// listed is treated as an internal failure so clients can tell "your
// request was invalid" apart from "try again later".
var serviceErrors = []struct {
	err    error
	status int
	code   string
}{
	{service.ErrInvalidPincode, http.StatusBadRequest, "invalid_pincode"},
	{service.ErrInvalidCoordinates, http.StatusBadRequest, "invalid_coordinates"},
	{service.ErrInvalidOutletInput, http.StatusBadRequest, "invalid_request"},
	{service.ErrInvalidRadius, http.StatusBadRequest, "invalid_request"},
	{service.ErrNothingToUpdate, http.StatusBadRequest, "invalid_request"},
	{service.ErrInvalidInviteEmail, http.StatusBadRequest, "invalid_request"},
	{service.ErrInvalidProductInput, http.StatusBadRequest, "invalid_request"},
	{service.ErrInvalidAgentInput, http.StatusBadRequest, "invalid_request"},
	{service.ErrInvalidOrderInput, http.StatusBadRequest, "invalid_request"},
	{service.ErrInvalidStatusTransition, http.StatusBadRequest, "invalid_status_transition"},
	{service.ErrProductUnavailable, http.StatusBadRequest, "product_unavailable"},

	{service.ErrForbidden, http.StatusForbidden, "forbidden"},
	{service.ErrEmailMismatch, http.StatusForbidden, "email_mismatch"},

	{service.ErrOutletNotFound, http.StatusNotFound, "outlet_not_found"},
	{service.ErrInvitationNotFound, http.StatusNotFound, "invitation_not_found"},
	{service.ErrProductNotFound, http.StatusNotFound, "product_not_found"},
	{service.ErrAgentNotFound, http.StatusNotFound, "agent_not_found"},
	{service.ErrOrderNotFound, http.StatusNotFound, "order_not_found"},
	{service.ErrNotAnAdmin, http.StatusNotFound, "admin_not_found"},

	{service.ErrInvitationExpired, http.StatusGone, "invitation_expired"},
	{service.ErrInvitationAlreadyAccepted, http.StatusConflict, "invitation_already_accepted"},
	{service.ErrAlreadyAdmin, http.StatusConflict, "already_admin"},
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	for _, m := range serviceErrors {
		if errors.Is(err, m.err) {
			httpx.WriteJSON(w, m.status, platformsdk.ErrorResponse{
				Error:            m.code,
				ErrorDescription: m.err.Error(),
			})
			return
		}
	}

	slogx.FromContext(r.Context()).Error("unhandled service error", "err", err)
	httpx.WriteJSON(w, http.StatusInternalServerError, platformsdk.ErrorResponse{
		Error:            "internal_error",
		ErrorDescription: "Something went wrong, please try again later",
	})
}

func writeBadRequest(w http.ResponseWriter, desc string) {
	httpx.WriteJSON(w, http.StatusBadRequest, platformsdk.ErrorResponse{
		Error:            "invalid_request",
		ErrorDescription: desc,
	})
}

func writeUnauthorized(w http.ResponseWriter) {
	httpx.WriteJSON(w, http.StatusUnauthorized, platformsdk.ErrorResponse{
		Error:            "unauthorized",
		ErrorDescription: "Authentication required",
	})
}
