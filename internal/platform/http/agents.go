package http

import (
	"encoding/json"
	"net/http"

	"github.com/scooply/creamery/internal/platform/domain"
	"github.com/scooply/creamery/internal/platform/service"
	"github.com/scooply/creamery/pkg/httpx"
	"github.com/scooply/creamery/pkg/platformsdk"
)

type AgentsHandler struct {
	AgentService *service.AgentService
}

// HandleList godoc
//
//	@Summary		List Delivery Agents
//	@Description	Returns an outlet's couriers. Outlet managers only.
//	@Tags			Agents
//	@Produce		json
//	@Param			id	path		string							true	"Outlet id"
//	@Success		200	{object}	platformsdk.AgentListResponse	"agents"
//	@Failure		403	{object}	platformsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/outlets/{id}/agents [get].
func (h *AgentsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	user, ok := authedUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	agents, err := h.AgentService.List(r.Context(), r.PathValue("id"), user.ID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := platformsdk.AgentListResponse{Agents: []platformsdk.AgentResponse{}}
	for _, a := range agents {
		resp.Agents = append(resp.Agents, toAgentResponse(a))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleCreate godoc
//
//	@Summary		Create Delivery Agent
//	@Description	Registers a courier for the outlet. Outlet managers only.
//	@Tags			Agents
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Outlet id"
//	@Param			request	body		platformsdk.CreateAgentRequest	true	"Agent to register"
//	@Success		201		{object}	platformsdk.AgentResponse		"created agent"
//	@Failure		400		{object}	platformsdk.ErrorResponse		"error, error_description"
//	@Failure		403		{object}	platformsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/outlets/{id}/agents [post].
func (h *AgentsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user, ok := authedUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req platformsdk.CreateAgentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}

	agent, err := h.AgentService.Create(r.Context(), r.PathValue("id"), user.ID, service.CreateAgentInput{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toAgentResponse(agent))
}

// HandleUpdate godoc
//
//	@Summary		Update Delivery Agent
//	@Description	Applies a partial update to a courier. Outlet managers only.
//	@Tags			Agents
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Outlet id"
//	@Param			agentID	path		string							true	"Agent id"
//	@Param			request	body		platformsdk.UpdateAgentRequest	true	"Fields to change"
//	@Success		200		{object}	platformsdk.AgentResponse		"updated agent"
//	@Failure		403		{object}	platformsdk.ErrorResponse		"error, error_description"
//	@Failure		404		{object}	platformsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/outlets/{id}/agents/{agentID} [patch].
func (h *AgentsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user, ok := authedUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req platformsdk.UpdateAgentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}

	agent, err := h.AgentService.Update(r.Context(),
		r.PathValue("id"), r.PathValue("agentID"), user.ID,
		domain.DeliveryAgentUpdate{
			Name:     req.Name,
			Phone:    req.Phone,
			Email:    req.Email,
			IsActive: req.IsActive,
		})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toAgentResponse(agent))
}

// HandleDelete godoc
//
//	@Summary		Delete Delivery Agent
//	@Description	Removes a courier from the outlet. Outlet managers only.
//	@Tags			Agents
//	@Produce		json
//	@Param			id		path	string	true	"Outlet id"
//	@Param			agentID	path	string	true	"Agent id"
//	@Success		204	"deleted"
//	@Failure		403	{object}	platformsdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	platformsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/outlets/{id}/agents/{agentID} [delete].
func (h *AgentsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user, ok := authedUser(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	err := h.AgentService.Delete(r.Context(), r.PathValue("id"), r.PathValue("agentID"), user.ID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
