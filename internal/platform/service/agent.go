package service

import (
	"context"
	"errors"
	"strings"

	"github.com/scooply/creamery/internal/platform/domain"
	"github.com/scooply/creamery/internal/platform/store"
	"github.com/scooply/creamery/pkg/idx"
)

var (
	ErrAgentNotFound     = errors.New("delivery agent not found")
	ErrInvalidAgentInput = errors.New("agent name and phone are required")
)

// AgentService manages an outlet's delivery agents. Every operation
// requires the caller to manage the outlet.
type AgentService struct {
	Store   store.Store
	Outlets *OutletService
}

// CreateAgentInput is the courier record a manager submits.
type CreateAgentInput struct {
	Name  string
	Phone string
	Email string
}

func (s *AgentService) Create(ctx context.Context, outletID, callerID string, input CreateAgentInput) (domain.DeliveryAgent, error) {
	ok, err := s.Outlets.CanManage(ctx, outletID, callerID)
	if err != nil {
		return domain.DeliveryAgent{}, err
	}
	if !ok {
		return domain.DeliveryAgent{}, ErrForbidden
	}

	input.Name = strings.TrimSpace(input.Name)
	input.Phone = strings.TrimSpace(input.Phone)
	if input.Name == "" || input.Phone == "" {
		return domain.DeliveryAgent{}, ErrInvalidAgentInput
	}

	agent := domain.DeliveryAgent{
		ID:        idx.New().String(),
		OutletID:  outletID,
		Name:      input.Name,
		Phone:     input.Phone,
		Email:     strings.TrimSpace(input.Email),
		IsActive:  true,
		CreatedBy: callerID,
	}
	if err := s.Store.DeliveryAgents().CreateDeliveryAgent(ctx, agent); err != nil {
		return domain.DeliveryAgent{}, err
	}
	return agent, nil
}

func (s *AgentService) List(ctx context.Context, outletID, callerID string) ([]domain.DeliveryAgent, error) {
	ok, err := s.Outlets.CanManage(ctx, outletID, callerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}
	return s.Store.DeliveryAgents().ListDeliveryAgents(ctx, outletID)
}

func (s *AgentService) Update(ctx context.Context, outletID, agentID, callerID string, u domain.DeliveryAgentUpdate) (domain.DeliveryAgent, error) {
	agent, err := s.authorize(ctx, outletID, agentID, callerID)
	if err != nil {
		return domain.DeliveryAgent{}, err
	}

	if err := s.Store.DeliveryAgents().UpdateDeliveryAgent(ctx, agent.ID, u); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.DeliveryAgent{}, ErrAgentNotFound
		}
		return domain.DeliveryAgent{}, err
	}

	updated, err := s.Store.DeliveryAgents().GetDeliveryAgentByID(ctx, agent.ID)
	if err != nil {
		return domain.DeliveryAgent{}, err
	}
	return updated, nil
}

func (s *AgentService) Delete(ctx context.Context, outletID, agentID, callerID string) error {
	agent, err := s.authorize(ctx, outletID, agentID, callerID)
	if err != nil {
		return err
	}

	err = s.Store.DeliveryAgents().DeleteDeliveryAgent(ctx, agent.ID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrAgentNotFound
	}
	return err
}

// authorize loads the agent, confirms it belongs to the outlet and that
// the caller manages that outlet.
func (s *AgentService) authorize(ctx context.Context, outletID, agentID, callerID string) (domain.DeliveryAgent, error) {
	agent, err := s.Store.DeliveryAgents().GetDeliveryAgentByID(ctx, agentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.DeliveryAgent{}, ErrAgentNotFound
		}
		return domain.DeliveryAgent{}, err
	}
	if agent.OutletID != outletID {
		return domain.DeliveryAgent{}, ErrAgentNotFound
	}

	ok, err := s.Outlets.CanManage(ctx, outletID, callerID)
	if err != nil {
		return domain.DeliveryAgent{}, err
	}
	if !ok {
		return domain.DeliveryAgent{}, ErrForbidden
	}
	return agent, nil
}
