// Package scope composes the ownership graph with the caller's role. It
// holds no state and performs no mutation: every listing is filtered to the
// caller's subtree, and write paths require their target through it first.
package scope

import (
	"github.com/google/uuid"

	"farmlink/entities"
	"farmlink/pkg/apperr"
	idrepo "farmlink/pkg/identity/repository"
	ownrepo "farmlink/pkg/ownership/repository"
)

type Scope struct {
	actor  entities.Actor
	graph  ownrepo.OwnershipRepository
	actors idrepo.ActorRepository
}

func For(actor entities.Actor, graph ownrepo.OwnershipRepository, actors idrepo.ActorRepository) Scope {
	return Scope{actor: actor, graph: graph, actors: actors}
}

func (s Scope) Actor() entities.Actor { return s.actor }

func (s Scope) Role() entities.Role { return s.actor.Role }

// VisibleFarmers lists the chat-eligible contacts for the caller: an agent
// sees the farmers assigned to it, a farmer sees the co-farmers sharing its
// agent plus the agent itself (never the caller).
func (s Scope) VisibleFarmers(search string) ([]entities.Actor, error) {
	switch s.actor.Role {
	case entities.RoleAgent:
		return s.graph.FarmersOfAgent(s.actor.ID, search)
	default:
		return s.graph.CoFarmersAndAgent(&s.actor, search)
	}
}

// RequireFarmer resolves farmerID only when it lies inside the caller's
// subtree: an agent reaches its assigned farmers, a farmer reaches itself.
// Anything outside reads as not found.
func (s Scope) RequireFarmer(farmerID uuid.UUID) (*entities.Actor, error) {
	if s.actor.Role == entities.RoleFarmer {
		if farmerID != s.actor.ID {
			return nil, apperr.NotFound("there is no user found")
		}
		return &s.actor, nil
	}
	farmer, err := s.actors.FindByID(farmerID)
	if err != nil {
		return nil, err
	}
	if farmer.Role != entities.RoleFarmer || farmer.AgentID == nil || *farmer.AgentID != s.actor.ID {
		return nil, apperr.NotFound("there is no user found")
	}
	return farmer, nil
}

// RequireFarm resolves farmID only when the farm's owner is reachable by the
// caller.
func (s Scope) RequireFarm(farmID uuid.UUID) (*entities.Farm, error) {
	farm, err := s.graph.FarmByID(farmID)
	if err != nil {
		return nil, err
	}
	if _, err := s.RequireFarmer(farm.FarmerID); err != nil {
		return nil, apperr.NotFound("no farm found with provided id")
	}
	return farm, nil
}

// FarmsOfFarmer lists a farmer's farms after the subtree check.
func (s Scope) FarmsOfFarmer(farmerID uuid.UUID) ([]entities.Farm, error) {
	if _, err := s.RequireFarmer(farmerID); err != nil {
		return nil, err
	}
	return s.graph.FarmsOfFarmer(farmerID)
}
