package repository

import (
	"github.com/google/uuid"

	"farmlink/entities"
)

// OwnershipRepository answers the Agent→Farmer→Farm edges of the hierarchy.
// A valid id with nothing behind it yields an empty result, never an error;
// only FarmByID distinguishes absence, with a not-found failure.
type OwnershipRepository interface {
	FarmersOfAgent(agentID uuid.UUID, search string) ([]entities.Actor, error)
	CoFarmersAndAgent(farmer *entities.Actor, search string) ([]entities.Actor, error)
	FarmsOfFarmer(farmerID uuid.UUID) ([]entities.Farm, error)
	FarmByID(farmID uuid.UUID) (*entities.Farm, error)
	IsOwnedBy(farmID, farmerID uuid.UUID) (bool, error)
	CreateFarm(f *entities.Farm) error
}
