// Package testutil seeds the actor hierarchy for package tests.
package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"farmlink/database"
	"farmlink/entities"
)

// DB opens an isolated in-memory database named after the test.
func DB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	return database.OpenMemory(name)
}

func Agent(t *testing.T, db *gorm.DB, name string) *entities.Actor {
	t.Helper()
	a := &entities.Actor{
		Name:        name,
		Email:       strings.ToLower(name) + "@example.com",
		PhoneNumber: "0800000000",
		Role:        entities.RoleAgent,
	}
	require.NoError(t, db.Create(a).Error)
	return a
}

func Farmer(t *testing.T, db *gorm.DB, name string, agent *entities.Actor) *entities.Actor {
	t.Helper()
	f := &entities.Actor{
		Name:        name,
		Email:       strings.ToLower(name) + "@example.com",
		PhoneNumber: "0810000000",
		Role:        entities.RoleFarmer,
		AgentID:     &agent.ID,
	}
	require.NoError(t, db.Create(f).Error)
	return f
}

func Farm(t *testing.T, db *gorm.DB, farmer *entities.Actor, area float64) *entities.Farm {
	t.Helper()
	f := &entities.Farm{AreaRai: area, FarmerID: farmer.ID}
	require.NoError(t, db.Create(f).Error)
	return f
}
