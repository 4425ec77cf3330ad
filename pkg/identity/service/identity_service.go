package service

import (
	"github.com/google/uuid"

	"farmlink/entities"
)

// IdentityService is the authenticated-identity provider: it issues bearer
// tokens and resolves them back to directory actors.
type IdentityService interface {
	IssueToken(actorID uuid.UUID) (string, error)
	Resolve(token string) (*entities.Actor, error)
}
