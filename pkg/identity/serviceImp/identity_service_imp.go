package serviceImp

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"

	"farmlink/entities"
	"farmlink/pkg/identity/repository"
	"farmlink/pkg/identity/service"
)

type identitySvc struct {
	actors repository.ActorRepository
	secret []byte
	ttl    time.Duration
}

func New(actors repository.ActorRepository, secret string, ttl time.Duration) service.IdentityService {
	return &identitySvc{actors: actors, secret: []byte(secret), ttl: ttl}
}

func (s *identitySvc) IssueToken(actorID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.StandardClaims{
		Subject:   actorID.String(),
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(s.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *identitySvc) Resolve(token string) (*entities.Actor, error) {
	var claims jwt.StandardClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.New("token subject is not an actor id")
	}
	return s.actors.FindByID(id)
}
