package auth

import (
	"context"
	"fmt"

	"github.com/vidaplus/clinic-api/internal/model"
	"github.com/vidaplus/clinic-api/internal/repository"
	"github.com/vidaplus/clinic-api/pkg/auth"
	"github.com/vidaplus/clinic-api/pkg/errors"
	"github.com/vidaplus/clinic-api/pkg/security"
)

// AuthService verifies credentials and issues session tokens.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*model.TokenResponse, error)
	ValidateToken(ctx context.Context, token string) (*auth.TokenClaims, error)
}

type Service struct {
	patientRepo repository.PatientRepository
	jwtSvc      auth.JWTService
	hasher      security.PasswordHasher
}

func NewService(patientRepo repository.PatientRepository, jwtSvc auth.JWTService, hasher security.PasswordHasher) *Service {
	return &Service{
		patientRepo: patientRepo,
		jwtSvc:      jwtSvc,
		hasher:      hasher,
	}
}

// Login looks the patient up by email and compares the password against the
// stored hash. An unknown email and a wrong password are distinct failures,
// matching the published surface.
func (s *Service) Login(ctx context.Context, email, password string) (*model.TokenResponse, error) {
	patient, err := s.patientRepo.GetByEmail(ctx, email)
	if err != nil {
		if _, ok := errors.As(err); ok {
			return nil, err
		}
		return nil, fmt.Errorf("failed to look up patient: %w", err)
	}

	if err := s.hasher.Compare(patient.PasswordHash, password); err != nil {
		return nil, errors.Unauthorized("senha inválida", err)
	}

	token, err := s.jwtSvc.GenerateToken(patient.ID, patient.Email, patient.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &model.TokenResponse{Token: token}, nil
}

// ValidateToken is the synchronous verify used by the auth middleware.
func (s *Service) ValidateToken(ctx context.Context, token string) (*auth.TokenClaims, error) {
	claims, err := s.jwtSvc.ValidateToken(token)
	if err != nil {
		return nil, errors.Forbidden("token inválido ou expirado", err)
	}
	return claims, nil
}
