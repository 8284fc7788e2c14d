package usecase

import (
	"reservation-gateway/internal/pkg/jwt"
)

// TokenValidator provides staff token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (staffName, role string, err error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (string, string, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return "", "", err
	}

	return claims.StaffName, claims.Role, nil
}
