package services

import (
	"context"
	"errors"
	"warehouse-portal/auth"
	"warehouse-portal/domain"
	apperr "warehouse-portal/errors"
	"warehouse-portal/repositories"
)

type IAuthService interface {
	Login(ctx context.Context, tenantID, address, password string) (Token, error)
	Authenticate(token string) (domain.Principal, error)
}

type Token string

func (t Token) String() string {
	return string(t)
}

type AuthService struct {
	contacts repositories.IContactRepository
	issuer   auth.TokenIssuer
}

func NewAuthService(contacts repositories.IContactRepository, issuer auth.TokenIssuer) *AuthService {
	return &AuthService{contacts: contacts, issuer: issuer}
}

func (s *AuthService) Login(ctx context.Context, tenantID, address, password string) (Token, error) {
	// 1. Fetch the contact by its key
	contact, err := s.contacts.GetContact(ctx, tenantID, address)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			// Generic error to prevent address enumeration
			return "", apperr.ErrInvalidCredentials
		}
		return "", err
	}

	// 2. Compare the provided password with the stored hash
	match, err := auth.ComparePassword(password, contact.PasswordHash)
	if err != nil || !match {
		return "", apperr.ErrInvalidCredentials
	}

	// 3. Issue the JWT token
	token, err := s.issuer.GenerateToken(domain.Principal{
		TenantID: contact.TenantID,
		Address:  contact.Address,
		Role:     contact.Role,
		Name:     contact.DisplayName(),
	})
	if err != nil {
		return "", apperr.ErrTokenGeneration
	}
	return Token(token), nil
}

// Authenticate turns a bearer token back into the principal it was issued to.
func (s *AuthService) Authenticate(token string) (domain.Principal, error) {
	claims, err := s.issuer.ValidateToken(token)
	if err != nil {
		return domain.Principal{}, apperr.ErrUnauthenticated
	}
	return claims.Principal(), nil
}
