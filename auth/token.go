package auth

import (
	"time"
	"warehouse-portal/domain"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "warehouse-portal"

// Claims carries the authenticated user context inside the JWT.
type Claims struct {
	TenantID string      `json:"warehouse_id"`
	Address  string      `json:"address"`
	Role     domain.Role `json:"role"`
	Name     string      `json:"name,omitempty"`
	jwt.RegisteredClaims
}

func (c Claims) Principal() domain.Principal {
	return domain.Principal{TenantID: c.TenantID, Address: c.Address, Role: c.Role, Name: c.Name}
}

// TokenIssuer signs and validates session tokens with one HMAC secret.
type TokenIssuer struct {
	secret   []byte
	duration time.Duration
	now      domain.Clock
}

func NewTokenIssuer(secret string, duration time.Duration, now domain.Clock) TokenIssuer {
	return TokenIssuer{secret: []byte(secret), duration: duration, now: now}
}

// GenerateToken creates a signed HS256 token for the contact.
func (i TokenIssuer) GenerateToken(principal domain.Principal) (string, error) {
	now := i.now()
	claims := &Claims{
		TenantID: principal.TenantID,
		Address:  principal.Address,
		Role:     principal.Role,
		Name:     principal.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principal.TenantID + "/" + principal.Address,
			ExpiresAt: jwt.NewNumericDate(now.Add(i.duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// ValidateToken checks the signature, the algorithm and the expiry.
func (i TokenIssuer) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrSignatureInvalid
}
