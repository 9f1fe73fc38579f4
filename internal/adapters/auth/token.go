package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"conferencecentral/internal/domain"
)

type jwtClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

type jwtVerifier struct {
	secret []byte
}

// NewJWTVerifier returns a TokenVerifier that accepts HS256 JWTs signed with the given secret.
// The subject claim carries the user ID and the email claim the user's email.
func NewJWTVerifier(secret string) domain.TokenVerifier {
	return &jwtVerifier{secret: []byte(secret)}
}

func (v *jwtVerifier) Verify(tokenString string) (domain.Identity, error) {
	claims := &jwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return domain.Identity{}, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return domain.Identity{}, fmt.Errorf("invalid token")
	}
	if claims.Subject == "" {
		return domain.Identity{}, fmt.Errorf("token has no subject")
	}
	return domain.Identity{UserID: claims.Subject, Email: claims.Email}, nil
}
