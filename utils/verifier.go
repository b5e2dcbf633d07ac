package utils

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// Identity is the verified caller extracted from a bearer token.
type Identity struct {
	UID   string
	Email string
	Name  string
}

// TokenVerifier checks a bearer token issued by the identity provider.
// Implementations must be safe for concurrent use.
type TokenVerifier interface {
	Verify(tokenString string) (*Identity, error)
}

// JWTVerifier validates HS256 tokens signed with the identity provider's
// shared secret. Construct one at startup and inject it into the auth gate.
type JWTVerifier struct {
	secret []byte
}

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

func (v *JWTVerifier) Verify(tokenString string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	uid, _ := claims["uid"].(string)
	if uid == "" {
		// some issuers put the subject in the standard claim
		uid, _ = claims["sub"].(string)
	}
	if uid == "" {
		return nil, fmt.Errorf("token has no uid claim")
	}

	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)

	return &Identity{UID: uid, Email: email, Name: name}, nil
}

// IssueToken signs an HS256 token for the given identity. The API itself
// never issues tokens; this mirrors what the identity provider produces and
// is used by tests and local tooling.
func IssueToken(secret string, id Identity, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":   id.UID,
		"email": id.Email,
		"name":  id.Name,
		"exp":   time.Now().Add(ttl).Unix(),
	})
	return token.SignedString([]byte(secret))
}
