// Package auth проверяет bearer-токены внешнего провайдера идентификации
// и выпускает токены того же формата для разработки и тестов.
package auth

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Роли, которые используют транспортные адаптеры.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// DefaultTTL — срок жизни токенов, выпускаемых NewToken.
const DefaultTTL = 8 * time.Hour

// ErrInvalidToken — подпись, срок или формат токена неверны.
var ErrInvalidToken = errors.New("invalid token")

// RealmAccess — роли уровня realm (формат Keycloak).
type RealmAccess struct {
	Roles []string `json:"roles"`
}

// Claims — содержимое токена.
type Claims struct {
	PreferredUsername string      `json:"preferred_username,omitempty"`
	RealmAccess       RealmAccess `json:"realm_access"`
	jwt.RegisteredClaims
}

// HasAnyRole сообщает, есть ли у субъекта хотя бы одна из ролей.
func (c *Claims) HasAnyRole(roles ...string) bool {
	if c == nil {
		return false
	}
	for _, r := range roles {
		if slices.Contains(c.RealmAccess.Roles, r) {
			return true
		}
	}
	return false
}

// NewToken подписывает токен HS256 для subject с указанными ролями.
func NewToken(secret, subject string, roles []string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now := time.Now()
	claims := Claims{
		PreferredUsername: subject,
		RealmAccess:       RealmAccess{Roles: roles},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ParseToken проверяет подпись и срок действия и возвращает claims.
func ParseToken(secret, token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
