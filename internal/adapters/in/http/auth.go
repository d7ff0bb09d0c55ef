package http

import (
	"errors"
	"fmt"
	"strings"

	"dronedelivery/internal/core/domain/model/identity"
	"dronedelivery/internal/core/domain/model/kernel"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

var ErrUnauthorized = errors.New("unauthorized")

const requesterKey = "requester"

// Claims carry the user id in sub and the persisted role.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenVerifier checks HS256 bearer tokens issued by the identity provider.
type TokenVerifier struct {
	secret []byte
}

func NewTokenVerifier(secret string) TokenVerifier {
	return TokenVerifier{secret: []byte(secret)}
}

// FromHeader parses an Authorization header value of the form "Bearer <jwt>".
func (v TokenVerifier) FromHeader(header string) (identity.Requester, error) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return identity.Requester{}, fmt.Errorf("%w: missing bearer token", ErrUnauthorized)
	}
	return v.Verify(strings.TrimSpace(parts[1]))
}

func (v TokenVerifier) Verify(tokenStr string) (identity.Requester, error) {
	if len(v.secret) == 0 {
		return identity.Requester{}, fmt.Errorf("%w: jwt secret is empty", ErrUnauthorized)
	}

	tok, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tok.Valid {
		if err == nil {
			err = errors.New("invalid token")
		}
		return identity.Requester{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	c, _ := tok.Claims.(*Claims)
	if c == nil || c.Subject == "" || c.Role == "" {
		return identity.Requester{}, fmt.Errorf("%w: invalid claims", ErrUnauthorized)
	}
	id, err := kernel.UUIDFromString(c.Subject)
	if err != nil {
		return identity.Requester{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}
	requester, err := identity.NewRequester(id, identity.Role(strings.ToLower(c.Role)))
	if err != nil {
		return identity.Requester{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}
	return requester, nil
}

func setRequester(ctx echo.Context, requester identity.Requester) {
	ctx.Set(requesterKey, requester)
}

// requesterFrom returns the caller authenticated by the OpenAPI middleware.
func requesterFrom(ctx echo.Context) (identity.Requester, error) {
	requester, ok := ctx.Get(requesterKey).(identity.Requester)
	if !ok {
		return identity.Requester{}, ErrUnauthorized
	}
	return requester, nil
}
