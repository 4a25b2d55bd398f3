// Package token decodes signed bearer tokens into model.TokenPayload values
// and issues them for the same claim layout.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/duccv/go-profile-guard/config"
	"github.com/duccv/go-profile-guard/internal/model"
	"github.com/duccv/go-profile-guard/pkg/cache"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

var validate = validator.New()

// Claims is the wire layout of a token. The custom claims are all optional.
type Claims struct {
	UserID *int64  `json:"userId,omitempty"`
	Email  *string `json:"email,omitempty"  validate:"omitempty,email"`
	Name   *string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Decoder verifies HS256 tokens and memoises the payloads of tokens it has
// already verified until they expire.
type Decoder struct {
	secret []byte
	issuer string
	expiry time.Duration
	cache  *cache.LRUCache[model.TokenPayload]
}

func NewDecoder(cfg config.JWTConfig) *Decoder {
	expiry := time.Duration(cfg.Expiry) * time.Second
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}

	return &Decoder{
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
		expiry: expiry,
		cache:  cache.NewLRUCache[model.TokenPayload](cfg.CacheCapacity, expiry),
	}
}

// Close stops the payload cache.
func (d *Decoder) Close() {
	d.cache.Stop()
}

// Decode verifies raw and returns its payload. Expired tokens fail with an
// error matching jwt.ErrTokenExpired; every other rejection matches
// ErrInvalidToken.
func (d *Decoder) Decode(raw string) (model.TokenPayload, error) {
	if raw == "" {
		return model.TokenPayload{}, ErrMissingToken
	}
	if len(d.secret) == 0 {
		return model.TokenPayload{}, ErrMissingSecret
	}

	if payload, ok := d.cache.Get(raw); ok {
		return payload, nil
	}

	claims, err := d.parse(raw)
	if err != nil {
		return model.TokenPayload{}, err
	}

	payload := model.NewTokenPayload(claims.UserID, claims.Email, claims.Name)

	ttl := d.expiry
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	d.cache.SetWithTTL(raw, payload, ttl)

	return payload, nil
}

func (d *Decoder) parse(raw string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if d.issuer != "" {
		opts = append(opts, jwt.WithIssuer(d.issuer))
	}

	claims := &Claims{}
	parsedToken, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (any, error) {
		return d.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !parsedToken.Valid {
		return nil, ErrInvalidToken
	}

	if err := validate.Struct(claims); err != nil {
		zap.L().Debug("Token claims failed validation", zap.Error(err))
		return nil, fmt.Errorf("%w: claims validation failed: %w", ErrInvalidToken, err)
	}

	return claims, nil
}

// Issue signs a token carrying the present fields of payload.
func (d *Decoder) Issue(payload model.TokenPayload) (string, error) {
	if len(d.secret) == 0 {
		return "", ErrMissingSecret
	}

	now := time.Now()
	claims := Claims{
		UserID: payload.UserID(),
		Email:  payload.Email(),
		Name:   payload.Name(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    d.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(d.expiry)),
		},
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(d.secret)
	if err != nil {
		return "", fmt.Errorf("token signing failed: %w", err)
	}

	return tokenString, nil
}
