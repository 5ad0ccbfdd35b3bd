package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/kjc6735/schedule-app/internal/auth/service TokenGenerator

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/kjc6735/schedule-app/internal/auth/domain"
	autherror "github.com/kjc6735/schedule-app/internal/errors"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access_token"
	TokenTypeRefresh TokenType = "refresh_token"
)

type TokenGenerator interface {
	Generate(user *domain.User) (accessToken, refreshToken string, err error)
	VerifyAccessToken(tokenString string) (*Claims, error)
}

type TokenService struct {
	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
}

type Claims struct {
	jwt.RegisteredClaims
	UserID string      `json:"userId"`
	Role   domain.Role `json:"role"`
	Type   TokenType   `json:"type"`
}

func NewTokenService(accessSecret, refreshSecret string, accessExpiry, refreshExpiry time.Duration) *TokenService {
	return &TokenService{
		AccessTokenSecret:  accessSecret,
		RefreshTokenSecret: refreshSecret,
		AccessTokenExpiry:  accessExpiry,
		RefreshTokenExpiry: refreshExpiry,
	}
}

// Generate mints the access/refresh pair for a user. The two tokens are
// signed with independent secrets and expiry windows; nothing is stored
// server side.
func (ts *TokenService) Generate(user *domain.User) (string, string, error) {
	accessToken, err := ts.sign(user, TokenTypeAccess, ts.AccessTokenSecret, ts.AccessTokenExpiry)
	if err != nil {
		return "", "", err
	}

	refreshToken, err := ts.sign(user, TokenTypeRefresh, ts.RefreshTokenSecret, ts.RefreshTokenExpiry)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

func (ts *TokenService) sign(user *domain.User, tokenType TokenType, secret string, expiry time.Duration) (string, error) {
	now := time.Now()

	claims := Claims{
		UserID: user.UserID,
		Role:   user.Role,
		Type:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// VerifyAccessToken parses and validates an access token, collapsing
// library failures into the distinct kinds the guard reports.
func (ts *TokenService) VerifyAccessToken(tokenString string) (*Claims, error) {
	return ts.verify(tokenString, ts.AccessTokenSecret)
}

func (ts *TokenService) verify(tokenString, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, autherror.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return nil, autherror.ErrTokenNotYetValid
		case errors.Is(err, jwt.ErrTokenMalformed),
			errors.Is(err, jwt.ErrTokenSignatureInvalid),
			errors.Is(err, jwt.ErrSignatureInvalid):
			return nil, autherror.ErrTokenCorrupted
		default:
			return nil, autherror.ErrAuthFailed
		}
	}

	if !token.Valid {
		return nil, autherror.ErrAuthFailed
	}

	return claims, nil
}
