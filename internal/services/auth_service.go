package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"travelapi/internal/domain"
	"travelapi/internal/domain/models"
	"travelapi/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const (
	DemoAccessToken = "demo-015d614f-2810-49b1-ae1b-741daffe0030"
	DemoAccountID   = "2d90f602-d860-4c3c-9725-b71dbb0327bb"
	DemoUserID      = "015d614f-2810-49b1-ae1b-741daffe0030"
	DemoUserEmail   = "mani@example.com"

	demoTokenPrefix   = "demo-"
	defaultLoginEmail = "demo@example.com"
	tokenTypeBearer   = "bearer"
)

var (
	ErrMissingBearer = domain.UnauthorizedError{Msg: "Missing bearer token"}
	ErrInvalidToken  = domain.UnauthorizedError{Msg: "Invalid token"}
)

// AuthService is stub authentication: any credentials log in. With a JWT
// secret configured it issues HS256 tokens, otherwise the fixed demo token.
type AuthService struct {
	JWTSecret []byte
	TokenTTL  time.Duration

	Now       func() time.Time
	Logger    *zap.Logger
	RequestID string
}

func (s AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s AuthService) signed() bool { return len(s.JWTSecret) > 0 }

// Login never rejects credentials; the password is ignored.
func (s AuthService) Login(email, password string) (models.LoginResponse, error) {
	_ = password
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		normalized = defaultLoginEmail
	}

	resp := models.LoginResponse{
		AccessToken: DemoAccessToken,
		TokenType:   tokenTypeBearer,
		AccountID:   DemoAccountID,
		UserID:      DemoUserID,
	}

	if s.signed() {
		ttl := s.TokenTTL
		if ttl <= 0 {
			ttl = 24 * time.Hour
		}
		now := s.now()
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub":        DemoUserID,
			"account_id": DemoAccountID,
			"email":      normalized,
			"iat":        now.Unix(),
			"exp":        now.Add(ttl).Unix(),
		})
		signedToken, err := token.SignedString(s.JWTSecret)
		if err != nil {
			return models.LoginResponse{}, domain.InternalError{Msg: "failed to sign token", Err: err}
		}
		resp.AccessToken = signedToken
	}

	utils.LogEvent(s.Logger, s.RequestID, "auth", "login", fmt.Sprintf("signed=%t", s.signed()))
	return resp, nil
}

// Authenticate resolves the Authorization header value to the current user.
func (s AuthService) Authenticate(header string) (models.CurrentUser, error) {
	if len(header) < 7 || !strings.EqualFold(header[:7], "bearer ") {
		return models.CurrentUser{}, ErrMissingBearer
	}
	token := strings.TrimSpace(strings.SplitN(header, " ", 2)[1])

	if strings.HasPrefix(token, demoTokenPrefix) {
		email := DemoUserEmail
		return models.CurrentUser{AccountID: DemoAccountID, UserID: DemoUserID, Email: &email}, nil
	}

	if s.signed() && token != "" {
		if user, err := s.parseSigned(token); err == nil {
			return user, nil
		}
	}
	return models.CurrentUser{}, ErrInvalidToken
}

func (s AuthService) parseSigned(raw string) (models.CurrentUser, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return s.JWTSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return models.CurrentUser{}, err
	}

	sub, _ := claims["sub"].(string)
	accountID, _ := claims["account_id"].(string)
	if sub == "" || accountID == "" {
		return models.CurrentUser{}, errors.New("token missing subject")
	}
	user := models.CurrentUser{AccountID: accountID, UserID: sub}
	if email, ok := claims["email"].(string); ok && email != "" {
		user.Email = &email
	}
	return user, nil
}
