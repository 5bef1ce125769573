package jwt

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/employee-dashboard-go/internal/domain/auth"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

type Service interface {
	GenerateAccessToken(userID string, employeeID *string, role user.Role, ttl time.Duration) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	tokenAuth *jwtauth.JWTAuth
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

// NewJWTService verifies HS256 tokens issued by the HRIS auth service.
func NewJWTService(secretKey string) Service {
	return &JWTService{
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

// GenerateAccessToken issues a token with the same claims the auth service
// puts in access tokens. Used by tests and cmd/devtoken.
func (j *JWTService) GenerateAccessToken(userID string, employeeID *string, role user.Role, ttl time.Duration) (token string, expiresAt int64, err error) {
	expiresAt = time.Now().Add(ttl).Unix()

	claims := map[string]interface{}{
		"user_id":     userID,
		"employee_id": returnValueOrNil(employeeID),
		"role":        string(role),
		"type":        "access",
		"exp":         expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// CallerFromContext reads the verified access token claims from ctx.
func CallerFromContext(ctx context.Context) (user.Caller, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return user.Caller{}, fmt.Errorf("%w: %v", auth.ErrInvalidToken, err)
	}

	if tokenType, _ := claims["type"].(string); tokenType != "access" {
		return user.Caller{}, auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return user.Caller{}, fmt.Errorf("%w: user_id", auth.ErrMissingClaim)
	}

	caller := user.Caller{UserID: userID}
	if role, ok := claims["role"].(string); ok {
		caller.Role = user.Role(role)
	}
	if employeeID, ok := claims["employee_id"].(string); ok && employeeID != "" {
		caller.EmployeeID = &employeeID
	}
	return caller, nil
}

func returnValueOrNil(value *string) interface{} {
	if value == nil {
		return nil
	}
	return *value
}
