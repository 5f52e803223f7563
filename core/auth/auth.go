package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"mobilia.GO/config"
	customerEntity "mobilia.GO/model/entity/customer"
	customerRepo "mobilia.GO/model/repository/customer"
)

// Context keys set on authenticated requests.
const (
	CtxCustomerID = "customer_id"
	CtxSessionJTI = "session_jti"
)

func sessionSecret() []byte {
	if s := os.Getenv("SESSION_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("mobilia-dev-secret")
}

func sessionTTL() time.Duration {
	return 72 * time.Hour
}

// IssueSession signs a session JWT for a customer and persists its jti as a
// revocable row.
func IssueSession(repo *customerRepo.CustomerRepository, customerID uint) (string, error) {
	jti := uuid.NewString()
	expiresAt := time.Now().Add(sessionTTL())

	claims := jwt.MapClaims{
		"sub": float64(customerID),
		"jti": jti,
		"exp": expiresAt.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(sessionSecret())
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}

	err = repo.CreateToken(&customerEntity.SessionToken{
		TokenID:    jti,
		CustomerID: customerID,
		ExpiresAt:  expiresAt,
	})
	if err != nil {
		return "", fmt.Errorf("persist session token: %w", err)
	}
	return signed, nil
}

// ValidateSession verifies signature and expiry, then checks the jti row is
// still active (not revoked by logout).
func ValidateSession(repo *customerRepo.CustomerRepository, tokenString string) (uint, string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return sessionSecret(), nil
	})
	if err != nil || !token.Valid {
		return 0, "", fmt.Errorf("invalid session token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", fmt.Errorf("invalid session claims")
	}
	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, "", fmt.Errorf("invalid session subject")
	}
	jti, ok := claims["jti"].(string)
	if !ok {
		return 0, "", fmt.Errorf("invalid session id")
	}
	if _, err := repo.FindActiveToken(jti); err != nil {
		return 0, "", fmt.Errorf("session revoked or expired")
	}
	return uint(sub), jti, nil
}

// RevokeSession invalidates a session server-side (logout).
func RevokeSession(repo *customerRepo.CustomerRepository, jti string) error {
	return repo.RevokeToken(jti)
}

// Middleware returns the /api auth middleware based on AUTH_TYPE. The default
// is customer session tokens; "key" keeps a static API key for back-office
// tooling.
func Middleware(db *gorm.DB) echo.MiddlewareFunc {
	skipper := buildSkipper()
	switch os.Getenv("AUTH_TYPE") {
	case "key":
		return keyAuth(skipper)
	default:
		return sessionAuth(customerRepo.NewCustomerRepository(db), skipper)
	}
}

func buildSkipper() middleware.Skipper {
	skipPaths := config.GetAuthSkipperPaths()
	return func(c echo.Context) bool {
		path := c.Path()
		for _, skip := range skipPaths {
			if path == skip {
				return true
			}
		}
		return false
	}
}

func keyAuth(skipper middleware.Skipper) echo.MiddlewareFunc {
	apiKey := os.Getenv("API_KEY")
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		Validator: func(key string, c echo.Context) (bool, error) {
			return key == apiKey, nil
		},
		Skipper: skipper,
	})
}

func sessionAuth(repo *customerRepo.CustomerRepository, skipper middleware.Skipper) echo.MiddlewareFunc {
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		Validator: func(token string, c echo.Context) (bool, error) {
			customerID, jti, err := ValidateSession(repo, token)
			if err != nil {
				return false, nil
			}
			c.Set(CtxCustomerID, customerID)
			c.Set(CtxSessionJTI, jti)
			return true, nil
		},
		Skipper: skipper,
	})
}

// CustomerID returns the authenticated customer for the request.
func CustomerID(c echo.Context) (uint, bool) {
	v, ok := c.Get(CtxCustomerID).(uint)
	return v, ok
}
