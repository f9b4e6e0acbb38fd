package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"aurafolio/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authTestApp(t *testing.T) *fiber.App {
	t.Helper()

	InitMiddleware(&config.Config{JWTSecret: "test-secret-test-secret-test-secret"})

	app := fiber.New()
	app.Get("/protected", AuthRequired, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"admin": c.Locals("admin")})
	})
	return app
}

func signToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"iss": TokenIssuer,
		"sub": "admin",
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}
}

func TestAuthRequiredAcceptsValidToken(t *testing.T) {
	app := authTestApp(t)
	token := signToken(t, validClaims(), "test-secret-test-secret-test-secret")

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthRequiredAcceptsQueryToken(t *testing.T) {
	app := authTestApp(t)
	token := signToken(t, validClaims(), "test-secret-test-secret-test-secret")

	req := httptest.NewRequest(http.MethodGet, "/protected?token="+token, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthRequiredRejections(t *testing.T) {
	app := authTestApp(t)
	secret := "test-secret-test-secret-test-secret"

	wrongIssuer := validClaims()
	wrongIssuer["iss"] = "someone-else"

	wrongSubject := validClaims()
	wrongSubject["sub"] = "visitor"

	expired := validClaims()
	expired["exp"] = time.Now().Add(-time.Hour).Unix()

	cases := []struct {
		name  string
		token string
	}{
		{"missing token", ""},
		{"garbage token", "not-a-jwt"},
		{"wrong secret", signToken(t, validClaims(), "other-secret")},
		{"wrong issuer", signToken(t, wrongIssuer, secret)},
		{"wrong subject", signToken(t, wrongSubject, secret)},
		{"expired", signToken(t, expired, secret)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.token != "" {
				req.Header.Set("Authorization", "Bearer "+tc.token)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}
