// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package in

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/clearlabel/transparency-portal/pkg/constant"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret"

func signedToken(t *testing.T, secret string, subject string, role string, expiresIn time.Duration) string {
	t.Helper()

	claims := actorClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func authTestApp(secret string) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	app.Get("/protected", Authenticate(secret), func(c *fiber.Ctx) error {
		actorID := c.Locals(ActorIDLocal).(uuid.UUID)
		role, _ := c.Locals(ActorRoleLocal).(string)

		return c.JSON(fiber.Map{"actor_id": actorID.String(), "role": role})
	})

	app.Get("/admin", Authenticate(secret), RequireAdmin(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	return app
}

func TestAuthenticate(t *testing.T) {
	actorID := uuid.New()

	tests := []struct {
		name           string
		authorization  string
		expectedStatus int
	}{
		{
			name:           "valid token passes",
			authorization:  "Bearer " + signedToken(t, testJWTSecret, actorID.String(), "member", time.Hour),
			expectedStatus: fiber.StatusOK,
		},
		{
			name:           "missing header is rejected",
			authorization:  "",
			expectedStatus: fiber.StatusUnauthorized,
		},
		{
			name:           "malformed header is rejected",
			authorization:  "Token abc",
			expectedStatus: fiber.StatusUnauthorized,
		},
		{
			name:           "wrong signature is rejected",
			authorization:  "Bearer " + signedToken(t, "other-secret", actorID.String(), "member", time.Hour),
			expectedStatus: fiber.StatusUnauthorized,
		},
		{
			name:           "expired token is rejected",
			authorization:  "Bearer " + signedToken(t, testJWTSecret, actorID.String(), "member", -time.Hour),
			expectedStatus: fiber.StatusUnauthorized,
		},
		{
			name:           "non-uuid subject is rejected",
			authorization:  "Bearer " + signedToken(t, testJWTSecret, "not-a-uuid", "member", time.Hour),
			expectedStatus: fiber.StatusUnauthorized,
		},
	}

	app := authTestApp(testJWTSecret)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.authorization != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.authorization)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	app := authTestApp(testJWTSecret)

	t.Run("admin role passes", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/admin", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signedToken(t, testJWTSecret, uuid.New().String(), constant.AdminRole, time.Hour))

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("member role is forbidden", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/admin", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signedToken(t, testJWTSecret, uuid.New().String(), "member", time.Hour))

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})
}

func TestParseUUIDPathParam(t *testing.T) {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	app.Get("/v1/reports/:id", ParsePathParametersUUID, func(c *fiber.Ctx) error {
		id := c.Locals(UUIDPathParameter).(uuid.UUID)

		return c.SendString(id.String())
	})

	t.Run("valid uuid passes through", func(t *testing.T) {
		id := uuid.New()

		resp, err := app.Test(httptest.NewRequest("GET", "/v1/reports/"+id.String(), nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("invalid uuid is rejected", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/v1/reports/not-a-uuid", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestSecurityHeaders(t *testing.T) {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	app.Use(SecurityHeaders())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
	assert.Equal(t, "0", resp.Header.Get("X-XSS-Protection"))
}
