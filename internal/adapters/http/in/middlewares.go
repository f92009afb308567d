// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package in

import (
	"strings"

	"github.com/clearlabel/transparency-portal/pkg"
	"github.com/clearlabel/transparency-portal/pkg/constant"
	"github.com/clearlabel/transparency-portal/pkg/net/http"

	"github.com/LerianStudio/lib-commons/v2/commons"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var UUIDPathParameter = "id"

// Locals keys populated by the Authenticate middleware.
const (
	ActorIDLocal   = "actor_id"
	ActorRoleLocal = "actor_role"
)

// SecurityHeaders returns a Fiber middleware that sets standard HTTP security
// headers on every response. The headers mitigate common browser-side attacks
// such as MIME-type sniffing, clickjacking, and reflected XSS.
func SecurityHeaders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "0")

		return c.Next()
	}
}

// RecoverMiddleware returns a Fiber middleware that recovers from panics
// inside handlers, preventing a single panicking request from crashing the
// entire server process. It delegates to Fiber's built-in recover middleware.
func RecoverMiddleware() fiber.Handler {
	return recover.New()
}

// ParseUUIDPathParam returns a Fiber middleware that validates the named path
// parameter as a UUID. On success the parsed uuid.UUID is stored in
// c.Locals(paramName) for downstream handlers. On failure a 400 Bad Request
// response is returned with the standard ErrInvalidPathParameter error.
func ParseUUIDPathParam(paramName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pathParam := c.Params(paramName)

		if commons.IsNilOrEmpty(&pathParam) {
			err := pkg.ValidateBusinessError(constant.ErrInvalidPathParameter, "", paramName)
			return http.WithError(c, err)
		}

		parsedPathUUID, errPath := uuid.Parse(pathParam)
		if errPath != nil {
			err := pkg.ValidateBusinessError(constant.ErrInvalidPathParameter, "", paramName)
			return http.WithError(c, err)
		}

		c.Locals(paramName, parsedPathUUID)

		return c.Next()
	}
}

// ParsePathParametersUUID convert and validate if the path parameter is UUID.
// It validates the "id" path parameter. For other parameter names use
// ParseUUIDPathParam(paramName).
func ParsePathParametersUUID(c *fiber.Ctx) error {
	return ParseUUIDPathParam(UUIDPathParameter)(c)
}

// actorClaims is the subset of JWT claims the portal cares about.
type actorClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Authenticate returns a Fiber middleware that validates the Bearer token on
// the Authorization header as an HS256 JWT signed with the given secret. On
// success the actor id (token subject) and role are stored in c.Locals under
// ActorIDLocal and ActorRoleLocal.
func Authenticate(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)

		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(tokenString) == "" {
			return http.WithError(c, pkg.ValidateBusinessError(constant.ErrUnauthorizedAccess, ""))
		}

		claims := &actorClaims{}

		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			return http.WithError(c, pkg.ValidateBusinessError(constant.ErrUnauthorizedAccess, ""))
		}

		actorID, err := uuid.Parse(claims.Subject)
		if err != nil {
			return http.WithError(c, pkg.ValidateBusinessError(constant.ErrUnauthorizedAccess, ""))
		}

		c.Locals(ActorIDLocal, actorID)
		c.Locals(ActorRoleLocal, claims.Role)

		return c.Next()
	}
}

// RequireAdmin returns a Fiber middleware that rejects requests whose
// authenticated actor does not carry the admin role. It must run after
// Authenticate.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(ActorRoleLocal).(string)

		if role != constant.AdminRole {
			return http.WithError(c, pkg.ValidateBusinessError(constant.ErrAdminOnlyResource, ""))
		}

		return c.Next()
	}
}
