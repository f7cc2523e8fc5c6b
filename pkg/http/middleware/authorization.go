// Copyright 2025 Rentfold Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	goJwt "github.com/golang-jwt/jwt/v5"
	"github.com/rentfold/rentfold/internal/engine/model"
	"github.com/rentfold/rentfold/pkg/http"
	"github.com/rentfold/rentfold/pkg/http/jwt"
	"github.com/rentfold/rentfold/pkg/log"
)

// CurrentUserKey is the fiber locals key the resolved caller lives under.
const CurrentUserKey = "currentUser"

// IdentityResolver maps a verified token identity onto the local user and
// its current company membership.
type IdentityResolver interface {
	ResolveCurrent(identity model.Identity) (*model.CurrentUser, error)
}

// AuthorizationMiddleware verifies the bearer token and resolves the caller.
// A valid token whose subject has no local user yet still passes; the
// profile guards downstream decide what such a caller may reach.
func AuthorizationMiddleware(secretKey string, resolver IdentityResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		aToken := c.Get("Authorization")
		if aToken == "" {
			return http.WithRepErr(c, http.AuthorizationEmpty, c.Path())
		}

		parts := strings.SplitN(aToken, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return http.WithRepErr(c, http.TokenFormatIncorrect, c.Path())
		}

		claims, err := jwt.ParseToken(parts[1], secretKey)
		if err != nil {
			if errors.Is(err, goJwt.ErrTokenExpired) {
				return http.WithRepErr(c, http.TokenExpired, c.Path())
			}
			log.Errorf("parse token failed: %v", err)
			return http.WithRepErr(c, http.InvalidToken, c.Path())
		}

		cu, err := resolver.ResolveCurrent(model.Identity{
			Subject: claims.Subject,
			Email:   claims.Email,
			Name:    claims.Name,
		})
		if err != nil {
			log.Errorf("resolve current user failed: %v", err)
			return http.WithRepErr(c, http.InternalError, c.Path())
		}

		c.Locals(CurrentUserKey, cu)
		return c.Next()
	}
}

// CurrentUser returns the caller resolved by AuthorizationMiddleware.
func CurrentUser(c *fiber.Ctx) *model.CurrentUser {
	if cu, ok := c.Locals(CurrentUserKey).(*model.CurrentUser); ok {
		return cu
	}
	return nil
}

// RequireUser rejects callers whose identity has no local user record.
func RequireUser(c *fiber.Ctx) error {
	cu := CurrentUser(c)
	if !cu.HasProfile() {
		return http.WithRepErr(c, http.ProfileNotFound, c.Path())
	}
	return c.Next()
}

// RequireCompany rejects callers without an active company membership.
// Implies RequireUser: a membership cannot exist without a profile.
func RequireCompany(c *fiber.Ctx) error {
	cu := CurrentUser(c)
	if !cu.HasProfile() {
		return http.WithRepErr(c, http.ProfileNotFound, c.Path())
	}
	if !cu.HasCompany() {
		return http.WithRepErr(c, http.NoCompanyMembership, c.Path())
	}
	return c.Next()
}

// AuthorizeRoles rejects callers whose company role is not in the set.
func AuthorizeRoles(roles ...model.Role) fiber.Handler {
	allowed := make(map[model.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		cu := CurrentUser(c)
		if !cu.HasCompany() {
			return http.WithRepErr(c, http.NoCompanyMembership, c.Path())
		}
		if _, ok := allowed[cu.Role]; !ok {
			return http.WithRepErr(c, http.Forbidden, c.Path())
		}
		return c.Next()
	}
}
