package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rentfold/rentfold/internal/engine/model"
	"github.com/rentfold/rentfold/pkg/http"
	"github.com/rentfold/rentfold/pkg/http/jwt"
	"github.com/rentfold/rentfold/pkg/http/middleware"
)

func (rt *Router) routerAuth(api fiber.Router, auth fiber.Handler) {
	authGroup := api.Group("/auth")
	{
		authGroup.Post("/register", rt.register)
		authGroup.Post("/login", rt.login)
		authGroup.Get("/refresh", rt.refresh)

		authGroup.Post("/me", auth, rt.resolveMe)
		authGroup.Get("/me", auth, middleware.RequireUser, rt.getMe)
		authGroup.Put("/me", auth, middleware.RequireUser, rt.updateMe)
	}
}

func (rt *Router) register(c *fiber.Ctx) error {
	var req model.Register
	if err := c.BodyParser(&req); err != nil {
		return http.WithRepErr(c, http.BadRequest, c.Path())
	}

	resp, err := rt.authService.Register(&req, &rt.Http.Auth)
	if err != nil {
		return http.WithError(c, err)
	}
	return http.WithRepCreated(c, resp)
}

func (rt *Router) login(c *fiber.Ctx) error {
	var req model.Login
	if err := c.BodyParser(&req); err != nil {
		return http.WithRepErr(c, http.BadRequest, c.Path())
	}

	resp, err := rt.authService.Login(&req, &rt.Http.Auth)
	if err != nil {
		return http.WithError(c, err)
	}
	return http.WithRepJSON(c, resp)
}

func (rt *Router) refresh(c *fiber.Ctx) error {
	rToken := c.Query("refreshToken")
	if rToken == "" {
		return http.WithRepErr(c, http.TokenBeEmpty, c.Path())
	}

	token, err := jwt.RefreshToken(&rt.Http.Auth, rToken)
	if err != nil {
		return http.WithRepErrMsg(c, http.InvalidToken, err.Error(), c.Path())
	}
	return http.WithRepJSON(c, token)
}

// resolveMe creates the local user on first sight and absorbs any pending
// invites for its email. Idempotent; later calls just return the profile.
func (rt *Router) resolveMe(c *fiber.Ctx) error {
	cu := middleware.CurrentUser(c)

	profile, err := rt.authService.ResolveIdentity(model.Identity{
		Subject: cu.Subject,
		Email:   cu.Email,
		Name:    cu.Name,
	})
	if err != nil {
		return http.WithError(c, err)
	}
	return http.WithRepJSON(c, profile)
}

func (rt *Router) getMe(c *fiber.Ctx) error {
	cu := middleware.CurrentUser(c)

	profile, err := rt.authService.GetProfile(cu.UserId)
	if err != nil {
		return http.WithError(c, err)
	}
	return http.WithRepJSON(c, profile)
}

func (rt *Router) updateMe(c *fiber.Ctx) error {
	var req model.UpdateProfileReq
	if err := c.BodyParser(&req); err != nil {
		return http.WithRepErr(c, http.BadRequest, c.Path())
	}

	profile, err := rt.authService.UpdateProfile(middleware.CurrentUser(c), &req)
	if err != nil {
		return http.WithError(c, err)
	}
	return http.WithRepJSON(c, profile)
}
