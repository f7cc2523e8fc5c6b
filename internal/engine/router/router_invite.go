package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rentfold/rentfold/internal/engine/model"
	"github.com/rentfold/rentfold/pkg/http"
	"github.com/rentfold/rentfold/pkg/http/middleware"
)

func (rt *Router) routerInvite(api fiber.Router, auth fiber.Handler) {
	inviteGroup := api.Group("/invites", auth, middleware.RequireUser)
	{
		// acceptance only needs a resolved user; the invite carries the company
		inviteGroup.Post("/:token/accept", rt.acceptInvite)

		inviteGroup.Post("", middleware.AuthorizeRoles(model.RoleOwner), rt.createInvite)
		inviteGroup.Get("", middleware.AuthorizeRoles(model.RoleOwner, model.RoleStaff), rt.listInvites)
		inviteGroup.Delete("/:inviteId", middleware.AuthorizeRoles(model.RoleOwner), rt.revokeInvite)
	}
}

func (rt *Router) createInvite(c *fiber.Ctx) error {
	var req model.CreateInviteReq
	if err := c.BodyParser(&req); err != nil {
		return http.WithRepErr(c, http.BadRequest, c.Path())
	}

	invite, err := rt.inviteService.CreateInvite(middleware.CurrentUser(c), &req)
	if err != nil {
		return http.WithError(c, err)
	}
	return http.WithRepCreated(c, invite)
}

func (rt *Router) listInvites(c *fiber.Ctx) error {
	invites, err := rt.inviteService.ListInvites(middleware.CurrentUser(c))
	if err != nil {
		return http.WithError(c, err)
	}
	return http.WithRepJSON(c, invites)
}

func (rt *Router) acceptInvite(c *fiber.Ctx) error {
	membership, err := rt.inviteService.AcceptInvite(middleware.CurrentUser(c), c.Params("token"))
	if err != nil {
		return http.WithError(c, err)
	}
	return http.WithRepJSON(c, membership)
}

func (rt *Router) revokeInvite(c *fiber.Ctx) error {
	if err := rt.inviteService.RevokeInvite(middleware.CurrentUser(c), c.Params("inviteId")); err != nil {
		return http.WithError(c, err)
	}
	return http.WithRepNotDetail(c)
}
