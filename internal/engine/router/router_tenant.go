package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rentfold/rentfold/internal/engine/model"
	"github.com/rentfold/rentfold/pkg/http"
	"github.com/rentfold/rentfold/pkg/http/middleware"
)

func (rt *Router) routerTenant(api fiber.Router, auth fiber.Handler) {
	tenantGroup := api.Group("/tenants", auth, middleware.RequireCompany)
	{
		tenantGroup.Post("", middleware.AuthorizeRoles(model.RoleOwner, model.RoleStaff), rt.createTenant)
		tenantGroup.Get("", rt.listTenants)
	}
}

func (rt *Router) createTenant(c *fiber.Ctx) error {
	var req model.CreateTenantReq
	if err := c.BodyParser(&req); err != nil {
		return http.WithRepErr(c, http.BadRequest, c.Path())
	}

	tenant, err := rt.tenantService.CreateTenant(middleware.CurrentUser(c), &req)
	if err != nil {
		return http.WithError(c, err)
	}
	return http.WithRepCreated(c, tenant)
}

func (rt *Router) listTenants(c *fiber.Ctx) error {
	tenants, err := rt.tenantService.ListTenants(middleware.CurrentUser(c))
	if err != nil {
		return http.WithError(c, err)
	}
	return http.WithRepJSON(c, tenants)
}
