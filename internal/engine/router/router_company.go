package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rentfold/rentfold/internal/engine/model"
	"github.com/rentfold/rentfold/pkg/http"
	"github.com/rentfold/rentfold/pkg/http/middleware"
)

func (rt *Router) routerCompany(api fiber.Router, auth fiber.Handler) {
	companyGroup := api.Group("/companies", auth, middleware.RequireUser)
	{
		companyGroup.Post("", rt.createCompany)
		companyGroup.Get("", rt.listCompanies)
		companyGroup.Get("/:companyId/members",
			middleware.AuthorizeRoles(model.RoleOwner, model.RoleStaff), rt.listMembers)
	}
}

func (rt *Router) createCompany(c *fiber.Ctx) error {
	var req model.CreateCompanyReq
	if err := c.BodyParser(&req); err != nil {
		return http.WithRepErr(c, http.BadRequest, c.Path())
	}

	company, err := rt.companyService.CreateCompany(middleware.CurrentUser(c), &req)
	if err != nil {
		return http.WithError(c, err)
	}
	return http.WithRepCreated(c, company)
}

func (rt *Router) listCompanies(c *fiber.Ctx) error {
	companies, err := rt.companyService.ListCompanies(middleware.CurrentUser(c).UserId)
	if err != nil {
		return http.WithError(c, err)
	}
	return http.WithRepJSON(c, companies)
}

func (rt *Router) listMembers(c *fiber.Ctx) error {
	members, err := rt.companyService.ListMembers(middleware.CurrentUser(c), c.Params("companyId"))
	if err != nil {
		return http.WithError(c, err)
	}
	return http.WithRepJSON(c, members)
}
