package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rentfold/rentfold/internal/engine/model"
	"github.com/rentfold/rentfold/pkg/http"
	"github.com/rentfold/rentfold/pkg/http/middleware"
)

func (rt *Router) routerProperty(api fiber.Router, auth fiber.Handler) {
	propertyGroup := api.Group("/properties", auth, middleware.RequireCompany)
	{
		propertyGroup.Post("", middleware.AuthorizeRoles(model.RoleOwner, model.RoleStaff), rt.createProperty)
		propertyGroup.Get("", rt.listProperties)
	}
}

func (rt *Router) createProperty(c *fiber.Ctx) error {
	var req model.CreatePropertyReq
	if err := c.BodyParser(&req); err != nil {
		return http.WithRepErr(c, http.BadRequest, c.Path())
	}

	property, err := rt.propertyService.CreateProperty(middleware.CurrentUser(c), &req)
	if err != nil {
		return http.WithError(c, err)
	}
	return http.WithRepCreated(c, property)
}

func (rt *Router) listProperties(c *fiber.Ctx) error {
	properties, err := rt.propertyService.ListProperties(middleware.CurrentUser(c))
	if err != nil {
		return http.WithError(c, err)
	}
	return http.WithRepJSON(c, properties)
}
