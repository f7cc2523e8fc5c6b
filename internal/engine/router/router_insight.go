package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rentfold/rentfold/pkg/http"
	"github.com/rentfold/rentfold/pkg/http/middleware"
)

func (rt *Router) routerInsight(api fiber.Router, auth fiber.Handler) {
	api.Get("/insights", auth, middleware.RequireCompany, rt.listInsights)
}

func (rt *Router) listInsights(c *fiber.Ctx) error {
	return http.WithRepJSON(c, rt.insightService.ListInsights())
}
