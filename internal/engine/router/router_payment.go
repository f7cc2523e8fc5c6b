package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rentfold/rentfold/internal/engine/model"
	"github.com/rentfold/rentfold/pkg/http"
	"github.com/rentfold/rentfold/pkg/http/middleware"
)

func (rt *Router) routerPayment(api fiber.Router, auth fiber.Handler) {
	paymentGroup := api.Group("/payments", auth, middleware.RequireCompany)
	{
		paymentGroup.Post("", middleware.AuthorizeRoles(model.RoleOwner, model.RoleStaff), rt.createPayment)
		paymentGroup.Get("", rt.listPayments)
	}
}

func (rt *Router) createPayment(c *fiber.Ctx) error {
	var req model.CreatePaymentReq
	if err := c.BodyParser(&req); err != nil {
		return http.WithRepErr(c, http.BadRequest, c.Path())
	}

	payment, err := rt.paymentService.CreatePayment(middleware.CurrentUser(c), &req)
	if err != nil {
		return http.WithError(c, err)
	}
	return http.WithRepCreated(c, payment)
}

func (rt *Router) listPayments(c *fiber.Ctx) error {
	payments, err := rt.paymentService.ListPayments(middleware.CurrentUser(c))
	if err != nil {
		return http.WithError(c, err)
	}
	return http.WithRepJSON(c, payments)
}
