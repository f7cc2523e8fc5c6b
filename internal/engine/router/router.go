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

package router

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/rentfold/rentfold/internal/engine/service"
	"github.com/rentfold/rentfold/pkg/http"
	"github.com/rentfold/rentfold/pkg/http/middleware"
)

type Router struct {
	Http *http.Http

	authService     *service.AuthService
	companyService  *service.CompanyService
	inviteService   *service.InviteService
	propertyService *service.PropertyService
	tenantService   *service.TenantService
	paymentService  *service.PaymentService
	insightService  *service.InsightService
}

func NewRouter(
	httpConf *http.Http,
	authService *service.AuthService,
	companyService *service.CompanyService,
	inviteService *service.InviteService,
	propertyService *service.PropertyService,
	tenantService *service.TenantService,
	paymentService *service.PaymentService,
	insightService *service.InsightService,
) *Router {
	return &Router{
		Http:            httpConf,
		authService:     authService,
		companyService:  companyService,
		inviteService:   inviteService,
		propertyService: propertyService,
		tenantService:   tenantService,
		paymentService:  paymentService,
		insightService:  insightService,
	}
}

func (rt *Router) Router() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Rentfold",
		ReadTimeout:  time.Duration(rt.Http.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(rt.Http.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(rt.Http.IdleTimeout) * time.Second,
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
	})

	app.Use(
		middleware.ExceptionMiddleware,
		middleware.CorsMiddleware(),
		middleware.AccessLogMiddleware(rt.Http),
	)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	contextPath := rt.Http.ContextPath
	if contextPath == "" {
		contextPath = "/api"
	}
	api := app.Group(contextPath)

	api.Get("/ping", func(c *fiber.Ctx) error {
		return http.WithRepMsg(c, "pong")
	})

	rt.routerGroup(api)

	app.Use(func(c *fiber.Ctx) error {
		return http.WithRepErr(c, http.NotFound.WithMsg("request path not found"), c.Path())
	})

	return app
}

func (rt *Router) routerGroup(api fiber.Router) {
	auth := middleware.AuthorizationMiddleware(rt.Http.Auth.SecretKey, rt.authService)

	rt.routerAuth(api, auth)
	rt.routerCompany(api, auth)
	rt.routerInvite(api, auth)
	rt.routerProperty(api, auth)
	rt.routerTenant(api, auth)
	rt.routerPayment(api, auth)
	rt.routerInsight(api, auth)
}
