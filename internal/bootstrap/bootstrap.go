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

package bootstrap

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rentfold/rentfold/internal/engine/conf"
	"github.com/rentfold/rentfold/internal/engine/model"
	"github.com/rentfold/rentfold/internal/engine/repo"
	"github.com/rentfold/rentfold/internal/engine/router"
	"github.com/rentfold/rentfold/internal/engine/service"
	"github.com/rentfold/rentfold/pkg/cache"
	"github.com/rentfold/rentfold/pkg/database"
	"github.com/rentfold/rentfold/pkg/http"
	"github.com/rentfold/rentfold/pkg/log"
)

type App struct {
	Conf    conf.AppConfig
	HttpApp *fiber.App
	DB      database.IDatabase
	Cache   cache.ICache
}

// NewApp builds the whole engine: config, logger, storage, services, routes.
func NewApp(confFile string) (*App, error) {
	cfg := conf.NewConf(confFile)

	log.MustInit(&cfg.Log)

	db, err := database.NewDatabase(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}
	gormDB := database.NewGormDB(db)

	database.RegisterModels(
		&model.User{},
		&model.Company{},
		&model.CompanyMember{},
		&model.Invite{},
		&model.Property{},
		&model.TenantRecord{},
		&model.Payment{},
	)
	if err := database.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	// one pending invite per (company, email); AutoMigrate cannot express
	// a partial index, so it is created here
	if err := db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_invites_pending_company_email
		 ON invites (company_id, lower(email)) WHERE status = 'pending'`,
	).Error; err != nil {
		return nil, fmt.Errorf("create invite index: %w", err)
	}

	// redis is optional; without it the subject lookup just skips the cache
	var redisCache cache.ICache
	if cfg.Redis.Address != "" {
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			log.Warnf("redis unavailable, continuing without cache: %v", err)
		} else {
			redisCache = cache.NewRedisCache(client)
		}
	}

	userRepo := repo.NewUserRepo(gormDB, redisCache)
	memberRepo := repo.NewMemberRepo(gormDB)
	companyRepo := repo.NewCompanyRepo(gormDB)
	inviteRepo := repo.NewInviteRepo(gormDB)
	propertyRepo := repo.NewPropertyRepo(gormDB)
	tenantRepo := repo.NewTenantRepo(gormDB)
	paymentRepo := repo.NewPaymentRepo(gormDB)

	rt := router.NewRouter(
		&cfg.Http,
		service.NewAuthService(userRepo, memberRepo, inviteRepo),
		service.NewCompanyService(companyRepo, memberRepo),
		service.NewInviteService(inviteRepo, memberRepo, companyRepo),
		service.NewPropertyService(propertyRepo),
		service.NewTenantService(tenantRepo, propertyRepo),
		service.NewPaymentService(paymentRepo, tenantRepo),
		service.NewInsightService(),
	)

	return &App{
		Conf:    cfg,
		HttpApp: rt.Router(),
		DB:      gormDB,
		Cache:   redisCache,
	}, nil
}

// Run starts the HTTP server and blocks until a shutdown signal arrives.
func (a *App) Run() {
	shutdown := http.NewHttp(a.Conf.Http, a.HttpApp)
	shutdown()
}
