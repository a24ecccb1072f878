package app

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/Hassan141998/Job-Portal/internal/config"
	"github.com/Hassan141998/Job-Portal/internal/database"
	dbpostgres "github.com/Hassan141998/Job-Portal/internal/database/postgres"
	"github.com/Hassan141998/Job-Portal/internal/delivery/http/handler"
	"github.com/Hassan141998/Job-Portal/internal/delivery/http/middleware"
	"github.com/Hassan141998/Job-Portal/internal/delivery/http/routes"
	"github.com/Hassan141998/Job-Portal/internal/document"
	"github.com/Hassan141998/Job-Portal/internal/domain/account"
	"github.com/Hassan141998/Job-Portal/internal/infrastructure/cache"
	"github.com/Hassan141998/Job-Portal/internal/infrastructure/persistence/memory"
	pgrepo "github.com/Hassan141998/Job-Portal/internal/infrastructure/persistence/postgres"
	"github.com/Hassan141998/Job-Portal/internal/pkg/jwt"
	"github.com/Hassan141998/Job-Portal/internal/usecase"
	"github.com/Hassan141998/Job-Portal/internal/ws"
)

// Container wires every dependency once at startup and hands the routes
// registry to the fiber app.
type Container struct {
	Config   config.Config
	Logger   *log.Logger
	Registry *routes.Registry

	db    database.DB
	redis *cache.Redis
	hub   *ws.Hub
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	c := &Container{Config: cfg, Logger: logger}

	accounts, err := c.buildAccountRepository(cfg)
	if err != nil {
		return nil, err
	}

	jobs := memory.NewJobRepository()
	applications := memory.NewApplicationRepository()
	resumes := memory.NewResumeRepository()
	interviews := memory.NewInterviewRepository()

	c.redis = cache.NewRedis(logger)

	c.hub = ws.NewHub(logger)
	go c.hub.Run()
	notifier := ws.NewNotifier(c.hub)

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)
	authMW := middleware.NewAuthMiddleware(jwtSvc)

	parser := document.NewParser(cfg.Upload.Dir)

	authUC := usecase.NewAuthUsecase(accounts, jwtSvc)
	jobUC := usecase.NewJobUsecase(jobs, logger)
	applicationUC := usecase.NewApplicationUsecase(applications, jobs, notifier, logger)
	resumeUC := usecase.NewResumeUsecase(parser, resumes, c.redis, logger)
	interviewUC := usecase.NewInterviewUsecase(interviews, logger)

	c.Registry = &routes.Registry{
		Health:    handler.NewHealthHandler(),
		Auth:      handler.NewAuthHandler(authUC),
		Jobs:      handler.NewJobHandler(jobUC, applicationUC),
		Resumes:   handler.NewResumeHandler(resumeUC),
		Interview: handler.NewInterviewHandler(interviewUC),
		WS:        ws.NewHandler(c.hub, logger),
		AuthMW:    authMW,
	}

	return c, nil
}

func (c *Container) buildAccountRepository(cfg config.Config) (account.Repository, error) {
	if !cfg.Database.Enabled() {
		return memory.NewAccountRepository(), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	c.db = db
	c.Logger.Printf("[App] Accounts backed by Postgres | host=%s db=%s", cfg.Database.DBHost, cfg.Database.DBName)
	return pgrepo.NewAccountRepository(db), nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.redis != nil {
		_ = c.redis.Close()
	}
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}
