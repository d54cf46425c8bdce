package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-planner/api"
	api_i "github.com/beka-birhanu/vinom-planner/api/i"
	"github.com/beka-birhanu/vinom-planner/api/identity"
	planapi "github.com/beka-birhanu/vinom-planner/api/plan"
	"github.com/beka-birhanu/vinom-planner/config"
	"github.com/beka-birhanu/vinom-planner/grid"
	"github.com/beka-birhanu/vinom-planner/infrastruture/plancache"
	"github.com/beka-birhanu/vinom-planner/infrastruture/repo"
	"github.com/beka-birhanu/vinom-planner/infrastruture/token"
	"github.com/beka-birhanu/vinom-planner/logger"
	"github.com/beka-birhanu/vinom-planner/service"
	"github.com/beka-birhanu/vinom-planner/service/i"
	"github.com/beka-birhanu/vinom-planner/solver"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Dependencies of the HTTP server.
var (
	cfg            config.Config
	mongoClient    *mongo.Client
	redisClient    *redis.Client
	userRepo       *repo.UserRepo
	planRepo       i.PlanRepo
	planCache      i.PlanCache
	jwtTokenizer   i.Tokenizer
	authService    i.Authenticator
	planService    i.Planner
	authController api_i.Controller
	planController api_i.Controller
	router         *api.Router
	appLogger      *logger.Logger
)

func initMongo(ctx context.Context) error {
	var err error
	mongoClient, err = mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI()))
	if err != nil {
		return fmt.Errorf("connecting to MongoDB: %w", err)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		return fmt.Errorf("MongoDB ping failed: %w", err)
	}
	appLogger.Info("Connected to MongoDB")
	return nil
}

func initRepos(ctx context.Context) error {
	userRepo = repo.NewUserRepo(mongoClient, cfg.DBName, "users")
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("creating user indexes: %w", err)
	}
	planRepo = repo.NewPlanRepo(mongoClient, cfg.DBName, "plans")
	appLogger.Info("Repositories initialized")
	return nil
}

func initRedis(ctx context.Context) error {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}

	var err error
	planCache, err = plancache.NewRedisPlanCache(redisClient, cfg.PlanCacheTTL)
	if err != nil {
		return fmt.Errorf("creating plan cache: %w", err)
	}
	appLogger.Info("Plan cache initialized")
	return nil
}

func initServices() error {
	jwtTokenizer = token.NewJwtService(cfg.JWTSecret, cfg.JWTIssuer)

	var err error
	authService, err = service.NewAuthService(userRepo, jwtTokenizer)
	if err != nil {
		return fmt.Errorf("creating auth service: %w", err)
	}

	planLogger, err := logger.New("PLANNER", config.ColorCyan, os.Stdout)
	if err != nil {
		return fmt.Errorf("creating planner logger: %w", err)
	}

	bounds := grid.BoundsInclusive
	if cfg.ExclusiveBounds {
		bounds = grid.BoundsExclusive
	}
	planService, err = service.NewPlanning(service.PlanningConfig{
		Solver:  solver.New(cfg.SolverDiscount),
		Repo:    planRepo,
		Cache:   planCache,
		Logger:  planLogger,
		Horizon: cfg.SolverHorizon,
		Bounds:  bounds,
	})
	if err != nil {
		return fmt.Errorf("creating planning service: %w", err)
	}
	appLogger.Info("Services initialized")
	return nil
}

func initControllers() error {
	authController = identity.NewIdentityServer(authService)

	var err error
	planController, err = planapi.NewPlanController(planService)
	if err != nil {
		return fmt.Errorf("creating plan controller: %w", err)
	}
	appLogger.Info("Controllers initialized")
	return nil
}

func initRouter() {
	gin.SetMode(cfg.GinMode)
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", cfg.HostIP, cfg.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, planController},
		AuthorizationMiddleware: identity.Authorize(jwtTokenizer),
	})
	appLogger.Info("Router initialized")
}

func runServe(cmd *cobra.Command, args []string) error {
	var err error
	appLogger, err = logger.New("APP", config.ColorGreen, os.Stdout)
	if err != nil {
		return err
	}

	cfg = config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	if err := initMongo(ctx); err != nil {
		appLogger.Error(err.Error())
		return err
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	if err := initRedis(ctx); err != nil {
		appLogger.Error(err.Error())
		return err
	}
	defer redisClient.Close()

	for _, step := range []func() error{
		func() error { return initRepos(ctx) },
		initServices,
		initControllers,
	} {
		if err := step(); err != nil {
			appLogger.Error(err.Error())
			return err
		}
	}
	initRouter()

	appLogger.Info(fmt.Sprintf("Listening on %s:%d", cfg.HostIP, cfg.RESTPort))
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		return err
	}
	return nil
}
