package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/beka-birhanu/vinom-walker/api"
	"github.com/beka-birhanu/vinom-walker/api/identity"
	solveapi "github.com/beka-birhanu/vinom-walker/api/solve"
	"github.com/beka-birhanu/vinom-walker/config"
	"github.com/beka-birhanu/vinom-walker/infrastruture/cache"
	"github.com/beka-birhanu/vinom-walker/infrastruture/repo"
	"github.com/beka-birhanu/vinom-walker/infrastruture/sortedstorage"
	"github.com/beka-birhanu/vinom-walker/infrastruture/token"
	"github.com/beka-birhanu/vinom-walker/logger"
	"github.com/beka-birhanu/vinom-walker/service"
	"github.com/beka-birhanu/vinom-walker/service/i"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// recentCapacity bounds the recent solutions index.
const recentCapacity = 1000

// Global variables for dependencies
var (
	mongoClient     *mongo.Client
	redisClient     *redis.Client
	solutionRepo    i.SolutionRepo
	solutionCache   i.SolutionCache
	recentSolutions i.RecentSolutions
	mazeSolver      i.Solver
	solveController api.Controller
	jwtTokenizer    i.Tokenizer
	router          *api.Router
	appLogger       *logger.Logger
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver over REST",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func initAppLogger(w io.Writer) error {
	var err error
	appLogger, err = logger.New("APP", config.ColorGreen, w)
	if err != nil {
		return fmt.Errorf("creating app logger: %w", err)
	}
	return nil
}

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)
	if config.Envs.DBUser == "" {
		uri = fmt.Sprintf("mongodb://%s:%v", config.Envs.DBHost, config.Envs.DBPort)
	}

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initSolutionRepo(client *mongo.Client) {
	solutionRepo = repo.NewSolutionRepo(client, config.Envs.DBName, "solutions")
	appLogger.Info("Solution repository initialized")
}

// initSolutionCache leaves the cache and the recent index unset when Redis
// cannot be reached; solving then skips caching and locking.
func initSolutionCache(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{Addr: config.Envs.RedisAddr})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Warning(fmt.Sprintf("Redis unavailable at %s, serving without cache: %v", config.Envs.RedisAddr, err))
		return
	}
	solutionCache = cache.NewRedisSolutionCache(redisClient, config.Envs.CacheTTLSeconds)
	recentSolutions = sortedstorage.NewRedisRecentSolutions(redisClient, config.Envs.CacheTTLSeconds, recentCapacity)
	appLogger.Info("Solution cache initialized")
}

func initSolver() {
	solverLogger, err := logger.New("SOLVER", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating solver logger: %v", err))
		os.Exit(1)
	}

	mazeSolver, err = service.NewSolver(&service.Config{
		Repo:     solutionRepo,
		Cache:    solutionCache,
		Recent:   recentSolutions,
		Logger:   solverLogger,
		MaxSteps: config.Envs.MaxSteps,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating solver: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Solver initialized")
}

func initSolveController() {
	solveController = solveapi.NewSolveController(mazeSolver)
	appLogger.Info("Solve controller initialized")
}

func initJWTTokenizer() {
	if config.Envs.JWTSecret == "" {
		appLogger.Error("JWT_SECRET must be set to protect the solve routes")
		os.Exit(1)
	}
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Mode:                    config.Envs.GinMode,
		Controllers:             []api.Controller{solveController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func runServe(parent context.Context) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()
	initCtx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	if err := initAppLogger(os.Stdout); err != nil {
		return err
	}

	initMongo(initCtx)
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()
	initSolutionCache(initCtx)
	defer redisClient.Close()

	initSolutionRepo(mongoClient)
	initSolver()
	initSolveController()
	initJWTTokenizer()
	initRouter(jwtTokenizer)

	if err := router.Serve(ctx); err != nil {
		appLogger.Error(fmt.Sprintf("Serving: %v", err))
		return err
	}
	appLogger.Info("Server stopped")
	return nil
}
