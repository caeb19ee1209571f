package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sbilibin2017/foodgram-backend/docs"
	"github.com/sbilibin2017/foodgram-backend/internal/handlers"
	"github.com/sbilibin2017/foodgram-backend/internal/jwt"
	"github.com/sbilibin2017/foodgram-backend/internal/logger"
	"github.com/sbilibin2017/foodgram-backend/internal/middlewares"
	"github.com/sbilibin2017/foodgram-backend/internal/repositories"
	"github.com/sbilibin2017/foodgram-backend/internal/services"
	"github.com/sbilibin2017/foodgram-backend/internal/storage"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds every setting read from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string
	BaseURL  string
	MediaDir string
	GRPCPort string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	RedisExpSecond    int

	KafkaBrokers []string
	KafkaTopic   string

	JWTSecretKey string
	JWTExpSecond int
}

// @title Foodgram API
// @version 1.0.0
// @description Recipes, favorites, shopping lists and subscriptions
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, database, Redis, Kafka, and JWT configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		n, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return n, nil
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.BaseURL = getEnv("APP_BASE_URL", fmt.Sprintf("http://%s:%s", cfg.AppHost, cfg.AppPort))
	cfg.MediaDir = getEnv("MEDIA_ROOT", "media")
	cfg.GRPCPort = getEnv("GRPC_PORT", "50051")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "foodgram")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}
	if cfg.RedisExpSecond, err = getInt("REDIS_EXP_SECOND", "300"); err != nil {
		return
	}

	// Kafka config; no brokers disables event publishing
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "recipe-events")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.JWTExpSecond, err = getInt("JWT_EXP_SECOND", "86400"); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, gRPC health and HTTP servers.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}

	// Kafka writer; a nil interface disables publishing
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infow("Kafka publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	// gRPC health server
	healthSrv := health.NewServer()
	healthSrv.SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	grpcSrv := grpc.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcSrv, healthSrv)

	lis, err := net.Listen("tcp", fmt.Sprintf("%s:%s", cfg.AppHost, cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("gRPC listen failed: %w", err)
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: newRouter(cfg, db, rdb, kafkaWriter),
	}

	// Graceful shutdown
	errChan := make(chan error, 2)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("gRPC health server listening on %s", lis.Addr())
		if err := grpcSrv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server failed: %w", err)
		}
	}()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	if err := db.PingContext(ctx); err == nil {
		healthSrv.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	} else {
		logger.Log.Errorw("PostgreSQL ping failed", "error", err)
	}

	var serveErr error
	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping servers...")
	case serveErr = <-errChan:
	}

	healthSrv.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}
	grpcSrv.GracefulStop()

	logger.Log.Info("Servers stopped gracefully")
	return serveErr
}

// newRouter wires repositories, services and handlers into the HTTP router.
func newRouter(cfg config, db *sqlx.DB, rdb *redis.Client, kafkaWriter services.KafkaWriter) http.Handler {
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
	)
	images := storage.NewImageStore(cfg.MediaDir, strings.TrimRight(cfg.BaseURL, "/")+"/media")
	validate := handlers.NewValidator()

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	tagCacheRepo := repositories.NewTagCacheRepository(rdb, time.Duration(cfg.RedisExpSecond)*time.Second)
	ingredientRepo := repositories.NewIngredientRepository(db)
	recipeReadRepo := repositories.NewRecipeReadRepository(db)
	recipeWriteRepo := repositories.NewRecipeWriteRepository(db)
	subscriptionRepo := repositories.NewSubscriptionRepository(db)
	favoriteRepo := repositories.NewFavoriteRepository(db)
	cartRepo := repositories.NewShoppingCartRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens)
	userService := services.NewUserService(userReadRepo, subscriptionRepo, userWriteRepo, images)
	subscriptionService := services.NewSubscriptionService(userReadRepo, subscriptionRepo, recipeReadRepo)
	tagService := services.NewTagService(tagRepo, tagCacheRepo)
	ingredientService := services.NewIngredientService(ingredientRepo)
	recipeService := services.NewRecipeService(services.RecipeRepositories{
		Tx:          repositories.NewTransactor(db),
		Writer:      recipeWriteRepo,
		Reader:      recipeReadRepo,
		Tags:        tagRepo,
		TagIDs:      tagRepo,
		Ingredients: ingredientRepo,
		Users:       userReadRepo,
		Subs:        subscriptionRepo,
		Favorites:   favoriteRepo,
		Cart:        cartRepo,
	}, images, kafkaWriter)
	favoriteService := services.NewFavoriteService(recipeReadRepo, favoriteRepo)
	cartService := services.NewShoppingCartService(recipeReadRepo, cartRepo)
	shoppingListService := services.NewShoppingListService(userReadRepo, recipeReadRepo)

	requireAuth := middlewares.AuthMiddleware(tokens)
	optionalAuth := middlewares.OptionalAuthMiddleware(tokens)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/users/", handlers.NewRegisterHandler(authService, validate))
		r.Post("/auth/token/login/", handlers.NewLoginHandler(authService, validate))
		r.Get("/tags/", handlers.NewTagListHandler(tagService))
		r.Get("/tags/{id}/", handlers.NewTagHandler(tagService))
		r.Get("/ingredients/", handlers.NewIngredientListHandler(ingredientService))
		r.Get("/ingredients/{id}/", handlers.NewIngredientHandler(ingredientService))

		// Routes open to anonymous viewers
		r.Group(func(r chi.Router) {
			r.Use(optionalAuth)
			r.Get("/users/{id}/", handlers.NewProfileHandler(userService))
			r.Get("/recipes/", handlers.NewRecipeListHandler(recipeService))
			r.Get("/recipes/{id}/", handlers.NewRecipeHandler(recipeService))
			r.Get("/recipes/{id}/get-link/", handlers.NewShortLinkHandler(recipeService, cfg.BaseURL))
		})

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/users/me/", handlers.NewMeHandler(userService))
			r.Put("/users/me/avatar/", handlers.NewSetAvatarHandler(userService))
			r.Delete("/users/me/avatar/", handlers.NewDeleteAvatarHandler(userService))
			r.Get("/users/subscriptions/", handlers.NewSubscriptionsHandler(subscriptionService))
			r.Post("/users/{id}/subscribe/", handlers.NewSubscribeHandler(subscriptionService))
			r.Delete("/users/{id}/subscribe/", handlers.NewUnsubscribeHandler(subscriptionService))

			r.Post("/recipes/", handlers.NewCreateRecipeHandler(recipeService))
			r.Patch("/recipes/{id}/", handlers.NewUpdateRecipeHandler(recipeService))
			r.Delete("/recipes/{id}/", handlers.NewDeleteRecipeHandler(recipeService))
			r.Post("/recipes/{id}/favorite/", handlers.NewAddToCollectionHandler(favoriteService))
			r.Delete("/recipes/{id}/favorite/", handlers.NewRemoveFromCollectionHandler(favoriteService))
			r.Post("/recipes/{id}/shopping_cart/", handlers.NewAddToCollectionHandler(cartService))
			r.Delete("/recipes/{id}/shopping_cart/", handlers.NewRemoveFromCollectionHandler(cartService))
			r.Get("/recipes/download_shopping_cart/", handlers.NewDownloadShoppingCartHandler(shoppingListService))
		})
	})

	r.Get("/s/{id}/", handlers.NewShortLinkRedirectHandler())
	r.Handle("/media/*", http.StripPrefix("/media/", http.FileServer(http.Dir(cfg.MediaDir))))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(strings.TrimRight(cfg.BaseURL, "/")+"/swagger/doc.json"),
	))

	return r
}
