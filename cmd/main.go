package main

import (
	"context"
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
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/sbilibin2017/bizlink/internal/handlers"
	"github.com/sbilibin2017/bizlink/internal/hasher"
	"github.com/sbilibin2017/bizlink/internal/health"
	"github.com/sbilibin2017/bizlink/internal/identity"
	"github.com/sbilibin2017/bizlink/internal/logger"
	"github.com/sbilibin2017/bizlink/internal/middlewares"
	"github.com/sbilibin2017/bizlink/internal/repositories"
	"github.com/sbilibin2017/bizlink/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const (
	healthTimeout   = 2 * time.Second
	healthInterval  = 15 * time.Second
	shutdownTimeout = 10 * time.Second
)

// config holds everything read from the environment.
type config struct {
	appHost  string
	appPort  string
	logLevel string
	grpcPort string

	mongoURI           string
	mongoDB            string
	mongoTimeout       time.Duration
	mongoLegacyIDReads bool

	// empty redisHost disables the lock and the redis probe
	redisHost         string
	redisPort         int
	redisDB           int
	redisPassword     string
	redisPoolSize     int
	redisMinIdleConns int
	redisLockTTL      time.Duration

	// empty kafkaBrokers disables event publishing
	kafkaBrokers []string
	kafkaTopic   string

	bcryptCost int
}

// @title bizlink API
// @version 1.0.0
// @description Business networking backend: users, profiles, businesses, payments, trainings, messages, notifications and reviews
// @host localhost:8080
// @BasePath /
// @schemes http
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

// parseConfig loads environment variables from a file and returns
// the application, MongoDB, Redis, Kafka and hashing configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.grpcPort = getEnv("GRPC_PORT", "50051")

	// MongoDB config
	cfg.mongoURI = getEnv("MONGO_URI", "mongodb://localhost:27017")
	cfg.mongoDB = getEnv("MONGO_DB", "bizlink")
	timeoutSecond, err := strconv.Atoi(getEnv("MONGO_TIMEOUT_SECOND", "5"))
	if err != nil {
		return
	}
	cfg.mongoTimeout = time.Duration(timeoutSecond) * time.Second
	if cfg.mongoLegacyIDReads, err = strconv.ParseBool(getEnv("MONGO_LEGACY_ID_READS", "false")); err != nil {
		return
	}

	// Redis config
	cfg.redisHost = getEnv("REDIS_HOST", "")
	if cfg.redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if cfg.redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if cfg.redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}
	lockTTLMs, err := strconv.Atoi(getEnv("REDIS_LOCK_TTL_MS", "5000"))
	if err != nil {
		return
	}
	cfg.redisLockTTL = time.Duration(lockTTLMs) * time.Millisecond

	// Kafka config
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		cfg.kafkaBrokers = strings.Split(brokers, ",")
	}
	cfg.kafkaTopic = getEnv("KAFKA_TOPIC", "bizlink.events")

	// Password hashing
	if cfg.bcryptCost, err = strconv.Atoi(getEnv("BCRYPT_COST", "10")); err != nil {
		return
	}

	return
}

// run initializes the logger, MongoDB, the optional Redis lock and Kafka writer,
// the gRPC health server and the HTTP server, and shuts them down gracefully.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect to MongoDB
	logger.Log.Infof("Connecting to MongoDB: %s/%s", cfg.mongoURI, cfg.mongoDB)
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.mongoURI))
	if err != nil {
		return fmt.Errorf("MongoDB connection error: %w", err)
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			logger.Log.Errorw("MongoDB disconnect error", "error", err)
		}
	}()
	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("MongoDB ping failed: %w", err)
	}

	codec := identity.Codec{Encoding: identity.EncodingBinary, LegacyReads: cfg.mongoLegacyIDReads}
	store := repositories.NewStore(client.Database(cfg.mongoDB), codec, cfg.mongoTimeout)
	if err := repositories.EnsureIndexes(ctx, store); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	probes := []health.Probe{health.MongoProbe(client)}

	// Connect to Redis
	var locker services.Locker
	if cfg.redisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
			Password:     cfg.redisPassword,
			DB:           cfg.redisDB,
			PoolSize:     cfg.redisPoolSize,
			MinIdleConns: cfg.redisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("Redis connection error: %w", err)
		}
		defer rdb.Close()

		locker = repositories.NewLockRepository(rdb, cfg.redisLockTTL)
		probes = append(probes, health.RedisProbe(rdb))
	} else {
		logger.Log.Info("Redis not configured, natural-key locks disabled")
	}

	// Kafka writer
	var writer services.KafkaWriter
	if len(cfg.kafkaBrokers) > 0 {
		kw := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.kafkaBrokers...),
			Topic:                  cfg.kafkaTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		defer kw.Close()
		writer = kw
	} else {
		logger.Log.Info("Kafka not configured, domain events disabled")
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(store)
	profileRepo := repositories.NewProfileRepository(store)
	businessRepo := repositories.NewBusinessRepository(store)
	paymentRepo := repositories.NewPaymentRepository(store)
	trainingRepo := repositories.NewTrainingRepository(store)
	messageRepo := repositories.NewMessageRepository(store)
	notificationRepo := repositories.NewNotificationRepository(store)
	reviewRepo := repositories.NewReviewRepository(store)

	// Initialize services
	bcrypt := hasher.NewBcrypt(cfg.bcryptCost)
	guard := services.NewGuard(userRepo, locker)
	events := services.NewPublisher(writer)

	userService := services.NewUserService(userRepo, profileRepo, businessRepo, bcrypt, guard, events)
	authService := services.NewAuthService(userRepo, bcrypt)
	profileService := services.NewProfileService(profileRepo, guard)
	businessService := services.NewBusinessService(businessRepo, guard)
	paymentService := services.NewPaymentService(paymentRepo, guard, events)
	trainingService := services.NewTrainingService(trainingRepo, guard)
	messageService := services.NewMessageService(messageRepo, notificationRepo, guard, events)
	notificationService := services.NewNotificationService(notificationRepo, guard)
	reviewService := services.NewReviewService(reviewRepo, businessRepo, guard)

	checker := health.NewChecker(healthTimeout, probes...)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.MetricsMiddleware)
	r.Use(cors.AllowAll().Handler)

	r.Route("/users", func(r chi.Router) {
		r.Post("/register", handlers.NewRegisterUserHandler(userService))
		r.Put("/update", handlers.NewUpdateUserHandler(userService))
		r.Delete("/delete/{user_id}", handlers.NewDeleteUserHandler(userService))
		r.Get("/", handlers.NewListUsersHandler(userService))
		r.Get("/{username}", handlers.NewGetUserHandler(userService))
	})

	r.Route("/profiles", func(r chi.Router) {
		r.Post("/register", handlers.NewRegisterProfileHandler(profileService))
		r.Put("/update", handlers.NewUpdateProfileHandler(profileService))
		r.Delete("/delete/{username}", handlers.NewDeleteProfileHandler(profileService))
		r.Get("/", handlers.NewListProfilesHandler(profileService))
		r.Get("/{profile_id}", handlers.NewGetProfileHandler(profileService))
		r.Get("/username/{username}", handlers.NewGetProfileByUsernameHandler(profileService))
	})

	r.Route("/businesses", func(r chi.Router) {
		r.Post("/register", handlers.NewRegisterBusinessHandler(businessService))
		r.Put("/update", handlers.NewUpdateBusinessHandler(businessService))
		r.Delete("/delete/{id}", handlers.NewDeleteBusinessHandler(businessService))
		r.Get("/", handlers.NewListBusinessesHandler(businessService))
		r.Get("/{business_id}", handlers.NewGetBusinessHandler(businessService))
		r.Get("/user/{user_id}", handlers.NewListBusinessesByOwnerHandler(businessService))
	})

	r.Route("/payments", func(r chi.Router) {
		r.Post("/add", handlers.NewAddPaymentHandler(paymentService))
		r.Put("/update", handlers.NewUpdatePaymentHandler(paymentService))
		r.Delete("/delete/{id}", handlers.NewDeletePaymentHandler(paymentService))
		r.Get("/", handlers.NewListPaymentsHandler(paymentService))
		r.Get("/{id}", handlers.NewGetPaymentHandler(paymentService))
		r.Get("/seller/{seller_id}", handlers.NewListPaymentsBySellerHandler(paymentService))
		r.Get("/purchaser/{purchaser_id}", handlers.NewListPaymentsByPurchaserHandler(paymentService))
	})

	r.Route("/trainings", func(r chi.Router) {
		r.Post("/add", handlers.NewAddTrainingHandler(trainingService))
		r.Put("/update", handlers.NewUpdateTrainingHandler(trainingService))
		r.Delete("/delete/{id}", handlers.NewDeleteTrainingHandler(trainingService))
		r.Get("/", handlers.NewListTrainingsHandler(trainingService))
		r.Get("/{id}", handlers.NewGetTrainingHandler(trainingService))
	})

	r.Route("/messages", func(r chi.Router) {
		r.Post("/send", handlers.NewSendMessageHandler(messageService))
		r.Delete("/delete/{id}", handlers.NewDeleteMessageHandler(messageService))
		r.Get("/", handlers.NewListMessagesHandler(messageService))
		r.Get("/{id}", handlers.NewGetMessageHandler(messageService))
		r.Get("/user/{user_id}", handlers.NewListMessagesByUserHandler(messageService))
	})

	r.Route("/notifications", func(r chi.Router) {
		r.Post("/create", handlers.NewCreateNotificationHandler(notificationService))
		r.Get("/{user_id}", handlers.NewListNotificationsHandler(notificationService))
		r.Put("/confirm/{id}", handlers.NewConfirmNotificationHandler(notificationService))
		r.Delete("/delete/{id}", handlers.NewDeleteNotificationHandler(notificationService))
	})

	r.Route("/reviews", func(r chi.Router) {
		r.Post("/add", handlers.NewAddReviewHandler(reviewService))
		r.Put("/update", handlers.NewUpdateReviewHandler(reviewService))
		r.Delete("/delete/{id}", handlers.NewDeleteReviewHandler(reviewService))
		r.Get("/", handlers.NewListReviewsHandler(reviewService))
		r.Get("/{id}", handlers.NewGetReviewHandler(reviewService))
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", handlers.NewLoginHandler(authService))
		r.Post("/set_password", handlers.NewSetPasswordHandler(authService))
		r.Put("/change_password", handlers.NewChangePasswordHandler(authService))
	})

	r.Get("/health", handlers.NewHealthHandler(checker))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// gRPC health server
	lis, err := net.Listen("tcp", fmt.Sprintf("%s:%s", cfg.appHost, cfg.grpcPort))
	if err != nil {
		return fmt.Errorf("gRPC listen failed: %w", err)
	}
	grpcServer := grpc.NewServer()
	healthpb.RegisterHealthServer(grpcServer, checker.Server())

	// Graceful shutdown
	errChan := make(chan error, 2)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go checker.Run(ctxShutdown, healthInterval)

	go func() {
		logger.Log.Infof("gRPC health server listening on %s", lis.Addr())
		if err := grpcServer.Serve(lis); err != nil {
			errChan <- fmt.Errorf("gRPC server failed: %w", err)
		}
	}()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping servers...")
	case serveErr := <-errChan:
		grpcServer.Stop()
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}
	grpcServer.GracefulStop()

	logger.Log.Info("Servers stopped gracefully")
	return nil
}
