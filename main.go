package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"icebreaker/backend/cache"
	"icebreaker/backend/config"
	"icebreaker/backend/database"
	"icebreaker/backend/handlers"
	"icebreaker/backend/icebreaker"
	"icebreaker/backend/middleware"
	"icebreaker/backend/realtime"
	"icebreaker/backend/websocket"

	"github.com/gorilla/mux"
	"github.com/rs/cors" // 引入 CORS 庫
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Could not build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	startCtx, cancelStart := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStart()

	store, err := database.Connect(startCtx, cfg.MongoDBURI, cfg.DBName, logger)
	if err != nil {
		logger.Fatal("connect to mongodb", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := store.Disconnect(ctx); err != nil {
			logger.Warn("disconnect mongodb", zap.Error(err))
		}
	}()

	if cfg.SeedActivities {
		n, err := store.SeedActivities(startCtx, database.DefaultActivities)
		if err != nil {
			logger.Fatal("seed activities", zap.Error(err))
		}
		logger.Info("activity catalog ready", zap.Int("seeded", n))
	}

	broker, interests, err := newBroker(cfg, logger)
	if err != nil {
		logger.Fatal("connect to redis", zap.Error(err))
	}
	defer func() { _ = broker.Close() }()
	if closer, ok := interests.(interface{ Close() error }); ok {
		defer func() { _ = closer.Close() }()
	}

	engine := newEngine(cfg, store, broker, interests, logger)

	hubCtx, stopHub := context.WithCancel(context.Background())
	hub := websocket.NewHub(logger)
	go hub.Run(hubCtx)
	wsServer := websocket.NewServer(hub, engine, cfg.JWTSecret, cfg.CORSOrigins, logger)

	router := mux.NewRouter()
	router.Use(mux.MiddlewareFunc(middleware.RequestLogger(logger)))

	// 健康檢查路由
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := store.Ping(r.Context()); err != nil {
			http.Error(w, "Database unavailable", http.StatusServiceUnavailable)
			return
		}
		fmt.Fprintf(w, "Backend is running!")
	}).Methods(http.MethodGet)

	requireAuth := middleware.JWTMiddleware(cfg.JWTSecret, logger)
	handlers.RegisterRoutes(router,
		handlers.NewAuthHandler(store, cfg.JWTSecret, cfg.TokenTTL, logger),
		handlers.NewHandler(engine, logger),
		requireAuth)
	router.Handle("/ws", requireAuth(http.HandlerFunc(wsServer.HandleConnections))).Methods(http.MethodGet)

	// 設置 CORS 中介軟體
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	srv := &http.Server{
		Addr:         serverAddr,
		Handler:      c.Handler(router),
		IdleTimeout:  120 * time.Second,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("addr", serverAddr), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			// 如果錯誤不是因為主動關閉伺服器，就記錄錯誤並結束程式
			logger.Fatal("could not listen", zap.String("addr", serverAddr), zap.Error(err))
		}
	}()

	//當按下 Ctrl+C，程式會收到 SIGINT
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	logger.Info("shutting down server", zap.String("signal", sig.String()))

	//最多等30秒關閉，避免資料損壞，請求中斷
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}
	stopHub()
	if err := wsServer.Wait(ctx); err != nil {
		logger.Warn("websocket connections did not drain", zap.Error(err))
	}

	logger.Info("server exited gracefully")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parse LOG_LEVEL: %w", err)
	}
	zcfg := zap.NewDevelopmentConfig()
	if cfg.Production() {
		zcfg = zap.NewProductionConfig()
	}
	zcfg.Level = level
	return zcfg.Build()
}

// newBroker 沒有設定 REDIS_URL 時使用單機廣播，也不鏡像興趣標籤
func newBroker(cfg *config.Config, logger *zap.Logger) (realtime.Broker, icebreaker.InterestCache, error) {
	if cfg.RedisURL == "" {
		logger.Info("using in-process broker")
		return realtime.NewLocalBroker(), nil, nil
	}
	broker, err := realtime.NewRedisBroker(cfg.RedisURL, logger.Named("redis"))
	if err != nil {
		return nil, nil, err
	}
	interests, err := cache.NewInterestCache(cfg.RedisURL)
	if err != nil {
		_ = broker.Close()
		return nil, nil, err
	}
	logger.Info("using redis broker and interest cache")
	return broker, interests, nil
}

func newEngine(cfg *config.Config, store *database.Store, broker realtime.Broker, interests icebreaker.InterestCache, logger *zap.Logger) *icebreaker.Engine {
	sessions := icebreaker.NewSessions(store, broker, logger)
	membership := icebreaker.NewMembership(store, store, interests, broker, logger, cfg.MaxInterestTags)
	return &icebreaker.Engine{
		Channels:   icebreaker.NewChannels(store, sessions, logger),
		Sessions:   sessions,
		Membership: membership,
		Prompts:    icebreaker.NewPromptSelector(store, sessions, membership, store, logger),
		Messages:   icebreaker.NewMessages(store, store, broker, logger, cfg.MessageWindow),
		Ledger:     icebreaker.NewLedger(store, store, store, store, logger),
	}
}
