package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gamehub/internal/account"
	"gamehub/internal/catalog"
	"gamehub/internal/config"
	"gamehub/internal/httpx"
	kafkax "gamehub/internal/kafka"
	"gamehub/internal/orders"
	"gamehub/internal/postgres"
	"gamehub/internal/redisx"
	"gamehub/internal/session"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		catalogRepo catalog.Repository
		orderRepo   orders.Repository
		userRepo    account.Repository
		sessions    session.Store
		cache       *redis.Client
	)

	switch cfg.StoreBackend {
	case "memory":
		catalogRepo = catalog.NewMemoryRepo()
		orderRepo = orders.NewMemoryRepo()
		userRepo = account.NewMemoryRepo()
		sessions = session.NewMemoryStore()
		log.Println("using in-memory stores")
	default:
		db, err := postgres.Connect(ctx, cfg.PostgresDSN)
		if err != nil {
			log.Fatalf("db connect: %v", err)
		}
		defer db.Close()

		rdb, err := redisx.New(cfg.RedisAddr, cfg.RedisPass)
		if err != nil {
			log.Fatalf("redis connect: %v", err)
		}
		defer rdb.Close()

		catalogRepo = catalog.NewPgxRepo(db)
		orderRepo = orders.NewPgxRepo(db)
		userRepo = account.NewPgxRepo(db)
		sessions = session.NewRedisStore(rdb)
		cache = rdb
	}

	svc := orders.NewService(orderRepo)
	svc.Producer = cfg.ServiceName

	var producers []*kafkax.Producer
	if len(cfg.KafkaBrokers) > 0 {
		created := kafkax.NewProducer(cfg.KafkaBrokers, orders.TopicOrderCreated, 1024)
		status := kafkax.NewProducer(cfg.KafkaBrokers, orders.TopicOrderStatus, 1024)
		created.Start(ctx)
		status.Start(ctx)
		svc.CreatedEv = created
		svc.StatusEv = status
		producers = append(producers, created, status)
	}

	images, err := catalog.NewDiskImageStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("image store: %v", err)
	}

	adminUsers := make(map[string]bool, len(cfg.AdminUsers))
	for _, u := range cfg.AdminUsers {
		adminUsers[u] = true
	}

	auth := httpx.NewAuth(sessions)
	router := httpx.NewRouter(cfg.UploadDir)

	(&httpx.AuthHandler{
		Accounts:   account.NewService(userRepo),
		Sessions:   sessions,
		AdminUsers: adminUsers,
	}).Register(router)
	(&httpx.GamesHandler{Repo: catalogRepo, Images: images, Cache: cache}).Register(router, auth)
	(&httpx.OrdersHandler{Service: svc}).Register(router, auth)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.Printf("HTTP listening at %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)

	for _, p := range producers {
		p.Close()
	}
	cancel()
	for _, p := range producers {
		p.WaitClosed()
	}
}
