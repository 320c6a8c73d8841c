package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ariefcatur/go-store-api.git/internal/config"
	"github.com/ariefcatur/go-store-api.git/internal/events"
	"github.com/ariefcatur/go-store-api.git/internal/httpx"
	"github.com/ariefcatur/go-store-api.git/internal/redisx"
	"github.com/ariefcatur/go-store-api.git/internal/storage"
	"github.com/ariefcatur/go-store-api.git/internal/store"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Store (file-backed document)
	st := store.New(storage.NewFile(cfg.DataPath))

	// Redis (optional)
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redisx.New(cfg.RedisAddr)
		defer rdb.Close()
	}

	// Kafka producer (optional)
	var prod *events.Producer
	if len(cfg.KafkaBrokers) > 0 {
		prod = events.NewProducer(cfg.KafkaBrokers, 1024)
		prod.Start(ctx)
	}

	// Router & handlers
	router := httpx.NewRouter()
	(&httpx.UsersHandler{Store: st}).Register(router)
	(&httpx.ProductsHandler{Store: st}).Register(router)
	(&httpx.OrdersHandler{
		Store:    st,
		Producer: prod,
		Redis:    rdb,
		Service:  cfg.ServiceName,
	}).Register(router)

	// HTTP server
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	// graceful shutdown
	go func() {
		log.Printf("HTTP listening at %s (data=%s)", cfg.HTTPAddr, cfg.DataPath)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	// wait signal
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	prod.Close()      // tutup inbox -> flush & close writer
	prod.WaitClosed() // drain
	cancel()
}
