package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/Mohamed-Amiir/RiseJourny/internal/accounts"
	"github.com/Mohamed-Amiir/RiseJourny/internal/archive"
	"github.com/Mohamed-Amiir/RiseJourny/internal/carts"
	"github.com/Mohamed-Amiir/RiseJourny/internal/catalog"
	"github.com/Mohamed-Amiir/RiseJourny/internal/checkout"
	"github.com/Mohamed-Amiir/RiseJourny/internal/domain"
	h "github.com/Mohamed-Amiir/RiseJourny/internal/http"
	"github.com/Mohamed-Amiir/RiseJourny/internal/shipping"
)

type Config struct {
	HTTPPort          string
	RedisAddr         string
	RedisPassword     string
	KafkaBrokers      []string
	DefaultCustomerID string
	RequestTimeout    time.Duration
	ShutdownTimeout   time.Duration
}

func loadConfig() *Config {
	cfg := &Config{
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		RedisAddr:         getEnv("REDIS_ADDR", ""),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		DefaultCustomerID: getEnv("DEFAULT_CUSTOMER_ID", "demo"),
		RequestTimeout:    30 * time.Second,
		ShutdownTimeout:   10 * time.Second,
	}
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	cfg := loadConfig()
	ctx := context.Background()

	// Cart storage: redis when configured, in-memory otherwise.
	var cartStore carts.Store
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatal("Redis connection failed:", err)
		}
		log.Printf("Connected to redis at %s", cfg.RedisAddr)
		cartStore = carts.NewRedisStore(redisClient)
	} else {
		log.Printf("REDIS_ADDR not set, carts are in-memory")
		cartStore = carts.NewMemoryStore()
	}

	// Shipping carrier: kafka topic when brokers are configured, otherwise
	// the shipment notice goes to the log.
	var notifier shipping.Notifier
	var publisher archive.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		kafkaNotifier := shipping.NewKafkaNotifier(cfg.KafkaBrokers...)
		defer kafkaNotifier.Close()
		notifier = shipping.NewBreakerNotifier(kafkaNotifier)

		kafkaPublisher := archive.NewKafkaPublisher(cfg.KafkaBrokers...)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		log.Printf("Publishing shipment notices and receipts to %v", cfg.KafkaBrokers)
	} else {
		log.Printf("KAFKA_BROKERS not set, shipment notices go to the log")
		notifier = shipping.NewLogNotifier()
	}

	catalogStore := catalog.NewMemoryStore()
	accountStore := accounts.NewMemoryStore()
	seedDemoData(catalogStore, accountStore, cfg.DefaultCustomerID)

	cartService := carts.NewService(cartStore, catalogStore)
	checkoutService := checkout.NewService(notifier)

	productHandler := h.NewProductHandler(catalogStore)
	cartHandler := h.NewCartHandler(cartService, cfg.RequestTimeout)
	accountHandler := h.NewAccountHandler(accountStore)
	checkoutHandler := h.NewCheckoutHandler(cartService, accountStore, checkoutService, publisher, cfg.RequestTimeout)

	// Setup router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(h.RequestIDMiddleware)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(h.CustomerMiddleware(cfg.DefaultCustomerID))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", productHandler.List)
			r.Get("/{product_id}", productHandler.Get)
		})
		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.GetCart)
			r.Delete("/", cartHandler.ClearCart)
			r.Post("/items", cartHandler.AddItem)
			r.Delete("/items/{product_id}", cartHandler.RemoveItem)
		})
		r.Route("/account", func(r chi.Router) {
			r.Get("/", accountHandler.Get)
			r.Post("/credit", accountHandler.Credit)
		})
		r.Post("/checkout", checkoutHandler.Checkout)
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Checkout service starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}

// seedDemoData loads the demo catalog and customer account.
func seedDemoData(cat catalog.Store, acc accounts.Store, customerID string) {
	cheeseExpiry := time.Now().AddDate(0, 0, 14)
	biscuitsExpiry := time.Now().AddDate(1, 0, 0)

	products := []*domain.Product{
		domain.NewProduct(1, "Cheese", 50.0, 10).WithExpiry(cheeseExpiry).WithWeight(2.0),
		domain.NewProduct(2, "Biscuits", 20.0, 5).WithExpiry(biscuitsExpiry),
		domain.NewProduct(3, "Smart TV", 500.0, 2).WithWeight(15.0),
		domain.NewProduct(4, "Mob-Card", 10.0, 100),
	}
	for _, p := range products {
		if err := cat.Add(p); err != nil {
			log.Fatalf("failed to seed product %q: %v", p.Name, err)
		}
	}

	if err := acc.Add(domain.NewAccount(customerID, "Demo Customer", 10000.0)); err != nil {
		log.Fatalf("failed to seed account: %v", err)
	}
	log.Printf("Seeded %d products and demo account %q", len(products), customerID)
}
