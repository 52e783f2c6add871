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

	"github.com/Circulx/Fathom-Legal-sub001/auth"
	"github.com/Circulx/Fathom-Legal-sub001/blog"
	"github.com/Circulx/Fathom-Legal-sub001/config"
	"github.com/Circulx/Fathom-Legal-sub001/contact"
	"github.com/Circulx/Fathom-Legal-sub001/db"
	"github.com/Circulx/Fathom-Legal-sub001/gallery"
	"github.com/Circulx/Fathom-Legal-sub001/middleware"
	"github.com/Circulx/Fathom-Legal-sub001/orders"
	"github.com/Circulx/Fathom-Legal-sub001/pay"
	"github.com/Circulx/Fathom-Legal-sub001/ratelim"
	"github.com/Circulx/Fathom-Legal-sub001/razorpay"
	"github.com/Circulx/Fathom-Legal-sub001/rdx"
	"github.com/Circulx/Fathom-Legal-sub001/routes"
	"github.com/Circulx/Fathom-Legal-sub001/storage"
	"github.com/Circulx/Fathom-Legal-sub001/templates"
	"github.com/Circulx/Fathom-Legal-sub001/utils"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// XSS, content sniffing, framing
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		// HSTS (must be on HTTPS)
		w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")
		// Referrer and permissions
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request method, path, remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		duration := time.Since(start)
		log.Printf("%s %s from %s – %v", r.Method, r.RequestURI, r.RemoteAddr, duration)
	})
}

// Index is a simple health check handler.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

func main() {
	// load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	var cfg config.Config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("❌ Config error: %v", err)
	}

	utils.Development = cfg.IsDevelopment()
	if cfg.JWTSecret != "" {
		middleware.JwtSecret = []byte(cfg.JWTSecret)
	}
	orders.InvoiceSecret = cfg.Razorpay.KeySecret

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	database, err := db.Connect(ctx, cfg.Mongo)
	cancel()
	if err != nil {
		log.Fatalf("❌ MongoDB error: %v", err)
	}

	// Redis only backs the template cache; keep running without it.
	if err := rdx.Init(cfg.Redis); err != nil {
		log.Printf("⚠️ Redis unavailable, caching disabled: %v", err)
	}

	store, err := storage.New(context.Background(), cfg.Storage)
	if err != nil {
		log.Fatalf("❌ Storage error: %v", err)
	}
	if !store.CloudConfigured() {
		log.Println("⚠️ No bucket configured; serving template files from local disk only")
	}

	gateway := razorpay.NewClient(cfg.Razorpay)
	if !gateway.Configured() {
		log.Println("⚠️ Razorpay keys missing; payment endpoints will refuse requests")
	}

	if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
		if err := auth.SeedSuperAdmin(context.Background(), database, cfg.AdminUsername, cfg.AdminPassword); err != nil {
			log.Printf("⚠️ Admin seed failed: %v", err)
		}
	}

	services := &routes.Services{
		Auth:      auth.NewAuthService(database),
		Orders:    orders.NewOrderService(database),
		Payments:  pay.NewPaymentService(database, gateway),
		Templates: templates.NewTemplateService(database, store),
		Blog:      blog.NewBlogService(database),
		Gallery:   gallery.NewGalleryService(database, store),
		Contact:   contact.NewContactService(database),
	}

	rateLimiter := ratelim.NewRateLimiter()

	router := httprouter.New()
	router.GET("/health", Index)
	routes.RoutesWrapper(router, services, rateLimiter)

	// apply middleware: CORS → security headers → logging → router
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // lock down in production
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	handler := loggingMiddleware(securityHeaders(corsHandler))

	port := cfg.Port
	if port == "" {
		port = "8080"
	}
	if port[0] != ':' {
		port = ":" + port
	}

	server := &http.Server{
		Addr:              port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	// start server
	go func() {
		log.Printf("🚀 Server listening on %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe error: %v", err)
		}
	}()

	// wait for interrupt or SIGTERM
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	// initiate graceful shutdown
	log.Println("🛑 Shutdown signal received; shutting down gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("❌ Graceful shutdown failed: %v", err)
	}
	if err := database.Close(shutdownCtx); err != nil {
		log.Printf("⚠️ MongoDB close: %v", err)
	}

	log.Println("✅ Server stopped cleanly")
}
