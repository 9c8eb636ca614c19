package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"gatorengineered/internal/config"
	"gatorengineered/internal/excel"
	"gatorengineered/internal/handlers"
	"gatorengineered/internal/logger"
	"gatorengineered/internal/mailer"
	"gatorengineered/internal/middleware"
	sentryutil "gatorengineered/internal/sentry"
)

func main() {
	// Load configuration from .env and environment variables
	config.Load()

	// Initialize Sentry (non-blocking if SENTRY_DSN is empty)
	sentryutil.Init()
	defer sentryutil.Flush()

	if !config.Cfg.ExcelConfigured() {
		logger.Warn("excel channel not configured, lead logging disabled", nil)
	}
	if !config.Cfg.SMTPConfigured() {
		logger.Warn("smtp channel not configured, contact emails disabled", nil)
	}

	// Delivery channels, built once and shared (the excel logger caches its
	// bearer token across requests)
	leads := excel.New(config.Cfg)
	mails := mailer.New(config.Cfg)
	contactAPI := handlers.NewContactAPI(config.Cfg, leads, mails)

	// Rate limiter from config
	limiter := handlers.NewRateLimiter(
		config.Cfg.RateLimitRPS,
		config.Cfg.RateLimitBurst,
		time.Second,
	)

	// Create mux
	mux := http.NewServeMux()

	// API routes
	mux.Handle("/api/contact", contactAPI)
	mux.HandleFunc("/api/health", handlers.HealthHandler)

	// Pages
	mux.HandleFunc("/contact", handlers.ContactPageHandler)

	// Serve static files, block dotfile paths (.env, .git, etc.)
	fs := http.FileServer(http.Dir("static"))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "/.") {
			handlers.NotFoundHandler(w, r)
			return
		}
		path := r.URL.Path
		if path == "/" {
			path = "/index.html"
		}
		if _, err := os.Stat("static" + path); err != nil {
			handlers.NotFoundHandler(w, r)
			return
		}
		fs.ServeHTTP(w, r)
	})

	// Wrap with middleware: Recovery → SecurityHeaders → CORS → Gzip (if enabled) → Rate Limiter
	var handler http.Handler = limiter.Middleware(mux)
	if config.Cfg.GzipEnabled {
		handler = middleware.Gzip(handler)
	}
	handler = middleware.CORS(config.Cfg.CORSOrigin, handler)
	handler = middleware.SecurityHeaders(handler)
	handler = middleware.Recovery(handler)

	logger.Info("server starting", map[string]interface{}{"port": config.Cfg.Port})
	fmt.Printf("Gator Engineered backend running on http://localhost:%s\n", config.Cfg.Port)
	log.Fatal(http.ListenAndServe(":"+config.Cfg.Port, handler))
}
