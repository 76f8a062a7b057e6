package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mavisigorta/backend/internal/config"
	"github.com/mavisigorta/backend/internal/handler"
	"github.com/mavisigorta/backend/internal/logging"
	"github.com/mavisigorta/backend/internal/repository"
	"github.com/mavisigorta/backend/internal/service"
	"github.com/mavisigorta/backend/internal/storage"
	"github.com/mavisigorta/backend/pkg/mail"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		// Logging is not configured yet; the default handler still reaches stderr.
		logging.Fatal("invalid configuration", "error", err)
	}
	logging.Setup(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})

	store := storage.NewLocalStorage(cfg.ContentDir)
	if err := store.Ping(context.Background()); err != nil {
		slog.Warn("content directory not readable, serving defaults", "dir", cfg.ContentDir, "error", err)
	}

	contentRepo := repository.NewFileContentRepository(store)
	contentService := service.NewContentService(contentRepo)

	sender := newSender(cfg.Mail)
	if !sender.Configured() {
		if cfg.Development() {
			slog.Warn("mail sender not configured; contact submissions will only be logged", "transport", cfg.Mail.Transport)
		} else {
			slog.Error("mail sender not configured; contact submissions will fail", "transport", cfg.Mail.Transport)
		}
	}
	contactService := service.NewContactService(sender, service.ContactConfig{
		From:        cfg.Mail.From,
		Recipient:   cfg.Mail.Recipient,
		Development: cfg.Development(),
	})

	h := handler.New(store, cfg.FrontendURL)
	contentHandler := handler.NewContentHandler(contentService, handler.ContentConfig{
		AllowDrafts: cfg.Development(),
	})
	contactHandler := handler.NewContactHandler(contactService)
	legalHandler := handler.NewLegalHandler(contentService)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("POST /api/contact", contactHandler.Submit)
	mux.HandleFunc("GET /api/legal/{type}", legalHandler.Legal)

	// Site content (read from CONTENT_DIR on every request)
	mux.HandleFunc("GET /api/settings", contentHandler.Settings)
	mux.HandleFunc("GET /api/courses", contentHandler.Courses)
	mux.HandleFunc("GET /api/courses/{id}", contentHandler.Course)
	mux.HandleFunc("GET /api/instructors", contentHandler.Instructors)
	mux.HandleFunc("GET /api/instructors/{id}", contentHandler.Instructor)
	mux.HandleFunc("GET /api/faqs", contentHandler.FAQs)

	// Blog
	mux.HandleFunc("GET /api/blog", contentHandler.BlogPosts)
	mux.HandleFunc("GET /api/blog/slugs", contentHandler.BlogSlugs)
	mux.HandleFunc("GET /api/blog/categories", contentHandler.Categories)
	mux.HandleFunc("GET /api/blog/tags", contentHandler.Tags)
	mux.HandleFunc("GET /api/blog/{slug}", contentHandler.BlogPost)

	app := handler.Chain(mux,
		handler.RequestLogger,
		handler.SecurityHeaders,
		h.CORS,
		handler.Compress,
	)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           app,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      20 * time.Second, // above the 15s mail client timeout
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "env", cfg.Env, "content_dir", cfg.ContentDir)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	slog.Info("server stopped")
}

// newSender picks the mail transport named by MAIL_TRANSPORT.
func newSender(cfg config.Mail) mail.Sender {
	if cfg.Transport == config.TransportSMTP {
		return mail.NewSMTPSender(mail.SMTPConfig{
			Host: cfg.SMTPHost,
			Port: cfg.SMTPPort,
			User: cfg.SMTPUser,
			Pass: cfg.SMTPPass,
		})
	}
	return mail.NewResendClient(cfg.ResendAPIKey, cfg.ResendBaseURL)
}
