package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shopify-sms-notifier/internal/adapters/provider/httpgateway"
	"shopify-sms-notifier/internal/adapters/quota/httpcredit"
	"shopify-sms-notifier/internal/adapters/quota/local"
	"shopify-sms-notifier/internal/app"
	cfg "shopify-sms-notifier/internal/config"
	"shopify-sms-notifier/internal/middleware"
	"shopify-sms-notifier/internal/ports"
	"shopify-sms-notifier/internal/transport"
	"shopify-sms-notifier/internal/webhook"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{AddSource: true}))
	if err := run(log); err != nil {
		log.Error("application failed", "error", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	conf := cfg.FromEnv()
	if conf.WebhookSecret == "" {
		return errors.New("WEBHOOK_SECRET must be set")
	}

	provider := httpgateway.New(httpgateway.Config{
		URL:      conf.GatewayURL,
		Username: conf.SMSUsername,
		Password: conf.SMSPassword,
		Sender:   conf.SMSSender,
		Language: conf.SMSLanguage,
		Timeout:  conf.Timeout,
	})

	// Two quota policies exist; exactly one is active per process.
	var quota ports.QuotaService
	switch conf.QuotaMode {
	case cfg.QuotaLocal:
		quota = local.NewBudget(conf.QuotaLimit)
		log.Info("quota policy: local budget", "limit", conf.QuotaLimit)
	default:
		quota = httpcredit.New(conf.CreditURL, conf.SMSUsername, conf.SMSPassword, conf.Timeout)
		log.Info("quota policy: remote credit service", "url", conf.CreditURL)
	}

	verifier := webhook.NewVerifier(conf.WebhookSecret, log)
	composer := webhook.NewComposer(conf.StoreContact)
	svc := app.NewNotifierService(composer, quota, provider, log)

	fiberApp := fiber.New(fiber.Config{
		AppName:               "webhook-server",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		IdleTimeout:           120 * time.Second,
		ServerHeader:          "",
		BodyLimit:             1 * 1024 * 1024, // order payloads are small
	})

	fiberApp.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	fiberApp.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${method} ${path} ${latency}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	fiberApp.Use(middleware.RequestID())

	// 120 deliveries per minute per shop.
	rateLimiter := middleware.NewRateLimiter(120, 1*time.Minute, transport.HeaderShopDomain)
	fiberApp.Use(rateLimiter.Middleware())

	fiberApp.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	handler := transport.NewHandler(svc, verifier, log, conf.DevMode)
	handler.Register(fiberApp)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		log.Info("webhook-server started", "addr", conf.HTTPAddr)
		if err := fiberApp.Listen(conf.HTTPAddr); err != nil {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-errChan:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := fiberApp.ShutdownWithContext(shutdownCtx); err != nil {
		return errors.New("failed to shutdown gracefully: " + err.Error())
	}

	log.Info("webhook-server stopped gracefully")
	return nil
}
