package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
)

// mockSendRequest mirrors what the gateway adapter posts to /sms/send.
type mockSendRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Text      string `json:"text"`
	Language  string `json:"language"`
	Sender    string `json:"sender"`
	Receiver  string `json:"receiver"`
	MessageID string `json:"msg_id"`
}

// mock-upstream stands in for both the credit service and the SMS
// gateway during local development.
//
//	MOCK_BALANCE      balance returned by /credit/balance (default "25";
//	                  set to "-5" to simulate the exhaustion sentinel)
//	MOCK_SEND_STATUS  status field returned by /sms/send (default "Success")
func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	addr := getenv("HTTP_ADDR", ":9090")
	balance := getenv("MOCK_BALANCE", "25")
	sendStatus := getenv("MOCK_SEND_STATUS", "Success")

	fiberApp := fiber.New(fiber.Config{AppName: "mock-upstream"})

	// POST /credit/balance — plain numeric body, like the real service.
	fiberApp.Post("/credit/balance", func(c *fiber.Ctx) error {
		log.Info("mock credit service queried", "balance", balance)
		return c.SendString(balance)
	})

	// POST /sms/send — accepts a submission and echoes the configured status.
	fiberApp.Post("/sms/send", func(c *fiber.Ctx) error {
		var req mockSendRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
		}

		log.Info("mock gateway received message",
			"msg_id", req.MessageID,
			"receiver", req.Receiver,
			"sender", req.Sender,
			"text", req.Text,
		)

		return c.JSON(fiber.Map{"status": sendStatus})
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("mock-upstream listening", "addr", addr)
		if err := fiberApp.Listen(addr); err != nil {
			log.Error("fiber listen", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down mock-upstream")
	_ = fiberApp.Shutdown()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
