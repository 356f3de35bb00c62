package transport

import (
	"errors"
	"log/slog"

	"shopify-sms-notifier/internal/app"
	"shopify-sms-notifier/internal/domain"
	"shopify-sms-notifier/internal/webhook"

	"github.com/gofiber/fiber/v2"
)

// Required webhook headers. Shop domain is informational; only its
// presence is checked.
const (
	HeaderTopic      = "X-Shopify-Topic"
	HeaderShopDomain = "X-Shopify-Shop-Domain"
	HeaderSignature  = "X-Shopify-Hmac-Sha256"
)

// Handler terminates the webhook endpoint. It owns the protocol gate
// (method, headers, raw body, signature) and maps pipeline errors onto
// HTTP statuses; everything after the signature check lives in the
// application service.
type Handler struct {
	svc      *app.NotifierService
	verifier *webhook.Verifier
	log      *slog.Logger
	devMode  bool
}

// NewHandler wires up a Handler. devMode adds error details to 500
// bodies and must stay off in production.
func NewHandler(svc *app.NotifierService, verifier *webhook.Verifier, log *slog.Logger, devMode bool) *Handler {
	return &Handler{svc: svc, verifier: verifier, log: log, devMode: devMode}
}

// Register mounts the webhook route. All methods are routed so the
// handler can answer 405 with the JSON error shape instead of fiber's
// default text response.
func (h *Handler) Register(router fiber.Router) {
	router.All("/webhooks/orders", h.HandleOrderEvent)
}

type successResponse struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	RemainingQuota int    `json:"remaining_quota"`
	SMSID          string `json:"sms_id"`
}

// HandleOrderEvent runs the full pipeline for one webhook delivery.
//
// POST /webhooks/orders
// Headers: X-Shopify-Topic, X-Shopify-Shop-Domain, X-Shopify-Hmac-Sha256
// Body: raw order event JSON, signed by the order source.
func (h *Handler) HandleOrderEvent(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		return c.Status(fiber.StatusMethodNotAllowed).JSON(fiber.Map{"error": "method not allowed"})
	}

	topic := c.Get(HeaderTopic)
	shop := c.Get(HeaderShopDomain)
	signature := c.Get(HeaderSignature)
	if topic == "" || shop == "" || signature == "" {
		h.log.Warn("webhook rejected: missing headers", "topic", topic, "shop", shop)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing required webhook headers"})
	}

	// c.Body() is the body exactly as received. The signature covers
	// these bytes; nothing may parse them before verification passes.
	rawBody := c.Body()

	if !h.verifier.Verify(signature, rawBody) {
		h.log.Warn("webhook rejected: invalid signature", "topic", topic, "shop", shop)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid signature"})
	}

	result, err := h.svc.ProcessOrderEvent(c.Context(), domain.Topic(topic), rawBody)
	if err != nil {
		return h.renderError(c, topic, shop, err)
	}

	return c.Status(fiber.StatusOK).JSON(successResponse{
		Success:        true,
		Message:        result.Message,
		RemainingQuota: result.RemainingQuota,
		SMSID:          result.SMSID,
	})
}

// renderError converts a pipeline error into exactly one HTTP response.
func (h *Handler) renderError(c *fiber.Ctx, topic, shop string, err error) error {
	switch {
	case errors.Is(err, domain.ErrNoPhoneNumber):
		h.log.Warn("webhook rejected: no phone number", "topic", topic, "shop", shop)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "no valid phone number in payload"})

	case errors.Is(err, domain.ErrUnsupportedEvent):
		h.log.Warn("webhook rejected: unsupported event", "topic", topic, "shop", shop)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unsupported event topic"})

	case errors.Is(err, domain.ErrQuotaExhausted):
		h.log.Warn("webhook rejected: quota exhausted", "topic", topic, "shop", shop)
		return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{"error": "sms quota exhausted"})

	default:
		h.log.Error("webhook pipeline failed", "topic", topic, "shop", shop, "err", err)
		body := fiber.Map{"error": "internal server error"}
		if h.devMode {
			body["details"] = err.Error()
		}
		return c.Status(fiber.StatusInternalServerError).JSON(body)
	}
}
