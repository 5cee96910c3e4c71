package api

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/gofiber/fiber/v3"
)

// Defaults applied to proxied generation requests that omit them.
const (
	proxyDefaultTemperature = 0.7
	proxyDefaultMaxTokens   = 150
)

// Forwarder relays an encoded generation payload to the upstream service.
// *together.Client satisfies it.
type Forwarder interface {
	Forward(ctx context.Context, payload []byte) (int, []byte, error)
}

// ProxyHandler relays generation requests to the upstream service using the
// server's credential, so browsers never hold the key.
type ProxyHandler struct {
	upstream   Forwarder
	configured bool
}

// NewProxyHandler creates a proxy handler. configured reports whether the
// upstream has an API key.
func NewProxyHandler(upstream Forwarder, configured bool) *ProxyHandler {
	return &ProxyHandler{upstream: upstream, configured: configured}
}

// Handle serves every method on the proxy route. Responses use the bare
// {"error": ...} shape the browser client expects, not the API envelope.
func (h *ProxyHandler) Handle(c fiber.Ctx) error {
	switch c.Method() {
	case fiber.MethodOptions:
		return c.Status(fiber.StatusOK).Send(nil)
	case fiber.MethodPost:
	default:
		return c.Status(fiber.StatusMethodNotAllowed).JSON(fiber.Map{"error": "Method Not Allowed"})
	}

	if !h.configured {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "API key not configured on server"})
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(c.Body(), &body); err != nil || !present(body["model"]) || !present(body["messages"]) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing required parameters"})
	}
	setDefault(body, "temperature", proxyDefaultTemperature)
	setDefault(body, "max_tokens", proxyDefaultMaxTokens)

	payload, err := json.Marshal(body)
	if err != nil {
		return proxyFailure(c, err)
	}

	status, respBody, err := h.upstream.Forward(c.Context(), payload)
	if err != nil {
		return proxyFailure(c, err)
	}
	if !json.Valid(respBody) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal Server Error",
			"message": "upstream returned a non-JSON body",
		})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(status).Send(respBody)
}

func proxyFailure(c fiber.Ctx, err error) error {
	slog.Error("proxy request failed", "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "Internal Server Error",
		"message": err.Error(),
	})
}

// present reports whether a JSON value is set and truthy enough to use.
func present(raw json.RawMessage) bool {
	switch string(raw) {
	case "", "null", `""`, "false", "0":
		return false
	}
	return true
}

// setDefault fills key only when the caller did not send it. Explicit
// values, zero included, are forwarded as given.
func setDefault(body map[string]json.RawMessage, key string, value any) {
	if _, ok := body[key]; ok {
		return
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return
	}
	body[key] = encoded
}
