package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// AccessLogMiddleware logs one line per request and makes sure every request
// carries an X-Request-ID, generating one when the client did not send it.
type AccessLogMiddleware struct {
	logger *log.Logger
}

func NewAccessLogMiddleware(logger *log.Logger) *AccessLogMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &AccessLogMiddleware{logger: logger}
}

func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := c.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
			c.Set("X-Request-ID", rid)
		}

		err := c.Next()

		if m == nil || m.logger == nil {
			return err
		}

		m.logger.Printf(
			"HTTP access | rid=%s method=%s path=%s status=%d latency=%s ip=%s resp_bytes=%d ua=%q",
			rid,
			c.Method(),
			c.OriginalURL(),
			c.Response().StatusCode(),
			time.Since(start),
			c.IP(),
			c.Response().Header.ContentLength(),
			c.Get("User-Agent"),
		)
		return err
	}
}
