package logger

import (
	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// WithRequest trả về entry của app logger kèm thông tin request (dùng trong
// error handler và recover middleware của Fiber).
func WithRequest(c fiber.Ctx) *logrus.Entry {
	fields := logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
		"ip":     c.IP(),
	}
	if requestID := c.Get("X-Request-ID"); requestID != "" {
		fields["request_id"] = requestID
	}
	if tenantID, ok := c.Locals("tenant_id").(string); ok && tenantID != "" {
		fields["tenant_id"] = tenantID
	}
	return GetAppLogger().WithFields(fields)
}
