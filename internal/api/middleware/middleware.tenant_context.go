package middleware

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	tenantsvc "retail_insights/internal/api/tenant/service"
	"retail_insights/internal/common"
)

// TenantContextMiddleware xác định tenant của request từ header X-Tenant-Id.
// - Header bắt buộc với mọi route dữ liệu: thiếu hoặc sai định dạng → 400
// - Tenant phải tồn tại và không bị suspend: không tồn tại → 404, suspended → 403
// - Tenant hợp lệ được lưu vào Locals("tenant_id") để handler filter dữ liệu theo tenant
func TenantContextMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		tenantIDStr := c.Get("X-Tenant-Id")
		if tenantIDStr == "" {
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeValidationInput,
				"Thiếu header X-Tenant-Id",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		tenantID, err := primitive.ObjectIDFromHex(tenantIDStr)
		if err != nil {
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeValidationFormat,
				"Header X-Tenant-Id không đúng định dạng MongoDB ObjectID",
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		tenantService, err := tenantsvc.NewTenantService()
		if err != nil {
			HandleErrorResponse(c, err)
			return nil
		}

		tenant, err := tenantService.FindOneById(context.Background(), tenantID)
		if err != nil {
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeValidationInput,
				"Tenant không tồn tại",
				common.StatusNotFound,
				err,
			))
			return nil
		}

		if tenant.Status == "suspended" {
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeBusinessOperation,
				"Tenant đang bị tạm ngưng",
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		c.Locals("tenant_id", tenantID.Hex())
		return c.Next()
	}
}
