package worker

import (
	"context"

	catalogmodels "retail_insights/internal/api/catalog/models"
	catalogsvc "retail_insights/internal/api/catalog/service"
	crmmodels "retail_insights/internal/api/crm/models"
	crmvc "retail_insights/internal/api/crm/service"
	"retail_insights/internal/api/events"
	"retail_insights/internal/logger"
)

// RegisterRefreshHooks đăng ký subscriber trên event bus dữ liệu:
// products/customers vừa bị ghi (import, CRUD) được tính lại derived ngay,
// không đợi chu kỳ của SegmentRefreshWorker. Chỉ bản ghi stale mới refresh —
// lượt refresh ghi updatedAt cùng mốc với derived.updatedAt nên event do
// chính nó phát ra không kích hoạt vòng lặp mới.
func RegisterRefreshHooks() error {
	productService, err := catalogsvc.NewProductService()
	if err != nil {
		return err
	}
	customerService, err := crmvc.NewCustomerService()
	if err != nil {
		return err
	}

	events.OnDataChanged(func(_ context.Context, e events.DataChangeEvent) {
		if e.Operation == events.OpDelete {
			return
		}
		// Handler chạy trong goroutine riêng, request phát event có thể đã
		// trả về — dùng context mới thay vì context của request
		ctx := context.Background()
		log := logger.GetWorkerLogger()

		switch doc := e.Document.(type) {
		case catalogmodels.Product:
			if !catalogsvc.ProductNeedsRefresh(&doc) {
				return
			}
			if _, err := productService.RefreshProduct(ctx, doc.TenantID, doc.ProductID); err != nil {
				log.WithError(err).WithFields(map[string]interface{}{
					"tenantId":  doc.TenantID.Hex(),
					"productId": doc.ProductID,
				}).Warn("🔄 [REFRESH_HOOK] Refresh sản phẩm sau khi ghi thất bại")
			}
		case crmmodels.Customer:
			if !crmvc.CustomerNeedsRefresh(&doc) {
				return
			}
			if _, _, err := customerService.RefreshCustomer(ctx, doc.TenantID, doc.CustomerID); err != nil {
				log.WithError(err).WithFields(map[string]interface{}{
					"tenantId":   doc.TenantID.Hex(),
					"customerId": doc.CustomerID,
				}).Warn("🔄 [REFRESH_HOOK] Refresh khách hàng sau khi ghi thất bại")
			}
		}
	})
	return nil
}
