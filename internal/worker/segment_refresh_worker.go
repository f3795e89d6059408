// Package worker - SegmentRefreshWorker tính lại khối derived (phân khúc sản phẩm
// và khách hàng) theo chu kỳ, cho mọi tenant đang active. Giữ báo cáo không bị
// lệch theo thời gian khi không có import nào chạm vào dữ liệu.
package worker

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	catalogsvc "retail_insights/internal/api/catalog/service"
	crmvc "retail_insights/internal/api/crm/service"
	tenantsvc "retail_insights/internal/api/tenant/service"
	"retail_insights/internal/logger"
)

// SegmentRefreshMode chế độ chạy worker.
const (
	SegmentRefreshModeFull  = "full"  // Tất cả bản ghi của tenant
	SegmentRefreshModeSmart = "smart" // Chỉ bản ghi chưa có derived hoặc đã đổi sau lần tính cuối
)

// SegmentRefreshWorker worker refresh phân khúc định kỳ.
//
// Hai chế độ:
//   - full: Refresh toàn bộ products + customers của từng tenant. Dùng cho
//     chạy hàng ngày — đảm bảo mọi derived khớp với trường gốc.
//   - smart: Chỉ refresh bản ghi thiếu derived hoặc có updatedAt mới hơn
//     derived.updatedAt. Giảm tải cho tenant lớn.
type SegmentRefreshWorker struct {
	tenantService   *tenantsvc.TenantService
	productService  *catalogsvc.ProductService
	customerService *crmvc.CustomerService
	interval        time.Duration // Khoảng thời gian giữa các lần chạy (vd: 24h)
	batchSize       int           // Số bản ghi tối đa mỗi tenant mỗi lần (vd: 200)
	mode            string        // "full" hoặc "smart"
}

// NewSegmentRefreshWorker tạo worker mới.
func NewSegmentRefreshWorker(interval time.Duration, batchSize int, mode string) (*SegmentRefreshWorker, error) {
	tenantService, err := tenantsvc.NewTenantService()
	if err != nil {
		return nil, err
	}
	productService, err := catalogsvc.NewProductService()
	if err != nil {
		return nil, err
	}
	customerService, err := crmvc.NewCustomerService()
	if err != nil {
		return nil, err
	}
	if interval < time.Hour {
		interval = 24 * time.Hour
	}
	if batchSize <= 0 {
		batchSize = 200
	}
	if mode != SegmentRefreshModeFull && mode != SegmentRefreshModeSmart {
		mode = SegmentRefreshModeSmart
	}
	return &SegmentRefreshWorker{
		tenantService:   tenantService,
		productService:  productService,
		customerService: customerService,
		interval:        interval,
		batchSize:       batchSize,
		mode:            mode,
	}, nil
}

// Start chạy worker trong vòng lặp.
func (w *SegmentRefreshWorker) Start(ctx context.Context) {
	log := logger.GetWorkerLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval":  w.interval.String(),
		"batchSize": w.batchSize,
		"mode":      w.mode,
	}).Info("📊 [SEGMENT_REFRESH] Starting Segment Refresh Worker...")

	// Chạy ngay lần đầu sau 1 phút (tránh chạy lúc startup)
	time.Sleep(time.Minute)

	for {
		select {
		case <-ctx.Done():
			log.Info("📊 [SEGMENT_REFRESH] Segment Refresh Worker stopped")
			return
		case <-ticker.C:
			w.runAllTenants(ctx, log)
		}
	}
}

// runAllTenants chạy một đợt refresh cho mọi tenant đang active.
// Panic hoặc lỗi của một tenant không chặn các tenant còn lại.
func (w *SegmentRefreshWorker) runAllTenants(ctx context.Context, log *logrus.Logger) {
	defer func() {
		if r := recover(); r != nil {
			log.WithFields(map[string]interface{}{
				"panic": r,
			}).Error("📊 [SEGMENT_REFRESH] Panic khi xử lý, sẽ tiếp tục lần chạy tiếp theo")
		}
	}()

	tenantIds, err := w.tenantService.ListActiveTenantIds(ctx)
	if err != nil {
		log.WithError(err).Error("📊 [SEGMENT_REFRESH] Lỗi lấy danh sách tenant active")
		return
	}

	for _, tenantID := range tenantIds {
		productSummary, err := w.productService.RefreshAllProducts(ctx, tenantID, w.mode, w.batchSize)
		if err != nil {
			log.WithError(err).WithFields(map[string]interface{}{
				"tenantId": tenantID.Hex(),
			}).Warn("📊 [SEGMENT_REFRESH] Refresh products thất bại, bỏ qua tenant")
			continue
		}

		customerSummary, err := w.customerService.RefreshAllCustomers(ctx, tenantID, w.mode, w.batchSize)
		if err != nil {
			log.WithError(err).WithFields(map[string]interface{}{
				"tenantId": tenantID.Hex(),
			}).Warn("📊 [SEGMENT_REFRESH] Refresh customers thất bại, bỏ qua tenant")
			continue
		}

		if productSummary.Processed > 0 || customerSummary.Processed > 0 {
			log.WithFields(map[string]interface{}{
				"tenantId":           tenantID.Hex(),
				"productsProcessed":  productSummary.Processed,
				"productsFailed":     productSummary.Failed,
				"customersProcessed": customerSummary.Processed,
				"customersSkipped":   customerSummary.Skipped,
				"customersFailed":    customerSummary.Failed,
			}).Info("📊 [SEGMENT_REFRESH] Đã refresh phân khúc cho tenant")
		}
	}
}
