// Package database - Index bổ sung cho segmentation (nested derived fields, compound) không thể định nghĩa qua model tags.
package database

import (
	"context"
	"strings"

	"retail_insights/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateSegmentAdditionalIndexes tạo các index bổ sung cho các field derived (nested).
// Gọi sau CreateIndexes cho từng collection.
func CreateSegmentAdditionalIndexes(ctx context.Context, db *mongo.Database) error {
	// products: (tenantId, derived.stockSegment) — filter stock report + campaign targeting
	products := db.Collection(global.MongoDB_ColNames.Products)
	if _, err := products.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "tenantId", Value: 1},
			{Key: "derived.stockSegment", Value: 1},
		},
		Options: options.Index().SetName("product_tenant_stock_segment").SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// products: (tenantId, category) — rollup theo category
	if _, err := products.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "tenantId", Value: 1},
			{Key: "category", Value: 1},
		},
		Options: options.Index().SetName("product_tenant_category"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// products: (tenantId, derived.updatedAt) — smart refresh chọn bản ghi stale
	if _, err := products.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "tenantId", Value: 1},
			{Key: "derived.updatedAt", Value: 1},
		},
		Options: options.Index().SetName("product_tenant_derived_updated").SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// customers: (tenantId, derived.churnSegment, derived.valueSegment) — segment matrix + targeting
	customers := db.Collection(global.MongoDB_ColNames.Customers)
	if _, err := customers.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "tenantId", Value: 1},
			{Key: "derived.churnSegment", Value: 1},
			{Key: "derived.valueSegment", Value: 1},
		},
		Options: options.Index().SetName("customer_tenant_churn_value").SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// customers: (tenantId, city) — resolve region theo city + rollup theo region
	if _, err := customers.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "tenantId", Value: 1},
			{Key: "city", Value: 1},
		},
		Options: options.Index().SetName("customer_tenant_city"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// customers: (tenantId, derived.updatedAt) — smart refresh chọn bản ghi stale
	if _, err := customers.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "tenantId", Value: 1},
			{Key: "derived.updatedAt", Value: 1},
		},
		Options: options.Index().SetName("customer_tenant_derived_updated").SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// regions: (cities) multikey — resolve city -> region
	regions := db.Collection(global.MongoDB_ColNames.Regions)
	if _, err := regions.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "cities", Value: 1},
		},
		Options: options.Index().SetName("region_cities"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// campaigns: (tenantId, status, startDate) — liệt kê campaign đang chạy
	campaigns := db.Collection(global.MongoDB_ColNames.Campaigns)
	if _, err := campaigns.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "tenantId", Value: 1},
			{Key: "status", Value: 1},
			{Key: "startDate", Value: -1},
		},
		Options: options.Index().SetName("campaign_tenant_status_start"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
