// Package catalogmodels - Model dữ liệu domain catalog (regions, products, campaigns, nguồn import).
package catalogmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Region là dữ liệu tham chiếu dùng chung giữa các tenant (regions).
// Seeded lúc khởi động, engine chỉ đọc. Mỗi city thuộc đúng một region.
type Region struct {
	ID            primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Name          string              `json:"name" bson:"name" index:"unique"`
	ClimateType   string              `json:"climateType" bson:"climateType" index:"single:1"`
	Trend         string              `json:"trend" bson:"trend"` // Category đang thịnh hành của region
	MedianBasket  float64             `json:"medianBasket" bson:"medianBasket"`
	Cities        []string            `json:"cities" bson:"cities"`
	SeasonalNeeds map[string][]string `json:"seasonalNeeds" bson:"seasonalNeeds"` // key: winter | summer | spring | autumn
	CreatedAt     int64               `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64               `json:"updatedAt" bson:"updatedAt"`
}
