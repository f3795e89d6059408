package catalogmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CatalogSource là một nguồn import catalog của tenant (catalog_sources).
type CatalogSource struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	TenantID     primitive.ObjectID `json:"tenantId" bson:"tenantId" index:"single:1,compound:source_tenant_url_unique"`
	Name         string             `json:"name" bson:"name"`
	URL          string             `json:"url" bson:"url" index:"compound:source_tenant_url_unique"`
	Selectors    map[string]string  `json:"selectors,omitempty" bson:"selectors,omitempty"` // CSS selector cho scraper bên ngoài
	LastScraped  int64              `json:"lastScraped,omitempty" bson:"lastScraped,omitempty"`
	ProductCount int                `json:"productCount" bson:"productCount"`
	Status       string             `json:"status" bson:"status" index:"single:1"` // pending | success | failed
	ErrorMessage string             `json:"errorMessage,omitempty" bson:"errorMessage,omitempty"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}
