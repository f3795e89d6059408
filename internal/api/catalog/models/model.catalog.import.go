package catalogmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ImportHistory ghi lại một lần import dữ liệu của tenant (import_history).
// Hệ thống tự ghi qua pipeline import — API chỉ cho đọc.
type ImportHistory struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	TenantID        primitive.ObjectID `json:"tenantId" bson:"tenantId" index:"single:1"`
	SourceID        primitive.ObjectID `json:"sourceId,omitempty" bson:"sourceId,omitempty"`
	DataType        string             `json:"dataType" bson:"dataType"` // products | customers | catalog_scrape
	TotalRecords    int                `json:"totalRecords" bson:"totalRecords"`
	ImportedRecords int                `json:"importedRecords" bson:"importedRecords"`
	SkippedRecords  int                `json:"skippedRecords" bson:"skippedRecords"`
	ErrorRecords    int                `json:"errorRecords" bson:"errorRecords"`
	FileName        string             `json:"fileName,omitempty" bson:"fileName,omitempty"`
	FileSizeKb      int                `json:"fileSizeKb,omitempty" bson:"fileSizeKb,omitempty"`
	Status          string             `json:"status" bson:"status" index:"single:1"` // pending | processing | completed | failed
	ErrorLog        string             `json:"errorLog,omitempty" bson:"errorLog,omitempty"`
	StartedAt       int64              `json:"startedAt" bson:"startedAt" index:"single:-1"`
	CompletedAt     int64              `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
	CreatedAt       int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt       int64              `json:"updatedAt" bson:"updatedAt"`
}
