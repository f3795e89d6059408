// Package basesvc - Test chuyển đổi UpdateData và quy tắc gắn updatedAt.
package basesvc

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

func TestStampUpdatedAt_SetsWhenAbsent(t *testing.T) {
	before := time.Now().UnixMilli()
	update := &UpdateData{Set: map[string]interface{}{"name": "Kem chống nắng"}}
	stampUpdatedAt(update)

	stamp, ok := update.Set["updatedAt"].(int64)
	if !ok {
		t.Fatalf("updatedAt phải được gắn dạng int64, nhận %T", update.Set["updatedAt"])
	}
	if stamp < before {
		t.Errorf("updatedAt = %d phải >= thời điểm gọi %d", stamp, before)
	}
}

func TestStampUpdatedAt_NilSetGetsInitialized(t *testing.T) {
	update := &UpdateData{}
	stampUpdatedAt(update)
	if update.Set == nil {
		t.Fatal("Set nil phải được khởi tạo trước khi gắn updatedAt")
	}
	if _, ok := update.Set["updatedAt"]; !ok {
		t.Error("updatedAt phải tồn tại trong Set sau khi gắn")
	}
}

func TestStampUpdatedAt_KeepsCallerValue(t *testing.T) {
	// Refresh ghi derived kèm updatedAt cùng mốc với derived.updatedAt.
	// Nếu mốc đó bị ghi đè bằng time.Now thì bản ghi vừa refresh vẫn thỏa
	// updatedAt > derived.updatedAt và smart mode refresh lại nó mãi mãi.
	derivedStamp := int64(1_700_000_000_000)
	update := &UpdateData{Set: map[string]interface{}{
		"derived":   bson.M{"updatedAt": derivedStamp},
		"updatedAt": derivedStamp,
	}}
	stampUpdatedAt(update)

	if got := update.Set["updatedAt"]; got != derivedStamp {
		t.Errorf("updatedAt của caller bị ghi đè: %v, mong đợi %d", got, derivedStamp)
	}
}

func TestToUpdateData_PlainMapWrappedInSet(t *testing.T) {
	update, err := ToUpdateData(map[string]interface{}{"status": "active"})
	if err != nil {
		t.Fatalf("không mong đợi lỗi: %v", err)
	}
	if update.Set["status"] != "active" {
		t.Errorf("map thường phải được wrap trong $set, nhận %v", update.Set)
	}
}
