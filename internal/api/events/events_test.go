// Package events - Test cơ chế phát và nhận event thay đổi dữ liệu.
package events

import (
	"context"
	"testing"
	"time"
)

func TestEmitDataChanged_DeliversToSubscriber(t *testing.T) {
	received := make(chan DataChangeEvent, 1)
	OnDataChanged(func(_ context.Context, e DataChangeEvent) {
		received <- e
	})

	want := DataChangeEvent{CollectionName: "products", Operation: OpUpdate, Document: "doc"}
	EmitDataChanged(context.Background(), want)

	select {
	case got := <-received:
		if got.CollectionName != want.CollectionName || got.Operation != want.Operation {
			t.Errorf("event nhận được %+v, mong đợi %+v", got, want)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("subscriber không nhận được event sau 2s")
	}
}

func TestEmitDataChanged_PanicInOneHandlerDoesNotBlockOthers(t *testing.T) {
	OnDataChanged(func(_ context.Context, _ DataChangeEvent) {
		panic("handler hỏng")
	})
	survived := make(chan struct{}, 1)
	OnDataChanged(func(_ context.Context, _ DataChangeEvent) {
		survived <- struct{}{}
	})

	EmitDataChanged(context.Background(), DataChangeEvent{CollectionName: "customers", Operation: OpInsert})

	select {
	case <-survived:
	case <-time.After(2 * time.Second):
		t.Fatal("handler panic không được chặn handler còn lại")
	}
}
