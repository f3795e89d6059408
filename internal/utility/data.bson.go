// Package utility chứa các helper dùng chung (chuyển đổi bson, xử lý chuỗi).
package utility

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// ToMap chuyển đổi struct (hoặc bất kỳ giá trị bson-marshalable nào) thành map[string]interface{}.
// Dùng khi cần build document update từ struct có bson tags.
func ToMap(s interface{}) (map[string]interface{}, error) {
	raw, err := bson.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("bson marshal failed: %w", err)
	}
	var result map[string]interface{}
	if err := bson.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("bson unmarshal failed: %w", err)
	}
	return result, nil
}
