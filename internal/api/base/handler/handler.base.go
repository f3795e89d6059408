// Package basehdl - base handler dùng chung cho các Fiber handler.
// Cung cấp parse/validate request, xử lý filter, và transform DTO sang Model.
package basehdl

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	basesvc "retail_insights/internal/api/base/service"
	"retail_insights/internal/common"
	"retail_insights/internal/global"
)

// FilterOptions cấu hình cho việc validate filter
type FilterOptions struct {
	DeniedFields     []string // Các trường bị cấm filter
	AllowedOperators []string // Các operator MongoDB được phép
	MaxFields        int      // Số lượng field tối đa trong một filter
}

// BaseHandler là base handler cho các Fiber handler, cung cấp các chức năng CRUD cơ bản.
// Struct này sử dụng Generic Type để có thể tái sử dụng cho nhiều loại model khác nhau.
//
// Type parameters:
// - T: Kiểu dữ liệu của model
// - CreateInput: Kiểu dữ liệu của input khi tạo mới
// - UpdateInput: Kiểu dữ liệu của input khi cập nhật
type BaseHandler[T any, CreateInput any, UpdateInput any] struct {
	BaseService   basesvc.BaseServiceMongo[T] // Service xử lý logic nghiệp vụ với MongoDB
	filterOptions FilterOptions               // Cấu hình validate filter
}

// NewBaseHandler tạo mới một BaseHandler với BaseService được cung cấp
func NewBaseHandler[T any, CreateInput any, UpdateInput any](baseService basesvc.BaseServiceMongo[T]) *BaseHandler[T, CreateInput, UpdateInput] {
	return &BaseHandler[T, CreateInput, UpdateInput]{
		BaseService: baseService,
		filterOptions: FilterOptions{
			DeniedFields: []string{
				"password",
				"token",
				"secret",
				"hash",
			},
			AllowedOperators: []string{
				"$eq",
				"$gt",
				"$gte",
				"$lt",
				"$lte",
				"$in",
				"$nin",
				"$exists",
			},
			MaxFields: 10,
		},
	}
}

// ValidateInput validate dữ liệu đầu vào với validator từ global (struct tag validate)
func (h *BaseHandler[T, CreateInput, UpdateInput]) ValidateInput(input interface{}) error {
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err)
	}
	return nil
}

// ParseRequestBody parse dữ liệu từ request body.
// Sử dụng json.Decoder với UseNumber() để xử lý chính xác các số.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParseRequestBody(c fiber.Ctx, input interface{}) error {
	body := c.Body()
	reader := bytes.NewReader(body)
	decoder := json.NewDecoder(reader)
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err)
	}
	return nil
}

// ProcessFilter xử lý và validate filter từ query string (JSON).
func (h *BaseHandler[T, CreateInput, UpdateInput]) ProcessFilter(c fiber.Ctx) (bson.M, error) {
	var filter map[string]interface{}

	filterStr := c.Query("filter", "{}")
	if err := json.Unmarshal([]byte(filterStr), &filter); err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Filter không đúng định dạng JSON. Chi tiết lỗi: %v. Giá trị filter nhận được: %s", err, filterStr),
			common.StatusBadRequest,
			err,
		)
	}

	// Normalize filter: chuyển đổi các string ObjectId thành ObjectID
	filter = h.normalizeFilter(filter)

	if err := h.validateFilter(filter); err != nil {
		return nil, err
	}

	return bson.M(filter), nil
}

// normalizeFilter chuyển đổi các string có format ObjectId thành ObjectID trong filter.
// Hỗ trợ các trường có tên kết thúc bằng "Id" hoặc "ID".
func (h *BaseHandler[T, CreateInput, UpdateInput]) normalizeFilter(filter map[string]interface{}) map[string]interface{} {
	if filter == nil {
		return filter
	}

	normalized := make(map[string]interface{})
	for field, value := range filter {
		fieldLower := strings.ToLower(field)
		isIDField := strings.HasSuffix(fieldLower, "id") && len(fieldLower) > 2

		normalized[field] = h.normalizeFilterValue(value, isIDField)
	}

	return normalized
}

// normalizeFilterValue chuyển đổi giá trị trong filter, hỗ trợ nested structures
func (h *BaseHandler[T, CreateInput, UpdateInput]) normalizeFilterValue(value interface{}, isIDField bool) interface{} {
	if value == nil {
		return value
	}

	// Hỗ trợ MongoDB Extended JSON format: {"$oid": "..."}
	if mapValue, ok := value.(map[string]interface{}); ok {
		if oidValue, hasOid := mapValue["$oid"]; hasOid {
			if oidStr, ok := oidValue.(string); ok && primitive.IsValidObjectID(oidStr) {
				if objID, err := primitive.ObjectIDFromHex(oidStr); err == nil {
					return objID
				}
			}
			return value
		}
	}

	// Nếu là string và field là ID field, thử chuyển đổi thành ObjectID
	if strValue, ok := value.(string); ok && isIDField {
		if primitive.IsValidObjectID(strValue) {
			if objID, err := primitive.ObjectIDFromHex(strValue); err == nil {
				return objID
			}
		}
		return strValue
	}

	// Nếu là mảng, xử lý từng phần tử
	if arrValue, ok := value.([]interface{}); ok {
		normalizedArr := make([]interface{}, len(arrValue))
		for i, item := range arrValue {
			normalizedArr[i] = h.normalizeFilterValue(item, isIDField)
		}
		return normalizedArr
	}

	// Nếu là map (các operator như $in, $eq, ...), xử lý đệ quy
	if mapValue, ok := value.(map[string]interface{}); ok {
		normalizedMap := make(map[string]interface{})
		for key, val := range mapValue {
			normalizedMap[key] = h.normalizeFilterValue(val, isIDField)
		}
		return normalizedMap
	}

	return value
}

// validateFilter kiểm tra tính hợp lệ của filter
func (h *BaseHandler[T, CreateInput, UpdateInput]) validateFilter(filter map[string]interface{}) error {
	maxFields := h.filterOptions.MaxFields
	if maxFields == 0 {
		maxFields = 10
	}

	if len(filter) > maxFields {
		return common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Filter vượt quá số lượng trường cho phép. Tối đa %d trường, hiện tại có %d trường.", maxFields, len(filter)),
			common.StatusBadRequest,
			nil,
		)
	}

	for field, value := range filter {
		for _, denied := range h.filterOptions.DeniedFields {
			if field == denied {
				return common.NewError(
					common.ErrCodeValidationFormat,
					fmt.Sprintf("Trường '%s' không được phép sử dụng trong filter vì lý do bảo mật.", field),
					common.StatusBadRequest,
					nil,
				)
			}
		}

		// Kiểm tra operator nếu value là map
		if mapValue, ok := value.(map[string]interface{}); ok {
			for op := range mapValue {
				if strings.HasPrefix(op, "$") && !containsString(h.filterOptions.AllowedOperators, op) {
					return common.NewError(
						common.ErrCodeValidationFormat,
						fmt.Sprintf("Toán tử MongoDB '%s' không được phép sử dụng. Các toán tử được phép: %v", op, h.filterOptions.AllowedOperators),
						common.StatusBadRequest,
						nil,
					)
				}
			}
		}
	}

	return nil
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// processMongoOptions xử lý options từ query string và chuyển đổi sang MongoDB options.
// Hỗ trợ: projection, sort, limit, skip.
func (h *BaseHandler[T, CreateInput, UpdateInput]) processMongoOptions(c fiber.Ctx, isFindOne bool) (interface{}, error) {
	var rawOptions map[string]interface{}

	optionsStr := c.Query("options", "{}")
	if err := json.Unmarshal([]byte(optionsStr), &rawOptions); err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Options không đúng định dạng JSON. Chi tiết lỗi: %v. Giá trị options nhận được: %s", err, optionsStr),
			common.StatusBadRequest,
			err,
		)
	}

	allowedOptions := map[string]bool{
		"projection": true,
		"sort":       true,
		"limit":      true,
		"skip":       true,
	}
	for key := range rawOptions {
		if !allowedOptions[key] {
			return nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Option '%s' không được hỗ trợ. Các options được phép: projection, sort, limit, skip", key),
				common.StatusBadRequest,
				nil,
			)
		}
	}

	parseSortMap := func(sortMap map[string]interface{}) bson.D {
		sortBson := bson.D{}
		for field, value := range sortMap {
			var sortValue int
			if v, ok := value.(float64); ok {
				sortValue = int(v)
			} else if v, ok := value.(int); ok {
				sortValue = v
			} else {
				continue
			}
			if sortValue != 1 && sortValue != -1 {
				continue
			}
			sortBson = append(sortBson, bson.E{Key: field, Value: sortValue})
		}
		return sortBson
	}

	if isFindOne {
		opts := mongoopts.FindOne()
		if projection, ok := rawOptions["projection"].(map[string]interface{}); ok {
			opts.SetProjection(projection)
		}
		if sort, ok := rawOptions["sort"].(map[string]interface{}); ok {
			opts.SetSort(parseSortMap(sort))
		}
		return opts, nil
	}

	opts := mongoopts.Find()
	if projection, ok := rawOptions["projection"].(map[string]interface{}); ok {
		opts.SetProjection(projection)
	}
	if sort, ok := rawOptions["sort"].(map[string]interface{}); ok {
		opts.SetSort(parseSortMap(sort))
	}
	if limit, ok := rawOptions["limit"].(float64); ok {
		if limit <= 0 || limit > 1000 {
			return nil, common.NewError(
				common.ErrCodeValidationFormat,
				"Giá trị limit phải trong khoảng (0, 1000]",
				common.StatusBadRequest,
				nil,
			)
		}
		opts.SetLimit(int64(limit))
	}
	if skip, ok := rawOptions["skip"].(float64); ok {
		if skip < 0 {
			return nil, common.NewError(
				common.ErrCodeValidationFormat,
				"Giá trị skip không được âm",
				common.StatusBadRequest,
				nil,
			)
		}
		opts.SetSkip(int64(skip))
	}
	return opts, nil
}

// GetTenantID lấy tenant id đã được middleware tenant-context gắn vào Locals.
// Trả về NilObjectID nếu request không đi qua middleware (route public).
func (h *BaseHandler[T, CreateInput, UpdateInput]) GetTenantID(c fiber.Ctx) primitive.ObjectID {
	if tenantIDStr, ok := c.Locals("tenant_id").(string); ok && tenantIDStr != "" {
		if tenantID, err := primitive.ObjectIDFromHex(tenantIDStr); err == nil {
			return tenantID
		}
	}
	return primitive.NilObjectID
}

// hasTenantIDField kiểm tra model T có field TenantID hay không (dùng reflection, cache không cần vì gọi ít)
func (h *BaseHandler[T, CreateInput, UpdateInput]) hasTenantIDField() bool {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		return false
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return false
	}
	_, found := t.FieldByName("TenantID")
	return found
}

// applyTenantFilter tự động thêm filter tenantId nếu model có field TenantID.
// Đảm bảo dữ liệu của tenant này không lộ sang tenant khác.
func (h *BaseHandler[T, CreateInput, UpdateInput]) applyTenantFilter(c fiber.Ctx, baseFilter bson.M) bson.M {
	if !h.hasTenantIDField() {
		return baseFilter
	}

	tenantID := h.GetTenantID(c)
	if tenantID.IsZero() {
		return baseFilter
	}

	if baseFilter == nil {
		baseFilter = bson.M{}
	}
	baseFilter["tenantId"] = tenantID
	return baseFilter
}

// setTenantID gán tenant id vào field TenantID của model (nếu có)
func (h *BaseHandler[T, CreateInput, UpdateInput]) setTenantID(model interface{}, tenantID primitive.ObjectID) {
	val := reflect.ValueOf(model)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return
	}
	f := val.FieldByName("TenantID")
	if !f.IsValid() || !f.CanSet() {
		return
	}
	if f.Type() == reflect.TypeOf(primitive.ObjectID{}) {
		f.Set(reflect.ValueOf(tenantID))
	}
}

// TransformCreateInputToModel transform CreateInput (DTO) sang Model (T).
// Sử dụng struct tag `transform:"objectid[,optional][,map=Field]"` để convert string → ObjectID;
// field không có tag được copy trực tiếp theo tên khi type tương thích.
func (h *BaseHandler[T, CreateInput, UpdateInput]) TransformCreateInputToModel(input *CreateInput) (*T, error) {
	model := new(T)
	if err := transformInputToModel(input, model); err != nil {
		return nil, err
	}
	return model, nil
}

// TransformUpdateInputToModel transform UpdateInput (DTO) sang Model (T), cùng cơ chế với Create.
func (h *BaseHandler[T, CreateInput, UpdateInput]) TransformUpdateInputToModel(input *UpdateInput) (*T, error) {
	model := new(T)
	if err := transformInputToModel(input, model); err != nil {
		return nil, err
	}
	return model, nil
}

// transformConfig là kết quả parse tag transform
type transformConfig struct {
	Kind     string // "objectid" hoặc rỗng
	Optional bool
	MapTo    string
}

func parseTransformTag(tag string) transformConfig {
	cfg := transformConfig{}
	for i, part := range strings.Split(tag, ",") {
		part = strings.TrimSpace(part)
		switch {
		case i == 0:
			cfg.Kind = part
		case part == "optional":
			cfg.Optional = true
		case strings.HasPrefix(part, "map="):
			cfg.MapTo = strings.TrimPrefix(part, "map=")
		}
	}
	return cfg
}

// transformInputToModel copy field từ DTO sang Model theo tên, xử lý tag transform.
func transformInputToModel(input interface{}, model interface{}) error {
	inputVal := reflect.ValueOf(input)
	if inputVal.Kind() == reflect.Ptr {
		inputVal = inputVal.Elem()
	}
	if inputVal.Kind() != reflect.Struct {
		return fmt.Errorf("input phải là struct hoặc pointer đến struct")
	}

	modelVal := reflect.ValueOf(model).Elem()
	if modelVal.Kind() != reflect.Struct {
		return fmt.Errorf("model phải là struct")
	}

	inputType := inputVal.Type()
	modelType := modelVal.Type()

	for i := 0; i < inputVal.NumField(); i++ {
		inputField := inputVal.Field(i)
		inputFieldType := inputType.Field(i)

		if !inputField.CanInterface() {
			continue
		}

		targetFieldName := inputFieldType.Name
		transformTag := inputFieldType.Tag.Get("transform")
		cfg := transformConfig{}
		if transformTag != "" {
			cfg = parseTransformTag(transformTag)
			if cfg.MapTo != "" {
				targetFieldName = cfg.MapTo
			}
		}

		if _, found := modelType.FieldByName(targetFieldName); !found {
			if transformTag != "" && !cfg.Optional {
				return fmt.Errorf("không tìm thấy field '%s' trong model (map từ field '%s')", targetFieldName, inputFieldType.Name)
			}
			continue
		}

		modelField := modelVal.FieldByName(targetFieldName)
		if !modelField.IsValid() || !modelField.CanSet() {
			continue
		}

		// Transform string → ObjectID theo tag
		if cfg.Kind == "objectid" {
			strVal, ok := inputField.Interface().(string)
			if !ok {
				return fmt.Errorf("field '%s' có tag transform objectid nhưng không phải string", inputFieldType.Name)
			}
			if strVal == "" {
				if cfg.Optional {
					continue
				}
				return fmt.Errorf("field '%s' không được để trống", inputFieldType.Name)
			}
			objID, err := primitive.ObjectIDFromHex(strVal)
			if err != nil {
				if cfg.Optional {
					continue
				}
				return fmt.Errorf("field '%s' không phải ObjectID hợp lệ: %w", inputFieldType.Name, err)
			}
			if modelField.Type() == reflect.TypeOf(primitive.ObjectID{}) {
				modelField.Set(reflect.ValueOf(objID))
			}
			continue
		}

		// Copy trực tiếp khi type tương thích
		srcVal := reflect.ValueOf(inputField.Interface())
		if srcVal.Type().AssignableTo(modelField.Type()) {
			modelField.Set(srcVal)
		} else if srcVal.Type().ConvertibleTo(modelField.Type()) {
			modelField.Set(srcVal.Convert(modelField.Type()))
		}
	}

	return nil
}
