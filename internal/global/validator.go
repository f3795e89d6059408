package global

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các pattern nguy hiểm cho validator no_xss / no_sql_injection.
var (
	xssPattern = regexp.MustCompile(`(?i)(<script|javascript:|onerror\s*=|onload\s*=|<iframe|<object|<embed)`)
	sqlPattern = regexp.MustCompile(`(?i)(\$where|\bdrop\s+table\b|\bunion\s+select\b|;\s*--)`)
)

// Từ vựng segment — contract chia sẻ với hệ thống campaign targeting,
// phải khớp chính xác từng chuỗi.
var (
	stockSegments = []string{"Hero", "Normal", "SlowMover", "DeadStock"}
	churnSegments = []string{"Active", "Warm", "AtRisk"}
	valueSegments = []string{"HighValue", "Standard"}
	ageSegments   = []string{"GenZ", "YoungAdult", "Adult", "Mature"}
)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("no_xss", validateNoXSS)
	_ = Validate.RegisterValidation("no_sql_injection", validateNoSQLInjection)
	_ = Validate.RegisterValidation("object_id", validateObjectID)
	_ = Validate.RegisterValidation("stock_segment", makeEnumValidator(stockSegments))
	_ = Validate.RegisterValidation("churn_segment", makeEnumValidator(churnSegments))
	_ = Validate.RegisterValidation("value_segment", makeEnumValidator(valueSegments))
	_ = Validate.RegisterValidation("age_segment", makeEnumValidator(ageSegments))
}

// validateNoXSS từ chối chuỗi chứa pattern XSS phổ biến.
func validateNoXSS(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(string)
	if !ok {
		return true
	}
	return !xssPattern.MatchString(value)
}

// validateNoSQLInjection từ chối chuỗi chứa pattern injection phổ biến.
func validateNoSQLInjection(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(string)
	if !ok {
		return true
	}
	return !sqlPattern.MatchString(value)
}

// validateObjectID kiểm tra chuỗi là ObjectID hex hợp lệ (rỗng được phép — dùng kèm required khi bắt buộc).
func validateObjectID(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(string)
	if !ok {
		return true
	}
	if value == "" {
		return true
	}
	_, err := primitive.ObjectIDFromHex(value)
	return err == nil
}

// makeEnumValidator tạo validator kiểm tra giá trị thuộc danh sách cho trước.
// Rỗng được phép — campaign có thể không target trục segment đó.
func makeEnumValidator(allowed []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		if !ok {
			return true
		}
		if strings.TrimSpace(value) == "" {
			return true
		}
		for _, a := range allowed {
			if value == a {
				return true
			}
		}
		return false
	}
}
