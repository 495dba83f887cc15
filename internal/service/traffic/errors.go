package traffic

import "fmt"

// ValidationError 参数格式错误，Field 为出错的参数名
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newFormatError(field, expected string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf("invalid %s format, use '%s'", field, expected),
	}
}

// RangeError 参数格式正确但取值矛盾，例如开始时间晚于结束时间
type RangeError struct {
	Message string
}

func (e *RangeError) Error() string {
	return e.Message
}
