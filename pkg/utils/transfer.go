package utils

import (
	"strconv"
)

// Transfer 将JWT载荷等来源的数值统一转换为int64
// json反序列化出的数字默认是float64 这里做统一处理
func Transfer(value interface{}) int64 {
	switch v := value.(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	case string:
		if intValue, err := strconv.ParseInt(v, 10, 64); err == nil {
			return intValue
		}
	}
	return -1
}

func ConvertStringToInt64(v string) (int64, error) {
	return strconv.ParseInt(v, 10, 64)
}
