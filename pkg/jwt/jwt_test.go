package jwt

import (
	"encoding/json"
	"testing"

	"ShortVid.com/pkg/utils"
)

// TestIdentityJSONRoundTrip token解析时claims经过encoding/json
// 数字会变成float64 雪花ID超出其精度 同一毫秒内连发的ID低位不同 最容易被抹掉
func TestIdentityJSONRoundTrip(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := utils.GenId()
		claims := payloadFunc(id)

		b, err := json.Marshal(claims)
		if err != nil {
			t.Fatalf("marshal claims failed: %v", err)
		}
		var decoded map[string]interface{}
		if err := json.Unmarshal(b, &decoded); err != nil {
			t.Fatalf("unmarshal claims failed: %v", err)
		}

		got := utils.Transfer(decoded[IdentityKey])
		if got != id {
			t.Fatalf("identity corrupted by json round-trip: issued %d, recovered %d", id, got)
		}
	}
}

// TestPayloadFuncStringPassthrough 换发access-token时identity已经是字符串 不应二次转换
func TestPayloadFuncStringPassthrough(t *testing.T) {
	claims := payloadFunc("881283783612043265")
	if claims[IdentityKey] != "881283783612043265" {
		t.Errorf("string identity should pass through unchanged, got %v", claims[IdentityKey])
	}
}
