package tour

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Payload 封装示例运行的 JSON 负载,提供便捷的嵌套读写方法
type Payload struct {
	data map[string]any
}

// NewPayload 从字节创建负载,解析失败时得到空负载
func NewPayload(b []byte) *Payload {
	p := &Payload{
		data: make(map[string]any),
	}
	if len(b) > 0 {
		json.Unmarshal(b, &p.data)
	}
	return p
}

// NewPayloadFromMap 从 map 创建负载
func NewPayloadFromMap(m map[string]any) *Payload {
	if m == nil {
		m = make(map[string]any)
	}
	return &Payload{data: m}
}

// Get 获取值,支持嵌套路径
// 例如: Get("shape", "radius") 获取 shape.radius
func (p *Payload) Get(keys ...string) (any, bool) {
	if len(keys) == 0 {
		return nil, false
	}
	current := any(p.data)
	for _, key := range keys {
		currentMap, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		value, exists := currentMap[key]
		if !exists {
			return nil, false
		}
		current = value
	}
	return current, true
}

func (p *Payload) GetString(keys ...string) (string, bool) {
	value, ok := p.Get(keys...)
	if !ok {
		return "", false
	}
	str, ok := value.(string)
	return str, ok
}

func (p *Payload) GetInt64(keys ...string) (int64, bool) {
	value, ok := p.Get(keys...)
	if !ok {
		return 0, false
	}
	// JSON 反序列化出来的数字是 float64,这里统一兼容
	switch v := value.(type) {
	case int64:
		return v, true
	case float64:
		return int64(v), true
	case int:
		return int64(v), true
	default:
		return 0, false
	}
}

func (p *Payload) GetFloat64(keys ...string) (float64, bool) {
	value, ok := p.Get(keys...)
	if !ok {
		return 0, false
	}
	switch v := value.(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

// Set 设置值,支持嵌套路径,中间路径不是 map 时覆盖成 map
func (p *Payload) Set(keys []string, value any) error {
	if len(keys) == 0 {
		return errors.New("keys cannot be empty")
	}
	current := p.data
	for i := 0; i < len(keys)-1; i++ {
		key := keys[i]
		nextMap, ok := current[key].(map[string]any)
		if !ok {
			nextMap = make(map[string]any)
			current[key] = nextMap
		}
		current = nextMap
	}
	current[keys[len(keys)-1]] = value
	return nil
}

func (p *Payload) ToBytes() ([]byte, error) {
	return json.Marshal(p.data)
}

func (p *Payload) ToBytesWithoutError() []byte {
	b, err := json.Marshal(p.data)
	if err != nil {
		return nil
	}
	return b
}

// ToMap 返回底层 map（注意：返回的是引用）
func (p *Payload) ToMap() map[string]any {
	return p.data
}

// Clone 深拷贝负载
func (p *Payload) Clone() *Payload {
	b, _ := p.ToBytes()
	return NewPayload(b)
}

// Unmarshal 将负载反序列化到指定结构体
func (p *Payload) Unmarshal(v any) error {
	b, err := p.ToBytes()
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}
