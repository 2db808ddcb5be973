package tour

import "github.com/pkg/errors"

var (
	ErrTourParamInvalid             = errors.New("tour param invalid")
	ErrFeatureDemoNotFound          = errors.New("feature demo not found")
	ErrFeatureDemoAlreadyRegistered = errors.New("feature demo already registered")
	ErrDemoRunNotFound              = errors.New("demo run not found")
	ErrUnknownShape                 = errors.New("unknown shape")
	ErrUnknownFileProcessor         = errors.New("unknown file processor")
	// ErrUnsupportedMutation: 不可变集合的写操作统一返回这个错误
	// 场景&应用: ListOf/SetOf/MapOf 构造出来的集合是冻结的，任何写入都不允许静默成功
	ErrUnsupportedMutation = errors.New("unsupported mutation")
)

// FeatureKey 特性示例key,用于注册和分派特性示例
type FeatureKey = string

const (
	FeatureKeyShapes      FeatureKey = "shapes"
	FeatureKeyRecords     FeatureKey = "records"
	FeatureKeyPatterns    FeatureKey = "patterns"
	FeatureKeyCollections FeatureKey = "collections"
	FeatureKeyStreams     FeatureKey = "streams"
	FeatureKeyOptional    FeatureKey = "optional"
	FeatureKeyFanOut      FeatureKey = "fanout"
	FeatureKeyTextFile    FeatureKey = "textfile"
)

// AllFeatureKeys 返回内置特性key的固定顺序列表,示例遍历用
func AllFeatureKeys() []FeatureKey {
	return []FeatureKey{
		FeatureKeyShapes,
		FeatureKeyRecords,
		FeatureKeyPatterns,
		FeatureKeyCollections,
		FeatureKeyStreams,
		FeatureKeyOptional,
		FeatureKeyFanOut,
		FeatureKeyTextFile,
	}
}

type DemoRunStatus = string

const (
	DemoRunStatusInit    DemoRunStatus = "init"
	DemoRunStatusRunning DemoRunStatus = "running"
	// 完成, 终止状态, 示例执行成功
	DemoRunStatusCompleted DemoRunStatus = "completed"
	// 失败, 终止状态, 示例执行失败,输出不可用
	DemoRunStatusFailed DemoRunStatus = "failed"
)

func IsOverDemoRunStatus(status DemoRunStatus) bool {
	return status == DemoRunStatusCompleted || status == DemoRunStatusFailed
}

func GetDemoRunStatusText(status DemoRunStatus) string {
	switch status {
	case DemoRunStatusInit:
		return "初始化"
	case DemoRunStatusRunning:
		return "运行中"
	case DemoRunStatusCompleted:
		return "完成"
	case DemoRunStatusFailed:
		return "失败"
	}
	return "未知"
}

// IsSeriousError 用于判断是否是严重错误，如果是严重错误，则打error级别日志，
// 否则打warn级别日志
// 严重错误定义：需要人工介入处理，
// 1. 特性示例没有注册或者重复注册，属于代码组装问题
// 2. 请求参数非法，调用方需要修正
func IsSeriousError(err error) bool {
	if err == nil {
		// 空error不算严重错误
		return false
	}
	causeErr := errors.Cause(err)
	if errors.Is(causeErr, ErrFeatureDemoNotFound) ||
		errors.Is(causeErr, ErrFeatureDemoAlreadyRegistered) ||
		errors.Is(causeErr, ErrTourParamInvalid) ||
		errors.Is(causeErr, ErrDemoRunNotFound) {
		return true
	}
	return false
}
