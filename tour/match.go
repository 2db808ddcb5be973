package tour

import (
	"fmt"
	"reflect"
)

// Classify 带守卫的类型分支示例
// 分类规则:
//   - 长度大于3的字符串 -> "Long string: xxx"
//   - 其他字符串        -> "Short string: xxx"
//   - 整数              -> "Number: 42"
//   - 非空切片          -> "List with N items"
//   - nil               -> "Null value"
//   - 其他              -> "Unknown type"
func Classify(value any) string {
	switch v := value.(type) {
	case string:
		if len(v) > 3 {
			return "Long string: " + v
		}
		return "Short string: " + v
	case int:
		return fmt.Sprintf("Number: %d", v)
	case nil:
		return "Null value"
	default:
		if rv := reflect.ValueOf(value); rv.Kind() == reflect.Slice && rv.Len() > 0 {
			return fmt.Sprintf("List with %d items", rv.Len())
		}
		return "Unknown type"
	}
}

// ClassifyDetailed 更细的守卫分支,区分长短字符串和大小数字
//   - 长度大于5的字符串 -> "Long string: xxx"
//   - 其他字符串        -> "Short string: xxx"
//   - 大于40的整数      -> "Large number: 42"
//   - 其他整数          -> "Small number: 1"
//   - 非空切片          -> "List with N elements"
//   - 其他              -> "Other type: float64"
func ClassifyDetailed(value any) string {
	switch v := value.(type) {
	case string:
		if len(v) > 5 {
			return "Long string: " + v
		}
		return "Short string: " + v
	case int:
		if v > 40 {
			return fmt.Sprintf("Large number: %d", v)
		}
		return fmt.Sprintf("Small number: %d", v)
	default:
		if rv := reflect.ValueOf(value); rv.Kind() == reflect.Slice && rv.Len() > 0 {
			return fmt.Sprintf("List with %d elements", rv.Len())
		}
		return fmt.Sprintf("Other type: %T", value)
	}
}

// SizeBucket 集合大小分档
func SizeBucket(size int) string {
	switch {
	case size == 0:
		return "Empty"
	case size <= 3:
		return "Small"
	case size <= 6:
		return "Medium"
	default:
		return "Large"
	}
}

// Day 星期枚举,固定七个值
type Day int

const (
	Monday Day = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

func (d Day) IsWorkday() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday:
		return true
	case Saturday, Sunday:
		return false
	}
	return false
}

func GetDayText(d Day) string {
	switch d {
	case Monday:
		return "周一"
	case Tuesday:
		return "周二"
	case Wednesday:
		return "周三"
	case Thursday:
		return "周四"
	case Friday:
		return "周五"
	case Saturday:
		return "周六"
	case Sunday:
		return "周日"
	}
	return "未知"
}

// WorkloadForDay 工作日8小时,周末0小时
func WorkloadForDay(d Day) int {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday:
		return 8
	case Saturday, Sunday:
		return 0
	}
	return 0
}

// WeekdayActivities 过滤出工作日的活动,按周一到周日的固定顺序返回
// map 遍历顺序不稳定,所以这里显式按 Day 顺序取值
func WeekdayActivities(activities map[Day]string) []string {
	ret := make([]string, 0, len(activities))
	for d := Monday; d <= Sunday; d++ {
		if !d.IsWorkday() {
			continue
		}
		if activity, ok := activities[d]; ok {
			ret = append(ret, activity)
		}
	}
	return ret
}
