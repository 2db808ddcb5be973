package tests

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/blingmoon/feature-tour/tour"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRecordTuples 测试 record 风格元组: 结构相等,嵌套解构
func TestRecordTuples(t *testing.T) {
	t.Run("点元组结构相等", func(t *testing.T) {
		p1 := tour.Point{X: 1, Y: 2}
		p2 := tour.Point{X: 1, Y: 2}

		assert.Equal(t, p1, p2)
		assert.Equal(t, 1, p1.X)
		assert.Equal(t, 2, p1.Y)
	})

	t.Run("嵌套元组解构", func(t *testing.T) {
		circle := tour.CenteredCircle{
			Center: tour.Point{X: 10, Y: 20},
			Radius: 5,
		}

		description := tour.DescribeCenteredCircle(circle)
		assert.Equal(t, "Circle at (10,20) with radius 5", description)
	})

	t.Run("员工部门嵌套元组", func(t *testing.T) {
		employee := tour.Employee{
			Name: "Alice",
			ID:   1001,
			Department: tour.Department{
				Name:     "Engineering",
				Location: "Building A",
			},
		}

		assert.Equal(t, "Alice", employee.Name)
		assert.Equal(t, "Engineering", employee.Department.Name)
		assert.Equal(t, "Building A", employee.Department.Location)
	})

	t.Run("请求响应元组", func(t *testing.T) {
		request := tour.Request{Type: "GET", ID: 42}
		response := tour.Response{Result: "OK", Success: true}

		assert.Equal(t, "GET", request.Type)
		assert.True(t, response.Success)
	})
}

// TestPatternSwitch 测试带守卫的类型分支
func TestPatternSwitch(t *testing.T) {
	t.Run("字符串长短守卫", func(t *testing.T) {
		assert.Equal(t, "Long string: Hello", tour.Classify("Hello"))
		assert.Equal(t, "Short string: Hi", tour.Classify("Hi"))
	})

	t.Run("数字和nil分支", func(t *testing.T) {
		assert.Equal(t, "Number: 42", tour.Classify(42))
		assert.Equal(t, "Null value", tour.Classify(nil))
	})

	t.Run("切片分支", func(t *testing.T) {
		assert.Equal(t, "List with 3 items", tour.Classify([]string{"a", "b", "c"}))
	})

	t.Run("未知类型兜底", func(t *testing.T) {
		assert.Equal(t, "Unknown type", tour.Classify(3.14))
	})
}

// TestDayEnum 测试星期枚举分支
func TestDayEnum(t *testing.T) {
	t.Run("工作日判定", func(t *testing.T) {
		assert.True(t, tour.Monday.IsWorkday())
		assert.True(t, tour.Friday.IsWorkday())
		assert.False(t, tour.Saturday.IsWorkday())
		assert.False(t, tour.Sunday.IsWorkday())
	})

	t.Run("工作日8小时周末0小时", func(t *testing.T) {
		assert.Equal(t, 8, tour.WorkloadForDay(tour.Wednesday))
		assert.Equal(t, 0, tour.WorkloadForDay(tour.Sunday))
	})

	t.Run("过滤工作日活动", func(t *testing.T) {
		activities := map[tour.Day]string{
			tour.Monday:    "Planning",
			tour.Tuesday:   "Coding",
			tour.Wednesday: "Review",
			tour.Thursday:  "Testing",
			tour.Friday:    "Release",
			tour.Saturday:  "Rest",
			tour.Sunday:    "Rest",
		}

		weekday := tour.WeekdayActivities(activities)
		require.Len(t, weekday, 5)
		// 固定按周一到周五的顺序
		assert.Equal(t, []string{"Planning", "Coding", "Review", "Testing", "Release"}, weekday)
	})
}

// TestTextBlocks 测试多行文本字面量
func TestTextBlocks(t *testing.T) {
	t.Run("多行文本保持换行", func(t *testing.T) {
		text := `SELECT id, name
FROM users
WHERE active = true
`
		lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
		assert.Len(t, lines, 3)
		assert.Equal(t, "SELECT id, name", lines[0])
	})

	t.Run("示例文本固定五行", func(t *testing.T) {
		lines := tour.SplitLines(tour.SampleText)
		require.Len(t, lines, 5)
		assert.Equal(t, "Line 1: Hello World", lines[0].Content)
		assert.Equal(t, "Line 5: String Templates", lines[4].Content)
	})

	t.Run("JSON文本块", func(t *testing.T) {
		payload := tour.NewPayload([]byte(tour.SampleJSON))
		name, ok := payload.GetString("name")
		require.True(t, ok)
		assert.Equal(t, "Feature Tour", name)

		version, ok := payload.GetInt64("version")
		require.True(t, ok)
		assert.Equal(t, int64(1), version)
	})
}

// TestFanOutJoin 测试轻量任务扇出汇合
func TestFanOutJoin(t *testing.T) {
	ctx := context.Background()

	t.Run("扇出10个任务全部汇合", func(t *testing.T) {
		labels, err := tour.FanOutLabeled(ctx, 10, "Task")
		require.NoError(t, err)
		require.Len(t, labels, 10)

		// 结果按提交顺序放回对应槽位
		for i, label := range labels {
			assert.Equal(t, fmt.Sprintf("Task-%d", i), label)
		}
	})

	t.Run("非法任务数返回参数错误", func(t *testing.T) {
		_, err := tour.FanOutLabeled(ctx, 0, "Task")
		require.Error(t, err)
		assert.ErrorIs(t, err, tour.ErrTourParamInvalid)
	})

	t.Run("任务池限制并发跑完全部任务", func(t *testing.T) {
		pool := tour.NewTaskPool[int](3)
		tasks := make([]tour.TaskFunc[int], 0, 8)
		for i := 0; i < 8; i++ {
			i := i
			tasks = append(tasks, func(ctx context.Context) (int, error) {
				return i * i, nil
			})
		}

		results, err := pool.RunAll(ctx, tasks)
		require.NoError(t, err)
		require.Len(t, results, 8)
		for i, result := range results {
			assert.Equal(t, i*i, result)
		}
	})

	t.Run("单个任务失败整体失败", func(t *testing.T) {
		pool := tour.NewTaskPool[string](2)
		tasks := []tour.TaskFunc[string]{
			func(ctx context.Context) (string, error) { return "ok", nil },
			func(ctx context.Context) (string, error) { return "", fmt.Errorf("boom") },
		}

		_, err := pool.RunAll(ctx, tasks)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "boom")
	})
}
