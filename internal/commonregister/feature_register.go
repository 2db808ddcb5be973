package commonregister

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/blingmoon/feature-tour/tour"
	"github.com/pkg/errors"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterBuiltinFeatureDemos 注册全部内置特性示例
// 重复调用只注册一次,返回第一次的结果
func RegisterBuiltinFeatureDemos() error {
	registerOnce.Do(func() {
		registerErr = registerAll()
	})
	return registerErr
}

func registerAll() error {
	type entry struct {
		key  tour.FeatureKey
		demo tour.FeatureDemoFunc
	}
	entries := []entry{
		{tour.FeatureKeyShapes, shapesDemo},
		{tour.FeatureKeyRecords, recordsDemo},
		{tour.FeatureKeyPatterns, patternsDemo},
		{tour.FeatureKeyCollections, collectionsDemo},
		{tour.FeatureKeyStreams, streamsDemo},
		{tour.FeatureKeyOptional, optionalDemo},
		{tour.FeatureKeyFanOut, fanOutDemo},
		{tour.FeatureKeyTextFile, textFileDemo},
	}
	for _, e := range entries {
		if err := tour.RegisterFeatureDemo(e.key, e.demo); err != nil {
			return errors.Wrapf(err, "register %s demo failed", e.key)
		}
	}
	return nil
}

// shapesDemo 封闭形状集合的穷举面积计算
// 入参可以带 radius 覆盖默认圆半径
func shapesDemo(ctx context.Context, payload *tour.Payload) (string, error) {
	radius, ok := payload.GetFloat64("radius")
	if !ok {
		radius = 5
	}
	shapes := []tour.Shape{
		tour.Circle{Radius: radius},
		tour.Rectangle{Width: 4, Height: 6},
		tour.Triangle{Base: 8, Height: 3},
	}
	areas, err := tour.ShapeAreas(shapes)
	if err != nil {
		return "", errors.WithMessage(err, "shapesDemo failed")
	}
	descriptions := make([]string, 0, len(shapes))
	for i, s := range shapes {
		descriptions = append(descriptions, fmt.Sprintf("%s %s", tour.DescribeShape(s), tour.FormatArea(areas[i])))
	}
	payload.Set([]string{"result", "areas"}, areas)
	return strings.Join(descriptions, "; "), nil
}

// recordsDemo 嵌套元组解构
func recordsDemo(ctx context.Context, payload *tour.Payload) (string, error) {
	x, ok := payload.GetInt64("x")
	if !ok {
		x = 10
	}
	y, ok := payload.GetInt64("y")
	if !ok {
		y = 20
	}
	r, ok := payload.GetInt64("radius")
	if !ok {
		r = 5
	}
	circle := tour.CenteredCircle{
		Center: tour.Point{X: int(x), Y: int(y)},
		Radius: int(r),
	}
	description := tour.DescribeCenteredCircle(circle)
	payload.Set([]string{"result", "description"}, description)
	return description, nil
}

// patternsDemo 带守卫的类型分支
func patternsDemo(ctx context.Context, payload *tour.Payload) (string, error) {
	values := []any{"Hello World", "Hi", 42, []string{"a", "b", "c"}, nil}
	classified := make([]string, 0, len(values))
	for _, v := range values {
		classified = append(classified, tour.Classify(v))
	}
	payload.Set([]string{"result", "classified"}, classified)
	return strings.Join(classified, "; "), nil
}

// collectionsDemo 不可变集合: 读正常,写必须报错
func collectionsDemo(ctx context.Context, payload *tour.Payload) (string, error) {
	list := tour.ListOf("Java", "Go", "Rust")
	set := tour.SetOf("alpha", "beta")
	m := tour.MapOf(map[string]int{"one": 1, "two": 2})

	if err := list.Append("Kotlin"); !errors.Is(errors.Cause(err), tour.ErrUnsupportedMutation) {
		return "", errors.New("immutable list accepted a write")
	}
	if err := set.Add("gamma"); !errors.Is(errors.Cause(err), tour.ErrUnsupportedMutation) {
		return "", errors.New("immutable set accepted a write")
	}
	if err := m.Put("three", 3); !errors.Is(errors.Cause(err), tour.ErrUnsupportedMutation) {
		return "", errors.New("immutable map accepted a write")
	}

	payload.Set([]string{"result", "list"}, list.Values())
	return fmt.Sprintf("list=%d set=%d map=%d, all writes rejected", list.Len(), set.Len(), m.Len()), nil
}

// streamsDemo 流式算子串联,从固定文本提取长单词
func streamsDemo(ctx context.Context, payload *tour.Payload) (string, error) {
	lines := tour.MapSlice(tour.SplitLines(tour.SampleText), func(l tour.FileLine) string {
		return l.Content
	})
	words := tour.LongWords(lines)
	payload.Set([]string{"result", "words"}, words)
	return strings.Join(words, ","), nil
}

// optionalDemo 查找第一个满足条件的元素,缺失时兜底
func optionalDemo(ctx context.Context, payload *tour.Payload) (string, error) {
	lines := tour.MapSlice(tour.SplitLines(tour.SampleText), func(l tour.FileLine) string {
		return l.Content
	})
	found := tour.FindFirst(lines, func(line string) bool {
		return strings.Contains(line, "Java")
	})
	value := found.OrElse("Default line")
	payload.Set([]string{"result", "found"}, value)
	return value, nil
}

// fanOutDemo 扇出/汇合,入参可以带 count 覆盖任务数
func fanOutDemo(ctx context.Context, payload *tour.Payload) (string, error) {
	count, ok := payload.GetInt64("count")
	if !ok {
		count = 10
	}
	labels, err := tour.FanOutLabeled(ctx, int(count), "Task")
	if err != nil {
		return "", errors.WithMessage(err, "fanOutDemo failed")
	}
	payload.Set([]string{"result", "labels"}, labels)
	return fmt.Sprintf("completed %d tasks, first=%s last=%s", len(labels), labels[0], labels[len(labels)-1]), nil
}

// textFileDemo 临时目录里写读删一个文本文件,逐行打标
func textFileDemo(ctx context.Context, payload *tour.Payload) (string, error) {
	dir, err := tour.NewScratchDir("feature-demo")
	if err != nil {
		return "", errors.WithMessage(err, "textFileDemo failed")
	}
	defer dir.Remove()

	if _, err := dir.WriteFile("sample.txt", tour.SampleText); err != nil {
		return "", errors.WithMessage(err, "textFileDemo write failed")
	}
	content, err := dir.ReadFile("sample.txt")
	if err != nil {
		return "", errors.WithMessage(err, "textFileDemo read failed")
	}
	tagged := tour.MapSlice(tour.SplitLines(content), func(l tour.FileLine) string {
		return tour.TagLine(l.Content)
	})
	if err := dir.DeleteFile("sample.txt"); err != nil {
		return "", errors.WithMessage(err, "textFileDemo delete failed")
	}
	payload.Set([]string{"result", "tagged"}, tagged)
	return fmt.Sprintf("processed %d lines, first=%q", len(tagged), tagged[0]), nil
}
