package tests

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blingmoon/feature-tour/tour"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupScratchDir 创建一次性工作目录,测试结束自动清理
func setupScratchDir(t *testing.T) *tour.ScratchDir {
	dir, err := tour.NewScratchDir("tour-test")
	require.NoError(t, err)
	t.Cleanup(dir.Remove)
	return dir
}

// TestScratchDirLifecycle 测试临时目录的写读删
func TestScratchDirLifecycle(t *testing.T) {
	dir := setupScratchDir(t)

	t.Run("写入后读回原文", func(t *testing.T) {
		path, err := dir.WriteFile("sample.txt", tour.SampleText)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir.Path(), "sample.txt"), path)

		content, err := dir.ReadFile("sample.txt")
		require.NoError(t, err)
		assert.Equal(t, tour.SampleText, content)
	})

	t.Run("删除后读取失败", func(t *testing.T) {
		_, err := dir.WriteFile("todelete.txt", "bye")
		require.NoError(t, err)

		err = dir.DeleteFile("todelete.txt")
		require.NoError(t, err)

		_, err = dir.ReadFile("todelete.txt")
		assert.Error(t, err)
	})

	t.Run("删除不存在的文件报错", func(t *testing.T) {
		err := dir.DeleteFile("missing.txt")
		assert.Error(t, err)
	})
}

// TestFileLineRecords 测试文件行元组和逐行处理
func TestFileLineRecords(t *testing.T) {
	dir := setupScratchDir(t)

	path, err := dir.WriteFile("lines.txt", tour.SampleText)
	require.NoError(t, err)

	t.Run("读成五个行元组", func(t *testing.T) {
		lines, err := tour.ReadFileLines(path)
		require.NoError(t, err)
		require.Len(t, lines, 5)

		assert.Equal(t, tour.FileLine{Number: 1, Content: "Line 1: Hello World"}, lines[0])
		assert.Equal(t, 5, lines[4].Number)
	})

	t.Run("逐行打标守卫按声明顺序", func(t *testing.T) {
		lines, err := tour.ReadFileLines(path)
		require.NoError(t, err)

		tagged := tour.MapSlice(lines, func(l tour.FileLine) string {
			return tour.TagLine(l.Content)
		})

		assert.Equal(t, "Processed: Line 1: Hello World", tagged[0])
		assert.Equal(t, "Java Feature: Line 2: Java 21 Features", tagged[1])
		assert.Equal(t, "Record Feature: Line 3: Record Patterns", tagged[2])
		assert.Equal(t, "Concurrency Feature: Line 4: Virtual Threads", tagged[3])
		assert.Equal(t, "String Feature: Line 5: String Templates", tagged[4])
	})

	t.Run("过滤掉Hello World后剩四行", func(t *testing.T) {
		lines, err := tour.ReadFileLines(path)
		require.NoError(t, err)

		filtered := tour.Filter(lines, func(l tour.FileLine) bool {
			return !strings.Contains(l.Content, "Hello World")
		})
		assert.Len(t, filtered, 4)
	})

	t.Run("提取长单词转小写去重排序", func(t *testing.T) {
		lines, err := tour.ReadFileLines(path)
		require.NoError(t, err)

		contents := tour.MapSlice(lines, func(l tour.FileLine) string {
			return l.Content
		})
		words := tour.LongWords(contents)

		expected := []string{"features", "hello", "java", "line", "patterns", "record", "string", "templates", "threads", "virtual", "world"}
		assert.Equal(t, expected, words)
	})

	t.Run("findFirst找到Java行", func(t *testing.T) {
		lines, err := tour.ReadFileLines(path)
		require.NoError(t, err)

		contents := tour.MapSlice(lines, func(l tour.FileLine) string {
			return l.Content
		})
		found := tour.FindFirst(contents, func(line string) bool {
			return strings.Contains(line, "Java")
		})

		value, ok := found.Get()
		require.True(t, ok)
		assert.Equal(t, "Line 2: Java 21 Features", value)

		// 找不到时supplier兜底
		missing := tour.FindFirst(contents, func(line string) bool {
			return strings.Contains(line, "Kotlin")
		})
		fallback := missing.Or(func() tour.Optional[string] {
			return tour.Of("Default line")
		})
		value, ok = fallback.Get()
		require.True(t, ok)
		assert.Equal(t, "Default line", value)
	})
}

// TestConcurrentFileLengths 测试并发统计文件长度
func TestConcurrentFileLengths(t *testing.T) {
	dir := setupScratchDir(t)
	ctx := context.Background()

	path1, err := dir.WriteFile("a.txt", "hello\nworld\n")
	require.NoError(t, err)
	path2, err := dir.WriteFile("b.txt", "feature tour\n")
	require.NoError(t, err)
	path3, err := dir.WriteFile("c.txt", "go\n")
	require.NoError(t, err)

	t.Run("三个文件的字符总长", func(t *testing.T) {
		total, err := tour.ConcurrentFileLengths(ctx, []string{path1, path2, path3})
		require.NoError(t, err)
		// hello+world=10, feature tour=12, go=2
		assert.Equal(t, 24, total)
	})

	t.Run("坏文件按0计入不拖垮整批", func(t *testing.T) {
		missing := filepath.Join(dir.Path(), "missing.txt")
		total, err := tour.ConcurrentFileLengths(ctx, []string{path1, missing})
		require.NoError(t, err)
		assert.Equal(t, 10, total)
	})
}

// TestFileProcessors 测试封闭的文件处理器集合
func TestFileProcessors(t *testing.T) {
	t.Run("文本处理器转大写", func(t *testing.T) {
		result, err := tour.ProcessWith(tour.TextProcessor{}, "hello world")
		require.NoError(t, err)
		assert.Equal(t, "Text: HELLO WORLD", result)
	})

	t.Run("JSON处理器折叠换行", func(t *testing.T) {
		result, err := tour.ProcessWith(tour.JSONProcessor{}, "{\n\"key\": 1\n}")
		require.NoError(t, err)
		assert.Equal(t, "JSON: { \"key\": 1 }", result)
	})

	t.Run("nil处理器报错", func(t *testing.T) {
		_, err := tour.ProcessWith(nil, "content")
		require.Error(t, err)
		assert.ErrorIs(t, err, tour.ErrUnknownFileProcessor)
	})
}
