package tour

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// SampleText 固定的五行示例文本,单词提取和行处理示例都用它
const SampleText = `Line 1: Hello World
Line 2: Java 21 Features
Line 3: Record Patterns
Line 4: Virtual Threads
Line 5: String Templates
`

// SampleJSON 小的 JSON 示例负载,只当文本用,不约束schema
const SampleJSON = `{
    "name": "Feature Tour",
    "features": [
        "Sealed Shapes",
        "Fan Out Join",
        "Immutable Collections"
    ],
    "version": 1
}
`

// ScratchDir 平台临时目录下的一次性工作目录
// 生命周期只覆盖一个测试: 用前创建,用完 Remove,失败路径也要释放
type ScratchDir struct {
	root string
}

func NewScratchDir(prefix string) (*ScratchDir, error) {
	root, err := os.MkdirTemp("", prefix+"-")
	if err != nil {
		return nil, errors.WithMessagef(err, "NewScratchDir failed, prefix: %s", prefix)
	}
	return &ScratchDir{root: root}, nil
}

func (d *ScratchDir) Path() string {
	return d.root
}

// WriteFile 在目录下写一个 UTF-8 文本文件,返回完整路径
func (d *ScratchDir) WriteFile(name string, content string) (string, error) {
	path := filepath.Join(d.root, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", errors.WithMessagef(err, "WriteFile failed, path: %s", path)
	}
	return path, nil
}

func (d *ScratchDir) ReadFile(name string) (string, error) {
	path := filepath.Join(d.root, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.WithMessagef(err, "ReadFile failed, path: %s", path)
	}
	return string(data), nil
}

func (d *ScratchDir) DeleteFile(name string) error {
	path := filepath.Join(d.root, name)
	if err := os.Remove(path); err != nil {
		return errors.WithMessagef(err, "DeleteFile failed, path: %s", path)
	}
	return nil
}

// Remove 无条件清理整个目录,清理失败只记日志,不影响测试结果
func (d *ScratchDir) Remove() {
	if err := os.RemoveAll(d.root); err != nil {
		slog.Error(fmt.Sprintf("ScratchDir.Remove failed, root: %s, err: %v", d.root, err))
	}
}

// ReadFileLines 读文件并拆成 FileLine 元组,行号从1开始
func ReadFileLines(path string) ([]FileLine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithMessagef(err, "ReadFileLines failed, path: %s", path)
	}
	return SplitLines(string(data)), nil
}

// SplitLines 按行拆分,忽略末尾空行
func SplitLines(content string) []FileLine {
	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	ret := make([]FileLine, 0, len(lines))
	for i, line := range lines {
		ret = append(ret, FileLine{Number: i + 1, Content: line})
	}
	return ret
}

// TagLine 按行内容打标,守卫按声明顺序优先匹配
func TagLine(line string) string {
	switch {
	case strings.Contains(line, "Java"):
		return "Java Feature: " + line
	case strings.Contains(line, "Record"):
		return "Record Feature: " + line
	case strings.Contains(line, "Virtual"):
		return "Concurrency Feature: " + line
	case strings.Contains(line, "String"):
		return "String Feature: " + line
	default:
		return "Processed: " + line
	}
}

// ConcurrentFileLengths 并发统计每个文件的字符总长
// 读失败的文件按0计入,错误只记日志,不让单个坏文件拖垮整批
func ConcurrentFileLengths(ctx context.Context, paths []string) (int, error) {
	pool := NewTaskPool[int](len(paths))
	tasks := make([]TaskFunc[int], 0, len(paths))
	for _, path := range paths {
		path := path
		tasks = append(tasks, func(ctx context.Context) (int, error) {
			lines, err := ReadFileLines(path)
			if err != nil {
				slog.ErrorContext(ctx, fmt.Sprintf("ConcurrentFileLengths read failed, path: %s, err: %v", path, err))
				return 0, nil
			}
			total := 0
			for _, line := range lines {
				total += len(line.Content)
			}
			return total, nil
		})
	}
	lengths, err := pool.RunAll(ctx, tasks)
	if err != nil {
		return 0, errors.WithMessage(err, "ConcurrentFileLengths failed")
	}
	total := 0
	for _, length := range lengths {
		total += length
	}
	return total, nil
}

// FileProcessor 封闭的文件处理器集合,两种实现
type FileProcessor interface {
	isFileProcessor()
	Process(content string) string
}

type TextProcessor struct{}

func (TextProcessor) isFileProcessor() {}

func (TextProcessor) Process(content string) string {
	return "Text: " + strings.ToUpper(content)
}

type JSONProcessor struct{}

func (JSONProcessor) isFileProcessor() {}

func (JSONProcessor) Process(content string) string {
	return "JSON: " + strings.TrimSpace(strings.ReplaceAll(content, "\n", " "))
}

// ProcessWith 穷举分派,default 只有 nil 会走到
func ProcessWith(p FileProcessor, content string) (string, error) {
	switch v := p.(type) {
	case TextProcessor:
		return v.Process(content), nil
	case JSONProcessor:
		return v.Process(content), nil
	default:
		return "", errors.WithMessagef(ErrUnknownFileProcessor, "processor: %T", p)
	}
}
