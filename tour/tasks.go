package tour

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// TaskFunc 单个任务,计算一个独立的纯值
type TaskFunc[T any] func(ctx context.Context) (T, error)

// TaskPool 固定并发上限的任务池
// 只做扇出/汇合: 全部任务跑完才返回,结果按提交顺序放回对应槽位
// 没有取消、重试、背压这些语义,规模就是每次几个到十几个任务
type TaskPool[T any] struct {
	maxWorkers int
}

func NewTaskPool[T any](maxWorkers int) *TaskPool[T] {
	if maxWorkers <= 0 {
		maxWorkers = 1
	}
	return &TaskPool[T]{maxWorkers: maxWorkers}
}

// RunAll 扇出全部任务并等待汇合
// 任何一个任务出错,整体返回错误;goroutine 的生命周期不超出本次调用
func (p *TaskPool[T]) RunAll(ctx context.Context, tasks []TaskFunc[T]) ([]T, error) {
	results := make([]T, len(tasks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.maxWorkers)
	for i, task := range tasks {
		i, task := i, task
		g.Go(func() error {
			value, err := task(gctx)
			if err != nil {
				return errors.WithMessagef(err, "task %d failed", i)
			}
			// 按索引写回,天然保持提交顺序,不需要加锁
			results[i] = value
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.WithMessage(err, "RunAll failed")
	}
	return results, nil
}

// FanOutLabeled 扇出 count 个短任务,每个返回 "label-i" 形式的标签串
// 每个任务 sleep 10ms,模拟一点点耗时
func FanOutLabeled(ctx context.Context, count int, label string) ([]string, error) {
	if count <= 0 {
		return nil, errors.Wrapf(ErrTourParamInvalid, "FanOutLabeled failed, count: %d", count)
	}
	tasks := make([]TaskFunc[string], 0, count)
	for i := 0; i < count; i++ {
		i := i
		tasks = append(tasks, func(ctx context.Context) (string, error) {
			slog.DebugContext(ctx, fmt.Sprintf("task %d executing", i))
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(10 * time.Millisecond):
			}
			return fmt.Sprintf("%s-%d", label, i), nil
		})
	}
	pool := NewTaskPool[string](count)
	return pool.RunAll(ctx, tasks)
}
