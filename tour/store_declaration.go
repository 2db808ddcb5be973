package tour

import (
	"context"
)

type DemoRunRepo interface {
	CreateDemoRun(ctx context.Context, demoRun *DemoRunPo) (*DemoRunPo, error)
	QueryDemoRun(ctx context.Context, param *QueryDemoRunParams) ([]*DemoRunPo, error)
	CountDemoRun(ctx context.Context, param *QueryDemoRunParams) (int64, error)
	UpdateDemoRun(ctx context.Context, param *UpdateDemoRunParams) error
	// Transaction 事务执行,嵌套调用复用同一个事务
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}
