package tour

import (
	"context"

	"github.com/go-playground/validator/v10"
)

var validatorUtil = validator.New()

type TourService interface {
	/**
	 * @description: 运行一次特性示例
	 *               同一个特性key同一时刻只会被一个goroutine运行,
	 *               如果有其他goroutine正在运行该特性示例，则返回错误
	 * @param ctx context.Context
	 * @param req *RunDemoReq
	 * @return *DemoRun, error
	 */
	RunDemo(ctx context.Context, req *RunDemoReq) (*DemoRun, error)
	/**
	 * @description: 查询示例运行记录
	 * @param ctx context.Context
	 * @param params *QueryDemoRunParams
	 * @return []*DemoRunPo, error
	 */
	QueryDemoRun(ctx context.Context, params *QueryDemoRunParams) ([]*DemoRunPo, error)
	/**
	 * @description: 统计示例运行记录数量
	 * @param ctx context.Context
	 * @param params *QueryDemoRunParams
	 * @return int64, error
	 */
	CountDemoRun(ctx context.Context, params *QueryDemoRunParams) (int64, error)
}

// TourServiceImpl 特性示例服务
type TourServiceImpl struct {
	repo        DemoRunRepo
	executeLock RunLock
}

func NewTourService(repo DemoRunRepo, executeLock RunLock) TourService {
	return &TourServiceImpl{repo: repo, executeLock: executeLock}
}
