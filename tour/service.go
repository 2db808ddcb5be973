package tour

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// 辅助函数：替代 String 和 Bool
func String(s string) *string { return &s }
func Bool(b bool) *bool       { return &b }

var featureDemos = sync.Map{}

// FeatureDemoFunc 特性示例函数,由调用方注册
// 返回示例输出文本,payload 携带示例入参,函数内可以回写结果明细
type FeatureDemoFunc func(ctx context.Context, payload *Payload) (string, error)

/*
*
  - @description: 注册特性示例
    重复注册同一个key返回错误,注册后通过 TourService.RunDemo 分派执行
  - @param featureKey string
  - @param demo FeatureDemoFunc
  - @return error
*/
func RegisterFeatureDemo(featureKey FeatureKey, demo FeatureDemoFunc) error {
	if demo == nil {
		return errors.New("demo is nil")
	}
	if _, ok := featureDemos.Load(featureKey); ok {
		return errors.WithMessagef(ErrFeatureDemoAlreadyRegistered, "featureKey: %s", featureKey)
	}
	featureDemos.Store(featureKey, demo)
	return nil
}

func getFeatureDemo(featureKey FeatureKey) (FeatureDemoFunc, bool) {
	value, ok := featureDemos.Load(featureKey)
	if !ok {
		return nil, false
	}
	demo, ok := value.(FeatureDemoFunc)
	if !ok {
		return nil, false
	}
	return demo, true
}

type RunDemoReq struct {
	FeatureKey FeatureKey     `json:"feature_key" validate:"required"` // 特性key
	BusinessID string         `json:"business_id"`                     // 业务ID,可以为空
	Payload    map[string]any `json:"payload"`                        // 示例入参,可以为空
}

// DemoRun 一次示例运行entity
type DemoRun struct {
	ID         int64
	RunID      string
	FeatureKey FeatureKey
	BusinessID string
	Status     DemoRunStatus
	Output     string
	Payload    *Payload
	CreatedAt  int64
	UpdatedAt  int64
}

func (s *TourServiceImpl) RunDemo(ctx context.Context, req *RunDemoReq) (*DemoRun, error) {
	if err := validatorUtil.Struct(req); err != nil {
		return nil, errors.Wrapf(ErrTourParamInvalid, "RunDemo failed, req: %v,err: %v", req, err)
	}
	demo, ok := getFeatureDemo(req.FeatureKey)
	if !ok {
		return nil, errors.WithMessagef(ErrFeatureDemoNotFound, "RunDemo failed, featureKey: %s", req.FeatureKey)
	}
	payload := NewPayloadFromMap(req.Payload)

	var ret *DemoRun
	err := s.executeLock.NonBlockingSynchronized(ctx,
		demoRunLockKey(req.FeatureKey),
		1*time.Minute,
		func(ctx context.Context) error {
			demoRun, err := s.repo.CreateDemoRun(ctx, &DemoRunPo{
				RunID:      uuid.NewString(),
				FeatureKey: req.FeatureKey,
				BusinessID: req.BusinessID,
				Status:     DemoRunStatusRunning,
				Payload:    payload.ToBytesWithoutError(),
				CreatedAt:  time.Now().Unix(),
				UpdatedAt:  time.Now().Unix(),
			})
			if err != nil {
				return errors.WithMessagef(err, "CreateDemoRun failed, featureKey: %s", req.FeatureKey)
			}

			output, runErr := demo(ctx, payload)
			if runErr != nil {
				// 示例执行失败,落库失败状态和原因,错误继续往上抛
				s.addPayloadSystemError(runErr, payload)
				updateErr := s.repo.UpdateDemoRun(ctx, &UpdateDemoRunParams{
					Where: &UpdateDemoRunWhere{
						IDIn: []int64{demoRun.ID},
					},
					Fields: &UpdateDemoRunField{
						Status:  String(DemoRunStatusFailed),
						Payload: payload,
					},
					LimitMax: 1,
				})
				if updateErr != nil {
					slog.ErrorContext(ctx, fmt.Sprintf("UpdateDemoRun failed, demoRunID: %d, err: %v", demoRun.ID, updateErr))
				}
				if IsSeriousError(runErr) {
					slog.ErrorContext(ctx, fmt.Sprintf("[error]demo failed, featureKey: %s, err: %v", req.FeatureKey, runErr))
				} else {
					slog.WarnContext(ctx, fmt.Sprintf("[warn]demo failed, featureKey: %s, err: %v", req.FeatureKey, runErr))
				}
				return errors.WithMessagef(runErr, "demo failed, featureKey: %s", req.FeatureKey)
			}

			err = s.repo.UpdateDemoRun(ctx, &UpdateDemoRunParams{
				Where: &UpdateDemoRunWhere{
					IDIn: []int64{demoRun.ID},
				},
				Fields: &UpdateDemoRunField{
					Status:  String(DemoRunStatusCompleted),
					Output:  String(output),
					Payload: payload,
				},
				LimitMax: 1,
			})
			if err != nil {
				return errors.WithMessagef(err, "UpdateDemoRun failed, demoRunID: %d", demoRun.ID)
			}
			ret = &DemoRun{
				ID:         demoRun.ID,
				RunID:      demoRun.RunID,
				FeatureKey: demoRun.FeatureKey,
				BusinessID: demoRun.BusinessID,
				Status:     DemoRunStatusCompleted,
				Output:     output,
				Payload:    payload,
				CreatedAt:  demoRun.CreatedAt,
				UpdatedAt:  time.Now().Unix(),
			}
			return nil
		})
	if err != nil {
		return nil, errors.WithMessagef(err, "RunDemo failed, featureKey: %s", req.FeatureKey)
	}
	return ret, nil
}

func (s *TourServiceImpl) QueryDemoRun(ctx context.Context, params *QueryDemoRunParams) ([]*DemoRunPo, error) {
	if err := validatorUtil.Struct(params); err != nil {
		return nil, errors.Wrapf(ErrTourParamInvalid, "QueryDemoRun failed, params: %v,err: %v", params, err)
	}
	demoRuns, err := s.repo.QueryDemoRun(ctx, params)
	if err != nil {
		return nil, errors.WithMessagef(err, "QueryDemoRun failed, params: %v", params)
	}
	return demoRuns, nil
}

func (s *TourServiceImpl) CountDemoRun(ctx context.Context, params *QueryDemoRunParams) (int64, error) {
	if err := validatorUtil.Struct(params); err != nil {
		return 0, errors.Wrapf(ErrTourParamInvalid, "CountDemoRun failed, params: %v,err: %v", params, err)
	}
	count, err := s.repo.CountDemoRun(ctx, params)
	if err != nil {
		return 0, errors.WithMessagef(err, "CountDemoRun failed, params: %v", params)
	}
	return count, nil
}

func (s *TourServiceImpl) addPayloadSystemError(err error, payload *Payload) {
	if payload == nil {
		return
	}
	if err == nil {
		return
	}
	// 设置系统错误信息
	payload.Set([]string{"system", "last_error"}, err.Error())
	payload.Set([]string{"system", "last_error_time"}, time.Now().Format(time.RFC3339))
}

func demoRunLockKey(featureKey FeatureKey) string {
	return fmt.Sprintf("feature_demo_run_%s", featureKey)
}
