package tour

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type DemoRunPo struct {
	ID         int64         `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	RunID      string        `gorm:"column:run_id" json:"run_id"`
	FeatureKey string        `gorm:"column:feature_key" json:"feature_key"`
	BusinessID string        `gorm:"column:business_id" json:"business_id"`
	Status     DemoRunStatus `gorm:"column:status" json:"status"`
	Output     string        `gorm:"column:output" json:"output"`
	Payload    []byte        `gorm:"column:payload" json:"payload"` // 示例负载,入参和结果明细
	CreatedAt  int64         `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  int64         `gorm:"column:updated_at" json:"updated_at"`
}

func (DemoRunPo) TableName() string {
	return "demo_run"
}

type QueryDemoRunParams struct {
	DemoRunID     *int64   `json:"demo_run_id"`
	RunID         *string  `json:"run_id"`
	FeatureKeyIn  []string `json:"feature_key_in"`
	BusinessID    *string  `json:"business_id"`
	StatusIn      []string `json:"status_in"`
	IDGreaterThan *int64   `json:"id_greater_than"`
	OrderbyIDAsc  *bool    `json:"orderby_id_asc"`
	Page          *Pager   `json:"page"`
}

type Pager struct {
	IsNoLimit *bool `json:"is_no_limit"`
	Page      int64 `json:"page"`
	Size      int64 `json:"size"`
}

type UpdateDemoRunParams struct {
	Where    *UpdateDemoRunWhere `json:"where" validate:"required"`
	Fields   *UpdateDemoRunField `json:"field" validate:"required"`
	LimitMax int                 `json:"limit_max" validate:"required"`
}

type UpdateDemoRunWhere struct {
	IDIn     []int64  `json:"id_in"`
	StatusIn []string `json:"status_in"`
}

type UpdateDemoRunField struct {
	Status  *string  `json:"status"`
	Output  *string  `json:"output"`
	Payload *Payload `json:"payload"`
}

type demoRunRepo struct {
	db *gorm.DB
}

func NewDemoRunRepo(db *gorm.DB) DemoRunRepo {
	return &demoRunRepo{
		db: db,
	}
}

func (r *demoRunRepo) CreateDemoRun(ctx context.Context, demoRun *DemoRunPo) (*DemoRunPo, error) {
	if demoRun == nil {
		return nil, fmt.Errorf("nil DemoRunPo")
	}
	demoRun.CreatedAt = time.Now().Unix()
	demoRun.UpdatedAt = time.Now().Unix()
	if err := r.GetDBWithContext(ctx).Create(demoRun).Error; err != nil {
		return nil, errors.WithMessage(err, "CreateDemoRun failed")
	}
	return demoRun, nil
}

func buildQueryDemoRunParams(db *gorm.DB, isCount bool, param *QueryDemoRunParams) (*gorm.DB, error) {
	if param == nil {
		return nil, errors.New("nil QueryDemoRunParams")
	}
	if param.DemoRunID != nil {
		db = db.Where("id = ?", param.DemoRunID)
	}
	if param.RunID != nil {
		db = db.Where("run_id = ?", param.RunID)
	}
	if len(param.FeatureKeyIn) != 0 {
		db = db.Where("feature_key IN ?", param.FeatureKeyIn)
	}
	if param.BusinessID != nil {
		db = db.Where("business_id = ?", param.BusinessID)
	}
	if len(param.StatusIn) != 0 {
		db = db.Where("status IN ?", param.StatusIn)
	}
	if param.IDGreaterThan != nil {
		db = db.Where("id > ?", param.IDGreaterThan)
	}
	if param.OrderbyIDAsc != nil && !isCount {
		// 排序处理
		if *param.OrderbyIDAsc {
			db = db.Order("id asc")
		} else {
			db = db.Order("id desc")
		}
	}
	if !isCount {
		if param.Page == nil {
			return nil, errors.New("page is nil")
		}
		if param.Page.IsNoLimit != nil && *param.Page.IsNoLimit {
			// 不分页显示指定了true
			return db, nil
		}
		if param.Page.Page == 0 {
			param.Page.Page = 1
		}
		if param.Page.Size == 0 {
			param.Page.Size = 10
		}
		db = db.Offset(int(param.Page.Page-1) * int(param.Page.Size)).Limit(int(param.Page.Size))
	}
	return db, nil
}

func (r *demoRunRepo) QueryDemoRun(ctx context.Context, param *QueryDemoRunParams) ([]*DemoRunPo, error) {
	if param == nil {
		return nil, fmt.Errorf("nil QueryDemoRunParams")
	}
	db := r.GetDBWithContext(ctx).Model(&DemoRunPo{})
	db, err := buildQueryDemoRunParams(db, false, param)
	if err != nil {
		return nil, errors.WithMessage(err, "buildQueryDemoRunParams failed")
	}
	pos := make([]*DemoRunPo, 0)
	if err := db.Find(&pos).Error; err != nil {
		return nil, errors.WithMessage(err, "QueryDemoRun failed")
	}
	return pos, nil
}

func (r *demoRunRepo) CountDemoRun(ctx context.Context, param *QueryDemoRunParams) (int64, error) {
	if param == nil {
		return 0, fmt.Errorf("nil QueryDemoRunParams")
	}
	db := r.GetDBWithContext(ctx).Model(&DemoRunPo{})
	db, err := buildQueryDemoRunParams(db, true, param)
	if err != nil {
		return 0, errors.WithMessage(err, "buildQueryDemoRunParams failed")
	}
	var count int64
	if err := db.Count(&count).Error; err != nil {
		return 0, errors.WithMessage(err, "CountDemoRun failed")
	}
	return count, nil
}

func buildUpdateDemoRunParams(db *gorm.DB, param *UpdateDemoRunParams) (*gorm.DB, error) {
	isHasWhere := false
	if param == nil {
		return nil, errors.New("nil UpdateDemoRunParams")
	}
	if param.Where == nil {
		return nil, errors.New("where is nil")
	}
	if param.Fields == nil {
		return nil, errors.New("fields is nil")
	}
	if len(param.Where.IDIn) > 0 {
		isHasWhere = true
		db = db.Where("id IN ?", param.Where.IDIn)
	}
	if len(param.Where.StatusIn) > 0 {
		isHasWhere = true
		db = db.Where("status IN ?", param.Where.StatusIn)
	}
	if !isHasWhere {
		return db, errors.New("update demo run need where condition, please check")
	}
	return db, nil
}

func buildUpdateDemoRunFields(fields *UpdateDemoRunField) (map[string]any, error) {
	updateFields := make(map[string]any)
	if fields.Status != nil {
		updateFields["status"] = *fields.Status
	}
	if fields.Output != nil {
		updateFields["output"] = *fields.Output
	}
	if fields.Payload != nil {
		jsonData, err := fields.Payload.ToBytes()
		if err != nil {
			return nil, errors.WithMessage(err, "Marshal fields.Payload failed")
		}
		updateFields["payload"] = jsonData
	}
	if len(updateFields) == 0 {
		return nil, errors.New("no fields to update")
	}
	updateFields["updated_at"] = time.Now().Unix()
	return updateFields, nil
}

func (r *demoRunRepo) UpdateDemoRun(ctx context.Context, param *UpdateDemoRunParams) error {
	if param == nil {
		return fmt.Errorf("nil UpdateDemoRunParams")
	}
	db := r.GetDBWithContext(ctx).Model(&DemoRunPo{})
	db, err := buildUpdateDemoRunParams(db, param)
	if err != nil {
		return errors.WithMessage(err, "buildUpdateDemoRunParams failed")
	}
	updateFields, err := buildUpdateDemoRunFields(param.Fields)
	if err != nil {
		return errors.WithMessage(err, "buildUpdateDemoRunFields failed")
	}
	if err := db.Updates(updateFields).Limit(param.LimitMax).Error; err != nil {
		return errors.WithMessage(err, "UpdateDemoRun failed")
	}
	return nil
}

type contextKey string

const (
	transactionContextKey contextKey = "transaction"
)

func (r *demoRunRepo) GetDBWithContext(ctx context.Context) *gorm.DB {
	tx := ctx.Value(transactionContextKey)
	if tx == nil {
		// 没有事务，直接返回即可
		return r.db.WithContext(ctx)
	}
	return tx.(*gorm.DB)
}

func (r *demoRunRepo) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	ctxTX := ctx.Value(transactionContextKey)
	var err error
	if ctxTX == nil {
		tx := r.db.Begin()
		defer func() {
			if err != nil {
				tx.Rollback()
			} else {
				tx.Commit()
			}
		}()
		newCtx := context.WithValue(ctx, transactionContextKey, tx)
		err = fn(newCtx)
		return err
	}
	return fn(ctx)
}
