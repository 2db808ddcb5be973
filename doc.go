// Package tour 提供一组现代 Go 特性的教学示例。
//
// 这是一个轻量级的特性示例库，每个示例演示一个独立的语言/标准库特性，
// 配套的测试用例给出固定的输入输出，方便学习和对照。
//
// 覆盖的特性：
//   - 封闭和类型（sealed sum type）：Shape 的穷举分派
//   - 结构化解构：record 风格的元组与嵌套解构
//   - 带守卫的类型分支：Classify 系列函数
//   - 泛型切片工具：Filter、MapSlice、TakeWhile 等
//   - 不可变集合：ListOf/SetOf/MapOf，写操作返回错误
//   - 任务扇出/汇合：基于 errgroup 的 TaskPool
//   - 临时文件处理：ScratchDir 作用域内创建和清理
//   - 数据持久化：支持 GORM，示例用 SQLite 落库演示结果
//
// 基础使用示例:
//
//	package main
//
//	import (
//	    "context"
//
//	    "github.com/blingmoon/feature-tour/tour"
//	    "gorm.io/driver/sqlite"
//	    "gorm.io/gorm"
//	)
//
//	func main() {
//	    // 1. 初始化数据库
//	    db, _ := gorm.Open(sqlite.Open("tour.sqlite3"), &gorm.Config{})
//	    db.AutoMigrate(&tour.DemoRunPo{})
//
//	    // 2. 创建服务
//	    repo := tour.NewDemoRunRepo(db)
//	    lock := tour.NewLocalRunLock()
//	    service := tour.NewTourService(repo, lock)
//
//	    // 3. 注册特性示例
//	    tour.RegisterFeatureDemo(tour.FeatureKeyShapes,
//	        func(ctx context.Context, payload *tour.Payload) (string, error) {
//	            area, err := tour.ShapeArea(tour.Circle{Radius: 2.0})
//	            if err != nil {
//	                return "", err
//	            }
//	            return tour.DescribeShape(tour.Circle{Radius: 2.0}) + " -> " +
//	                tour.FormatArea(area), nil
//	        })
//
//	    // 4. 运行并持久化一次示例
//	    service.RunDemo(context.Background(), &tour.RunDemoReq{
//	        FeatureKey: tour.FeatureKeyShapes,
//	        BusinessID: "DEMO-001",
//	    })
//	}
//
// 示例之间没有数据依赖，每个测试自己创建和销毁 fixture。
// 更多示例见 internal/tests 和 examples/ 目录。
package tour
