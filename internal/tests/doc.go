// Package tests 是 feature-tour 的内部测试模块。
//
// ⚠️ 重要提示：此包位于 internal/ 目录下，受 Go 编译器保护，
// 外部项目无法导入（会得到编译错误）。
//
// 🔒 编译器保护
//
// 如果外部项目尝试导入：
//
//	import "github.com/blingmoon/feature-tour/internal/tests"
//
// 将会得到编译错误：
//
//	use of internal package github.com/blingmoon/feature-tour/internal/tests not allowed
//
// 📋 测试内容
//
// 此模块包含以下测试：
//   - tour 包的基础特性测试（元组、类型分支、文本块、扇出）
//   - 进阶特性测试（封闭形状、不可变集合、流式算子、Optional）
//   - 临时文件处理测试
//   - mock 协作测试
//   - TourService 集成测试（sqlite 内存库）
//
// 🚀 运行测试
//
// 在项目根目录：
//
//	cd internal/tests
//	go test ./...
//
// 查看覆盖率：
//
//	go test -coverprofile=coverage.out -coverpkg=github.com/blingmoon/feature-tour/tour ./...
//	go tool cover -html=coverage.out
package tests
