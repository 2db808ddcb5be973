package tests

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"testing"

	"go.uber.org/goleak"
)

// TestMain 套件入口: 打印运行环境,跑完后检查goroutine泄漏
func TestMain(m *testing.M) {
	slog.Info("===== 特性示例测试套件开始 =====")
	slog.Info(fmt.Sprintf("Go version: %s", runtime.Version()))

	code := m.Run()

	slog.Info("===== 特性示例测试套件结束 =====")

	if code == 0 {
		// sqlite连接池的常驻goroutine不算泄漏
		err := goleak.Find(
			goleak.IgnoreTopFunction("database/sql.(*DB).connectionOpener"),
		)
		if err != nil {
			slog.Error(fmt.Sprintf("goroutine leak detected: %v", err))
			code = 1
		}
	}
	os.Exit(code)
}
