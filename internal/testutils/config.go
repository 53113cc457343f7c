package testutils

import (
	"os"

	"gallery-server/internal/config"
)

// InitTestConfig 以空临时目录和 debug 模式初始化配置，使用默认值与开发用 JWT 密钥。
// 返回的函数用于清理临时目录。
func InitTestConfig() func() {
	dir, err := os.MkdirTemp("", "gallery-test-config")
	if err != nil {
		panic(err)
	}
	_ = os.Setenv("GALLERY_SERVER_MODE", "debug")
	config.InitConfig(dir)
	return func() { _ = os.RemoveAll(dir) }
}
