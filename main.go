package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gallery-server/internal/config"
	"gallery-server/internal/db"
	"gallery-server/internal/di"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const (
	applicationName    = "Gallery Server"
	applicationVersion = "v1.0.0"
)

// rootCmd 不带子命令时等同于 serve
var rootCmd = &cobra.Command{
	Use:          "gallery-server",
	Short:        "相册与图片管理服务",
	SilenceUsage: true,
	RunE:         runServe,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("❌ 执行失败: %v", err)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "配置文件目录 (默认 ./config)")
	rootCmd.AddCommand(serveCmd, reconcileCmd, routesCmd)
}

// bootstrap 加载配置、连接数据库并组装应用。
func bootstrap(cmd *cobra.Command) (*di.Application, *gorm.DB, error) {
	configDir, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, nil, err
	}
	config.InitConfig(configDir)

	uploadPath := config.Get().Upload.Path
	if err := checkSecurePath(uploadPath); err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(uploadPath, 0755); err != nil {
		return nil, nil, fmt.Errorf("无法创建上传目录: %w", err)
	}

	gdb, err := db.Open(config.Get().Database)
	if err != nil {
		return nil, nil, err
	}

	app, err := di.InitializeApplication(gdb)
	if err != nil {
		closeDB(gdb)
		return nil, nil, fmt.Errorf("应用初始化失败: %w", err)
	}
	return app, gdb, nil
}

func closeDB(gdb *gorm.DB) {
	if sqlDB, err := gdb.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// checkSecurePath 拒绝把项目根目录或源码目录作为静态资源目录。
func checkSecurePath(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("路径解析失败: %w", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("无法获取当前工作目录: %w", err)
	}

	// 检查是否直接指向项目根目录
	if absPath == cwd {
		return fmt.Errorf("安全配置错误: 静态资源目录 '%s' 不能设置为项目根目录", path)
	}

	rel, err := filepath.Rel(cwd, absPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		// 工作目录之外的路径不做限制
		return nil
	}

	// 只有位于这些目录下的路径才被允许作为静态资源目录
	allowedDirs := []string{
		"uploads",
		"public",
		"static",
		"tmp",
	}

	firstComponent := strings.Split(filepath.ToSlash(rel), "/")[0]
	for _, allowed := range allowedDirs {
		if strings.EqualFold(firstComponent, allowed) {
			return nil
		}
	}
	return fmt.Errorf("安全配置错误: 静态资源目录 '%s' 必须位于项目根目录下的安全子目录中 (如 %v)", path, allowedDirs)
}
