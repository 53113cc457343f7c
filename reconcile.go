package main

import (
	"encoding/json"
	"log"

	"github.com/spf13/cobra"
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "重新计算相册图片计数并检查孤儿文件",
	Long: `重新计算每个相册的 imagesCount，并比对上传目录与图片记录：
没有记录引用且写入超过 10 分钟的文件报告为孤儿文件，记录指向但磁盘上不存在的文件报告为缺失文件。
加上 --purge 时删除孤儿文件。`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		purge, err := cmd.Flags().GetBool("purge")
		if err != nil {
			return err
		}

		app, gdb, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer closeDB(gdb)
		defer func() { _ = app.Close() }()

		report, err := app.Modules.Image.Service.Reconcile(cmd.Context(), purge)
		if err != nil {
			return err
		}
		log.Printf("✅ 对账完成: 重算 %d 个相册, 孤儿文件 %d, 待定文件 %d, 缺失文件 %d, 已清理 %d",
			report.GalleriesRecounted, len(report.OrphanBlobs), len(report.PendingBlobs), len(report.MissingBlobs), report.Purged)

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	},
}

func init() {
	reconcileCmd.Flags().Bool("purge", false, "删除没有记录引用的孤儿文件")
}
