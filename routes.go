package main

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

// RouteInfo 只保留路由的关键信息
type RouteInfo struct {
	Method  string `json:"method"`
	Path    string `json:"path"`
	Handler string `json:"handler"`
}

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "以 JSON 输出全部已注册路由",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, gdb, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer closeDB(gdb)
		defer func() { _ = app.Close() }()

		r := gin.New()
		app.Router.Init(r)

		exportList := make([]RouteInfo, 0, len(r.Routes()))
		for _, route := range r.Routes() {
			exportList = append(exportList, RouteInfo{
				Method:  route.Method,
				Path:    route.Path,
				Handler: route.Handler,
			})
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(exportList)
	},
}
