package main

import (
	"beehive_server/internal/core"
	"beehive_server/internal/flags"
	"beehive_server/internal/global"
	"beehive_server/internal/routers"
	"beehive_server/internal/service/cron_service"
	"beehive_server/internal/service/monitor_service"
)

func main() {
	flags.Parse()                     // 解析命令行参数
	global.Config = core.ReadConfig() // 读取配置文件
	core.SetLogDefault()              // 设置默认日志配置
	global.Log = core.GetLogger()     // 获取日志实例
	global.DB = core.GetDB()          // 获取SQLite数据库实例
	flags.Run()                       // 运行命令行参数
	monitor_service.Run()             // 启动蜜罐日志监听服务
	cron_service.Run()                // 启动定时任务
	routers.Run()                     // 启动路由
}
