package cron_service

// File: beehive_server/internal/service/cron_service/enter.go
// Description: 定时任务服务模块，初始化秒级定时任务调度器，注册日志保留清理定时任务并启动调度器

import (
	"time"

	"beehive_server/internal/global"

	"github.com/robfig/cron/v3"
)

// Run 启动定时任务调度器
func Run() {
	// 保留天数为0表示不清理，不启动调度器
	if global.Config.System.LogRetentionDays <= 0 {
		return
	}

	// 加载上海时区，确保定时任务按北京时间执行
	timezone, _ := time.LoadLocation("Asia/Shanghai")

	// 创建crontab实例：启用秒级调度精度，指定上海时区
	crontab := cron.New(cron.WithSeconds(), cron.WithLocation(timezone))

	// 注册日志清理定时任务：每天凌晨3点执行一次CleanExpiredLogs函数
	crontab.AddFunc("0 0 3 * * *", CleanExpiredLogs)

	// 启动定时任务调度器
	crontab.Start()
}
