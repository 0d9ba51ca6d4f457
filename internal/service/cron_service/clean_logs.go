package cron_service

// File: beehive_server/internal/service/cron_service/clean_logs.go
// Description: 入侵日志保留清理定时任务，物理删除超过保留天数的日志记录

import (
	"time"

	"beehive_server/internal/global"
	"beehive_server/internal/models"
)

// CleanExpiredLogs 清理超过保留天数的入侵日志
func CleanExpiredLogs() {
	retentionDays := global.Config.System.LogRetentionDays
	if retentionDays <= 0 {
		return
	}

	// 计算过期时间点，早于该时间的日志将被物理删除
	cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays)

	result := global.DB.Unscoped().
		Where("timestamp < ?", cutoff).Delete(&models.LogModel{})
	if result.Error != nil {
		global.Log.Errorf("清理过期日志失败 %s", result.Error)
		return
	}
	global.Log.Infof("清理过期日志 %d条", result.RowsAffected)
}
