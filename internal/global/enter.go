package global

// File: beehive_server/internal/global/enter.go
// Description: 全局变量模块，定义应用程序级别的全局共享变量

import (
	"beehive_server/internal/config"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// 全局变量声明区
var (
	DB     *gorm.DB       // 全局数据库连接实例
	Config *config.Config // 全局配置实例
	Log    *logrus.Entry  // 全局日志实例
)

var (
	Version   = "v1.0.0"
	Commit    = "0000000"
	BuildTime = "2026-08-30 00:00:00"
)
