package flags

// File: beehive_server/internal/flags/honeypot.go
// Description: 蜜罐命令行菜单，提供已注册蜜罐的列表查看功能

import (
	"beehive_server/internal/global"
	"beehive_server/internal/models"

	"github.com/sirupsen/logrus"
)

// Honeypot 蜜罐命令行菜单结构体
type Honeypot struct {
}

// List 打印已注册的蜜罐列表
func (Honeypot) List() {
	var list []models.HoneypotModel
	global.DB.Find(&list)
	for _, model := range list {
		// 统计蜜罐关联的入侵日志数
		var count int64
		global.DB.Model(&models.LogModel{}).Where("honeypot_id = ?", model.ID).Count(&count)
		logrus.Infof("%d %s %s %s:%d %s 日志%d条",
			model.ID, model.Name, model.Type, model.Host, model.Port, model.Status, count)
	}
	logrus.Infof("共%d个蜜罐", len(list))
}
