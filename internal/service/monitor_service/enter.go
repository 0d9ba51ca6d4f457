package monitor_service

// File: beehive_server/internal/service/monitor_service/enter.go
// Description: 蜜罐日志监听服务模块，实时监听配置的蜜罐输出日志文件，解析后写入入侵日志表

import (
	"encoding/json"
	"io"
	"time"

	"beehive_server/internal/config"
	"beehive_server/internal/global"
	"beehive_server/internal/models"

	"github.com/hpcloud/tail"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CowrieEvent Cowrie蜜罐JSON日志事件结构体，仅解析关注的字段
type CowrieEvent struct {
	EventID string `json:"eventid"` // 事件标识（如cowrie.login.failed）
	SrcIp   string `json:"src_ip"`  // 攻击来源IP
}

// Run 启动蜜罐日志监听服务，为每个配置的日志文件启动一个监听协程
func Run() {
	cfg := global.Config.Monitor
	if !cfg.Enable {
		return
	}
	for _, source := range cfg.Sources {
		go WatchSource(source)
	}
	logrus.Infof("开始监听蜜罐日志 共%d个文件", len(cfg.Sources))
}

// WatchSource 监听单个蜜罐日志文件，逐行解析并入库
func WatchSource(source config.MonitorSource) {
	// 初始化日志尾追器，从文件末尾开始实时监听新日志
	t, err := tail.TailFile(source.Path, tail.Config{
		Follow: true, // 持续跟随日志文件新增内容
		ReOpen: true, // 文件轮换后重新打开
		Location: &tail.SeekInfo{
			Offset: 0,
			Whence: io.SeekEnd, // 初始位置设为文件末尾，避免重复解析历史日志
		},
	})
	if err != nil {
		logrus.Errorf("蜜罐日志路径错误 %s %s", source.Path, err)
		return
	}

	// 循环读取日志行，处理每条新增日志
	for line := range t.Lines {
		if line.Text == "" {
			continue
		}
		model := ParseLine(line.Text, source.HoneypotID)
		// 归属蜜罐存在性校验与日志入库在同一事务内，与HTTP上报接口保持一致
		err = global.DB.Transaction(func(tx *gorm.DB) error {
			var honeypot models.HoneypotModel
			if err := tx.Take(&honeypot, source.HoneypotID).Error; err != nil {
				return err
			}
			return tx.Create(&model).Error
		})
		if err != nil {
			logrus.Errorf("蜜罐日志入库失败 %s", err)
		}
	}
}

// ParseLine 解析单行蜜罐日志为入侵日志模型
// JSON行按Cowrie事件解析，非JSON行按关键字规则分类
func ParseLine(text string, honeypotID uint) models.LogModel {
	model := models.LogModel{
		HoneypotID: honeypotID,
		IpAddress:  "0.0.0.0",
		Details:    text,
		Timestamp:  time.Now().UTC(),
	}

	var event CowrieEvent
	err := json.Unmarshal([]byte(text), &event)
	if err == nil && event.EventID != "" {
		// Cowrie JSON事件：事件标识作为事件类型，完整JSON保留在详情中
		model.EventType = event.EventID
		if event.SrcIp != "" {
			model.IpAddress = event.SrcIp
		}
		return model
	}

	// 非JSON行按关键字规则分类
	model.EventType = Classify(text)
	return model
}
