package models

import "time"

// LogModel 入侵日志模型
type LogModel struct {
	Model
	HoneypotID    uint          `gorm:"index:idx_honeypot_id" json:"honeypot_id"`   // 归属蜜罐ID
	HoneypotModel HoneypotModel `gorm:"foreignKey:HoneypotID" json:"-"`             // 归属蜜罐
	IpAddress     string        `gorm:"size:45;index:idx_ip_address" json:"ip_address"` // 来源IP，兼容IPv4和IPv6
	EventType     string        `gorm:"size:50" json:"event_type"`                  // 事件类型 connection_attempt login_attempt 等
	Details       string        `json:"details"`                                    // 事件详情
	Timestamp     time.Time     `json:"timestamp"`                                  // 事件发生时间
}
