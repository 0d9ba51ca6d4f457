package models

// 蜜罐类型枚举值
const (
	HoneypotTypeSSH    = "ssh"
	HoneypotTypeTelnet = "telnet"
	HoneypotTypeHTTP   = "http"
)

// 蜜罐状态枚举值
const (
	HoneypotStatusActive   = "active"
	HoneypotStatusInactive = "inactive"
)

// HoneypotModel 蜜罐模型
type HoneypotModel struct {
	Model
	Name      string     `gorm:"size:100" json:"name"`          // 蜜罐名称
	Type      string     `gorm:"size:20" json:"type"`           // 蜜罐类型 ssh telnet http
	Host      string     `gorm:"size:50" json:"host"`           // 监听地址，默认0.0.0.0
	Port      int        `json:"port"`                          // 监听端口
	Status    string     `gorm:"size:20" json:"status"`         // 部署状态 active inactive
	LogList   []LogModel `gorm:"foreignKey:HoneypotID" json:"-"` // 蜜罐的入侵日志列表
	LogsCount int64      `gorm:"-" json:"logs_count"`           // 关联入侵日志数（查询时计算）
}
