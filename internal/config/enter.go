package config

// File: beehive_server/internal/config/enter.go
// Description: 配置模块，定义应用配置结构体

// Config 应用整体配置结构体
type Config struct {
	DB      DB      `yaml:"db"`      // 数据库配置信息
	Logger  Logger  `yaml:"logger"`  // 日志配置信息
	System  System  `yaml:"system"`  // 系统配置信息
	Monitor Monitor `yaml:"monitor"` // 蜜罐日志监听配置信息
}

// DB 数据库连接配置结构体
type DB struct {
	Path            string `yaml:"path"`            // SQLite数据库文件路径
	MaxIdleConns    int    `yaml:"maxIdleConns"`    // 数据库最大空闲连接数
	MaxOpenConns    int    `yaml:"maxOpenConns"`    // 数据库最大打开连接数
	ConnMaxLifetime int    `yaml:"connMaxLifetime"` // 数据库连接最大生命周期
}

// Dsn 生成数据库连接DSN字符串
func (cfg DB) Dsn() string {
	if cfg.Path == "" {
		return "beehive.db"
	}
	return cfg.Path
}

// Logger 日志配置结构体
type Logger struct {
	Format  string `yaml:"format"`  // 日志格式 [json|text]
	Level   string `yaml:"level"`   // 日志级别
	AppName string `yaml:"appName"` // 应用名称
}

// System 系统配置结构体
type System struct {
	WebAddr          string `yaml:"webAddr"`          // Web服务监听地址
	Mode             string `yaml:"mode"`             // 运行模式 [debug|release|test]
	LogRetentionDays int    `yaml:"logRetentionDays"` // 入侵日志保留天数，0表示不清理
}

// Monitor 蜜罐日志监听配置结构体
type Monitor struct {
	Enable  bool            `yaml:"enable"`  // 是否开启日志监听
	Sources []MonitorSource `yaml:"sources"` // 监听的蜜罐日志文件列表
}

// MonitorSource 单个蜜罐日志文件监听配置
type MonitorSource struct {
	HoneypotID uint   `yaml:"honeypotID"` // 归属蜜罐ID
	Path       string `yaml:"path"`       // 蜜罐输出日志文件路径
}
