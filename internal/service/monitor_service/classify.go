package monitor_service

// File: beehive_server/internal/service/monitor_service/classify.go
// Description: 蜜罐原始日志事件分类模块，按关键字规则将文本日志归类到标准事件类型

import "regexp"

// classifyRule 单条分类规则，正则命中即归类到对应事件类型
type classifyRule struct {
	re    *regexp.Regexp // 匹配规则
	label string         // 事件类型标签
}

// classifyRules 事件分类规则表，按顺序匹配，先命中先归类
var classifyRules = []classifyRule{
	{regexp.MustCompile(`(?i)sql injection|union select|select .*from`), "sql_injection"},
	{regexp.MustCompile(`(?i)failed password|brute force|authentication failure|invalid user`), "brute_force"},
	{regexp.MustCompile(`(?i)wget|curl|download|fetch`), "file_download"},
	{regexp.MustCompile(`(?i)scanner|nmap|port scan|scan detected`), "port_scan"},
	{regexp.MustCompile(`(?i)command executed|command|shell`), "command_executed"},
	{regexp.MustCompile(`(?i)login attempt|login malic|login`), "login_attempt"},
}

// Classify 对原始日志行进行事件分类，无规则命中时归类为raw_output
func Classify(message string) string {
	if message == "" {
		return "raw_output"
	}
	for _, rule := range classifyRules {
		if rule.re.MatchString(message) {
			return rule.label
		}
	}
	return "raw_output"
}
