package board

import "strings"

type StatusClass string

const (
	StatusClassInitiated StatusClass = "initiated"
	StatusClassProgress  StatusClass = "progress"
	StatusClassCompleted StatusClass = "completed"
	StatusClassPending   StatusClass = "pending"
)

type statusRule struct {
	match string
	class StatusClass
}

// порядок важен: "in progress, completed" попадает в progress
var statusRules = []statusRule{
	{match: "progress", class: StatusClassProgress},
	{match: "completed", class: StatusClassCompleted},
	{match: "pending", class: StatusClassPending},
	{match: "initiated", class: StatusClassInitiated},
}

// ClassifyStatus подбирает класс бейджа по первому совпавшему правилу, по умолчанию initiated
func ClassifyStatus(status string) StatusClass {
	lower := strings.ToLower(status)
	if lower == "" {
		return StatusClassInitiated
	}
	for _, rule := range statusRules {
		if strings.Contains(lower, rule.match) {
			return rule.class
		}
	}
	return StatusClassInitiated
}

// StatusText возвращает статус как есть, пустой показывается как "Initiated"
func StatusText(status string) string {
	if status == "" {
		return DefaultStatus
	}
	return status
}
