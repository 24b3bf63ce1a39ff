package resource

import "log"

// Notifier receives user-facing outcome messages for mutations (the toast
// surface in the dashboard UI). Implementations must not block.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// LogNotifier writes notifications to the process log
type LogNotifier struct{}

func (LogNotifier) Success(message string) { log.Printf("notify: %s", message) }
func (LogNotifier) Error(message string)   { log.Printf("notify: error: %s", message) }
