package engine

// EmptyNotification is what PopNotification reports once the log is drained.
const EmptyNotification = "No notification to display."

// NotificationLog is a stack of operator messages. The newest message is popped
// first and popping removes it.
type NotificationLog struct {
	items []string
}

// NewNotificationLog returns an empty log.
func NewNotificationLog() *NotificationLog {
	return &NotificationLog{}
}

// Push records a message on top of the log.
func (l *NotificationLog) Push(message string) {
	l.items = append(l.items, message)
}

// Pop removes and returns the newest message. ok is false if the log is empty.
func (l *NotificationLog) Pop() (message string, ok bool) {
	if len(l.items) == 0 {
		return "", false
	}

	last := len(l.items) - 1
	message = l.items[last]
	l.items[last] = ""
	l.items = l.items[:last]
	return message, true
}

// Len returns the number of messages waiting to be popped.
func (l *NotificationLog) Len() int {
	return len(l.items)
}
