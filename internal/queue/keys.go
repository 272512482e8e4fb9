package queue

import "strings"

const (
	GlobalKeyPrefix = "letsheal"
)

// GenerateKey builds a namespaced Redis key for a service, object type and
// identifier. Extra params are joined by "_" and appended.
func GenerateKey(serviceName, objectType, identifier string, params ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(params) > 0 {
		return strings.Join([]string{baseKey, strings.Join(params, "_")}, ":")
	}
	return baseKey
}

// NotificationQueueKey is the list the API pushes to and the notifier drains.
func NotificationQueueKey(channel string) string {
	return GenerateKey("notification", "queue", channel)
}
