// Package domain contains the core business entities and value objects of
// the notification pipeline: tasks, users, notification records, and the
// due-marker computation that keys reminder selection. It is independent of
// any specific storage or transport mechanism.
package domain
