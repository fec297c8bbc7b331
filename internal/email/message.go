// Package email builds and delivers the reminder messages for the email
// notification channel.
package email

import (
	"fmt"

	"github.com/taskmgmt/notify-api/internal/domain"
)

// Reminder subjects per reminder mode. The wording is part of the
// notification contract and is kept stable.
const (
	subjectDaily  = "Reminder: Task Due Tomorrow"
	subjectHourly = "Reminder: Task Due This Hour"
)

const bodyTemplate = `Hello,

This is a friendly reminder that your task '%s' is due %s. Please take necessary actions.

Best regards,
Your Task Management System
`

// Message is a rendered reminder ready for delivery.
type Message struct {
	To      string
	Subject string
	Body    string
}

// BuildReminder renders the fixed reminder template for the given task and
// recipient address. The phrasing follows the reminder mode: daily mode
// reminds about tomorrow, hourly mode about the current hour.
func BuildReminder(mode domain.ReminderMode, task *domain.Task, to string) Message {
	subject := subjectDaily
	due := "tomorrow"
	if mode == domain.ReminderModeHourly {
		subject = subjectHourly
		due = "this hour"
	}

	return Message{
		To:      to,
		Subject: subject,
		Body:    fmt.Sprintf(bodyTemplate, task.Title, due),
	}
}
