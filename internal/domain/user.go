package domain

import "errors"

// Common user validation errors
var (
	ErrEmptyUserID = errors.New("user ID cannot be empty")
)

// NotificationPreferences holds the per-channel opt-in flags a user
// controls. Channels the pipeline does not deliver on yet still round-trip
// through here untouched.
type NotificationPreferences struct {
	Email bool `json:"email"`
}

// User represents the owner of a task as the pipeline sees it: contact
// details plus channel preferences. The record is owned by the upstream
// user service and is read-only here.
type User struct {
	ID          string                  `json:"id"`
	Email       string                  `json:"email,omitempty"`
	Preferences NotificationPreferences `json:"notification_preferences"`
}

// WantsEmail reports whether email delivery should be attempted for this
// user: the email channel must be enabled and an address must be present.
func (u *User) WantsEmail() bool {
	return u.Preferences.Email && u.Email != ""
}

// Validate checks if the User has valid identity.
func (u *User) Validate() error {
	if u.ID == "" {
		return ErrEmptyUserID
	}
	return nil
}
