package domain

import "testing"

func TestUserWantsEmail(t *testing.T) {
	user := User{
		ID:          "USER#42",
		Email:       "a@x.com",
		Preferences: NotificationPreferences{Email: true},
	}

	if !user.WantsEmail() {
		t.Error("User with email enabled and an address should want email")
	}

	// Channel disabled
	optedOut := user
	optedOut.Preferences.Email = false
	if optedOut.WantsEmail() {
		t.Error("User with email disabled should not want email")
	}

	// Channel enabled but no address on file
	noAddress := user
	noAddress.Email = ""
	if noAddress.WantsEmail() {
		t.Error("User without an address should not want email")
	}
}

func TestUserValidate(t *testing.T) {
	user := User{ID: "USER#42"}
	if err := user.Validate(); err != nil {
		t.Fatalf("Expected no error for valid user, got %v", err)
	}

	user.ID = ""
	if err := user.Validate(); err != ErrEmptyUserID {
		t.Errorf("Expected error %v, got %v", ErrEmptyUserID, err)
	}
}
