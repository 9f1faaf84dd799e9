package domain

import "time"

// NotificationSettings toggles the channels an account receives updates on.
type NotificationSettings struct {
	Email     bool
	Push      bool
	Marketing bool
}

// SecurityState summarizes the account's security posture.
type SecurityState struct {
	TwoFactorEnabled   bool
	LastPasswordChange time.Time
}

// Profile is the editable personal data of a signed-in account.
type Profile struct {
	AccountID     string
	Name          string
	Email         string
	Role          Role
	Avatar        *string
	Department    *string
	Phone         *string
	Bio           *string
	Location      *string
	Timezone      *string
	Notifications NotificationSettings
	Security      SecurityState
}
