// Package event holds message contracts shared between publishing modules
// and any consumer of the broker.
package event

const AccountRegistrationDestination string = "account_registration"

type AccountRegistrationMessage struct {
	AccountID int64  `json:"account_id"`
	PublicID  string `json:"public_id"`
	UserName  string `json:"user_name"`
	Email     string `json:"email,omitempty"`
}
