// Package analytics defines checkout flow analytics events and the sinks
// they are delivered to.
package analytics

import "time"

const (
	EventScreenPaymentOptions  = "screen_payment_options"
	EventScreenPaymentContract = "screen_payment_contract"
	EventScreenError           = "screen_error"
	EventActionTokenize        = "action_tokenize"
	EventActionAuthorization   = "action_payment_authorization"
	EventActionLogout          = "action_logout"
)

const (
	OutcomeSuccess = "success"
	OutcomeFail    = "fail"
)

// Event is one analytics fact about a checkout session. Scheme carries the
// payment method, Outcome is set for action events only.
type Event struct {
	Name      string    `json:"name"`
	SessionID string    `json:"session_id"`
	Scheme    string    `json:"scheme,omitempty"`
	AuthType  string    `json:"auth_type,omitempty"`
	Outcome   string    `json:"outcome,omitempty"`
	At        time.Time `json:"at"`
}
