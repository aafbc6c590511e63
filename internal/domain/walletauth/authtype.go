package walletauth

// AuthType is the server-described second-factor method.
type AuthType string

const (
	AuthTypeSMS            AuthType = "Sms"
	AuthTypeTOTP           AuthType = "Totp"
	AuthTypeSecurePassword AuthType = "SecurePassword"
	AuthTypeEmergency      AuthType = "Emergency"
	AuthTypePush           AuthType = "Push"
	AuthTypeOauthToken     AuthType = "OauthToken"
)

// AuthTypeState describes one second-factor method offered by the wallet API:
// its type, code parameters and whether a session must be generated before the
// user can answer.
type AuthTypeState struct {
	Type              AuthType `json:"type"`
	CodeLength        int      `json:"code_length,omitempty"`
	SessionTimeLeft   int      `json:"session_time_left,omitempty"`
	Enabled           bool     `json:"enabled"`
	CanBeIssued       bool     `json:"can_be_issued"`
	IsSessionRequired bool     `json:"is_session_required"`
}

// StatesProvider owns the policy of choosing the second-factor method out of
// the ones the auth context offers.
//
//go:generate mockgen -source authtype.go -destination mock_authtype.go -package walletauth
type StatesProvider interface {
	Filter(states []AuthTypeState) []AuthTypeState
	Preferred(states []AuthTypeState) (AuthTypeState, error)
}

// SupportedStatesProvider keeps the methods this gateway can drive end to end
// and prefers SMS over TOTP, matching what checkout hosts render.
type SupportedStatesProvider struct{}

var supportedAuthTypes = []AuthType{AuthTypeSMS, AuthTypeTOTP}

func (SupportedStatesProvider) Filter(states []AuthTypeState) []AuthTypeState {
	filtered := make([]AuthTypeState, 0, len(states))
	for _, state := range states {
		if state.Enabled && isSupportedAuthType(state.Type) {
			filtered = append(filtered, state)
		}
	}
	return filtered
}

func (SupportedStatesProvider) Preferred(states []AuthTypeState) (AuthTypeState, error) {
	for _, preferred := range supportedAuthTypes {
		for _, state := range states {
			if state.Type == preferred {
				return state, nil
			}
		}
	}
	return AuthTypeState{}, ErrUnsupportedAuthType
}

func isSupportedAuthType(t AuthType) bool {
	for _, supported := range supportedAuthTypes {
		if t == supported {
			return true
		}
	}
	return false
}
