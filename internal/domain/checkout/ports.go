package checkout

import (
	"context"

	"github.com/paykit/checkout-gateway/internal/analytics"
	"github.com/paykit/checkout-gateway/internal/domain/money"
	"github.com/paykit/checkout-gateway/internal/domain/walletauth"
)

// OptionsRequest parameterizes a payment options fetch. WalletToken widens
// the list with wallet and linked card options when present.
type OptionsRequest struct {
	Amount            money.Amount
	SavePaymentMethod SavePaymentMethod
	WalletToken       string
}

//go:generate mockgen -source ports.go -destination mock_ports.go -package checkout

// Tokenizer exchanges an instrument payload for a payment token.
type Tokenizer interface {
	Tokenize(ctx context.Context, data TokenizeData) (Tokens, error)
}

// OptionsFetcher lists the payment options available for the purchase.
type OptionsFetcher interface {
	PaymentOptions(ctx context.Context, req OptionsRequest) ([]PaymentOption, error)
}

// WalletAuthorizer runs wallet logins for a session and owns the resulting
// token state.
type WalletAuthorizer interface {
	HasReusableToken(ctx context.Context, sessionID string) (bool, error)
	WalletToken(ctx context.Context, sessionID string) (string, bool, error)
	Login(ctx context.Context, sessionID string, reusable bool, amount *money.Amount) (walletauth.Response, error)
	StartNewSession(ctx context.Context, sessionID, authContextID string, authType walletauth.AuthType) (walletauth.AuthTypeState, error)
	CheckUserAnswer(ctx context.Context, sessionID, authContextID string, authType walletauth.AuthType, answer, processID string) (walletauth.Response, error)
	Logout(ctx context.Context, sessionID string) error
}

// SessionEvent is one audit record about a session.
type SessionEvent struct {
	SessionID string
	Kind      string
	Payload   map[string]any
}

const (
	EventOptionSelected       = "option_selected"
	EventStepReturned         = "step_returned"
	EventTokenizeSucceeded    = "tokenize_succeeded"
	EventTokenizeFailed       = "tokenize_failed"
	EventLoginSucceeded       = "login_succeeded"
	EventLoginFailed          = "login_failed"
	EventLogout               = "logout"
	EventCompletionSuperseded = "completion_superseded"
)

// EventSink persists session audit events.
type EventSink interface {
	Record(ctx context.Context, event SessionEvent) error
}

// Tracker delivers analytics events, fire and forget.
type Tracker interface {
	Track(event analytics.Event)
}
