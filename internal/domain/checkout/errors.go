package checkout

import (
	"errors"

	"github.com/paykit/checkout-gateway/internal/domain/walletauth"
)

var (
	// ErrIncorrectPaymentOption marks an option no strategy can drive:
	// unknown method type or a known type missing its instrument fields.
	ErrIncorrectPaymentOption  = errors.New("incorrect payment option")
	ErrOptionNotFound          = errors.New("payment option not found")
	ErrNoPaymentMethodSelected = errors.New("no payment method selected")
	// ErrUnsupportedEvent is returned when the host sends an event the
	// selected payment method has no use for, e.g. a CSC for a wallet.
	ErrUnsupportedEvent = errors.New("event not supported by selected payment method")
	// ErrSessionSuperseded marks a completion that arrived after the session
	// moved on to another payment method or logged out.
	ErrSessionSuperseded      = errors.New("superseded by a newer session state")
	ErrNoPendingAuthorization = errors.New("no pending wallet authorization")
	// ErrInternetConnection is how API clients report transport failures.
	ErrInternetConnection = errors.New("no internet connection")
)

// errWalletNotAuthorized marks a wallet-backed tokenize attempt without a
// stored wallet token.
var errWalletNotAuthorized = errors.New("wallet authorization missing")

// userMessage renders an error as the placeholder text shown to the payer.
func userMessage(err error) string {
	switch {
	case errors.Is(err, walletauth.ErrInvalidAnswer):
		return "Invalid code, try again"
	case errors.Is(err, walletauth.ErrAuthCheckInvalidContext),
		errors.Is(err, walletauth.ErrSessionDoesNotExist),
		errors.Is(err, walletauth.ErrExecuteFailed):
		return "Request a new code and try again"
	case errors.Is(err, walletauth.ErrVerifyAttemptsExceeded):
		return "Too many attempts, try again later"
	case errors.Is(err, walletauth.ErrSessionsExceeded):
		return "Too many code requests, try again later"
	case errors.Is(err, walletauth.ErrUnsupportedAuthType):
		return "This authorization method is not supported"
	case errors.Is(err, ErrInternetConnection):
		return "No internet connection"
	case errors.Is(err, errWalletNotAuthorized):
		return "Log in to your wallet to continue"
	default:
		return "Something went wrong, try again later"
	}
}
