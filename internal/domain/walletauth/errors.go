package walletauth

import "errors"

// ProcessingError is the closed set of failures the login flow surfaces to
// callers. Every wallet API step error maps onto exactly one of these.
var (
	ErrInvalidAnswer = errors.New("invalid answer")
	// ErrInvalidContext marks a stale auth context reported by context-get or
	// session-generate. The whole authorization sequence is replayed on it.
	ErrInvalidContext = errors.New("invalid auth context")
	// ErrAuthCheckInvalidContext is the same wire code reported by auth-check.
	// It is not retryable, the user has to restart the code exchange.
	ErrAuthCheckInvalidContext = errors.New("auth check: invalid auth context")
	ErrSessionsExceeded        = errors.New("auth sessions exceeded")
	ErrSessionDoesNotExist     = errors.New("auth session does not exist")
	ErrVerifyAttemptsExceeded  = errors.New("verify attempts exceeded")
	ErrExecuteFailed           = errors.New("token issue execute failed")
	ErrUnsupportedAuthType     = errors.New("unsupported auth type")
)

// mapStepError folds a per-step wire error into the ProcessingError taxonomy.
// Errors outside the known enums (transport, server 5xx) pass through as is.
func mapStepError(err error) error {
	var (
		initErr    TokenIssueInitError
		ctxErr     AuthContextGetError
		sessionErr AuthSessionGenerateError
		checkErr   AuthCheckError
		executeErr TokenIssueExecuteError
	)

	switch {
	case errors.As(err, &initErr):
		switch initErr {
		case TokenIssueInitInvalidContext:
			return ErrInvalidContext
		case TokenIssueInitSessionsExceeded:
			return ErrSessionsExceeded
		}
	case errors.As(err, &ctxErr):
		if ctxErr == AuthContextGetInvalidContext {
			return ErrInvalidContext
		}
	case errors.As(err, &sessionErr):
		switch sessionErr {
		case AuthSessionGenerateInvalidContext:
			return ErrInvalidContext
		case AuthSessionGenerateSessionsExceeded:
			return ErrSessionsExceeded
		}
	case errors.As(err, &checkErr):
		switch checkErr {
		case AuthCheckInvalidAnswer:
			return ErrInvalidAnswer
		case AuthCheckInvalidContext:
			return ErrAuthCheckInvalidContext
		case AuthCheckSessionDoesNotExist, AuthCheckSessionExpired:
			return ErrSessionDoesNotExist
		case AuthCheckVerifyAttemptsExceeded:
			return ErrVerifyAttemptsExceeded
		}
	case errors.As(err, &executeErr):
		switch executeErr {
		case TokenIssueExecuteAuthRequired, TokenIssueExecuteAuthExpired:
			return ErrExecuteFailed
		}
	}
	return err
}
