package walletauth

import (
	"context"

	"github.com/paykit/checkout-gateway/internal/domain/money"
)

// UsageLimit bounds how many payments a wallet token may authorize.
type UsageLimit string

const (
	UsageLimitSingle   UsageLimit = "Single"
	UsageLimitMultiple UsageLimit = "Multiple"
)

// Credentials carries the two authorizations every wallet API step needs:
// the merchant key identifying the shop and the user's money center token.
type Credentials struct {
	MerchantClientAuth string
	MoneyCenterAuth    string
}

type TokenIssueInitRequest struct {
	Credentials       Credentials
	InstanceName      string
	SingleAmountMax   *money.Amount
	PaymentUsageLimit UsageLimit
	TMXSessionID      string
}

type TokenIssueInitResponse struct {
	AuthRequired  bool
	ProcessID     string
	AuthContextID string
	// AccessToken is set when the init call short-circuits to an issued token.
	AccessToken string
}

type AuthContextGetRequest struct {
	Credentials   Credentials
	AuthContextID string
}

type AuthContextGetResponse struct {
	AuthTypes       []AuthTypeState
	DefaultAuthType AuthType
}

type AuthSessionGenerateRequest struct {
	Credentials   Credentials
	AuthContextID string
	AuthType      AuthType
}

type AuthSessionGenerateResponse struct {
	State AuthTypeState
}

type AuthCheckRequest struct {
	Credentials   Credentials
	AuthContextID string
	AuthType      AuthType
	Answer        string
}

type TokenIssueExecuteRequest struct {
	Credentials Credentials
	ProcessID   string
}

type TokenIssueExecuteResponse struct {
	AccessToken string
}

// API is the checkout wallet authorization protocol, one method per wire step.
//
//go:generate mockgen -source api.go -destination mock_api.go -package walletauth
type API interface {
	TokenIssueInit(ctx context.Context, req TokenIssueInitRequest) (TokenIssueInitResponse, error)
	AuthContextGet(ctx context.Context, req AuthContextGetRequest) (AuthContextGetResponse, error)
	AuthSessionGenerate(ctx context.Context, req AuthSessionGenerateRequest) (AuthSessionGenerateResponse, error)
	AuthCheck(ctx context.Context, req AuthCheckRequest) error
	TokenIssueExecute(ctx context.Context, req TokenIssueExecuteRequest) (TokenIssueExecuteResponse, error)
}

// Per-step error enums returned by API implementations. The driver folds them
// into the ProcessingError taxonomy with mapStepError.

type TokenIssueInitError string

func (e TokenIssueInitError) Error() string { return "token issue init: " + string(e) }

const (
	TokenIssueInitInvalidContext   TokenIssueInitError = "InvalidContext"
	TokenIssueInitSessionsExceeded TokenIssueInitError = "SessionsExceeded"
)

type AuthContextGetError string

func (e AuthContextGetError) Error() string { return "auth context get: " + string(e) }

const AuthContextGetInvalidContext AuthContextGetError = "InvalidContext"

type AuthSessionGenerateError string

func (e AuthSessionGenerateError) Error() string { return "auth session generate: " + string(e) }

const (
	AuthSessionGenerateInvalidContext   AuthSessionGenerateError = "InvalidContext"
	AuthSessionGenerateSessionsExceeded AuthSessionGenerateError = "SessionsExceeded"
)

type AuthCheckError string

func (e AuthCheckError) Error() string { return "auth check: " + string(e) }

const (
	AuthCheckInvalidAnswer          AuthCheckError = "InvalidAnswer"
	AuthCheckInvalidContext         AuthCheckError = "InvalidContext"
	AuthCheckSessionDoesNotExist    AuthCheckError = "SessionDoesNotExist"
	AuthCheckSessionExpired         AuthCheckError = "SessionExpired"
	AuthCheckVerifyAttemptsExceeded AuthCheckError = "VerifyAttemptsExceeded"
)

type TokenIssueExecuteError string

func (e TokenIssueExecuteError) Error() string { return "token issue execute: " + string(e) }

const (
	TokenIssueExecuteAuthRequired TokenIssueExecuteError = "AuthRequired"
	TokenIssueExecuteAuthExpired  TokenIssueExecuteError = "AuthExpired"
)
