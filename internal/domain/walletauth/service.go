// Package walletauth drives the checkout wallet login protocol: token issue
// init, auth context inspection, session generation and answer checking.
package walletauth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/paykit/checkout-gateway/internal/domain/money"
	"github.com/paykit/checkout-gateway/pkg/metrics"
)

const retryBackoff = 50 * time.Millisecond

// Response is the outcome of an authorization attempt. Either the user is
// authorized and AccessToken is set, or a second factor is pending and the
// process identifiers plus the selected auth type state are set.
type Response struct {
	Authorized    bool
	AccessToken   string
	AuthTypeState AuthTypeState
	ProcessID     string
	AuthContextID string
}

func authorizedResponse(token string) Response {
	return Response{Authorized: true, AccessToken: token}
}

func notAuthorizedResponse(state AuthTypeState, processID, authContextID string) Response {
	return Response{
		AuthTypeState: state,
		ProcessID:     processID,
		AuthContextID: authContextID,
	}
}

// AuthorizationRequest parameterizes one login sequence.
type AuthorizationRequest struct {
	Credentials     Credentials
	SingleAmountMax *money.Amount
	// Reusable requests a multi-payment token; SingleAmountMax is ignored then.
	Reusable     bool
	TMXSessionID string
}

type Config struct {
	InstanceName string
	// MaxRetries bounds how many times the authorization sequence is replayed
	// after a retryable context error.
	MaxRetries uint64
}

type Service struct {
	api    API
	states StatesProvider
	cfg    Config
	log    *slog.Logger
}

func NewService(api API, states StatesProvider, cfg Config, log *slog.Logger) *Service {
	return &Service{api: api, states: states, cfg: cfg, log: log}
}

// RequestAuthorization runs the full login sequence. On ErrInvalidContext or
// ErrSessionsExceeded the sequence is replayed from the init call, at most
// cfg.MaxRetries times.
func (s *Service) RequestAuthorization(ctx context.Context, req AuthorizationRequest) (Response, error) {
	backoff := retry.WithMaxRetries(s.cfg.MaxRetries, retry.NewConstant(retryBackoff))

	var resp Response
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		r, err := s.authorize(ctx, req)
		switch {
		case errors.Is(err, ErrInvalidContext), errors.Is(err, ErrSessionsExceeded):
			metrics.WalletLoginRetriesTotal.Inc()
			s.log.WarnContext(ctx, "wallet login sequence replay", "error", err)
			return retry.RetryableError(err)
		case err != nil:
			return err
		}
		resp = r
		return nil
	})
	if err != nil {
		return Response{}, fmt.Errorf("request authorization: %w", err)
	}
	return resp, nil
}

func (s *Service) authorize(ctx context.Context, req AuthorizationRequest) (Response, error) {
	initReq := TokenIssueInitRequest{
		Credentials:       req.Credentials,
		InstanceName:      s.cfg.InstanceName,
		PaymentUsageLimit: UsageLimitSingle,
		TMXSessionID:      req.TMXSessionID,
	}
	if req.Reusable {
		initReq.PaymentUsageLimit = UsageLimitMultiple
	} else {
		initReq.SingleAmountMax = req.SingleAmountMax
	}

	initResp, err := s.api.TokenIssueInit(ctx, initReq)
	if err != nil {
		return Response{}, mapStepError(err)
	}

	if !initResp.AuthRequired {
		return s.execute(ctx, req.Credentials, initResp.ProcessID)
	}

	ctxResp, err := s.api.AuthContextGet(ctx, AuthContextGetRequest{
		Credentials:   req.Credentials,
		AuthContextID: initResp.AuthContextID,
	})
	if err != nil {
		return Response{}, mapStepError(err)
	}

	state, err := s.states.Preferred(s.states.Filter(ctxResp.AuthTypes))
	if err != nil {
		return Response{}, err
	}

	if state.IsSessionRequired {
		genResp, err := s.api.AuthSessionGenerate(ctx, AuthSessionGenerateRequest{
			Credentials:   req.Credentials,
			AuthContextID: initResp.AuthContextID,
			AuthType:      state.Type,
		})
		if err != nil {
			return Response{}, mapStepError(err)
		}
		state = genResp.State
	}

	return notAuthorizedResponse(state, initResp.ProcessID, initResp.AuthContextID), nil
}

// StartNewSession regenerates the second-factor session, e.g. to resend the
// SMS code, and returns the refreshed auth type state.
func (s *Service) StartNewSession(ctx context.Context, creds Credentials, authContextID string, authType AuthType) (AuthTypeState, error) {
	resp, err := s.api.AuthSessionGenerate(ctx, AuthSessionGenerateRequest{
		Credentials:   creds,
		AuthContextID: authContextID,
		AuthType:      authType,
	})
	if err != nil {
		return AuthTypeState{}, fmt.Errorf("start new session: %w", mapStepError(err))
	}
	return resp.State, nil
}

// CheckUserAnswer verifies the second-factor answer and, on success, executes
// the pending token issue returning the wallet access token.
func (s *Service) CheckUserAnswer(ctx context.Context, creds Credentials, authContextID string, authType AuthType, answer, processID string) (Response, error) {
	err := s.api.AuthCheck(ctx, AuthCheckRequest{
		Credentials:   creds,
		AuthContextID: authContextID,
		AuthType:      authType,
		Answer:        answer,
	})
	if err != nil {
		return Response{}, fmt.Errorf("check user answer: %w", mapStepError(err))
	}

	return s.execute(ctx, creds, processID)
}

func (s *Service) execute(ctx context.Context, creds Credentials, processID string) (Response, error) {
	execResp, err := s.api.TokenIssueExecute(ctx, TokenIssueExecuteRequest{
		Credentials: creds,
		ProcessID:   processID,
	})
	if err != nil {
		return Response{}, mapStepError(err)
	}
	return authorizedResponse(execResp.AccessToken), nil
}
