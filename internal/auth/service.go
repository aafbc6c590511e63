// Package auth keeps per-session wallet authorization state: the money
// center token received from the host and the wallet token earned through
// login, with its reusability flag.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/paykit/checkout-gateway/internal/domain/money"
	"github.com/paykit/checkout-gateway/internal/domain/walletauth"
)

// ErrNoMoneyCenterAuth means the host never supplied the user's money center
// token, so wallet login cannot start.
var ErrNoMoneyCenterAuth = errors.New("money center authorization missing")

//go:generate mockgen -source service.go -destination mock_service.go -package auth

// KeyValueStore is the persistence behind authorization state.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}

// LoginService is the wallet login protocol driver.
type LoginService interface {
	RequestAuthorization(ctx context.Context, req walletauth.AuthorizationRequest) (walletauth.Response, error)
	StartNewSession(ctx context.Context, creds walletauth.Credentials, authContextID string, authType walletauth.AuthType) (walletauth.AuthTypeState, error)
	CheckUserAnswer(ctx context.Context, creds walletauth.Credentials, authContextID string, authType walletauth.AuthType, answer, processID string) (walletauth.Response, error)
}

type Config struct {
	// ShopKey authenticates this gateway to the wallet API as the merchant.
	ShopKey string
}

type Service struct {
	kv    KeyValueStore
	login LoginService
	cfg   Config
	log   *slog.Logger
}

func NewService(kv KeyValueStore, login LoginService, cfg Config, log *slog.Logger) *Service {
	return &Service{kv: kv, login: login, cfg: cfg, log: log}
}

func moneyCenterKey(sessionID string) string { return "session:" + sessionID + ":money_center_token" }
func walletTokenKey(sessionID string) string { return "session:" + sessionID + ":wallet_token" }
func reusableKey(sessionID string) string    { return "session:" + sessionID + ":wallet_token_reusable" }
func pendingReusableKey(sessionID string) string {
	return "session:" + sessionID + ":pending_reusable"
}

// SetMoneyCenterToken stores the user's money center token for the session.
func (s *Service) SetMoneyCenterToken(ctx context.Context, sessionID, token string) error {
	if err := s.kv.Set(ctx, moneyCenterKey(sessionID), token); err != nil {
		return fmt.Errorf("store money center token: %w", err)
	}
	return nil
}

// HasReusableToken reports whether a wallet token is stored and was issued
// for multiple payments.
func (s *Service) HasReusableToken(ctx context.Context, sessionID string) (bool, error) {
	_, ok, err := s.kv.Get(ctx, walletTokenKey(sessionID))
	if err != nil {
		return false, fmt.Errorf("load wallet token: %w", err)
	}
	if !ok {
		return false, nil
	}
	reusable, ok, err := s.kv.Get(ctx, reusableKey(sessionID))
	if err != nil {
		return false, fmt.Errorf("load reusable flag: %w", err)
	}
	return ok && reusable == "true", nil
}

func (s *Service) WalletToken(ctx context.Context, sessionID string) (string, bool, error) {
	token, ok, err := s.kv.Get(ctx, walletTokenKey(sessionID))
	if err != nil {
		return "", false, fmt.Errorf("load wallet token: %w", err)
	}
	return token, ok, nil
}

// Login runs the wallet authorization sequence. An authorized outcome stores
// the wallet token right away; a pending second factor remembers the
// requested reusability until CheckUserAnswer resolves it.
func (s *Service) Login(ctx context.Context, sessionID string, reusable bool, amount *money.Amount) (walletauth.Response, error) {
	creds, err := s.credentials(ctx, sessionID)
	if err != nil {
		return walletauth.Response{}, err
	}

	resp, err := s.login.RequestAuthorization(ctx, walletauth.AuthorizationRequest{
		Credentials:     creds,
		SingleAmountMax: amount,
		Reusable:        reusable,
	})
	if err != nil {
		return walletauth.Response{}, err
	}

	if resp.Authorized {
		if err := s.storeWalletToken(ctx, sessionID, resp.AccessToken, reusable); err != nil {
			return walletauth.Response{}, err
		}
		return resp, nil
	}

	if err := s.kv.Set(ctx, pendingReusableKey(sessionID), boolString(reusable)); err != nil {
		return walletauth.Response{}, fmt.Errorf("store pending reusable flag: %w", err)
	}
	return resp, nil
}

func (s *Service) StartNewSession(ctx context.Context, sessionID, authContextID string, authType walletauth.AuthType) (walletauth.AuthTypeState, error) {
	creds, err := s.credentials(ctx, sessionID)
	if err != nil {
		return walletauth.AuthTypeState{}, err
	}
	return s.login.StartNewSession(ctx, creds, authContextID, authType)
}

func (s *Service) CheckUserAnswer(ctx context.Context, sessionID, authContextID string, authType walletauth.AuthType, answer, processID string) (walletauth.Response, error) {
	creds, err := s.credentials(ctx, sessionID)
	if err != nil {
		return walletauth.Response{}, err
	}

	resp, err := s.login.CheckUserAnswer(ctx, creds, authContextID, authType, answer, processID)
	if err != nil {
		return walletauth.Response{}, err
	}

	reusable, _, err := s.kv.Get(ctx, pendingReusableKey(sessionID))
	if err != nil {
		return walletauth.Response{}, fmt.Errorf("load pending reusable flag: %w", err)
	}
	if err := s.storeWalletToken(ctx, sessionID, resp.AccessToken, reusable == "true"); err != nil {
		return walletauth.Response{}, err
	}
	return resp, nil
}

// Logout drops every stored authorization for the session.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	err := s.kv.Delete(ctx,
		moneyCenterKey(sessionID),
		walletTokenKey(sessionID),
		reusableKey(sessionID),
		pendingReusableKey(sessionID),
	)
	if err != nil {
		return fmt.Errorf("drop authorization state: %w", err)
	}
	return nil
}

func (s *Service) credentials(ctx context.Context, sessionID string) (walletauth.Credentials, error) {
	mc, ok, err := s.kv.Get(ctx, moneyCenterKey(sessionID))
	if err != nil {
		return walletauth.Credentials{}, fmt.Errorf("load money center token: %w", err)
	}
	if !ok {
		return walletauth.Credentials{}, ErrNoMoneyCenterAuth
	}
	return walletauth.Credentials{
		MerchantClientAuth: s.cfg.ShopKey,
		MoneyCenterAuth:    mc,
	}, nil
}

func (s *Service) storeWalletToken(ctx context.Context, sessionID, token string, reusable bool) error {
	if err := s.kv.Set(ctx, walletTokenKey(sessionID), token); err != nil {
		return fmt.Errorf("store wallet token: %w", err)
	}
	if err := s.kv.Set(ctx, reusableKey(sessionID), boolString(reusable)); err != nil {
		return fmt.Errorf("store reusable flag: %w", err)
	}
	return nil
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
