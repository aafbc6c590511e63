// Package walletapi is the HTTP client for the wallet authorization API.
// Each protocol step decodes its own closed error code set into the typed
// errors the login driver understands.
package walletapi

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/paykit/checkout-gateway/internal/domain/walletauth"
)

const (
	tokenIssueInitPath      = "/checkout/token-issue-init"
	authContextGetPath      = "/checkout/auth-context-get"
	authSessionGeneratePath = "/checkout/auth-session-generate"
	authCheckPath           = "/checkout/auth-check"
	tokenIssueExecutePath   = "/checkout/token-issue-execute"

	merchantAuthHeader = "Merchant-Client-Authorization"
)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	httpClient *http.Client
	cfg        Config
	log        *slog.Logger
}

func NewClient(cfg Config, log *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
		log:        log,
	}
}

// APIError is a wallet API failure outside the per-step error enums.
type APIError struct {
	StatusCode int
	Code       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("wallet api: status %d code %q", e.StatusCode, e.Code)
}

type errorBody struct {
	Error struct {
		Code string `json:"code"`
	} `json:"error"`
}

type tokenIssueInitRequest struct {
	InstanceName      string                `json:"instance_name"`
	SingleAmountMax   *amountPayload        `json:"single_amount_max,omitempty"`
	PaymentUsageLimit walletauth.UsageLimit `json:"payment_usage_limit"`
	TMXSessionID      string                `json:"tmx_session_id,omitempty"`
}

type amountPayload struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

type tokenIssueInitResponse struct {
	AuthRequired  bool   `json:"auth_required"`
	ProcessID     string `json:"process_id"`
	AuthContextID string `json:"auth_context_id"`
	AccessToken   string `json:"access_token,omitempty"`
}

func (c *Client) TokenIssueInit(ctx context.Context, req walletauth.TokenIssueInitRequest) (walletauth.TokenIssueInitResponse, error) {
	body := tokenIssueInitRequest{
		InstanceName:      req.InstanceName,
		PaymentUsageLimit: req.PaymentUsageLimit,
		TMXSessionID:      req.TMXSessionID,
	}
	if req.SingleAmountMax != nil {
		body.SingleAmountMax = &amountPayload{
			Value:    req.SingleAmountMax.Value,
			Currency: req.SingleAmountMax.Currency,
		}
	}

	var resp tokenIssueInitResponse
	err := c.post(ctx, tokenIssueInitPath, req.Credentials, body, &resp, func(code string) error {
		switch code {
		case string(walletauth.TokenIssueInitInvalidContext):
			return walletauth.TokenIssueInitInvalidContext
		case string(walletauth.TokenIssueInitSessionsExceeded):
			return walletauth.TokenIssueInitSessionsExceeded
		}
		return nil
	})
	if err != nil {
		return walletauth.TokenIssueInitResponse{}, err
	}
	return walletauth.TokenIssueInitResponse{
		AuthRequired:  resp.AuthRequired,
		ProcessID:     resp.ProcessID,
		AuthContextID: resp.AuthContextID,
		AccessToken:   resp.AccessToken,
	}, nil
}

type authContextGetRequest struct {
	AuthContextID string `json:"auth_context_id"`
}

type authContextGetResponse struct {
	AuthTypes       []walletauth.AuthTypeState `json:"auth_types"`
	DefaultAuthType walletauth.AuthType        `json:"default_auth_type"`
}

func (c *Client) AuthContextGet(ctx context.Context, req walletauth.AuthContextGetRequest) (walletauth.AuthContextGetResponse, error) {
	var resp authContextGetResponse
	err := c.post(ctx, authContextGetPath, req.Credentials,
		authContextGetRequest{AuthContextID: req.AuthContextID}, &resp,
		func(code string) error {
			if code == string(walletauth.AuthContextGetInvalidContext) {
				return walletauth.AuthContextGetInvalidContext
			}
			return nil
		})
	if err != nil {
		return walletauth.AuthContextGetResponse{}, err
	}
	return walletauth.AuthContextGetResponse{
		AuthTypes:       resp.AuthTypes,
		DefaultAuthType: resp.DefaultAuthType,
	}, nil
}

type authSessionGenerateRequest struct {
	AuthContextID string              `json:"auth_context_id"`
	AuthType      walletauth.AuthType `json:"auth_type"`
}

type authSessionGenerateResponse struct {
	Result walletauth.AuthTypeState `json:"result"`
}

func (c *Client) AuthSessionGenerate(ctx context.Context, req walletauth.AuthSessionGenerateRequest) (walletauth.AuthSessionGenerateResponse, error) {
	var resp authSessionGenerateResponse
	err := c.post(ctx, authSessionGeneratePath, req.Credentials,
		authSessionGenerateRequest{AuthContextID: req.AuthContextID, AuthType: req.AuthType}, &resp,
		func(code string) error {
			switch code {
			case string(walletauth.AuthSessionGenerateInvalidContext):
				return walletauth.AuthSessionGenerateInvalidContext
			case string(walletauth.AuthSessionGenerateSessionsExceeded):
				return walletauth.AuthSessionGenerateSessionsExceeded
			}
			return nil
		})
	if err != nil {
		return walletauth.AuthSessionGenerateResponse{}, err
	}
	return walletauth.AuthSessionGenerateResponse{State: resp.Result}, nil
}

type authCheckRequest struct {
	AuthContextID string              `json:"auth_context_id"`
	AuthType      walletauth.AuthType `json:"auth_type"`
	Answer        string              `json:"answer"`
}

func (c *Client) AuthCheck(ctx context.Context, req walletauth.AuthCheckRequest) error {
	return c.post(ctx, authCheckPath, req.Credentials,
		authCheckRequest{AuthContextID: req.AuthContextID, AuthType: req.AuthType, Answer: req.Answer}, nil,
		func(code string) error {
			switch code {
			case string(walletauth.AuthCheckInvalidAnswer):
				return walletauth.AuthCheckInvalidAnswer
			case string(walletauth.AuthCheckInvalidContext):
				return walletauth.AuthCheckInvalidContext
			case string(walletauth.AuthCheckSessionDoesNotExist):
				return walletauth.AuthCheckSessionDoesNotExist
			case string(walletauth.AuthCheckSessionExpired):
				return walletauth.AuthCheckSessionExpired
			case string(walletauth.AuthCheckVerifyAttemptsExceeded):
				return walletauth.AuthCheckVerifyAttemptsExceeded
			}
			return nil
		})
}

type tokenIssueExecuteRequest struct {
	ProcessID string `json:"process_id"`
}

type tokenIssueExecuteResponse struct {
	AccessToken string `json:"access_token"`
}

func (c *Client) TokenIssueExecute(ctx context.Context, req walletauth.TokenIssueExecuteRequest) (walletauth.TokenIssueExecuteResponse, error) {
	var resp tokenIssueExecuteResponse
	err := c.post(ctx, tokenIssueExecutePath, req.Credentials,
		tokenIssueExecuteRequest{ProcessID: req.ProcessID}, &resp,
		func(code string) error {
			switch code {
			case string(walletauth.TokenIssueExecuteAuthRequired):
				return walletauth.TokenIssueExecuteAuthRequired
			case string(walletauth.TokenIssueExecuteAuthExpired):
				return walletauth.TokenIssueExecuteAuthExpired
			}
			return nil
		})
	if err != nil {
		return walletauth.TokenIssueExecuteResponse{}, err
	}
	return walletauth.TokenIssueExecuteResponse{AccessToken: resp.AccessToken}, nil
}

// post sends one protocol step. stepError turns a wire error code into the
// step's typed error, returning nil for codes outside the step's enum.
func (c *Client) post(ctx context.Context, path string, creds walletauth.Credentials, body, out any, stepError func(code string) error) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request for %s: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request for %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+creds.MoneyCenterAuth)
	req.Header.Set(merchantAuthHeader,
		"Basic "+base64.StdEncoding.EncodeToString([]byte(creds.MerchantClientAuth+":")))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		if err := json.NewDecoder(resp.Body).Decode(&eb); err != nil {
			c.log.Debug("decode wallet api error body", "path", path, "status", resp.StatusCode, "error", err)
		}
		if stepErr := stepError(eb.Error.Code); stepErr != nil {
			return stepErr
		}
		return &APIError{StatusCode: resp.StatusCode, Code: eb.Error.Code}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response from %s: %w", path, err)
	}
	return nil
}
