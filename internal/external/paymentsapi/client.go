// Package paymentsapi is the HTTP client for the payment gateway: listing
// payment options and exchanging instrument data for a payment token.
package paymentsapi

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/go-querystring/query"

	"github.com/paykit/checkout-gateway/internal/domain/checkout"
	"github.com/paykit/checkout-gateway/internal/domain/money"
)

const (
	paymentOptionsPath = "/payment_options"
	tokensPath         = "/tokens"

	walletAuthHeader = "Wallet-Authorization"
)

type Config struct {
	BaseURL   string
	ShopKey   string
	GatewayID string
	Timeout   time.Duration
}

type Client struct {
	httpClient *http.Client
	cfg        Config
	authHeader string
	log        *slog.Logger
}

func NewClient(cfg Config, log *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
		authHeader: "Basic " + base64.StdEncoding.EncodeToString([]byte(cfg.ShopKey+":")),
		log:        log,
	}
}

// APIError is a non-2xx answer from the payment gateway.
type APIError struct {
	StatusCode  int    `json:"-"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("payments api: status %d code %q", e.StatusCode, e.Code)
}

type optionsQuery struct {
	Amount            string `url:"amount,omitempty"`
	Currency          string `url:"currency,omitempty"`
	GatewayID         string `url:"gateway_id,omitempty"`
	SavePaymentMethod string `url:"save_payment_method,omitempty"`
}

type optionItem struct {
	ID         string        `json:"id"`
	MethodType string        `json:"payment_method_type"`
	Charge     money.Amount  `json:"charge"`
	Fee        *money.Amount `json:"fee,omitempty"`
	AccountID  string        `json:"account_id,omitempty"`
	Balance    *money.Amount `json:"balance,omitempty"`
	CardID     string        `json:"card_id,omitempty"`
	CardMask   string        `json:"card_mask,omitempty"`
}

type optionsResponse struct {
	Items []optionItem `json:"items"`
}

// PaymentOptions lists the options available for the purchase. A wallet
// token widens the answer with the user's wallet and linked cards.
func (c *Client) PaymentOptions(ctx context.Context, req checkout.OptionsRequest) ([]checkout.PaymentOption, error) {
	q, err := query.Values(optionsQuery{
		Amount:            req.Amount.Value,
		Currency:          req.Amount.Currency,
		GatewayID:         c.cfg.GatewayID,
		SavePaymentMethod: string(req.SavePaymentMethod),
	})
	if err != nil {
		return nil, fmt.Errorf("encode options query: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.cfg.BaseURL+paymentOptionsPath+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build options request: %w", err)
	}
	if req.WalletToken != "" {
		httpReq.Header.Set(walletAuthHeader, "Bearer "+req.WalletToken)
	}

	var resp optionsResponse
	if err := c.do(httpReq, &resp); err != nil {
		return nil, err
	}

	options := make([]checkout.PaymentOption, 0, len(resp.Items))
	for _, item := range resp.Items {
		options = append(options, checkout.PaymentOption{
			ID:         item.ID,
			MethodType: checkout.PaymentMethodType(item.MethodType),
			Charge:     item.Charge,
			Fee:        item.Fee,
			AccountID:  item.AccountID,
			Balance:    item.Balance,
			CardID:     item.CardID,
			CardMask:   item.CardMask,
		})
	}
	return options, nil
}

type tokensRequest struct {
	PaymentMethodData map[string]any        `json:"payment_method_data"`
	Confirmation      *checkout.Confirmation `json:"confirmation,omitempty"`
	SavePaymentMethod bool                  `json:"save_payment_method"`
}

type tokensResponse struct {
	PaymentToken string `json:"payment_token"`
}

// Tokenize exchanges the instrument payload for a payment token.
func (c *Client) Tokenize(ctx context.Context, data checkout.TokenizeData) (checkout.Tokens, error) {
	methodData, err := paymentMethodData(data)
	if err != nil {
		return checkout.Tokens{}, err
	}

	body, err := json.Marshal(tokensRequest{
		PaymentMethodData: methodData,
		Confirmation:      data.Confirmation,
		SavePaymentMethod: data.SavePaymentMethod,
	})
	if err != nil {
		return checkout.Tokens{}, fmt.Errorf("marshal tokens request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+tokensPath, bytes.NewReader(body))
	if err != nil {
		return checkout.Tokens{}, fmt.Errorf("build tokens request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if data.WalletAuthorization != "" {
		httpReq.Header.Set(walletAuthHeader, "Bearer "+data.WalletAuthorization)
	}

	var resp tokensResponse
	if err := c.do(httpReq, &resp); err != nil {
		return checkout.Tokens{}, err
	}
	return checkout.Tokens{PaymentToken: resp.PaymentToken}, nil
}

func paymentMethodData(data checkout.TokenizeData) (map[string]any, error) {
	switch data.MethodType {
	case checkout.MethodBankCard:
		if data.Card == nil {
			return nil, fmt.Errorf("bank card data missing")
		}
		return map[string]any{
			"type": "bank_card",
			"card": map[string]any{
				"number":       data.Card.PAN,
				"expiry_month": data.Card.ExpiryMonth,
				"expiry_year":  data.Card.ExpiryYear,
				"csc":          data.Card.CSC,
			},
		}, nil
	case checkout.MethodWallet:
		return map[string]any{"type": "wallet"}, nil
	case checkout.MethodLinkedCard:
		return map[string]any{
			"type":    "linked_card",
			"card_id": data.CardID,
			"csc":     data.CSC,
		}, nil
	case checkout.MethodSberbank:
		return map[string]any{
			"type":  "sberbank",
			"phone": data.Phone,
		}, nil
	case checkout.MethodApplePay:
		return map[string]any{
			"type":         "apple_pay",
			"payment_data": data.PaymentData,
		}, nil
	default:
		return nil, fmt.Errorf("unknown method type %q", data.MethodType)
	}
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Authorization", c.authHeader)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Transport failures are folded into the connectivity error so the
		// flow can show the offline placeholder.
		return fmt.Errorf("%w: %w", checkout.ErrInternetConnection, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil {
			c.log.Debug("decode payments api error body", "status", resp.StatusCode, "error", err)
		}
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode payments api response: %w", err)
	}
	return nil
}
