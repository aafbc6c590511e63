package paymentsapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paykit/checkout-gateway/internal/domain/checkout"
	"github.com/paykit/checkout-gateway/internal/domain/money"
)

func newTestClient(baseURL string) *Client {
	return NewClient(Config{
		BaseURL:   baseURL,
		ShopKey:   "shop-key",
		GatewayID: "gw-1",
		Timeout:   5 * time.Second,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestClient_PaymentOptions(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/payment_options", r.URL.Path)
		assert.Equal(t, "100.00", r.URL.Query().Get("amount"))
		assert.Equal(t, "RUB", r.URL.Query().Get("currency"))
		assert.Equal(t, "gw-1", r.URL.Query().Get("gateway_id"))
		assert.NotEmpty(t, r.Header.Get("Authorization"))
		assert.Equal(t, "Bearer wallet-token", r.Header.Get("Wallet-Authorization"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"items": []map[string]any{
				{
					"id":                  "opt-1",
					"payment_method_type": "bank_card",
					"charge":              map[string]string{"value": "100.00", "currency": "RUB"},
				},
				{
					"id":                  "opt-2",
					"payment_method_type": "wallet",
					"charge":              map[string]string{"value": "100.00", "currency": "RUB"},
					"account_id":          "410011111111",
					"balance":             map[string]string{"value": "250.00", "currency": "RUB"},
				},
			},
		})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	options, err := client.PaymentOptions(context.Background(), checkout.OptionsRequest{
		Amount:            money.New("100.00", "RUB"),
		SavePaymentMethod: checkout.SaveUserSelects,
		WalletToken:       "wallet-token",
	})

	require.NoError(t, err)
	require.Len(t, options, 2)
	assert.Equal(t, checkout.MethodBankCard, options[0].MethodType)
	assert.Equal(t, checkout.MethodWallet, options[1].MethodType)
	assert.Equal(t, "410011111111", options[1].AccountID)
	require.NotNil(t, options[1].Balance)
	assert.Equal(t, "250.00", options[1].Balance.Value)
}

func TestClient_Tokenize(t *testing.T) {
	t.Parallel()

	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/tokens", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		_ = json.NewEncoder(w).Encode(map[string]string{"payment_token": "tok-1"})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	tokens, err := client.Tokenize(context.Background(), checkout.TokenizeData{
		MethodType:        checkout.MethodBankCard,
		Confirmation:      &checkout.Confirmation{Type: checkout.ConfirmationRedirect, ReturnURL: "https://shop.example/return"},
		SavePaymentMethod: true,
		Card:              &checkout.CardData{PAN: "5189010000000446", ExpiryMonth: "12", ExpiryYear: "30", CSC: "123"},
	})

	require.NoError(t, err)
	assert.Equal(t, "tok-1", tokens.PaymentToken)

	methodData, ok := got["payment_method_data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "bank_card", methodData["type"])
	assert.Equal(t, true, got["save_payment_method"])

	confirmation, ok := got["confirmation"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "redirect", confirmation["type"])
}

func TestClient_TokenizeWalletSendsAuthorization(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer wallet-token", r.Header.Get("Wallet-Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]string{"payment_token": "tok-w"})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	_, err := client.Tokenize(context.Background(), checkout.TokenizeData{
		MethodType:          checkout.MethodWallet,
		WalletAuthorization: "wallet-token",
	})

	require.NoError(t, err)
}

func TestClient_APIError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"code":        "invalid_request",
			"description": "card expired",
		})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	_, err := client.Tokenize(context.Background(), checkout.TokenizeData{
		MethodType: checkout.MethodWallet,
	})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "invalid_request", apiErr.Code)
}

func TestClient_TransportErrorMapsToInternetConnection(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // refuse connections

	client := newTestClient(srv.URL)

	_, err := client.PaymentOptions(context.Background(), checkout.OptionsRequest{
		Amount: money.New("100.00", "RUB"),
	})

	require.ErrorIs(t, err, checkout.ErrInternetConnection)
}
