package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/paykit/checkout-gateway/internal/domain/money"
	"github.com/paykit/checkout-gateway/internal/domain/walletauth"
	"github.com/paykit/checkout-gateway/internal/repo/kvstore"
)

func newTestService(t *testing.T) (*Service, *MockLoginService, *kvstore.Memory) {
	t.Helper()

	ctrl := gomock.NewController(t)
	login := NewMockLoginService(ctrl)
	kv := kvstore.NewMemory()
	svc := NewService(kv, login, Config{ShopKey: "shop-key"},
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	return svc, login, kv
}

func TestService_LoginRequiresMoneyCenterToken(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)

	_, err := svc.Login(context.Background(), "s1", false, nil)

	require.ErrorIs(t, err, ErrNoMoneyCenterAuth)
}

func TestService_LoginAuthorizedStoresToken(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, login, _ := newTestService(t)
	require.NoError(t, svc.SetMoneyCenterToken(ctx, "s1", "mc-token"))

	amount := money.New("100.00", "RUB")
	login.EXPECT().
		RequestAuthorization(gomock.Any(), walletauth.AuthorizationRequest{
			Credentials: walletauth.Credentials{
				MerchantClientAuth: "shop-key",
				MoneyCenterAuth:    "mc-token",
			},
			SingleAmountMax: &amount,
			Reusable:        true,
		}).
		Return(walletauth.Response{Authorized: true, AccessToken: "wallet-token"}, nil)

	resp, err := svc.Login(ctx, "s1", true, &amount)

	require.NoError(t, err)
	assert.True(t, resp.Authorized)

	token, ok, err := svc.WalletToken(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "wallet-token", token)

	reusable, err := svc.HasReusableToken(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, reusable)
}

func TestService_SecondFactorResolvesPendingReusability(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, login, _ := newTestService(t)
	require.NoError(t, svc.SetMoneyCenterToken(ctx, "s1", "mc-token"))

	smsState := walletauth.AuthTypeState{Type: walletauth.AuthTypeSMS, Enabled: true}

	// given: login defers to a second factor while a reusable token was asked
	login.EXPECT().
		RequestAuthorization(gomock.Any(), gomock.Any()).
		Return(walletauth.Response{AuthTypeState: smsState, ProcessID: "p-1", AuthContextID: "ctx-1"}, nil)

	resp, err := svc.Login(ctx, "s1", true, nil)
	require.NoError(t, err)
	require.False(t, resp.Authorized)

	// when: the answer resolves the login
	login.EXPECT().
		CheckUserAnswer(gomock.Any(), gomock.Any(), "ctx-1", walletauth.AuthTypeSMS, "123456", "p-1").
		Return(walletauth.Response{Authorized: true, AccessToken: "wallet-token"}, nil)

	resp, err = svc.CheckUserAnswer(ctx, "s1", "ctx-1", walletauth.AuthTypeSMS, "123456", "p-1")
	require.NoError(t, err)
	assert.True(t, resp.Authorized)

	// then: the stored token keeps the requested reusability
	reusable, err := svc.HasReusableToken(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, reusable)
}

func TestService_HasReusableToken(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, login, _ := newTestService(t)
	require.NoError(t, svc.SetMoneyCenterToken(ctx, "s1", "mc-token"))

	// given: a one-time token
	login.EXPECT().
		RequestAuthorization(gomock.Any(), gomock.Any()).
		Return(walletauth.Response{Authorized: true, AccessToken: "wallet-token"}, nil)

	_, err := svc.Login(ctx, "s1", false, nil)
	require.NoError(t, err)

	reusable, err := svc.HasReusableToken(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, reusable)
}

func TestService_Logout(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, login, _ := newTestService(t)
	require.NoError(t, svc.SetMoneyCenterToken(ctx, "s1", "mc-token"))

	login.EXPECT().
		RequestAuthorization(gomock.Any(), gomock.Any()).
		Return(walletauth.Response{Authorized: true, AccessToken: "wallet-token"}, nil)
	_, err := svc.Login(ctx, "s1", true, nil)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, "s1"))

	_, ok, err := svc.WalletToken(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, ok)

	// the money center token is gone too, login needs a fresh one
	_, err = svc.Login(ctx, "s1", false, nil)
	require.ErrorIs(t, err, ErrNoMoneyCenterAuth)
}
