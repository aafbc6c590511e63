package checkout

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/paykit/checkout-gateway/internal/domain/money"
	"github.com/paykit/checkout-gateway/internal/domain/walletauth"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func defaultSessionConfig() SessionConfig {
	return SessionConfig{
		Amount:            money.New("100.00", "RUB"),
		SavePaymentMethod: SaveUserSelects,
		ReturnURL:         "https://shop.example/return",
	}
}

func bankCardOption() PaymentOption {
	return PaymentOption{ID: "opt-card", MethodType: MethodBankCard, Charge: money.New("100.00", "RUB")}
}

func walletOption() PaymentOption {
	return PaymentOption{
		ID:         "opt-wallet",
		MethodType: MethodWallet,
		Charge:     money.New("100.00", "RUB"),
		AccountID:  "410011111111",
	}
}

func linkedCardOption() PaymentOption {
	return PaymentOption{
		ID:         "opt-linked",
		MethodType: MethodLinkedCard,
		Charge:     money.New("100.00", "RUB"),
		CardID:     "card-1",
		CardMask:   "518901******0446",
	}
}

func sberbankOption() PaymentOption {
	return PaymentOption{ID: "opt-sber", MethodType: MethodSberbank, Charge: money.New("100.00", "RUB")}
}

func applePayOption() PaymentOption {
	return PaymentOption{ID: "opt-applepay", MethodType: MethodApplePay, Charge: money.New("100.00", "RUB")}
}

func validCard() CardData {
	return CardData{PAN: "5189010000000446", ExpiryMonth: "12", ExpiryYear: "30", CSC: "123"}
}

type sessionFixture struct {
	tokenizer *MockTokenizer
	options   *MockOptionsFetcher
	auth      *MockWalletAuthorizer
	sess      *Session
}

// newFixture wires a session with mocked ports. The event sink and analytics
// tracker accept anything, walletToken pre-seeds the stored wallet token.
func newFixture(t *testing.T, cfg SessionConfig, walletToken string) *sessionFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &sessionFixture{
		tokenizer: NewMockTokenizer(ctrl),
		options:   NewMockOptionsFetcher(ctrl),
		auth:      NewMockWalletAuthorizer(ctrl),
	}

	sink := NewMockEventSink(ctrl)
	sink.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	tracker := NewMockTracker(ctrl)
	tracker.EXPECT().Track(gomock.Any()).AnyTimes()

	f.auth.EXPECT().
		WalletToken(gomock.Any(), "sess-1").
		Return(walletToken, walletToken != "", nil).
		AnyTimes()

	f.sess = NewSession("sess-1", cfg, Deps{
		Tokenizer:  f.tokenizer,
		Options:    f.options,
		Authorizer: f.auth,
		Sink:       sink,
		Tracker:    tracker,
		Log:        testLogger(),
	})
	return f
}

func (f *sessionFixture) loadOptions(t *testing.T, opts ...PaymentOption) {
	t.Helper()

	f.options.EXPECT().PaymentOptions(gomock.Any(), gomock.Any()).Return(opts, nil)
	_, err := f.sess.RefreshOptions(context.Background())
	require.NoError(t, err)
}

func TestSession_BankCardFlow(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t, defaultSessionConfig(), "")
	f.loadOptions(t, bankCardOption())

	// given: bank card selected, the contract comes first
	step, err := f.sess.SelectOption(ctx, "opt-card")
	require.NoError(t, err)
	assert.Equal(t, StepContract, step.Kind)

	// when: contract submitted
	step, err = f.sess.SubmitContract(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, StepBankCardForm, step.Kind)

	// when: invalid card data, no tokenize call happens
	step, err = f.sess.SubmitCardData(ctx, CardData{PAN: "1234"}, false)
	require.NoError(t, err)
	assert.Equal(t, StepBankCardForm, step.Kind)
	assert.NotEmpty(t, step.Message)

	// when: valid card data
	var sent TokenizeData
	f.tokenizer.EXPECT().
		Tokenize(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, data TokenizeData) (Tokens, error) {
			sent = data
			return Tokens{PaymentToken: "tok-1"}, nil
		})

	step, err = f.sess.SubmitCardData(ctx, validCard(), true)

	// then
	require.NoError(t, err)
	assert.Equal(t, StepTokenized, step.Kind)
	require.NotNil(t, step.Tokens)
	assert.Equal(t, "tok-1", step.Tokens.PaymentToken)
	assert.Equal(t, MethodBankCard, step.MethodType)

	assert.Equal(t, MethodBankCard, sent.MethodType)
	require.NotNil(t, sent.Card)
	assert.Equal(t, "5189010000000446", sent.Card.PAN)
	require.NotNil(t, sent.Confirmation)
	assert.Equal(t, ConfirmationRedirect, sent.Confirmation.Type)
	assert.Equal(t, "https://shop.example/return", sent.Confirmation.ReturnURL)
	assert.True(t, sent.SavePaymentMethod)
}

func TestSession_SavePaymentMethodPolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		policy    SavePaymentMethod
		requested bool
		want      bool
	}{
		{name: "merchant forces saving", policy: SaveOn, requested: false, want: true},
		{name: "merchant forbids saving", policy: SaveOff, requested: true, want: false},
		{name: "payer decides", policy: SaveUserSelects, requested: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			cfg := defaultSessionConfig()
			cfg.SavePaymentMethod = tt.policy
			f := newFixture(t, cfg, "")
			f.loadOptions(t, bankCardOption())

			_, err := f.sess.SelectOption(ctx, "opt-card")
			require.NoError(t, err)

			var sent TokenizeData
			f.tokenizer.EXPECT().
				Tokenize(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, data TokenizeData) (Tokens, error) {
					sent = data
					return Tokens{PaymentToken: "tok"}, nil
				})

			_, err = f.sess.SubmitCardData(ctx, validCard(), tt.requested)

			require.NoError(t, err)
			assert.Equal(t, tt.want, sent.SavePaymentMethod)
		})
	}
}

func TestSession_WalletFlowWithSecondFactor(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t, defaultSessionConfig(), "wallet-token")
	f.loadOptions(t, walletOption())

	smsState := walletauth.AuthTypeState{Type: walletauth.AuthTypeSMS, Enabled: true, CodeLength: 6}

	// given: wallet selected, no reusable token yet, so the auth-parameters
	// prompt comes before the contract
	f.auth.EXPECT().HasReusableToken(gomock.Any(), "sess-1").Return(false, nil)
	step, err := f.sess.SelectOption(ctx, "opt-wallet")
	require.NoError(t, err)
	assert.Equal(t, StepWalletAuthParameters, step.Kind)

	f.auth.EXPECT().
		Login(gomock.Any(), "sess-1", true, &money.Amount{Value: "100.00", Currency: "RUB"}).
		Return(walletauth.Response{
			AuthTypeState: smsState,
			ProcessID:     "p-1",
			AuthContextID: "ctx-1",
		}, nil)

	// when: auth parameters submitted with the reusable-token choice
	step, err = f.sess.SubmitContract(ctx, true)

	// then: second factor prompt
	require.NoError(t, err)
	assert.Equal(t, StepWalletOTP, step.Kind)
	require.NotNil(t, step.AuthState)
	assert.Equal(t, walletauth.AuthTypeSMS, step.AuthState.Type)

	// when: wrong answer, the prompt is kept with an inline message
	f.auth.EXPECT().
		CheckUserAnswer(gomock.Any(), "sess-1", "ctx-1", walletauth.AuthTypeSMS, "000000", "p-1").
		Return(walletauth.Response{}, walletauth.ErrInvalidAnswer)

	step, err = f.sess.SubmitAuthAnswer(ctx, "000000")
	require.NoError(t, err)
	assert.Equal(t, StepWalletOTP, step.Kind)
	assert.NotEmpty(t, step.Message)

	// when: correct answer, tokenization runs with the stored wallet token
	f.auth.EXPECT().
		CheckUserAnswer(gomock.Any(), "sess-1", "ctx-1", walletauth.AuthTypeSMS, "123456", "p-1").
		Return(walletauth.Response{Authorized: true, AccessToken: "wallet-token"}, nil)

	var sent TokenizeData
	f.tokenizer.EXPECT().
		Tokenize(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, data TokenizeData) (Tokens, error) {
			sent = data
			return Tokens{PaymentToken: "tok-wallet"}, nil
		})

	step, err = f.sess.SubmitAuthAnswer(ctx, "123456")

	// then
	require.NoError(t, err)
	assert.Equal(t, StepTokenized, step.Kind)
	assert.Equal(t, MethodWallet, step.MethodType)
	assert.Equal(t, MethodWallet, sent.MethodType)
	assert.Equal(t, "wallet-token", sent.WalletAuthorization)
	assert.True(t, sent.SavePaymentMethod)
}

func TestSession_WalletFlowWithReusableToken(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t, defaultSessionConfig(), "wallet-token")
	f.loadOptions(t, walletOption())

	// given: a reusable token is stored, selection lands on the contract
	f.auth.EXPECT().HasReusableToken(gomock.Any(), "sess-1").Return(true, nil)
	step, err := f.sess.SelectOption(ctx, "opt-wallet")
	require.NoError(t, err)
	assert.Equal(t, StepContract, step.Kind)

	// when: contract submitted, no login happens
	f.tokenizer.EXPECT().
		Tokenize(gomock.Any(), gomock.Any()).
		Return(Tokens{PaymentToken: "tok-wallet"}, nil)

	step, err = f.sess.SubmitContract(ctx, false)

	// then
	require.NoError(t, err)
	assert.Equal(t, StepTokenized, step.Kind)
}

func TestSession_WalletLoginFailureShowsAuthParameters(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t, defaultSessionConfig(), "")
	f.loadOptions(t, walletOption())

	f.auth.EXPECT().HasReusableToken(gomock.Any(), "sess-1").Return(false, nil)
	_, err := f.sess.SelectOption(ctx, "opt-wallet")
	require.NoError(t, err)

	f.auth.EXPECT().
		Login(gomock.Any(), "sess-1", false, gomock.Any()).
		Return(walletauth.Response{}, walletauth.ErrSessionsExceeded)

	step, err := f.sess.SubmitContract(ctx, false)

	require.NoError(t, err)
	assert.Equal(t, StepWalletAuthParameters, step.Kind)
	assert.NotEmpty(t, step.Message)
}

func TestSession_ResendCode(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t, defaultSessionConfig(), "")
	f.loadOptions(t, walletOption())

	f.auth.EXPECT().HasReusableToken(gomock.Any(), "sess-1").Return(false, nil)
	_, err := f.sess.SelectOption(ctx, "opt-wallet")
	require.NoError(t, err)

	smsState := walletauth.AuthTypeState{Type: walletauth.AuthTypeSMS, Enabled: true, SessionTimeLeft: 5}
	f.auth.EXPECT().
		Login(gomock.Any(), "sess-1", false, gomock.Any()).
		Return(walletauth.Response{AuthTypeState: smsState, ProcessID: "p-1", AuthContextID: "ctx-1"}, nil)

	_, err = f.sess.SubmitContract(ctx, false)
	require.NoError(t, err)

	// when: resend succeeds with a refreshed state
	refreshed := walletauth.AuthTypeState{Type: walletauth.AuthTypeSMS, Enabled: true, SessionTimeLeft: 30}
	f.auth.EXPECT().
		StartNewSession(gomock.Any(), "sess-1", "ctx-1", walletauth.AuthTypeSMS).
		Return(refreshed, nil)

	step, err := f.sess.ResendCode(ctx)
	require.NoError(t, err)
	assert.Equal(t, StepWalletOTP, step.Kind)
	assert.Equal(t, 30, step.AuthState.SessionTimeLeft)

	// when: resend is rejected, the prompt keeps the previous state
	f.auth.EXPECT().
		StartNewSession(gomock.Any(), "sess-1", "ctx-1", walletauth.AuthTypeSMS).
		Return(walletauth.AuthTypeState{}, walletauth.ErrSessionsExceeded)

	step, err = f.sess.ResendCode(ctx)
	require.NoError(t, err)
	assert.Equal(t, StepWalletOTP, step.Kind)
	assert.NotEmpty(t, step.Message)
}

func TestSession_LinkedCardFlow(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t, defaultSessionConfig(), "wallet-token")
	f.loadOptions(t, linkedCardOption())

	// given: a reusable wallet token, the contract leads to the CSC form
	f.auth.EXPECT().HasReusableToken(gomock.Any(), "sess-1").Return(true, nil)
	step, err := f.sess.SelectOption(ctx, "opt-linked")
	require.NoError(t, err)
	assert.Equal(t, StepContract, step.Kind)

	step, err = f.sess.SubmitContract(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, StepCSCForm, step.Kind)

	var sent TokenizeData
	f.tokenizer.EXPECT().
		Tokenize(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, data TokenizeData) (Tokens, error) {
			sent = data
			return Tokens{PaymentToken: "tok-linked"}, nil
		})

	step, err = f.sess.SubmitCSC(ctx, "123", false)

	require.NoError(t, err)
	assert.Equal(t, StepTokenized, step.Kind)
	assert.Equal(t, "card-1", sent.CardID)
	assert.Equal(t, "123", sent.CSC)
	assert.Equal(t, "wallet-token", sent.WalletAuthorization)
}

func TestSession_LinkedCardLoginThenCSC(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t, defaultSessionConfig(), "wallet-token")
	f.loadOptions(t, linkedCardOption())

	// given: no reusable token, the flow starts at the auth parameters
	f.auth.EXPECT().HasReusableToken(gomock.Any(), "sess-1").Return(false, nil)
	step, err := f.sess.SelectOption(ctx, "opt-linked")
	require.NoError(t, err)
	assert.Equal(t, StepWalletAuthParameters, step.Kind)

	// when: login succeeds right away
	f.auth.EXPECT().
		Login(gomock.Any(), "sess-1", false, gomock.Any()).
		Return(walletauth.Response{Authorized: true, AccessToken: "wallet-token"}, nil)

	step, err = f.sess.SubmitContract(ctx, false)

	// then: the masked card input comes up
	require.NoError(t, err)
	assert.Equal(t, StepCSCForm, step.Kind)

	f.tokenizer.EXPECT().
		Tokenize(gomock.Any(), gomock.Any()).
		Return(Tokens{PaymentToken: "tok-linked"}, nil)

	step, err = f.sess.SubmitCSC(ctx, "123", false)
	require.NoError(t, err)
	assert.Equal(t, StepTokenized, step.Kind)
}

func TestSession_LinkedCardWithoutWalletToken(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t, defaultSessionConfig(), "")
	f.loadOptions(t, linkedCardOption())

	f.auth.EXPECT().HasReusableToken(gomock.Any(), "sess-1").Return(false, nil)
	_, err := f.sess.SelectOption(ctx, "opt-linked")
	require.NoError(t, err)

	// no tokenize call: the wallet token is gone
	step, err := f.sess.SubmitCSC(ctx, "123", false)

	require.NoError(t, err)
	assert.Equal(t, StepCSCForm, step.Kind)
	assert.NotEmpty(t, step.Message)
}

func TestSession_SberbankFlow(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t, defaultSessionConfig(), "")
	f.loadOptions(t, sberbankOption())

	step, err := f.sess.SelectOption(ctx, "opt-sber")
	require.NoError(t, err)
	assert.Equal(t, StepContract, step.Kind)

	// when: malformed phone
	step, err = f.sess.SubmitPhone(ctx, "12345", false)
	require.NoError(t, err)
	assert.Equal(t, StepContract, step.Kind)
	assert.NotEmpty(t, step.Message)

	// when: valid phone
	var sent TokenizeData
	f.tokenizer.EXPECT().
		Tokenize(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, data TokenizeData) (Tokens, error) {
			sent = data
			return Tokens{PaymentToken: "tok-sber"}, nil
		})

	step, err = f.sess.SubmitPhone(ctx, "+7 900 000-00-00", false)

	require.NoError(t, err)
	assert.Equal(t, StepTokenized, step.Kind)
	assert.Equal(t, "79000000000", sent.Phone)
	require.NotNil(t, sent.Confirmation)
	assert.Equal(t, ConfirmationExternal, sent.Confirmation.Type)
}

func TestSession_UnsupportedEvent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t, defaultSessionConfig(), "")
	f.loadOptions(t, bankCardOption())

	_, err := f.sess.SelectOption(ctx, "opt-card")
	require.NoError(t, err)

	_, err = f.sess.SubmitCSC(ctx, "123", false)
	require.ErrorIs(t, err, ErrUnsupportedEvent)

	_, err = f.sess.SubmitAuthAnswer(ctx, "123456")
	require.ErrorIs(t, err, ErrUnsupportedEvent)
}

func TestSession_NoMethodSelected(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t, defaultSessionConfig(), "")

	_, err := f.sess.SubmitContract(ctx, false)
	require.ErrorIs(t, err, ErrNoPaymentMethodSelected)

	_, err = f.sess.SelectOption(ctx, "missing")
	require.ErrorIs(t, err, ErrOptionNotFound)
}

func TestSession_StaleTokenizeCompletionDiscarded(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t, defaultSessionConfig(), "")
	f.loadOptions(t, bankCardOption(), sberbankOption())

	_, err := f.sess.SelectOption(ctx, "opt-card")
	require.NoError(t, err)

	// given: the payer switches to sberbank while the card tokenize call is
	// in flight
	f.tokenizer.EXPECT().
		Tokenize(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ TokenizeData) (Tokens, error) {
			_, selErr := f.sess.SelectOption(ctx, "opt-sber")
			require.NoError(t, selErr)
			return Tokens{PaymentToken: "late-token"}, nil
		})

	// when: the stale completion lands
	_, err = f.sess.SubmitCardData(ctx, validCard(), false)

	// then: it is discarded and the new flow is untouched
	require.ErrorIs(t, err, ErrSessionSuperseded)

	// the sberbank strategy is active now: phone validation answers, card
	// events are rejected
	step, err := f.sess.SubmitPhone(ctx, "12345", false)
	require.NoError(t, err)
	assert.Equal(t, StepContract, step.Kind)
	assert.NotEmpty(t, step.Message)

	_, err = f.sess.SubmitCardData(ctx, validCard(), false)
	require.ErrorIs(t, err, ErrUnsupportedEvent)
}

func TestSession_ApplePayFinishBeforeAuthorize(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t, defaultSessionConfig(), "")
	f.loadOptions(t, applePayOption())

	_, err := f.sess.SelectOption(ctx, "opt-applepay")
	require.NoError(t, err)

	step, err := f.sess.SubmitContract(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, StepApplePay, step.Kind)

	// when: the sheet is dismissed without authorizing
	step, err = f.sess.ApplePayFinish(ctx)
	require.NoError(t, err)
	assert.Equal(t, StepFinished, step.Kind)

	// then: a second dismissal is absorbed
	step, err = f.sess.ApplePayFinish(ctx)
	require.NoError(t, err)
	assert.Equal(t, StepNone, step.Kind)

	// and: a late authorization does not start a tokenize call
	step, err = f.sess.ApplePayAuthorized(ctx, "cGF5bG9hZA==")
	require.NoError(t, err)
	assert.Equal(t, StepNone, step.Kind)
}

func TestSession_ApplePayCancelSwallowsInFlightTokenize(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t, defaultSessionConfig(), "")
	f.loadOptions(t, applePayOption())

	_, err := f.sess.SelectOption(ctx, "opt-applepay")
	require.NoError(t, err)
	_, err = f.sess.SubmitContract(ctx, false)
	require.NoError(t, err)

	// given: the sheet is dismissed while the tokenize call is in flight
	f.tokenizer.EXPECT().
		Tokenize(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ TokenizeData) (Tokens, error) {
			step, finErr := f.sess.ApplePayFinish(ctx)
			require.NoError(t, finErr)
			require.Equal(t, StepFinished, step.Kind)
			return Tokens{PaymentToken: "late-token"}, nil
		})

	// when
	step, err := f.sess.ApplePayAuthorized(ctx, "cGF5bG9hZA==")

	// then: the token is swallowed, not delivered
	require.NoError(t, err)
	assert.Equal(t, StepNone, step.Kind)
}

func TestSession_ApplePayTokenizeFailureAfterCancelIsSilent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t, defaultSessionConfig(), "")
	f.loadOptions(t, applePayOption())

	_, err := f.sess.SelectOption(ctx, "opt-applepay")
	require.NoError(t, err)
	_, err = f.sess.SubmitContract(ctx, false)
	require.NoError(t, err)

	f.tokenizer.EXPECT().
		Tokenize(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ TokenizeData) (Tokens, error) {
			_, finErr := f.sess.ApplePayFinish(ctx)
			require.NoError(t, finErr)
			return Tokens{}, errors.New("gateway rejected")
		})

	step, err := f.sess.ApplePayAuthorized(ctx, "cGF5bG9hZA==")

	// no error screen after the payer already dismissed the sheet
	require.NoError(t, err)
	assert.Equal(t, StepNone, step.Kind)
}

func TestSession_ApplePayEntryPrompt(t *testing.T) {
	t.Parallel()

	fee := money.New("3.00", "RUB")
	tests := []struct {
		name   string
		policy SavePaymentMethod
		fee    *money.Amount
		want   StepKind
	}{
		{name: "no fee and no save choice goes straight to the sheet", policy: SaveOff, fee: nil, want: StepApplePay},
		{name: "fee requires the contract", policy: SaveOff, fee: &fee, want: StepContract},
		{name: "save choice requires the contract", policy: SaveUserSelects, fee: nil, want: StepContract},
		{name: "forced saving requires the contract", policy: SaveOn, fee: nil, want: StepContract},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			cfg := defaultSessionConfig()
			cfg.SavePaymentMethod = tt.policy
			f := newFixture(t, cfg, "")

			opt := applePayOption()
			opt.Fee = tt.fee
			f.loadOptions(t, opt)

			step, err := f.sess.SelectOption(ctx, "opt-applepay")
			require.NoError(t, err)
			assert.Equal(t, tt.want, step.Kind)
		})
	}
}

func TestSession_ApplePayUnavailableAfterDismissalIsSilent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t, defaultSessionConfig(), "")
	f.loadOptions(t, applePayOption())

	_, err := f.sess.SelectOption(ctx, "opt-applepay")
	require.NoError(t, err)
	_, err = f.sess.SubmitContract(ctx, false)
	require.NoError(t, err)

	step, err := f.sess.ApplePayFinish(ctx)
	require.NoError(t, err)
	require.Equal(t, StepFinished, step.Kind)

	// a presentation failure reported after dismissal changes nothing
	step, err = f.sess.ApplePayFailedToPresent(ctx)
	require.NoError(t, err)
	assert.Equal(t, StepNone, step.Kind)
}

func TestSession_Logout(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t, defaultSessionConfig(), "wallet-token")
	f.loadOptions(t, walletOption(), bankCardOption())

	f.auth.EXPECT().HasReusableToken(gomock.Any(), "sess-1").Return(true, nil)
	_, err := f.sess.SelectOption(ctx, "opt-wallet")
	require.NoError(t, err)

	f.auth.EXPECT().Logout(gomock.Any(), "sess-1").Return(nil)

	step, err := f.sess.Logout(ctx)
	require.NoError(t, err)
	assert.Equal(t, StepPaymentOptions, step.Kind)

	// the active flow is gone
	_, err = f.sess.SubmitContract(ctx, false)
	require.ErrorIs(t, err, ErrNoPaymentMethodSelected)
}

func TestSession_LogoutUnsupportedForBankCard(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t, defaultSessionConfig(), "")
	f.loadOptions(t, bankCardOption())

	_, err := f.sess.SelectOption(ctx, "opt-card")
	require.NoError(t, err)

	_, err = f.sess.Logout(ctx)
	require.ErrorIs(t, err, ErrUnsupportedEvent)
}
