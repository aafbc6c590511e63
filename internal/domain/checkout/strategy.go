package checkout

import "github.com/paykit/checkout-gateway/internal/domain/walletauth"

// strategyConfig carries the per-session knobs strategies need.
// hasReusableWalletToken is read once at selection time; it decides the entry
// prompt of the wallet-backed flows.
type strategyConfig struct {
	returnURL              string
	savePaymentMethod      SavePaymentMethod
	hasReusableWalletToken bool
}

// strategy is the narrow base every payment method implements. Everything
// else is a capability interface the session engine probes with a type
// assertion, so a method only carries the events it actually handles.
type strategy interface {
	kind() StrategyKind
	option() PaymentOption
	// begin returns the first prompt after the option is selected.
	begin() Step
	didTokenize(tokens Tokens) Step
	failTokenize(err error) Step
}

// contractSubmitter accepts the payer's consent on the contract screen. For
// the wallet-backed flows the same event answers the auth-parameters prompt,
// where save doubles as the reusable-token request.
type contractSubmitter interface {
	submitContract(save bool) Step
}

// cardDataReceiver accepts full bank card data.
type cardDataReceiver interface {
	submitCardData(card CardData, save bool) Step
}

// cscReceiver accepts the CSC of a stored card.
type cscReceiver interface {
	submitCSC(csc string, save bool) Step
}

// phoneReceiver accepts the payer's phone number.
type phoneReceiver interface {
	submitPhone(phone string, save bool) Step
}

// walletLoginHandler consumes wallet authorization outcomes.
type walletLoginHandler interface {
	didLogin(resp walletauth.Response) Step
	failLogin(err error) Step
}

// applePayHandler consumes Apple Pay sheet callbacks.
type applePayHandler interface {
	didAuthorize(paymentData string) Step
	didFinish() Step
	failPresent() Step
}

// logoutSupporter marks methods tied to the wallet account.
type logoutSupporter interface {
	logout() Step
}

// newStrategy builds the strategy driving the classified option.
func newStrategy(kind StrategyKind, opt PaymentOption, cfg strategyConfig) strategy {
	switch kind {
	case StrategyWallet:
		return &walletStrategy{opt: opt, cfg: cfg}
	case StrategyLinkedCard:
		return &linkedCardStrategy{opt: opt, cfg: cfg}
	case StrategySberbank:
		return &sberbankStrategy{opt: opt}
	case StrategyApplePay:
		return &applePayStrategy{opt: opt, cfg: cfg}
	default:
		return &bankCardStrategy{opt: opt, cfg: cfg}
	}
}
