package checkout

import "github.com/paykit/checkout-gateway/internal/domain/walletauth"

// StepKind names what the host application should do next.
type StepKind string

const (
	// StepPaymentOptions asks the host to render the payment method list.
	StepPaymentOptions StepKind = "payment_options"
	// StepContract asks the host to render the contract for Option. For
	// sberbank it includes the phone input, for apple pay the pay button.
	StepContract StepKind = "contract"
	// StepBankCardForm asks for full card data.
	StepBankCardForm StepKind = "bank_card_form"
	// StepCSCForm asks for the CSC of the linked card in Option.
	StepCSCForm StepKind = "csc_form"
	// StepWalletAuthParameters asks for the reusable-token choice before the
	// wallet login starts.
	StepWalletAuthParameters StepKind = "wallet_auth_parameters"
	// StepWalletOTP asks for the second-factor answer described by AuthState.
	StepWalletOTP StepKind = "wallet_otp"
	// StepApplePay asks the host to present the Apple Pay sheet.
	StepApplePay StepKind = "apple_pay"
	// StepTokenized carries the issued payment token, the flow is complete.
	StepTokenized StepKind = "tokenized"
	// StepFinished tells the host to close the flow without a token.
	StepFinished StepKind = "finished"
	// StepError has no screen to return to, only a message.
	StepError StepKind = "error"
	// StepNone means the event was absorbed and the host changes nothing.
	StepNone StepKind = "none"

	// Internal action kinds consumed by the session engine, never returned
	// to the host.
	stepActionTokenize StepKind = "_tokenize"
	stepActionLogin    StepKind = "_wallet_login"
	stepActionLogout   StepKind = "_wallet_logout"
)

// Step is the engine's answer to a host event: either a prompt for the host
// application or an internal action the engine executes before answering.
type Step struct {
	Kind       StepKind                  `json:"kind"`
	Option     *PaymentOption            `json:"option,omitempty"`
	Options    []PaymentOption           `json:"options,omitempty"`
	Tokens     *Tokens                   `json:"tokens,omitempty"`
	MethodType PaymentMethodType         `json:"method_type,omitempty"`
	AuthState  *walletauth.AuthTypeState `json:"auth_state,omitempty"`
	// Message is the inline error placeholder for the prompt, if any.
	Message string `json:"message,omitempty"`

	tokenizeData  *TokenizeData
	loginReusable bool
}

func noneStep() Step {
	return Step{Kind: StepNone}
}

func tokenizeStep(data TokenizeData) Step {
	return Step{Kind: stepActionTokenize, tokenizeData: &data}
}

func loginStep(reusable bool) Step {
	return Step{Kind: stepActionLogin, loginReusable: reusable}
}

func tokenizedStep(tokens Tokens, method PaymentMethodType) Step {
	return Step{Kind: StepTokenized, Tokens: &tokens, MethodType: method}
}
