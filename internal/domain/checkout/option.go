// Package checkout implements the tokenization flow: payment option
// classification, per-method strategies and the session engine that turns
// host application events into the next checkout step.
package checkout

import (
	"github.com/paykit/checkout-gateway/internal/domain/money"
)

type PaymentMethodType string

const (
	MethodBankCard   PaymentMethodType = "bank_card"
	MethodWallet     PaymentMethodType = "wallet"
	MethodLinkedCard PaymentMethodType = "linked_card"
	MethodSberbank   PaymentMethodType = "sberbank"
	MethodApplePay   PaymentMethodType = "apple_pay"
)

// SavePaymentMethod is the merchant-side policy for recurring payments.
type SavePaymentMethod string

const (
	SaveOn          SavePaymentMethod = "on"
	SaveOff         SavePaymentMethod = "off"
	SaveUserSelects SavePaymentMethod = "user_selects"
)

// PaymentOption is one way the current user can pay. Wallet options carry the
// account, linked card options carry the stored card identifiers.
type PaymentOption struct {
	ID         string            `json:"id"`
	MethodType PaymentMethodType `json:"method_type"`
	Charge     money.Amount      `json:"charge"`
	Fee        *money.Amount     `json:"fee,omitempty"`

	// wallet
	AccountID string        `json:"account_id,omitempty"`
	Balance   *money.Amount `json:"balance,omitempty"`

	// linked card
	CardID   string `json:"card_id,omitempty"`
	CardMask string `json:"card_mask,omitempty"`
}

// StrategyKind names the flow that drives a payment option to a token.
type StrategyKind string

const (
	StrategyBankCard   StrategyKind = "bank_card"
	StrategyWallet     StrategyKind = "wallet"
	StrategyLinkedCard StrategyKind = "linked_card"
	StrategySberbank   StrategyKind = "sberbank"
	StrategyApplePay   StrategyKind = "apple_pay"
)

// ClassifyOption maps a payment option onto the strategy able to drive it.
// Options of a known type that miss their instrument fields are rejected the
// same way as unknown types.
func ClassifyOption(opt PaymentOption) (StrategyKind, error) {
	switch opt.MethodType {
	case MethodBankCard:
		return StrategyBankCard, nil
	case MethodWallet:
		if opt.AccountID == "" {
			return "", ErrIncorrectPaymentOption
		}
		return StrategyWallet, nil
	case MethodLinkedCard:
		if opt.CardID == "" || opt.CardMask == "" {
			return "", ErrIncorrectPaymentOption
		}
		return StrategyLinkedCard, nil
	case MethodSberbank:
		return StrategySberbank, nil
	case MethodApplePay:
		return StrategyApplePay, nil
	default:
		return "", ErrIncorrectPaymentOption
	}
}
