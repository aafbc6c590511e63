package checkout

import (
	"strings"
	"unicode"
)

type ConfirmationType string

const (
	ConfirmationRedirect ConfirmationType = "redirect"
	ConfirmationExternal ConfirmationType = "external"
)

// Confirmation tells the payment API how the payer will confirm the payment
// after tokenization.
type Confirmation struct {
	Type      ConfirmationType `json:"type"`
	ReturnURL string           `json:"return_url,omitempty"`
}

func redirectConfirmation(returnURL string) *Confirmation {
	return &Confirmation{Type: ConfirmationRedirect, ReturnURL: returnURL}
}

func externalConfirmation() *Confirmation {
	return &Confirmation{Type: ConfirmationExternal}
}

// CardData is the raw bank card input received from the host application.
type CardData struct {
	PAN         string `json:"pan"`
	ExpiryMonth string `json:"expiry_month"`
	ExpiryYear  string `json:"expiry_year"`
	CSC         string `json:"csc"`
}

func (c CardData) normalized() CardData {
	c.PAN = digitsOnly(c.PAN)
	c.ExpiryMonth = strings.TrimSpace(c.ExpiryMonth)
	c.ExpiryYear = strings.TrimSpace(c.ExpiryYear)
	c.CSC = strings.TrimSpace(c.CSC)
	if len(c.ExpiryMonth) == 1 {
		c.ExpiryMonth = "0" + c.ExpiryMonth
	}
	return c
}

func (c CardData) valid() bool {
	if n := len(c.PAN); n < 12 || n > 19 {
		return false
	}
	if len(c.ExpiryMonth) != 2 || !allDigits(c.ExpiryMonth) {
		return false
	}
	if c.ExpiryMonth < "01" || c.ExpiryMonth > "12" {
		return false
	}
	if n := len(c.ExpiryYear); (n != 2 && n != 4) || !allDigits(c.ExpiryYear) {
		return false
	}
	if n := len(c.CSC); n < 3 || n > 4 || !allDigits(c.CSC) {
		return false
	}
	return true
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func allDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}

// TokenizeData is the instrument payload sent to the payment API. MethodType
// selects which of the instrument fields are meaningful.
type TokenizeData struct {
	MethodType        PaymentMethodType
	Confirmation      *Confirmation
	SavePaymentMethod bool

	Card        *CardData // bank card
	CardID      string    // linked card
	CSC         string    // linked card
	Phone       string    // sberbank
	PaymentData string    // apple pay, base64 PKPayment data

	// WalletAuthorization is the wallet access token. The session engine
	// injects it for wallet-backed instruments right before tokenization.
	WalletAuthorization string
}

func (d TokenizeData) needsWalletAuthorization() bool {
	return d.MethodType == MethodWallet || d.MethodType == MethodLinkedCard
}

// Tokens is the tokenization outcome handed back to the host application.
type Tokens struct {
	PaymentToken string `json:"payment_token"`
}
