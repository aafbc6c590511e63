package checkout

import "github.com/paykit/checkout-gateway/internal/domain/walletauth"

type linkedCardStrategy struct {
	opt PaymentOption
	cfg strategyConfig
}

func (s *linkedCardStrategy) kind() StrategyKind    { return StrategyLinkedCard }
func (s *linkedCardStrategy) option() PaymentOption { return s.opt }

// begin requires a reusable wallet token to reach the contract; without one
// the payer logs into the wallet first.
func (s *linkedCardStrategy) begin() Step {
	return s.entryStep("")
}

func (s *linkedCardStrategy) submitContract(save bool) Step {
	if s.cfg.hasReusableWalletToken {
		return Step{Kind: StepCSCForm, Option: &s.opt}
	}
	return loginStep(save)
}

func (s *linkedCardStrategy) didLogin(resp walletauth.Response) Step {
	if resp.Authorized {
		return Step{Kind: StepCSCForm, Option: &s.opt}
	}
	state := resp.AuthTypeState
	return Step{Kind: StepWalletOTP, AuthState: &state}
}

func (s *linkedCardStrategy) failLogin(err error) Step {
	return s.entryStep(userMessage(err))
}

func (s *linkedCardStrategy) submitCSC(csc string, save bool) Step {
	if n := len(csc); n < 3 || n > 4 || !allDigits(csc) {
		return Step{Kind: StepCSCForm, Option: &s.opt, Message: "Check the CSC"}
	}
	return tokenizeStep(TokenizeData{
		MethodType:        MethodLinkedCard,
		Confirmation:      redirectConfirmation(s.cfg.returnURL),
		SavePaymentMethod: save,
		CardID:            s.opt.CardID,
		CSC:               csc,
	})
}

func (s *linkedCardStrategy) didTokenize(tokens Tokens) Step {
	return tokenizedStep(tokens, MethodLinkedCard)
}

func (s *linkedCardStrategy) failTokenize(err error) Step {
	return Step{Kind: StepCSCForm, Option: &s.opt, Message: userMessage(err)}
}

func (s *linkedCardStrategy) logout() Step {
	return Step{Kind: stepActionLogout}
}

func (s *linkedCardStrategy) entryStep(message string) Step {
	kind := StepWalletAuthParameters
	if s.cfg.hasReusableWalletToken {
		kind = StepContract
	}
	return Step{Kind: kind, Option: &s.opt, Message: message}
}
