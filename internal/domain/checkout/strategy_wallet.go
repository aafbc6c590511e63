package checkout

import "github.com/paykit/checkout-gateway/internal/domain/walletauth"

type walletStrategy struct {
	opt  PaymentOption
	cfg  strategyConfig
	save bool
}

func (s *walletStrategy) kind() StrategyKind    { return StrategyWallet }
func (s *walletStrategy) option() PaymentOption { return s.opt }

// begin routes on the stored wallet token: straight to the contract when a
// reusable token exists, otherwise through the auth-parameters prompt first.
func (s *walletStrategy) begin() Step {
	return s.entryStep("")
}

func (s *walletStrategy) submitContract(save bool) Step {
	s.save = save
	if s.cfg.hasReusableWalletToken {
		return s.tokenize()
	}
	// answering the auth-parameters prompt: save doubles as the
	// reusable-token request
	return loginStep(save)
}

func (s *walletStrategy) didLogin(resp walletauth.Response) Step {
	if resp.Authorized {
		return s.tokenize()
	}
	state := resp.AuthTypeState
	return Step{Kind: StepWalletOTP, AuthState: &state}
}

func (s *walletStrategy) failLogin(err error) Step {
	return s.entryStep(userMessage(err))
}

func (s *walletStrategy) tokenize() Step {
	return tokenizeStep(TokenizeData{
		MethodType:        MethodWallet,
		Confirmation:      redirectConfirmation(s.cfg.returnURL),
		SavePaymentMethod: s.save,
	})
}

func (s *walletStrategy) didTokenize(tokens Tokens) Step {
	return tokenizedStep(tokens, MethodWallet)
}

func (s *walletStrategy) failTokenize(err error) Step {
	return s.entryStep(userMessage(err))
}

func (s *walletStrategy) logout() Step {
	return Step{Kind: stepActionLogout}
}

func (s *walletStrategy) entryStep(message string) Step {
	kind := StepWalletAuthParameters
	if s.cfg.hasReusableWalletToken {
		kind = StepContract
	}
	return Step{Kind: kind, Option: &s.opt, Message: message}
}
