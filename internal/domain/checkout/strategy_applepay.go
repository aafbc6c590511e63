package checkout

// paymentResult tracks the Apple Pay sheet outcome. Transitions are
// idle -> success on authorization and any -> cancel on dismissal; cancel is
// terminal.
type paymentResult int

const (
	paymentResultIdle paymentResult = iota
	paymentResultSuccess
	paymentResultCancel
)

type applePayStrategy struct {
	opt  PaymentOption
	cfg  strategyConfig
	save bool

	result      paymentResult
	finishFired bool
	// invalidated is set when a tokenize completion lands after the sheet
	// was dismissed; the completion is swallowed instead of delivered.
	invalidated bool
}

func (s *applePayStrategy) kind() StrategyKind    { return StrategyApplePay }
func (s *applePayStrategy) option() PaymentOption { return s.opt }

// begin shows the contract only when there is something to decide on it: a
// fee to disclose or a save-payment-method choice. Otherwise the payment
// sheet comes up directly.
func (s *applePayStrategy) begin() Step {
	needsContract := s.opt.Fee != nil ||
		s.cfg.savePaymentMethod == SaveUserSelects ||
		s.cfg.savePaymentMethod == SaveOn
	if needsContract {
		return Step{Kind: StepContract, Option: &s.opt}
	}
	return s.presentSheet()
}

func (s *applePayStrategy) submitContract(save bool) Step {
	s.save = save
	return s.presentSheet()
}

func (s *applePayStrategy) presentSheet() Step {
	s.result = paymentResultIdle
	s.finishFired = false
	s.invalidated = false
	return Step{Kind: StepApplePay, Option: &s.opt}
}

func (s *applePayStrategy) didAuthorize(paymentData string) Step {
	if s.result == paymentResultCancel {
		return noneStep()
	}
	s.result = paymentResultSuccess
	return tokenizeStep(TokenizeData{
		MethodType:        MethodApplePay,
		SavePaymentMethod: s.save,
		PaymentData:       paymentData,
	})
}

func (s *applePayStrategy) didFinish() Step {
	if s.finishFired {
		return noneStep()
	}
	s.finishFired = true
	s.result = paymentResultCancel
	return Step{Kind: StepFinished}
}

func (s *applePayStrategy) failPresent() Step {
	// a presentation failure reported after the sheet was dismissed means
	// nothing to the payer anymore
	if s.result == paymentResultCancel {
		return noneStep()
	}
	return Step{Kind: StepError, Message: "Apple Pay is not available on this device"}
}

func (s *applePayStrategy) didTokenize(tokens Tokens) Step {
	if s.result == paymentResultCancel {
		s.invalidated = true
		return noneStep()
	}
	return tokenizedStep(tokens, MethodApplePay)
}

func (s *applePayStrategy) failTokenize(err error) Step {
	if s.result == paymentResultCancel {
		s.invalidated = true
		return noneStep()
	}
	return Step{Kind: StepError, Message: userMessage(err)}
}
