package checkout

type sberbankStrategy struct {
	opt PaymentOption
}

func (s *sberbankStrategy) kind() StrategyKind    { return StrategySberbank }
func (s *sberbankStrategy) option() PaymentOption { return s.opt }

func (s *sberbankStrategy) begin() Step {
	return Step{Kind: StepContract, Option: &s.opt}
}

func (s *sberbankStrategy) submitPhone(phone string, save bool) Step {
	normalized := digitsOnly(phone)
	if len(normalized) != 11 || normalized[0] != '7' {
		return Step{Kind: StepContract, Option: &s.opt, Message: "Check the phone number"}
	}
	// Confirmation happens in the Sberbank app, outside the payment form.
	return tokenizeStep(TokenizeData{
		MethodType:        MethodSberbank,
		Confirmation:      externalConfirmation(),
		SavePaymentMethod: save,
		Phone:             normalized,
	})
}

func (s *sberbankStrategy) didTokenize(tokens Tokens) Step {
	return tokenizedStep(tokens, MethodSberbank)
}

func (s *sberbankStrategy) failTokenize(err error) Step {
	return Step{Kind: StepContract, Option: &s.opt, Message: userMessage(err)}
}
