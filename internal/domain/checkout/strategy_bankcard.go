package checkout

type bankCardStrategy struct {
	opt PaymentOption
	cfg strategyConfig
}

func (s *bankCardStrategy) kind() StrategyKind    { return StrategyBankCard }
func (s *bankCardStrategy) option() PaymentOption { return s.opt }

func (s *bankCardStrategy) begin() Step {
	return Step{Kind: StepContract, Option: &s.opt}
}

func (s *bankCardStrategy) submitContract(bool) Step {
	return Step{Kind: StepBankCardForm, Option: &s.opt}
}

func (s *bankCardStrategy) submitCardData(card CardData, save bool) Step {
	card = card.normalized()
	if !card.valid() {
		return Step{Kind: StepBankCardForm, Option: &s.opt, Message: "Check the card details"}
	}
	return tokenizeStep(TokenizeData{
		MethodType:        MethodBankCard,
		Confirmation:      redirectConfirmation(s.cfg.returnURL),
		SavePaymentMethod: save,
		Card:              &card,
	})
}

func (s *bankCardStrategy) didTokenize(tokens Tokens) Step {
	return tokenizedStep(tokens, MethodBankCard)
}

func (s *bankCardStrategy) failTokenize(err error) Step {
	return Step{Kind: StepBankCardForm, Option: &s.opt, Message: userMessage(err)}
}
