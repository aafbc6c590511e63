package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/paykit/checkout-gateway/internal/analytics"
	"github.com/paykit/checkout-gateway/internal/domain/money"
	"github.com/paykit/checkout-gateway/internal/domain/walletauth"
	"github.com/paykit/checkout-gateway/pkg/metrics"
)

// SessionConfig is the per-purchase setup received from the merchant host.
type SessionConfig struct {
	Amount            money.Amount
	SavePaymentMethod SavePaymentMethod
	ReturnURL         string
}

type Deps struct {
	Tokenizer  Tokenizer
	Options    OptionsFetcher
	Authorizer WalletAuthorizer
	Sink       EventSink
	Tracker    Tracker
	Log        *slog.Logger
}

type pendingWalletAuth struct {
	processID     string
	authContextID string
	state         walletauth.AuthTypeState
}

// Session drives one checkout flow. All host events are serialized on the
// mutex; network calls release it and completions are matched against the
// generation counter, so an answer for an abandoned payment method is
// discarded instead of mutating the new one.
type Session struct {
	mu sync.Mutex

	id        string
	cfg       SessionConfig
	deps      Deps
	createdAt time.Time
	lastSeen  time.Time

	// generation increments whenever the active strategy is replaced.
	// Completions that raced with the replacement carry the old value.
	generation uint64
	options    []PaymentOption
	strat      strategy
	pending    *pendingWalletAuth
}

func NewSession(id string, cfg SessionConfig, deps Deps) *Session {
	now := time.Now()
	return &Session{
		id:        id,
		cfg:       cfg,
		deps:      deps,
		createdAt: now,
		lastSeen:  now,
	}
}

func (s *Session) ID() string { return s.id }

func (s *Session) CreatedAt() time.Time { return s.createdAt }

func (s *Session) Amount() money.Amount { return s.cfg.Amount }

// Touch marks the session as recently used for TTL accounting.
func (s *Session) Touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()
}

func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// RefreshOptions fetches the payment options available to this session and
// caches them for selection.
func (s *Session) RefreshOptions(ctx context.Context) ([]PaymentOption, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, _, err := s.deps.Authorizer.WalletToken(ctx, s.id)
	if err != nil {
		return nil, fmt.Errorf("load wallet token: %w", err)
	}

	opts, err := s.deps.Options.PaymentOptions(ctx, OptionsRequest{
		Amount:            s.cfg.Amount,
		SavePaymentMethod: s.cfg.SavePaymentMethod,
		WalletToken:       token,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch payment options: %w", err)
	}

	s.options = opts
	s.track(analytics.Event{Name: analytics.EventScreenPaymentOptions})
	return opts, nil
}

// SelectOption classifies the chosen option, replaces the active strategy
// and returns the first prompt of the new flow.
func (s *Session) SelectOption(ctx context.Context, optionID string) (Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var opt *PaymentOption
	for i := range s.options {
		if s.options[i].ID == optionID {
			opt = &s.options[i]
			break
		}
	}
	if opt == nil {
		return Step{}, ErrOptionNotFound
	}

	kind, err := ClassifyOption(*opt)
	if err != nil {
		return Step{}, err
	}

	cfg := strategyConfig{
		returnURL:         s.cfg.ReturnURL,
		savePaymentMethod: s.cfg.SavePaymentMethod,
	}
	// wallet-backed flows enter at the contract only when a reusable token
	// is already stored
	if kind == StrategyWallet || kind == StrategyLinkedCard {
		has, err := s.deps.Authorizer.HasReusableToken(ctx, s.id)
		if err != nil {
			return Step{}, fmt.Errorf("check reusable wallet token: %w", err)
		}
		cfg.hasReusableWalletToken = has
	}

	s.generation++
	s.pending = nil
	s.strat = newStrategy(kind, *opt, cfg)

	s.record(ctx, EventOptionSelected, map[string]any{
		"option_id":   opt.ID,
		"method_type": string(opt.MethodType),
	})
	s.track(analytics.Event{Name: analytics.EventScreenPaymentContract, Scheme: string(opt.MethodType)})

	return s.perform(ctx, s.strat.begin())
}

// SubmitContract accepts the payer's consent. save is the payer's choice and
// is clamped by the merchant policy.
func (s *Session) SubmitContract(ctx context.Context, save bool) (Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.strat == nil {
		return Step{}, ErrNoPaymentMethodSelected
	}
	sub, ok := s.strat.(contractSubmitter)
	if !ok {
		return Step{}, ErrUnsupportedEvent
	}
	return s.perform(ctx, sub.submitContract(s.effectiveSave(save)))
}

func (s *Session) SubmitCardData(ctx context.Context, card CardData, save bool) (Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.strat == nil {
		return Step{}, ErrNoPaymentMethodSelected
	}
	receiver, ok := s.strat.(cardDataReceiver)
	if !ok {
		return Step{}, ErrUnsupportedEvent
	}
	return s.perform(ctx, receiver.submitCardData(card, s.effectiveSave(save)))
}

func (s *Session) SubmitCSC(ctx context.Context, csc string, save bool) (Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.strat == nil {
		return Step{}, ErrNoPaymentMethodSelected
	}
	receiver, ok := s.strat.(cscReceiver)
	if !ok {
		return Step{}, ErrUnsupportedEvent
	}
	return s.perform(ctx, receiver.submitCSC(csc, s.effectiveSave(save)))
}

func (s *Session) SubmitPhone(ctx context.Context, phone string, save bool) (Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.strat == nil {
		return Step{}, ErrNoPaymentMethodSelected
	}
	receiver, ok := s.strat.(phoneReceiver)
	if !ok {
		return Step{}, ErrUnsupportedEvent
	}
	return s.perform(ctx, receiver.submitPhone(phone, s.effectiveSave(save)))
}

// SubmitAuthAnswer checks the second-factor answer for the pending wallet
// authorization.
func (s *Session) SubmitAuthAnswer(ctx context.Context, answer string) (Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.strat == nil {
		return Step{}, ErrNoPaymentMethodSelected
	}
	handler, ok := s.strat.(walletLoginHandler)
	if !ok {
		return Step{}, ErrUnsupportedEvent
	}
	if s.pending == nil {
		return Step{}, ErrNoPendingAuthorization
	}

	p := *s.pending
	gen := s.generation

	s.mu.Unlock()
	resp, err := s.deps.Authorizer.CheckUserAnswer(ctx, s.id, p.authContextID, p.state.Type, answer, p.processID)
	s.mu.Lock()

	if s.generation != gen || s.pending == nil {
		s.recordSuperseded(ctx, "auth_answer")
		return Step{}, ErrSessionSuperseded
	}

	if err != nil {
		s.record(ctx, EventLoginFailed, map[string]any{"error": err.Error()})
		s.track(analytics.Event{
			Name:     analytics.EventActionAuthorization,
			AuthType: string(p.state.Type),
			Outcome:  analytics.OutcomeFail,
		})
		if errors.Is(err, walletauth.ErrInvalidAnswer) {
			state := p.state
			return Step{Kind: StepWalletOTP, AuthState: &state, Message: userMessage(err)}, nil
		}
		s.pending = nil
		return s.perform(ctx, handler.failLogin(err))
	}

	s.pending = nil
	s.record(ctx, EventLoginSucceeded, nil)
	s.track(analytics.Event{
		Name:     analytics.EventActionAuthorization,
		AuthType: string(p.state.Type),
		Outcome:  analytics.OutcomeSuccess,
	})
	return s.perform(ctx, handler.didLogin(resp))
}

// ResendCode regenerates the second-factor session and refreshes the prompt.
func (s *Session) ResendCode(ctx context.Context) (Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.strat == nil {
		return Step{}, ErrNoPaymentMethodSelected
	}
	if _, ok := s.strat.(walletLoginHandler); !ok {
		return Step{}, ErrUnsupportedEvent
	}
	if s.pending == nil {
		return Step{}, ErrNoPendingAuthorization
	}

	p := *s.pending
	gen := s.generation

	s.mu.Unlock()
	state, err := s.deps.Authorizer.StartNewSession(ctx, s.id, p.authContextID, p.state.Type)
	s.mu.Lock()

	if s.generation != gen || s.pending == nil {
		s.recordSuperseded(ctx, "resend_code")
		return Step{}, ErrSessionSuperseded
	}

	if err != nil {
		prev := p.state
		return s.perform(ctx, Step{Kind: StepWalletOTP, AuthState: &prev, Message: userMessage(err)})
	}

	s.pending.state = state
	return s.perform(ctx, Step{Kind: StepWalletOTP, AuthState: &state})
}

func (s *Session) ApplePayAuthorized(ctx context.Context, paymentData string) (Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	handler, err := s.applePay()
	if err != nil {
		return Step{}, err
	}
	return s.perform(ctx, handler.didAuthorize(paymentData))
}

func (s *Session) ApplePayFinish(ctx context.Context) (Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	handler, err := s.applePay()
	if err != nil {
		return Step{}, err
	}
	return s.perform(ctx, handler.didFinish())
}

func (s *Session) ApplePayFailedToPresent(ctx context.Context) (Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	handler, err := s.applePay()
	if err != nil {
		return Step{}, err
	}
	step := handler.failPresent()
	if step.Kind != StepNone {
		s.track(analytics.Event{Name: analytics.EventScreenError, Scheme: string(MethodApplePay)})
	}
	return s.perform(ctx, step)
}

// Logout drops the wallet authorization and resets the flow to the payment
// method list.
func (s *Session) Logout(ctx context.Context) (Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.strat == nil {
		return Step{}, ErrNoPaymentMethodSelected
	}
	supporter, ok := s.strat.(logoutSupporter)
	if !ok {
		return Step{}, ErrUnsupportedEvent
	}
	return s.perform(ctx, supporter.logout())
}

func (s *Session) applePay() (applePayHandler, error) {
	if s.strat == nil {
		return nil, ErrNoPaymentMethodSelected
	}
	handler, ok := s.strat.(applePayHandler)
	if !ok {
		return nil, ErrUnsupportedEvent
	}
	return handler, nil
}

func (s *Session) effectiveSave(requested bool) bool {
	switch s.cfg.SavePaymentMethod {
	case SaveOn:
		return true
	case SaveOff:
		return false
	default:
		return requested
	}
}

// perform executes internal action steps until a host-facing step remains.
func (s *Session) perform(ctx context.Context, step Step) (Step, error) {
	for {
		var err error
		switch step.Kind {
		case stepActionTokenize:
			step, err = s.runTokenize(ctx, *step.tokenizeData)
		case stepActionLogin:
			step, err = s.runLogin(ctx, step.loginReusable)
		case stepActionLogout:
			step, err = s.runLogout(ctx)
		default:
			if step.Kind != StepNone {
				s.record(ctx, EventStepReturned, map[string]any{"step": string(step.Kind)})
			}
			return step, nil
		}
		if err != nil {
			return Step{}, err
		}
	}
}

// runTokenize exchanges the instrument for a token. The mutex is released
// for the network call; a stale completion is detected by the generation
// counter and dropped.
func (s *Session) runTokenize(ctx context.Context, data TokenizeData) (Step, error) {
	strat := s.strat

	if data.needsWalletAuthorization() && data.WalletAuthorization == "" {
		token, ok, err := s.deps.Authorizer.WalletToken(ctx, s.id)
		if err != nil {
			return Step{}, fmt.Errorf("load wallet token: %w", err)
		}
		if !ok {
			return strat.failTokenize(errWalletNotAuthorized), nil
		}
		data.WalletAuthorization = token
	}

	gen := s.generation
	s.mu.Unlock()
	tokens, err := s.deps.Tokenizer.Tokenize(ctx, data)
	s.mu.Lock()

	if s.generation != gen {
		s.deps.Log.DebugContext(ctx, "discarding stale tokenize completion",
			"session_id", s.id, "method_type", string(data.MethodType))
		s.recordSuperseded(ctx, "tokenize")
		return Step{}, ErrSessionSuperseded
	}

	outcome := analytics.OutcomeSuccess
	if err != nil {
		outcome = analytics.OutcomeFail
	}
	metrics.TokenizeAttemptsTotal.WithLabelValues(string(data.MethodType), outcome).Inc()
	s.track(analytics.Event{
		Name:    analytics.EventActionTokenize,
		Scheme:  string(data.MethodType),
		Outcome: outcome,
	})

	if err != nil {
		s.record(ctx, EventTokenizeFailed, map[string]any{"error": err.Error()})
		return strat.failTokenize(err), nil
	}

	s.record(ctx, EventTokenizeSucceeded, map[string]any{"method_type": string(data.MethodType)})
	return strat.didTokenize(tokens), nil
}

func (s *Session) runLogin(ctx context.Context, reusable bool) (Step, error) {
	handler, ok := s.strat.(walletLoginHandler)
	if !ok {
		return Step{}, ErrUnsupportedEvent
	}

	gen := s.generation
	amount := s.cfg.Amount
	s.mu.Unlock()
	resp, err := s.deps.Authorizer.Login(ctx, s.id, reusable, &amount)
	s.mu.Lock()

	if s.generation != gen {
		s.recordSuperseded(ctx, "wallet_login")
		return Step{}, ErrSessionSuperseded
	}

	if err != nil {
		s.record(ctx, EventLoginFailed, map[string]any{"error": err.Error()})
		s.track(analytics.Event{Name: analytics.EventActionAuthorization, Outcome: analytics.OutcomeFail})
		return handler.failLogin(err), nil
	}

	if resp.Authorized {
		s.record(ctx, EventLoginSucceeded, nil)
		s.track(analytics.Event{Name: analytics.EventActionAuthorization, Outcome: analytics.OutcomeSuccess})
		return handler.didLogin(resp), nil
	}

	s.pending = &pendingWalletAuth{
		processID:     resp.ProcessID,
		authContextID: resp.AuthContextID,
		state:         resp.AuthTypeState,
	}
	return handler.didLogin(resp), nil
}

func (s *Session) runLogout(ctx context.Context) (Step, error) {
	if err := s.deps.Authorizer.Logout(ctx, s.id); err != nil {
		return Step{}, fmt.Errorf("wallet logout: %w", err)
	}

	s.generation++
	s.strat = nil
	s.pending = nil

	s.record(ctx, EventLogout, nil)
	s.track(analytics.Event{Name: analytics.EventActionLogout})
	return Step{Kind: StepPaymentOptions}, nil
}

func (s *Session) record(ctx context.Context, kind string, payload map[string]any) {
	if err := s.deps.Sink.Record(ctx, SessionEvent{SessionID: s.id, Kind: kind, Payload: payload}); err != nil {
		s.deps.Log.WarnContext(ctx, "record session event", "kind", kind, "error", err)
	}
}

func (s *Session) recordSuperseded(ctx context.Context, op string) {
	s.record(ctx, EventCompletionSuperseded, map[string]any{"operation": op})
}

func (s *Session) track(event analytics.Event) {
	event.SessionID = s.id
	event.At = time.Now()
	s.deps.Tracker.Track(event)
}
