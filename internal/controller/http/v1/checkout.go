package v1

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/paykit/checkout-gateway/internal/auth"
	"github.com/paykit/checkout-gateway/internal/domain/checkout"
	"github.com/paykit/checkout-gateway/internal/domain/money"
	"github.com/paykit/checkout-gateway/internal/session"
)

// moneyCenterStore stores the host-supplied money center token for a session.
type moneyCenterStore interface {
	SetMoneyCenterToken(ctx context.Context, sessionID, token string) error
}

type CheckoutHandler struct {
	registry         *session.Registry
	deps             checkout.Deps
	mcStore          moneyCenterStore
	defaultReturnURL string
	log              *slog.Logger
}

func NewCheckoutHandler(
	registry *session.Registry,
	deps checkout.Deps,
	mcStore moneyCenterStore,
	defaultReturnURL string,
	log *slog.Logger,
) *CheckoutHandler {
	return &CheckoutHandler{
		registry:         registry,
		deps:             deps,
		mcStore:          mcStore,
		defaultReturnURL: defaultReturnURL,
		log:              log,
	}
}

type amountRequest struct {
	Value    string `json:"value" binding:"required"`
	Currency string `json:"currency" binding:"required"`
}

type createSessionRequest struct {
	Amount            amountRequest `json:"amount" binding:"required"`
	SavePaymentMethod string        `json:"save_payment_method"`
	ReturnURL         string        `json:"return_url"`
	MoneyCenterToken  string        `json:"money_center_token"`
}

type createSessionResponse struct {
	SessionID string `json:"session_id"`
}

func (h *CheckoutHandler) CreateSession(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	save, err := parseSavePaymentMethod(req.SavePaymentMethod)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	returnURL := req.ReturnURL
	if returnURL == "" {
		returnURL = h.defaultReturnURL
	}

	id := uuid.NewString()
	if req.MoneyCenterToken != "" {
		if err := h.mcStore.SetMoneyCenterToken(c.Request.Context(), id, req.MoneyCenterToken); err != nil {
			h.writeError(c, err)
			return
		}
	}

	h.registry.Put(checkout.NewSession(id, checkout.SessionConfig{
		Amount:            money.New(req.Amount.Value, req.Amount.Currency),
		SavePaymentMethod: save,
		ReturnURL:         returnURL,
	}, h.deps))

	h.log.InfoContext(c.Request.Context(), "checkout session created", "session_id", id)
	c.JSON(http.StatusCreated, createSessionResponse{SessionID: id})
}

func (h *CheckoutHandler) PaymentOptions(c *gin.Context) {
	s, ok := h.registry.Get(c.Param("id"))
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	options, err := s.RefreshOptions(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": options})
}

type selectRequest struct {
	OptionID string `json:"option_id" binding:"required"`
}

func (h *CheckoutHandler) SelectOption(c *gin.Context) {
	var req selectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.withSession(c, func(ctx context.Context, s *checkout.Session) (checkout.Step, error) {
		return s.SelectOption(ctx, req.OptionID)
	})
}

type contractRequest struct {
	SavePaymentMethod bool `json:"save_payment_method"`
}

func (h *CheckoutHandler) SubmitContract(c *gin.Context) {
	var req contractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.withSession(c, func(ctx context.Context, s *checkout.Session) (checkout.Step, error) {
		return s.SubmitContract(ctx, req.SavePaymentMethod)
	})
}

type cardRequest struct {
	Card              checkout.CardData `json:"card" binding:"required"`
	SavePaymentMethod bool              `json:"save_payment_method"`
}

func (h *CheckoutHandler) SubmitCard(c *gin.Context) {
	var req cardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.withSession(c, func(ctx context.Context, s *checkout.Session) (checkout.Step, error) {
		return s.SubmitCardData(ctx, req.Card, req.SavePaymentMethod)
	})
}

type cscRequest struct {
	CSC               string `json:"csc" binding:"required"`
	SavePaymentMethod bool   `json:"save_payment_method"`
}

func (h *CheckoutHandler) SubmitCSC(c *gin.Context) {
	var req cscRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.withSession(c, func(ctx context.Context, s *checkout.Session) (checkout.Step, error) {
		return s.SubmitCSC(ctx, req.CSC, req.SavePaymentMethod)
	})
}

type phoneRequest struct {
	Phone             string `json:"phone" binding:"required"`
	SavePaymentMethod bool   `json:"save_payment_method"`
}

func (h *CheckoutHandler) SubmitPhone(c *gin.Context) {
	var req phoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.withSession(c, func(ctx context.Context, s *checkout.Session) (checkout.Step, error) {
		return s.SubmitPhone(ctx, req.Phone, req.SavePaymentMethod)
	})
}

type authAnswerRequest struct {
	Answer string `json:"answer" binding:"required"`
}

func (h *CheckoutHandler) SubmitAuthAnswer(c *gin.Context) {
	var req authAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.withSession(c, func(ctx context.Context, s *checkout.Session) (checkout.Step, error) {
		return s.SubmitAuthAnswer(ctx, req.Answer)
	})
}

func (h *CheckoutHandler) ResendCode(c *gin.Context) {
	h.withSession(c, func(ctx context.Context, s *checkout.Session) (checkout.Step, error) {
		return s.ResendCode(ctx)
	})
}

type applePayAuthorizedRequest struct {
	PaymentData string `json:"payment_data" binding:"required"`
}

func (h *CheckoutHandler) ApplePayAuthorized(c *gin.Context) {
	var req applePayAuthorizedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.withSession(c, func(ctx context.Context, s *checkout.Session) (checkout.Step, error) {
		return s.ApplePayAuthorized(ctx, req.PaymentData)
	})
}

func (h *CheckoutHandler) ApplePayFinish(c *gin.Context) {
	h.withSession(c, func(ctx context.Context, s *checkout.Session) (checkout.Step, error) {
		return s.ApplePayFinish(ctx)
	})
}

func (h *CheckoutHandler) ApplePayUnavailable(c *gin.Context) {
	h.withSession(c, func(ctx context.Context, s *checkout.Session) (checkout.Step, error) {
		return s.ApplePayFailedToPresent(ctx)
	})
}

func (h *CheckoutHandler) Logout(c *gin.Context) {
	h.withSession(c, func(ctx context.Context, s *checkout.Session) (checkout.Step, error) {
		return s.Logout(ctx)
	})
}

func (h *CheckoutHandler) withSession(c *gin.Context, fn func(ctx context.Context, s *checkout.Session) (checkout.Step, error)) {
	s, ok := h.registry.Get(c.Param("id"))
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	step, err := fn(c.Request.Context(), s)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, step)
}

func (h *CheckoutHandler) writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, checkout.ErrOptionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, checkout.ErrIncorrectPaymentOption):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, checkout.ErrUnsupportedEvent),
		errors.Is(err, checkout.ErrNoPaymentMethodSelected),
		errors.Is(err, checkout.ErrNoPendingAuthorization),
		errors.Is(err, checkout.ErrSessionSuperseded):
		status = http.StatusConflict
	case errors.Is(err, auth.ErrNoMoneyCenterAuth):
		status = http.StatusUnauthorized
	case errors.Is(err, checkout.ErrInternetConnection):
		status = http.StatusBadGateway
	}

	h.log.WarnContext(c.Request.Context(), "checkout request failed",
		"status", status, "error", err)
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

func parseSavePaymentMethod(s string) (checkout.SavePaymentMethod, error) {
	switch s {
	case "":
		return checkout.SaveUserSelects, nil
	case string(checkout.SaveOn):
		return checkout.SaveOn, nil
	case string(checkout.SaveOff):
		return checkout.SaveOff, nil
	case string(checkout.SaveUserSelects):
		return checkout.SaveUserSelects, nil
	default:
		return "", errors.New("unknown save_payment_method value")
	}
}
