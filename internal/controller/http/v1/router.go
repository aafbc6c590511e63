// Package v1 wires the checkout gateway HTTP API.
package v1

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/paykit/checkout-gateway/pkg/logger"
	"github.com/paykit/checkout-gateway/pkg/metrics"
)

func NewRouter(engine *gin.Engine, h *CheckoutHandler, log *slog.Logger) {
	engine.Use(
		gin.Recovery(),
		logger.CorrelationMiddleware(),
		logger.RequestLogger(log),
		metrics.GinMiddleware(),
	)

	engine.GET("/healthz", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	engine.GET("/metrics", gin.WrapH(
		promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	api := engine.Group("/v1/checkout")
	{
		api.POST("/sessions", h.CreateSession)

		s := api.Group("/sessions/:id")
		{
			s.GET("/payment-options", h.PaymentOptions)
			s.POST("/select", h.SelectOption)
			s.POST("/contract", h.SubmitContract)
			s.POST("/card", h.SubmitCard)
			s.POST("/csc", h.SubmitCSC)
			s.POST("/phone", h.SubmitPhone)
			s.POST("/wallet/answer", h.SubmitAuthAnswer)
			s.POST("/wallet/resend", h.ResendCode)
			s.POST("/applepay/authorized", h.ApplePayAuthorized)
			s.POST("/applepay/finish", h.ApplePayFinish)
			s.POST("/applepay/unavailable", h.ApplePayUnavailable)
			s.POST("/logout", h.Logout)
		}
	}
}
