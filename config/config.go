package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port      int    `env:"PORT" envDefault:"3000"`
	PgURL     string `env:"PG_URL" required:"true"`
	PgPoolMax int    `env:"PG_POOL_MAX" envDefault:"10"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Payments API (payment options, tokenization).
	PaymentsBaseURL     string        `env:"PAYMENTS_BASE_URL" required:"true"`
	ShopKey             string        `env:"SHOP_KEY" required:"true"`
	GatewayID           string        `env:"GATEWAY_ID"`
	HTTPPaymentsTimeout time.Duration `env:"HTTP_PAYMENTS_CLIENT_TIMEOUT" envDefault:"20s"`

	// Wallet authorization API.
	WalletBaseURL         string        `env:"WALLET_BASE_URL" required:"true"`
	HTTPWalletTimeout     time.Duration `env:"HTTP_WALLET_CLIENT_TIMEOUT" envDefault:"20s"`
	WalletInstanceName    string        `env:"WALLET_INSTANCE_NAME" envDefault:"checkout-gateway"`
	WalletLoginMaxRetries uint64        `env:"WALLET_LOGIN_MAX_RETRIES" envDefault:"2"`

	// Default redirect target when the host does not supply one per session.
	ReturnURL string `env:"RETURN_URL" envDefault:"https://custom.redirect.url/"`

	// Checkout session registry.
	SessionTTL           time.Duration `env:"SESSION_TTL" envDefault:"15m"`
	SessionSweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"1m"`

	// Analytics sink: "none" (drop), "kafka" or "opensearch".
	AnalyticsMode       string   `env:"ANALYTICS_MODE" envDefault:"none"`
	KafkaBrokers        []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaAnalyticsTopic string   `env:"KAFKA_ANALYTICS_TOPIC" envDefault:"checkout.analytics"`
	OpensearchURLs      []string `env:"OPENSEARCH_URLS"`
	OpensearchIndexName string   `env:"OPENSEARCH_INDEX_ANALYTICS" envDefault:"checkout-analytics"`
	AnalyticsBufferSize int      `env:"ANALYTICS_BUFFER_SIZE" envDefault:"256"`
}

func New() (Config, error) {
	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
