// Package opensearch indexes analytics events for ad-hoc search and
// dashboards.
package opensearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	opensearchgo "github.com/opensearch-project/opensearch-go"
	"github.com/opensearch-project/opensearch-go/opensearchapi"

	"github.com/paykit/checkout-gateway/internal/analytics"
)

type AnalyticsSink struct {
	client *opensearchgo.Client
	index  string
	log    *slog.Logger
}

func NewAnalyticsSink(addresses []string, index string, log *slog.Logger) (*AnalyticsSink, error) {
	client, err := opensearchgo.NewClient(opensearchgo.Config{Addresses: addresses})
	if err != nil {
		return nil, fmt.Errorf("create opensearch client: %w", err)
	}
	return &AnalyticsSink{client: client, index: index, log: log}, nil
}

// EnsureIndex creates the analytics index, tolerating a pre-existing one.
func (s *AnalyticsSink) EnsureIndex(ctx context.Context) error {
	mapping := strings.NewReader(`{
		"mappings": {
			"properties": {
				"name":       {"type": "keyword"},
				"session_id": {"type": "keyword"},
				"scheme":     {"type": "keyword"},
				"auth_type":  {"type": "keyword"},
				"outcome":    {"type": "keyword"},
				"at":         {"type": "date"}
			}
		}
	}`)

	req := opensearchapi.IndicesCreateRequest{Index: s.index, Body: mapping}
	res, err := req.Do(ctx, s.client)
	if err != nil {
		return fmt.Errorf("create index %q: %w", s.index, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		if res.StatusCode == 400 {
			s.log.DebugContext(ctx, "analytics index already exists", "index", s.index)
			return nil
		}
		return fmt.Errorf("create index %q: %s", s.index, res.String())
	}
	return nil
}

func (s *AnalyticsSink) Publish(ctx context.Context, event analytics.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal analytics event: %w", err)
	}

	req := opensearchapi.IndexRequest{
		Index: s.index,
		Body:  bytes.NewReader(body),
	}
	res, err := req.Do(ctx, s.client)
	if err != nil {
		return fmt.Errorf("index analytics event: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("index analytics event: %s", res.String())
	}
	return nil
}
