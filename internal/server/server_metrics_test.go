package server

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/pbertain/wnbapuff/internal/metrics"
	"github.com/pbertain/wnbapuff/internal/teststubs"
)

func TestNewServerWithMetricsHandlesSetupFailure(t *testing.T) {
	origSetup := metricsSetup
	defer func() { metricsSetup = origSetup }()

	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return nil, nil, nil, errors.New("fail")
	}

	cfg := testConfig()
	cfg.Metrics.Enabled = true

	srv, err := newServerWithMetrics(cfg, nil, &teststubs.StubProvider{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if srv.metrics == nil {
		t.Fatalf("expected fallback metrics recorder even on setup failure")
	}
}

func TestNewServerWithMetricsDisabledSkipsSetup(t *testing.T) {
	srv, err := newServerWithMetrics(testConfig(), nil, &teststubs.StubProvider{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if srv.metrics == nil {
		t.Fatalf("expected recorder to be set even when metrics disabled")
	}
	if srv.metricsServer != nil {
		t.Fatalf("expected no metrics server when disabled")
	}
}

func TestNewServerWithMetricsUsesInjectedRecorder(t *testing.T) {
	rec := metrics.NewRecorder()
	cfg := testConfig()
	cfg.Metrics.Enabled = true

	srv, err := newServerWithMetrics(cfg, nil, &teststubs.StubProvider{}, rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if srv.metrics != rec {
		t.Fatalf("expected injected recorder to be used")
	}
}
