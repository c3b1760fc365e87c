package config

import "time"

const (
	envPort         = "PORT"
	envPollInterval = "POLL_INTERVAL"
	envProvider     = "PROVIDER"
	envSports       = "SPORTS"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"
	envAdminToken   = "ADMIN_TOKEN"

	envSeasonsFile         = "SEASONS_FILE"
	envTransitionThreshold = "TRANSITION_THRESHOLD_DAYS"

	envSnapshotsOn       = "SNAPSHOTS_ENABLED"
	envSnapshotDir       = "SNAPSHOT_DIR"
	envSnapshotRetention = "SNAPSHOT_RETENTION_DAYS"

	defaultPort = "4000"
	// Conservative default poll interval to respect upstream quotas.
	defaultPollInterval = 2 * Duration(time.Minute)
	// Empty means auto-detect from the configured API keys.
	defaultProvider     = ""
	defaultMetricsPort  = "9090"

	defaultTransitionThreshold = 14
	defaultSnapshotsOn         = true
	defaultSnapshotDir         = "data/snapshots"
	defaultSnapshotRetention   = 14
)

var defaultSports = []string{"wnba", "nba", "nhl", "mlb", "nfl"}
