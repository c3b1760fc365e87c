package config

// SnapshotsConfig controls on-disk scoreboard snapshots.
type SnapshotsConfig struct {
	Enabled       bool
	Dir           string
	RetentionDays int
}

func loadSnapshots() SnapshotsConfig {
	return SnapshotsConfig{
		Enabled:       boolEnvOrDefault(envSnapshotsOn, defaultSnapshotsOn),
		Dir:           envOrDefault(envSnapshotDir, defaultSnapshotDir),
		RetentionDays: intEnvOrDefault(envSnapshotRetention, defaultSnapshotRetention),
	}
}
