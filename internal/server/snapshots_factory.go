package server

import (
	"github.com/pbertain/wnbapuff/internal/config"
	"github.com/pbertain/wnbapuff/internal/poller"
	"github.com/pbertain/wnbapuff/internal/snapshots"
)

type snapshotComponents struct {
	store  snapshots.Store
	writer poller.SnapshotWriter
}

func buildSnapshots(cfg config.Config) snapshotComponents {
	if !cfg.Snapshots.Enabled {
		return snapshotComponents{}
	}
	return snapshotComponents{
		store:  snapshots.NewFSStore(cfg.Snapshots.Dir),
		writer: snapshots.NewWriter(cfg.Snapshots.Dir, cfg.Snapshots.RetentionDays),
	}
}
