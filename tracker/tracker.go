// Package tracker reconciles the live contents of BitTorrent download
// clients into the tarc entity store.
package tracker

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/tarc-io/tarc/qbit"
	"github.com/tarc-io/tarc/tracker/db"
)

// snapshotClient is the live-state capability a download client must provide
// to be scannable. qbit.Client satisfies it; anything else that can report a
// version plus torrent/file/tracker listings would do.
type snapshotClient interface {
	AppVersion(ctx context.Context) (string, error)
	ListTorrents(ctx context.Context) ([]qbit.Torrent, error)
	ListFiles(ctx context.Context, hash string) ([]qbit.TorrentFile, error)
	ListTrackers(ctx context.Context, hash string) ([]qbit.Tracker, error)
}

type storer interface {
	TouchClient(ctx context.Context, id int64, now time.Time) error
	MergeTorrentSnapshot(ctx context.Context, clientID int64, snap db.TorrentSnapshot, key db.MergeKey, now time.Time) (int, error)
	CreateScanRun(ctx context.Context, clientID int64, now time.Time) (int64, error)
	FinishScanRun(ctx context.Context, id int64, status db.ScanStatus, torrentsSeen, filesAdded int, now time.Time) error
}

// Tracker contains the elements necessary to reconcile a download client's
// live state into the store.
type Tracker struct {
	qbClient snapshotClient
	store    storer
	mergeKey db.MergeKey
	logger   *zap.Logger
	now      func() time.Time
}

// Option customises a Tracker.
type Option func(*Tracker)

// WithMergeKey selects the file merge key. The default is db.MergeKeyPath.
func WithMergeKey(key db.MergeKey) Option {
	return func(t *Tracker) {
		t.mergeKey = key
	}
}

// WithNow overrides the engine clock, for tests.
func WithNow(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

// NewTracker creates a new initialised Tracker.
func NewTracker(qbClient snapshotClient, store storer, logger *zap.Logger, opts ...Option) *Tracker {
	t := &Tracker{
		qbClient: qbClient,
		store:    store,
		mergeKey: db.MergeKeyPath,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// TorrentResult is the per-torrent outcome of a scan, in daemon listing order.
type TorrentResult struct {
	InfoHash   string
	Name       string
	FilesAdded int
}

// Summary reports the outcome of one scan.
type Summary struct {
	RemoteVersion string
	Results       []TorrentResult
}

// Changed returns the torrents that gained at least one file row.
func (s *Summary) Changed() []TorrentResult {
	return lo.Filter(s.Results, func(r TorrentResult, _ int) bool { return r.FilesAdded > 0 })
}

// TotalFilesAdded returns the number of file rows added across all torrents.
func (s *Summary) TotalFilesAdded() int {
	return lo.SumBy(s.Results, func(r TorrentResult) int { return r.FilesAdded })
}

// Scan reconciles the live contents of a registered client into the store.
// The daemon's version string is validated before anything is written. Rows
// already in the store are never modified: only missing torrents, trackers
// and file slots are added.
func (t *Tracker) Scan(ctx context.Context, client *db.Client) (*Summary, error) {
	version, err := t.qbClient.AppVersion(ctx)
	if err != nil {
		return nil, err
	}

	err = ValidateRemoteVersion(version)
	if err != nil {
		return nil, err
	}

	err = t.store.TouchClient(ctx, client.ID, t.now())
	if err != nil {
		return nil, err
	}

	runID, err := t.store.CreateScanRun(ctx, client.ID, t.now())
	if err != nil {
		return nil, err
	}

	summary, err := t.scan(ctx, client)
	if err != nil {
		// the scan's own error is the one that matters here
		_ = t.store.FinishScanRun(ctx, runID, db.ScanStatusFailed, 0, 0, t.now())
		return nil, err
	}

	summary.RemoteVersion = version

	err = t.store.FinishScanRun(ctx, runID, db.ScanStatusOK, len(summary.Results), summary.TotalFilesAdded(), t.now())
	if err != nil {
		return nil, err
	}

	return summary, nil
}

func (t *Tracker) scan(ctx context.Context, client *db.Client) (*Summary, error) {
	torrents, err := t.qbClient.ListTorrents(ctx)
	if err != nil {
		return nil, err
	}

	t.logger.Debug("listed torrents",
		zap.String("client", client.Name),
		zap.Int("count", len(torrents)),
	)

	summary := &Summary{}

	for _, torrent := range torrents {
		snap, err := t.snapshotTorrent(ctx, torrent)
		if err != nil {
			return nil, errors.WithMessagef(err, "torrent: %s", torrent.IdentityHash())
		}

		added, err := t.store.MergeTorrentSnapshot(ctx, client.ID, *snap, t.mergeKey, t.now())
		if err != nil {
			return nil, errors.WithMessagef(err, "torrent: %s", torrent.IdentityHash())
		}

		t.logger.Debug("merged torrent",
			zap.String("infohash", snap.InfoHashV1),
			zap.String("name", snap.Name),
			zap.Float64("progress", torrent.Progress),
			zap.Int("files", len(snap.Files)),
			zap.Int("added", added),
		)

		summary.Results = append(summary.Results, TorrentResult{
			InfoHash:   snap.InfoHashV1,
			Name:       snap.Name,
			FilesAdded: added,
		})
	}

	return summary, nil
}

// snapshotTorrent assembles the store-facing snapshot of one torrent from
// the daemon's listings. A file slot counts as downloaded only at 100%
// progress.
func (t *Tracker) snapshotTorrent(ctx context.Context, torrent qbit.Torrent) (*db.TorrentSnapshot, error) {
	files, err := t.qbClient.ListFiles(ctx, torrent.Hash)
	if err != nil {
		return nil, err
	}

	trackers, err := t.qbClient.ListTrackers(ctx, torrent.Hash)
	if err != nil {
		return nil, err
	}

	snap := &db.TorrentSnapshot{
		InfoHashV1:  torrent.IdentityHash(),
		Name:        torrent.Name,
		ContentPath: torrent.ContentPath,
		Trackers: lo.Map(trackers, func(tr qbit.Tracker, _ int) string {
			return tr.URL
		}),
		Files: lo.Map(files, func(f qbit.TorrentFile, _ int) db.FileSnapshot {
			return db.FileSnapshot{
				Index:        f.Index,
				Path:         f.Name,
				IsDownloaded: f.Progress >= 1,
			}
		}),
	}

	if torrent.InfoHashV2 != "" {
		infoHashV2 := torrent.InfoHashV2
		snap.InfoHashV2 = &infoHashV2
	}
	if !torrent.CompletionOn.IsZero() {
		completedOn := torrent.CompletionOn.Time
		snap.CompletedOn = &completedOn
	}

	return snap, nil
}
