package db

import (
	"time"

	"github.com/pkg/errors"
)

// Client is a registered download client endpoint.
type Client struct {
	ID       int64
	UUID     string
	Name     string
	Endpoint string
	LastSeen time.Time
}

// Torrent is a swarm identity. There is one row per info-hash no matter how
// many clients hold the torrent.
type Torrent struct {
	ID          int64
	InfoHashV1  string
	InfoHashV2  *string    // only hybrid/v2 torrents carry one
	FileCount   int64
	CompletedOn *time.Time // nil until the torrent completes
}

// Tracker is an announce endpoint observed on at least one torrent.
type Tracker struct {
	ID       int64
	URL      string
	LastSeen time.Time
}

// File is a content identity, independent of where the bytes sit on disk.
type File struct {
	ID     int64
	Size   int64
	OSHash string
	Hash   *string // full-content hash, filled lazily
}

// TorrentClient records that a client holds a torrent, under which display
// name and at which content path.
type TorrentClient struct {
	ID          int64
	TorrentID   int64
	ClientID    int64
	Name        string
	ContentPath string
	LastSeen    time.Time
}

// TorrentTracker records that a client announced a torrent to a tracker.
type TorrentTracker struct {
	ID        int64
	ClientID  int64
	TorrentID int64
	TrackerID int64
	LastSeen  time.Time
}

// TorrentFile is one file slot of a torrent as held by one client. FileID
// stays NULL until filesystem reconciliation links a content identity to it.
type TorrentFile struct {
	ID           int64
	FileID       *int64
	TorrentID    int64
	ClientID     int64
	FileIndex    int64
	FilePath     string
	IsDownloaded bool
	LastChecked  time.Time
}

// ScanRun records one reconciliation pass against a client.
type ScanRun struct {
	ID           int64
	ClientID     int64
	StartedAt    time.Time
	FinishedAt   *time.Time
	Status       ScanStatus
	TorrentsSeen int64
	FilesAdded   int64
}

// ScanStatus is the lifecycle state of a ScanRun.
type ScanStatus string

const (
	ScanStatusRunning ScanStatus = "running"
	ScanStatusOK      ScanStatus = "ok"
	ScanStatusFailed  ScanStatus = "failed"
)

// TorrentSnapshot is the live state of one torrent as reported by a client.
type TorrentSnapshot struct {
	InfoHashV1  string
	InfoHashV2  *string
	Name        string
	ContentPath string
	CompletedOn *time.Time
	Trackers    []string
	Files       []FileSnapshot
}

// FileSnapshot is one file slot within a torrent snapshot.
type FileSnapshot struct {
	Index        int64
	Path         string
	IsDownloaded bool
}

// MergeKey selects the uniqueness scope used to decide whether a reported
// file slot is already recorded.
type MergeKey string

const (
	// MergeKeyPath matches on file_path alone, across all torrents and all
	// clients. This reproduces the store's historical behaviour: a path seen
	// under any torrent suppresses the insert everywhere.
	MergeKeyPath MergeKey = "path"

	// MergeKeyTuple matches on (torrent_id, client_id, file_index), the same
	// scope the torrent_files uniqueness index enforces.
	MergeKeyTuple MergeKey = "tuple"
)

// ParseMergeKey maps a CLI/config value onto a MergeKey. The empty string
// selects MergeKeyPath.
func ParseMergeKey(s string) (MergeKey, error) {
	switch MergeKey(s) {
	case MergeKeyPath, "":
		return MergeKeyPath, nil
	case MergeKeyTuple:
		return MergeKeyTuple, nil
	default:
		return "", errors.Errorf("unknown merge key %q (want %q or %q)", s, MergeKeyPath, MergeKeyTuple)
	}
}
