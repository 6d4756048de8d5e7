package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	sqlite3 "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

// SQLite3 is the tarc entity store, backed by a single SQLite file.
type SQLite3 struct {
	dbPathFilename string
	db             *sql.DB
	initialized    bool
}

// NewSQLite3 opens (or creates) the store at dbPathFilename and runs the
// schema guard: a brand-new store receives the full schema plus a version
// stamp, an existing store must carry exactly the version this build was
// made for. There is no migration path between versions.
func NewSQLite3(ctx context.Context, dbPathFilename string) (*SQLite3, error) {
	db, err := sql.Open("sqlite3", "file:"+dbPathFilename+"?_foreign_keys=on")
	if err != nil {
		return nil, errors.Wrapf(ErrStorageUnavailable, "%s: %v", dbPathFilename, err)
	}

	err = db.PingContext(ctx)
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(ErrStorageUnavailable, "%s: %v", dbPathFilename, err)
	}

	initialized, err := ensureSchema(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLite3{
		dbPathFilename: dbPathFilename,
		db:             db,
		initialized:    initialized,
	}, nil
}

// Initialized reports whether this open created a brand-new store.
func (s *SQLite3) Initialized() bool {
	return s.initialized
}

// SchemaVersion returns the version stamp the store currently carries.
func (s *SQLite3) SchemaVersion(ctx context.Context) (int64, error) {
	version := int64(0)

	err := s.db.QueryRowContext(
		ctx,
		`SELECT version FROM "schema_version" ORDER BY id DESC LIMIT 1`,
	).Scan(&version)

	return version, errors.WithStack(err)
}

func (s *SQLite3) Close() error {
	return s.db.Close()
}

func ensureSchema(ctx context.Context, db *sql.DB) (bool, error) {
	tableCount := 0

	err := db.QueryRowContext(
		ctx,
		`SELECT count(*) FROM sqlite_master WHERE type = 'table'`,
	).Scan(&tableCount)
	if err != nil {
		return false, errors.WithStack(err)
	}

	if tableCount == 0 {
		return true, initializeSchema(ctx, db)
	}

	return false, verifySchema(ctx, db)
}

func initializeSchema(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return errors.WithStack(err)
	}

	_, err = tx.ExecContext(ctx, schemaSQLite3)
	if err != nil {
		return doRollback(tx, err)
	}

	_, err = tx.ExecContext(
		ctx,
		`INSERT INTO "schema_version" (version, applied_at) VALUES (?, ?)`,
		Schema,
		time.Now().UTC(),
	)
	if err != nil {
		return doRollback(tx, err)
	}

	err = tx.Commit()
	if err != nil {
		return doRollback(tx, err)
	}

	return nil
}

func verifySchema(ctx context.Context, db *sql.DB) error {
	hasVersionTable := false

	err := db.QueryRowContext(
		ctx,
		`SELECT count(*) > 0 FROM sqlite_master WHERE type = 'table' AND name = 'schema_version'`,
	).Scan(&hasVersionTable)
	if err != nil {
		return errors.WithStack(err)
	}

	if !hasVersionTable {
		return errors.Wrap(ErrSchemaMissing, "store carries no schema_version table")
	}

	version := int64(0)

	err = db.QueryRowContext(
		ctx,
		`SELECT version FROM "schema_version" ORDER BY id DESC LIMIT 1`,
	).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return errors.Wrap(ErrSchemaMissing, "store carries no schema version stamp")
	}
	if err != nil {
		return errors.WithStack(err)
	}

	if version != Schema {
		return errors.Wrapf(ErrSchemaMismatch, "SCHEMA %d, expected %d", version, Schema)
	}

	return nil
}

// AddClient registers a download client under a unique name and mints a
// fresh uuid for it.
func (s *SQLite3) AddClient(ctx context.Context, name, endpoint string, now time.Time) (*Client, error) {
	clientUUID := uuid.New().String()

	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO "clients" (name, uuid, endpoint, last_seen) VALUES (?, ?, ?, ?)`,
		name,
		clientUUID,
		endpoint,
		now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, errors.Wrapf(ErrDuplicateName, "client %q", name)
		}
		return nil, errors.WithStack(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &Client{
		ID:       id,
		UUID:     clientUUID,
		Name:     name,
		Endpoint: endpoint,
		LastSeen: now,
	}, nil
}

// FindClientsByName returns every client registered under name. A healthy
// registry yields zero or one entries.
func (s *SQLite3) FindClientsByName(ctx context.Context, name string) ([]Client, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, uuid, name, endpoint, last_seen FROM "clients" WHERE name = ?`,
		name,
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return scanClients(rows)
}

// GetClientByName returns the one client registered under name.
func (s *SQLite3) GetClientByName(ctx context.Context, name string) (*Client, error) {
	clients, err := s.FindClientsByName(ctx, name)
	if err != nil {
		return nil, err
	}

	switch len(clients) {
	case 0:
		return nil, errors.Wrapf(ErrClientNotFound, "client %q", name)
	case 1:
		return &clients[0], nil
	default:
		return nil, errors.Wrapf(ErrAmbiguousClient, "%d clients share the name %q", len(clients), name)
	}
}

// ListClients returns every registered client, ordered by name.
func (s *SQLite3) ListClients(ctx context.Context) ([]Client, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, uuid, name, endpoint, last_seen FROM "clients" ORDER BY name`,
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return scanClients(rows)
}

// TouchClient refreshes a client's last_seen stamp.
func (s *SQLite3) TouchClient(ctx context.Context, id int64, now time.Time) error {
	_, err := s.db.ExecContext(
		ctx,
		`UPDATE "clients" SET last_seen = ? WHERE id = ?`,
		now,
		id,
	)

	return errors.WithStack(err)
}

func scanClients(rows *sql.Rows) ([]Client, error) {
	defer rows.Close()

	clients := []Client{}

	for rows.Next() {
		c := Client{}

		err := rows.Scan(&c.ID, &c.UUID, &c.Name, &c.Endpoint, &c.LastSeen)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		clients = append(clients, c)
	}

	err := rows.Err()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return clients, nil
}

type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// GetTorrentByInfoHash returns the torrent carrying the v1 info-hash, or nil
// when the store has never seen it.
func (s *SQLite3) GetTorrentByInfoHash(ctx context.Context, infoHash string) (*Torrent, error) {
	return getTorrentByInfoHash(ctx, s.db, infoHash)
}

func getTorrentByInfoHash(ctx context.Context, q querier, infoHash string) (*Torrent, error) {
	t := Torrent{}
	infoHashV2 := sql.NullString{}
	completedOn := sql.NullTime{}

	err := q.QueryRowContext(
		ctx,
		`SELECT id, info_hash_v1, info_hash_v2, file_count, completed_on
		 FROM "torrents"
		 WHERE info_hash_v1 = ?`,
		infoHash,
	).Scan(&t.ID, &t.InfoHashV1, &infoHashV2, &t.FileCount, &completedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if infoHashV2.Valid {
		t.InfoHashV2 = &infoHashV2.String
	}
	if completedOn.Valid {
		t.CompletedOn = &completedOn.Time
	}

	return &t, nil
}

// MergeTorrentSnapshot reconciles one reported torrent into the store within
// a single transaction. Rows already present are left exactly as they are;
// only missing rows are inserted. It returns the number of torrent_files
// rows added.
func (s *SQLite3) MergeTorrentSnapshot(ctx context.Context, clientID int64, snap TorrentSnapshot, key MergeKey, now time.Time) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	torrent, err := getTorrentByInfoHash(ctx, tx, snap.InfoHashV1)
	if err != nil {
		return 0, doRollback(tx, err)
	}

	if torrent == nil {
		_, err = tx.ExecContext(
			ctx,
			`INSERT INTO "torrents" (info_hash_v1, info_hash_v2, file_count, completed_on)
			 VALUES (?, ?, ?, ?)`,
			snap.InfoHashV1,
			snap.InfoHashV2,
			len(snap.Files),
			snap.CompletedOn,
		)
		if err != nil {
			return 0, doRollback(tx, errors.WithMessagef(err, "infohash: %s", snap.InfoHashV1))
		}

		// a freshly inserted torrent must be readable back in the same tx
		torrent, err = getTorrentByInfoHash(ctx, tx, snap.InfoHashV1)
		if err != nil {
			return 0, doRollback(tx, err)
		}
		if torrent == nil {
			return 0, doRollback(tx, errors.Wrapf(ErrPostInsertLookup, "infohash: %s", snap.InfoHashV1))
		}
	}

	err = ensureTorrentClient(ctx, tx, torrent.ID, clientID, snap, now)
	if err != nil {
		return 0, doRollback(tx, err)
	}

	for _, trackerURL := range snap.Trackers {
		trackerID, err := ensureTracker(ctx, tx, trackerURL, now)
		if err != nil {
			return 0, doRollback(tx, err)
		}

		err = ensureTorrentTracker(ctx, tx, clientID, torrent.ID, trackerID, now)
		if err != nil {
			return 0, doRollback(tx, err)
		}
	}

	added := 0

	for _, f := range snap.Files {
		known, err := hasTorrentFile(ctx, tx, key, torrent.ID, clientID, f)
		if err != nil {
			return 0, doRollback(tx, err)
		}
		if known {
			continue
		}

		_, err = tx.ExecContext(
			ctx,
			`INSERT INTO "torrent_files"
			 (file_id, torrent_id, client_id, file_index, file_path, is_downloaded, last_checked)
			 VALUES (NULL, ?, ?, ?, ?, ?, ?)`,
			torrent.ID,
			clientID,
			f.Index,
			f.Path,
			f.IsDownloaded,
			now,
		)
		if err != nil {
			return 0, doRollback(tx, errors.WithMessagef(err, "file: %s", f.Path))
		}

		added++
	}

	err = tx.Commit()
	if err != nil {
		return 0, doRollback(tx, err)
	}

	return added, nil
}

func ensureTorrentClient(ctx context.Context, tx *sql.Tx, torrentID, clientID int64, snap TorrentSnapshot, now time.Time) error {
	exists := false

	err := tx.QueryRowContext(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM "torrent_clients" WHERE torrent_id = ? AND client_id = ?)`,
		torrentID,
		clientID,
	).Scan(&exists)
	if err != nil {
		return errors.WithStack(err)
	}
	if exists {
		return nil
	}

	_, err = tx.ExecContext(
		ctx,
		`INSERT INTO "torrent_clients" (torrent_id, client_id, name, content_path, last_seen)
		 VALUES (?, ?, ?, ?, ?)`,
		torrentID,
		clientID,
		snap.Name,
		snap.ContentPath,
		now,
	)

	return errors.WithStack(err)
}

func ensureTracker(ctx context.Context, tx *sql.Tx, trackerURL string, now time.Time) (int64, error) {
	id := int64(0)

	err := tx.QueryRowContext(
		ctx,
		`SELECT id FROM "trackers" WHERE url = ?`,
		trackerURL,
	).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, errors.WithStack(err)
	}

	res, err := tx.ExecContext(
		ctx,
		`INSERT INTO "trackers" (url, last_seen) VALUES (?, ?)`,
		trackerURL,
		now,
	)
	if err != nil {
		return 0, errors.WithMessagef(err, "tracker: %s", trackerURL)
	}

	id, err = res.LastInsertId()

	return id, errors.WithStack(err)
}

func ensureTorrentTracker(ctx context.Context, tx *sql.Tx, clientID, torrentID, trackerID int64, now time.Time) error {
	exists := false

	err := tx.QueryRowContext(
		ctx,
		`SELECT EXISTS (
			SELECT 1 FROM "torrent_trackers"
			WHERE client_id = ? AND torrent_id = ? AND tracker_id = ?)`,
		clientID,
		torrentID,
		trackerID,
	).Scan(&exists)
	if err != nil {
		return errors.WithStack(err)
	}
	if exists {
		return nil
	}

	_, err = tx.ExecContext(
		ctx,
		`INSERT INTO "torrent_trackers" (client_id, torrent_id, tracker_id, last_seen)
		 VALUES (?, ?, ?, ?)`,
		clientID,
		torrentID,
		trackerID,
		now,
	)

	return errors.WithStack(err)
}

func hasTorrentFile(ctx context.Context, tx *sql.Tx, key MergeKey, torrentID, clientID int64, f FileSnapshot) (bool, error) {
	exists := false

	var err error

	switch key {
	case MergeKeyPath:
		err = tx.QueryRowContext(
			ctx,
			`SELECT EXISTS (SELECT 1 FROM "torrent_files" WHERE file_path = ?)`,
			f.Path,
		).Scan(&exists)
	case MergeKeyTuple:
		err = tx.QueryRowContext(
			ctx,
			`SELECT EXISTS (
				SELECT 1 FROM "torrent_files"
				WHERE torrent_id = ? AND client_id = ? AND file_index = ?)`,
			torrentID,
			clientID,
			f.Index,
		).Scan(&exists)
	default:
		return false, errors.Errorf("unknown merge key %q", key)
	}

	return exists, errors.WithStack(err)
}

// ListTorrents returns every torrent the store knows, ordered by info-hash.
func (s *SQLite3) ListTorrents(ctx context.Context) ([]Torrent, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, info_hash_v1, info_hash_v2, file_count, completed_on
		 FROM "torrents"
		 ORDER BY info_hash_v1`,
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer rows.Close()

	torrents := []Torrent{}

	for rows.Next() {
		t := Torrent{}
		infoHashV2 := sql.NullString{}
		completedOn := sql.NullTime{}

		err = rows.Scan(&t.ID, &t.InfoHashV1, &infoHashV2, &t.FileCount, &completedOn)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		if infoHashV2.Valid {
			v2 := infoHashV2.String
			t.InfoHashV2 = &v2
		}
		if completedOn.Valid {
			co := completedOn.Time
			t.CompletedOn = &co
		}

		torrents = append(torrents, t)
	}

	err = rows.Err()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return torrents, nil
}

// ListTorrentFiles returns every file slot recorded for a torrent, across
// all clients, ordered by client then file index.
func (s *SQLite3) ListTorrentFiles(ctx context.Context, torrentID int64) ([]TorrentFile, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, file_id, torrent_id, client_id, file_index, file_path, is_downloaded, last_checked
		 FROM "torrent_files"
		 WHERE torrent_id = ?
		 ORDER BY client_id, file_index`,
		torrentID,
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer rows.Close()

	torrentFiles := []TorrentFile{}

	for rows.Next() {
		tf := TorrentFile{}
		fileID := sql.NullInt64{}

		err = rows.Scan(&tf.ID, &fileID, &tf.TorrentID, &tf.ClientID, &tf.FileIndex, &tf.FilePath, &tf.IsDownloaded, &tf.LastChecked)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		if fileID.Valid {
			id := fileID.Int64
			tf.FileID = &id
		}

		torrentFiles = append(torrentFiles, tf)
	}

	err = rows.Err()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return torrentFiles, nil
}

// ListTrackers returns every announce endpoint the store knows, ordered by URL.
func (s *SQLite3) ListTrackers(ctx context.Context) ([]Tracker, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, url, last_seen FROM "trackers" ORDER BY url`,
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer rows.Close()

	trackers := []Tracker{}

	for rows.Next() {
		t := Tracker{}

		err = rows.Scan(&t.ID, &t.URL, &t.LastSeen)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		trackers = append(trackers, t)
	}

	err = rows.Err()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return trackers, nil
}

// ListTorrentClients returns the client associations of one torrent.
func (s *SQLite3) ListTorrentClients(ctx context.Context, torrentID int64) ([]TorrentClient, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, torrent_id, client_id, name, content_path, last_seen
		 FROM "torrent_clients"
		 WHERE torrent_id = ?
		 ORDER BY client_id`,
		torrentID,
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer rows.Close()

	torrentClients := []TorrentClient{}

	for rows.Next() {
		tc := TorrentClient{}

		err = rows.Scan(&tc.ID, &tc.TorrentID, &tc.ClientID, &tc.Name, &tc.ContentPath, &tc.LastSeen)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		torrentClients = append(torrentClients, tc)
	}

	err = rows.Err()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return torrentClients, nil
}

// AddFile records a content identity keyed by its oshash.
func (s *SQLite3) AddFile(ctx context.Context, size int64, oshash string, hash *string) (*File, error) {
	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO "files" (size, oshash, hash) VALUES (?, ?, ?)`,
		size,
		oshash,
		hash,
	)
	if err != nil {
		return nil, errors.WithMessagef(err, "oshash: %s", oshash)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &File{
		ID:     id,
		Size:   size,
		OSHash: oshash,
		Hash:   hash,
	}, nil
}

// GetFileByOSHash returns the content identity for oshash, or nil when none
// is recorded.
func (s *SQLite3) GetFileByOSHash(ctx context.Context, oshash string) (*File, error) {
	f := File{}
	hash := sql.NullString{}

	err := s.db.QueryRowContext(
		ctx,
		`SELECT id, size, oshash, hash FROM "files" WHERE oshash = ?`,
		oshash,
	).Scan(&f.ID, &f.Size, &f.OSHash, &hash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if hash.Valid {
		f.Hash = &hash.String
	}

	return &f, nil
}

// LinkTorrentFile points a torrent file slot at a content identity.
func (s *SQLite3) LinkTorrentFile(ctx context.Context, torrentFileID, fileID int64) error {
	res, err := s.db.ExecContext(
		ctx,
		`UPDATE "torrent_files" SET file_id = ? WHERE id = ?`,
		fileID,
		torrentFileID,
	)
	if err != nil {
		return errors.WithStack(err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return errors.WithStack(err)
	}
	if n == 0 {
		return errors.Errorf("no torrent file with id %d", torrentFileID)
	}

	return nil
}

// CreateScanRun opens a history row for a reconciliation pass.
func (s *SQLite3) CreateScanRun(ctx context.Context, clientID int64, now time.Time) (int64, error) {
	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO "scan_runs" (client_id, started_at, status) VALUES (?, ?, ?)`,
		clientID,
		now,
		ScanStatusRunning,
	)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	id, err := res.LastInsertId()

	return id, errors.WithStack(err)
}

// FinishScanRun closes a history row with its outcome and totals.
func (s *SQLite3) FinishScanRun(ctx context.Context, id int64, status ScanStatus, torrentsSeen, filesAdded int, now time.Time) error {
	_, err := s.db.ExecContext(
		ctx,
		`UPDATE "scan_runs"
		 SET finished_at = ?, status = ?, torrents_seen = ?, files_added = ?
		 WHERE id = ?`,
		now,
		status,
		torrentsSeen,
		filesAdded,
		id,
	)

	return errors.WithStack(err)
}

// ListScanRuns returns the most recent scan runs, newest first.
func (s *SQLite3) ListScanRuns(ctx context.Context, limit int) ([]ScanRun, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, client_id, started_at, finished_at, status, torrents_seen, files_added
		 FROM "scan_runs"
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer rows.Close()

	runs := []ScanRun{}

	for rows.Next() {
		r := ScanRun{}
		finishedAt := sql.NullTime{}

		err = rows.Scan(&r.ID, &r.ClientID, &r.StartedAt, &finishedAt, &r.Status, &r.TorrentsSeen, &r.FilesAdded)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		if finishedAt.Valid {
			fa := finishedAt.Time
			r.FinishedAt = &fa
		}

		runs = append(runs, r)
	}

	err = rows.Err()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return runs, nil
}

func isUniqueViolation(err error) bool {
	sqlErr := sqlite3.Error{}
	if errors.As(err, &sqlErr) {
		return sqlErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqlErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	return false
}

func doRollback(tx *sql.Tx, err error) error {
	errTx := tx.Rollback()
	if errTx != nil {
		return errors.Wrapf(err, "DB error additionally with failed rollback: %s", errTx.Error())
	}

	return errors.WithStack(err)
}
