package db_test

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarc-io/tarc/tracker/db"
)

func makeStore(ctx context.Context, t *testing.T, dbPath string) *db.SQLite3 {
	t.Helper()

	err := os.RemoveAll(dbPath)
	require.NoError(t, err)

	err = os.MkdirAll(dbPath, 0700)
	require.NoError(t, err)

	t.Cleanup(func() { _ = os.RemoveAll(dbPath) })

	store, err := db.NewSQLite3(ctx, filepath.Join(dbPath, "tarc.db"))
	require.NoError(t, err)

	t.Cleanup(func() { _ = store.Close() })

	return store
}

// openRaw opens a second connection to the store file, bypassing the schema
// guard, so tests can tamper with the underlying tables.
func openRaw(t *testing.T, dbPath string) *sql.DB {
	t.Helper()

	dbase, err := sql.Open("sqlite3", "file:"+filepath.Join(dbPath, "tarc.db"))
	require.NoError(t, err)

	t.Cleanup(func() { _ = dbase.Close() })

	return dbase
}

func TestNewSQLite3_StampsFreshStore(t *testing.T) {
	const dbPath = "/tmp/tarc_db_fresh_store_test"
	ctx := context.Background()

	store := makeStore(ctx, t, dbPath)
	assert.True(t, store.Initialized())

	version, err := store.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, db.Schema, version)

	stamps := 0
	err = openRaw(t, dbPath).QueryRow(`SELECT count(*) FROM "schema_version"`).Scan(&stamps)
	require.NoError(t, err)
	assert.Equal(t, 1, stamps)
}

func TestNewSQLite3_ReopenKeepsStamp(t *testing.T) {
	const dbPath = "/tmp/tarc_db_reopen_test"
	ctx := context.Background()

	store := makeStore(ctx, t, dbPath)
	err := store.Close()
	require.NoError(t, err)

	store2, err := db.NewSQLite3(ctx, filepath.Join(dbPath, "tarc.db"))
	require.NoError(t, err)
	defer func() { _ = store2.Close() }()

	assert.False(t, store2.Initialized())

	stamps := 0
	err = openRaw(t, dbPath).QueryRow(`SELECT count(*) FROM "schema_version"`).Scan(&stamps)
	require.NoError(t, err)
	assert.Equal(t, 1, stamps)
}

func TestNewSQLite3_SchemaMismatch(t *testing.T) {
	const dbPath = "/tmp/tarc_db_schema_mismatch_test"
	ctx := context.Background()

	store := makeStore(ctx, t, dbPath)
	err := store.Close()
	require.NoError(t, err)

	_, err = openRaw(t, dbPath).Exec(`UPDATE "schema_version" SET version = ?`, db.Schema+1)
	require.NoError(t, err)

	_, err = db.NewSQLite3(ctx, filepath.Join(dbPath, "tarc.db"))
	require.ErrorIs(t, err, db.ErrSchemaMismatch)
	assert.Contains(t, err.Error(), fmt.Sprintf("SCHEMA %d, expected %d", db.Schema+1, db.Schema))
}

func TestNewSQLite3_SchemaStampMissing(t *testing.T) {
	const dbPath = "/tmp/tarc_db_stamp_missing_test"
	ctx := context.Background()

	store := makeStore(ctx, t, dbPath)
	err := store.Close()
	require.NoError(t, err)

	_, err = openRaw(t, dbPath).Exec(`DELETE FROM "schema_version"`)
	require.NoError(t, err)

	_, err = db.NewSQLite3(ctx, filepath.Join(dbPath, "tarc.db"))
	require.ErrorIs(t, err, db.ErrSchemaMissing)
}

func TestNewSQLite3_ForeignDatabase(t *testing.T) {
	const dbPath = "/tmp/tarc_db_foreign_test"
	ctx := context.Background()

	err := os.RemoveAll(dbPath)
	require.NoError(t, err)

	err = os.MkdirAll(dbPath, 0700)
	require.NoError(t, err)
	defer func() { _ = os.RemoveAll(dbPath) }()

	_, err = openRaw(t, dbPath).Exec(`CREATE TABLE "not_tarc" (id INTEGER PRIMARY KEY)`)
	require.NoError(t, err)

	_, err = db.NewSQLite3(ctx, filepath.Join(dbPath, "tarc.db"))
	require.ErrorIs(t, err, db.ErrSchemaMissing)
}

func TestAddClient_DuplicateName(t *testing.T) {
	const dbPath = "/tmp/tarc_db_duplicate_client_test"
	ctx := context.Background()
	now := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)

	store := makeStore(ctx, t, dbPath)

	client, err := store.AddClient(ctx, "seedbox", "http://localhost:8080", now)
	require.NoError(t, err)
	assert.NotZero(t, client.ID)
	assert.NotEmpty(t, client.UUID)

	_, err = store.AddClient(ctx, "seedbox", "http://seedbox.example.net:8080", now)
	require.ErrorIs(t, err, db.ErrDuplicateName)

	clients, err := store.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "", cmp.Diff(*client, clients[0]))
}

func TestGetClientByName(t *testing.T) {
	const dbPath = "/tmp/tarc_db_get_client_test"
	ctx := context.Background()
	now := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)

	store := makeStore(ctx, t, dbPath)

	_, err := store.GetClientByName(ctx, "seedbox")
	require.ErrorIs(t, err, db.ErrClientNotFound)

	added, err := store.AddClient(ctx, "seedbox", "http://localhost:8080", now)
	require.NoError(t, err)

	got, err := store.GetClientByName(ctx, "seedbox")
	require.NoError(t, err)
	assert.Equal(t, "", cmp.Diff(*added, *got))
}

func TestGetClientByName_Ambiguous(t *testing.T) {
	const dbPath = "/tmp/tarc_db_ambiguous_client_test"
	ctx := context.Background()
	now := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)

	store := makeStore(ctx, t, dbPath)

	_, err := store.AddClient(ctx, "seedbox", "http://localhost:8080", now)
	require.NoError(t, err)

	// dropping the uniqueness index simulates a store written before the
	// index existed
	_, err = openRaw(t, dbPath).Exec(`DROP INDEX "clients_name"`)
	require.NoError(t, err)

	_, err = store.AddClient(ctx, "seedbox", "http://seedbox.example.net:8080", now)
	require.NoError(t, err)

	_, err = store.GetClientByName(ctx, "seedbox")
	require.ErrorIs(t, err, db.ErrAmbiguousClient)

	clients, err := store.FindClientsByName(ctx, "seedbox")
	require.NoError(t, err)
	assert.Len(t, clients, 2)
}

func TestTouchClient(t *testing.T) {
	const dbPath = "/tmp/tarc_db_touch_client_test"
	ctx := context.Background()
	now := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)

	store := makeStore(ctx, t, dbPath)

	client, err := store.AddClient(ctx, "seedbox", "http://localhost:8080", now)
	require.NoError(t, err)

	err = store.TouchClient(ctx, client.ID, now.Add(time.Hour))
	require.NoError(t, err)

	got, err := store.GetClientByName(ctx, "seedbox")
	require.NoError(t, err)
	assert.True(t, got.LastSeen.Equal(now.Add(time.Hour)))
}

func TestMergeTorrentSnapshot_FirstContact(t *testing.T) {
	const dbPath = "/tmp/tarc_db_merge_first_test"
	ctx := context.Background()
	now := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)

	store := makeStore(ctx, t, dbPath)

	client, err := store.AddClient(ctx, "seedbox", "http://localhost:8080", now)
	require.NoError(t, err)

	snap := torrentSnapshotSample1()

	torrent, err := store.GetTorrentByInfoHash(ctx, snap.InfoHashV1)
	require.NoError(t, err)
	require.Nil(t, torrent)

	added, err := store.MergeTorrentSnapshot(ctx, client.ID, snap, db.MergeKeyPath, now)
	require.NoError(t, err)
	assert.Equal(t, 3, added)

	torrent, err = store.GetTorrentByInfoHash(ctx, snap.InfoHashV1)
	require.NoError(t, err)
	require.NotNil(t, torrent)
	assert.Equal(t, int64(3), torrent.FileCount)
	require.NotNil(t, torrent.InfoHashV2)
	assert.Equal(t, *snap.InfoHashV2, *torrent.InfoHashV2)
	require.NotNil(t, torrent.CompletedOn)
	assert.True(t, torrent.CompletedOn.Equal(*snap.CompletedOn))

	torrentClients, err := store.ListTorrentClients(ctx, torrent.ID)
	require.NoError(t, err)

	expectedClients := []db.TorrentClient{
		{ID: 1, TorrentID: torrent.ID, ClientID: client.ID, Name: snap.Name, ContentPath: snap.ContentPath, LastSeen: now},
	}
	assert.Equal(t, "", cmp.Diff(expectedClients, torrentClients))

	trackers, err := store.ListTrackers(ctx)
	require.NoError(t, err)

	expectedTrackers := []db.Tracker{
		{ID: 1, URL: "https://tracker.datasets.example/announce", LastSeen: now},
		{ID: 2, URL: "udp://open.example.org:1337/announce", LastSeen: now},
	}
	assert.Equal(t, "", cmp.Diff(expectedTrackers, trackers))

	files, err := store.ListTorrentFiles(ctx, torrent.ID)
	require.NoError(t, err)

	expectedFiles := []db.TorrentFile{
		{ID: 1, TorrentID: torrent.ID, ClientID: client.ID, FileIndex: 0, FilePath: "wikilinks-20260801/part-000.jsonl.zst", IsDownloaded: true, LastChecked: now},
		{ID: 2, TorrentID: torrent.ID, ClientID: client.ID, FileIndex: 1, FilePath: "wikilinks-20260801/part-001.jsonl.zst", IsDownloaded: true, LastChecked: now},
		{ID: 3, TorrentID: torrent.ID, ClientID: client.ID, FileIndex: 2, FilePath: "wikilinks-20260801/checksums.sha256", IsDownloaded: true, LastChecked: now},
	}
	assert.Equal(t, "", cmp.Diff(expectedFiles, files))
}

func TestMergeTorrentSnapshot_RescanAddsNothing(t *testing.T) {
	const dbPath = "/tmp/tarc_db_merge_rescan_test"
	ctx := context.Background()
	now := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)

	store := makeStore(ctx, t, dbPath)

	client, err := store.AddClient(ctx, "seedbox", "http://localhost:8080", now)
	require.NoError(t, err)

	snap := torrentSnapshotSample1()

	added, err := store.MergeTorrentSnapshot(ctx, client.ID, snap, db.MergeKeyPath, now)
	require.NoError(t, err)
	require.Equal(t, 3, added)

	torrent, err := store.GetTorrentByInfoHash(ctx, snap.InfoHashV1)
	require.NoError(t, err)
	require.NotNil(t, torrent)

	before, err := store.ListTorrentFiles(ctx, torrent.ID)
	require.NoError(t, err)

	added, err = store.MergeTorrentSnapshot(ctx, client.ID, snap, db.MergeKeyPath, now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 0, added)

	after, err := store.ListTorrentFiles(ctx, torrent.ID)
	require.NoError(t, err)
	assert.Equal(t, "", cmp.Diff(before, after))

	torrents, err := store.ListTorrents(ctx)
	require.NoError(t, err)
	assert.Len(t, torrents, 1)

	trackers, err := store.ListTrackers(ctx)
	require.NoError(t, err)
	assert.Len(t, trackers, 2)

	torrentClients, err := store.ListTorrentClients(ctx, torrent.ID)
	require.NoError(t, err)
	assert.Len(t, torrentClients, 1)
}

func TestMergeTorrentSnapshot_AddsOnlyNewFiles(t *testing.T) {
	const dbPath = "/tmp/tarc_db_merge_new_files_test"
	ctx := context.Background()
	now := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)

	store := makeStore(ctx, t, dbPath)

	client, err := store.AddClient(ctx, "seedbox", "http://localhost:8080", now)
	require.NoError(t, err)

	snap := torrentSnapshotSample1()
	full := snap.Files
	snap.Files = full[:2]

	added, err := store.MergeTorrentSnapshot(ctx, client.ID, snap, db.MergeKeyPath, now)
	require.NoError(t, err)
	require.Equal(t, 2, added)

	torrent, err := store.GetTorrentByInfoHash(ctx, snap.InfoHashV1)
	require.NoError(t, err)
	require.NotNil(t, torrent)

	before, err := store.ListTorrentFiles(ctx, torrent.ID)
	require.NoError(t, err)

	snap.Files = full
	later := now.Add(time.Hour)

	added, err = store.MergeTorrentSnapshot(ctx, client.ID, snap, db.MergeKeyPath, later)
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	after, err := store.ListTorrentFiles(ctx, torrent.ID)
	require.NoError(t, err)
	require.Len(t, after, 3)

	// pre-existing rows stay exactly as first recorded
	assert.Equal(t, "", cmp.Diff(before, after[:2]))
	assert.Equal(t, "wikilinks-20260801/checksums.sha256", after[2].FilePath)
	assert.True(t, after[2].LastChecked.Equal(later))

	// the torrent row itself is never revisited
	torrent, err = store.GetTorrentByInfoHash(ctx, snap.InfoHashV1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), torrent.FileCount)
}

func TestMergeTorrentSnapshot_PathKeyMatchesAcrossTorrents(t *testing.T) {
	const dbPath = "/tmp/tarc_db_merge_path_key_test"
	ctx := context.Background()
	now := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)

	store := makeStore(ctx, t, dbPath)

	client, err := store.AddClient(ctx, "seedbox", "http://localhost:8080", now)
	require.NoError(t, err)

	added, err := store.MergeTorrentSnapshot(ctx, client.ID, torrentSnapshotSample1(), db.MergeKeyPath, now)
	require.NoError(t, err)
	require.Equal(t, 3, added)

	snapB := torrentSnapshotSample2()

	added, err = store.MergeTorrentSnapshot(ctx, client.ID, snapB, db.MergeKeyPath, now)
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	torrentB, err := store.GetTorrentByInfoHash(ctx, snapB.InfoHashV1)
	require.NoError(t, err)
	require.NotNil(t, torrentB)

	files, err := store.ListTorrentFiles(ctx, torrentB.ID)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "aozora-mirror-2026/index.json", files[0].FilePath)
}

func TestMergeTorrentSnapshot_TupleKeyScopesToTorrent(t *testing.T) {
	const dbPath = "/tmp/tarc_db_merge_tuple_key_test"
	ctx := context.Background()
	now := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)

	store := makeStore(ctx, t, dbPath)

	client, err := store.AddClient(ctx, "seedbox", "http://localhost:8080", now)
	require.NoError(t, err)

	added, err := store.MergeTorrentSnapshot(ctx, client.ID, torrentSnapshotSample1(), db.MergeKeyTuple, now)
	require.NoError(t, err)
	require.Equal(t, 3, added)

	snapB := torrentSnapshotSample2()

	added, err = store.MergeTorrentSnapshot(ctx, client.ID, snapB, db.MergeKeyTuple, now)
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	torrentB, err := store.GetTorrentByInfoHash(ctx, snapB.InfoHashV1)
	require.NoError(t, err)
	require.NotNil(t, torrentB)

	files, err := store.ListTorrentFiles(ctx, torrentB.ID)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "aozora-mirror-2026/index.json", files[0].FilePath)
	assert.Equal(t, "wikilinks-20260801/checksums.sha256", files[1].FilePath)
}

func TestMergeTorrentSnapshot_SecondClientSharesTorrent(t *testing.T) {
	const dbPath = "/tmp/tarc_db_merge_second_client_test"
	ctx := context.Background()
	now := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)

	store := makeStore(ctx, t, dbPath)

	clientA, err := store.AddClient(ctx, "seedbox", "http://localhost:8080", now)
	require.NoError(t, err)

	clientB, err := store.AddClient(ctx, "nas", "http://nas.local:8080", now)
	require.NoError(t, err)

	snap := torrentSnapshotSample1()

	added, err := store.MergeTorrentSnapshot(ctx, clientA.ID, snap, db.MergeKeyPath, now)
	require.NoError(t, err)
	require.Equal(t, 3, added)

	later := now.Add(time.Hour)

	// path mode: every path is already recorded somewhere, so the second
	// client gains only the association rows
	added, err = store.MergeTorrentSnapshot(ctx, clientB.ID, snap, db.MergeKeyPath, later)
	require.NoError(t, err)
	assert.Equal(t, 0, added)

	torrents, err := store.ListTorrents(ctx)
	require.NoError(t, err)
	require.Len(t, torrents, 1)

	torrentClients, err := store.ListTorrentClients(ctx, torrents[0].ID)
	require.NoError(t, err)
	require.Len(t, torrentClients, 2)
	assert.Equal(t, clientA.ID, torrentClients[0].ClientID)
	assert.Equal(t, clientB.ID, torrentClients[1].ClientID)

	// tuple mode scopes the check to (torrent, client, index): the second
	// client records its own copy of each file slot
	added, err = store.MergeTorrentSnapshot(ctx, clientB.ID, snap, db.MergeKeyTuple, later)
	require.NoError(t, err)
	assert.Equal(t, 3, added)

	files, err := store.ListTorrentFiles(ctx, torrents[0].ID)
	require.NoError(t, err)
	assert.Len(t, files, 6)
}

func TestScanRuns(t *testing.T) {
	const dbPath = "/tmp/tarc_db_scan_runs_test"
	ctx := context.Background()
	now := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)

	store := makeStore(ctx, t, dbPath)

	client, err := store.AddClient(ctx, "seedbox", "http://localhost:8080", now)
	require.NoError(t, err)

	runID, err := store.CreateScanRun(ctx, client.ID, now)
	require.NoError(t, err)

	runs, err := store.ListScanRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, db.ScanStatusRunning, runs[0].Status)
	assert.Nil(t, runs[0].FinishedAt)
	assert.True(t, runs[0].StartedAt.Equal(now))

	err = store.FinishScanRun(ctx, runID, db.ScanStatusOK, 12, 5, now.Add(time.Minute))
	require.NoError(t, err)

	runs, err = store.ListScanRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, db.ScanStatusOK, runs[0].Status)
	assert.Equal(t, int64(12), runs[0].TorrentsSeen)
	assert.Equal(t, int64(5), runs[0].FilesAdded)
	require.NotNil(t, runs[0].FinishedAt)
	assert.True(t, runs[0].FinishedAt.Equal(now.Add(time.Minute)))

	run2, err := store.CreateScanRun(ctx, client.ID, now.Add(2*time.Minute))
	require.NoError(t, err)

	runs, err = store.ListScanRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, run2, runs[0].ID)

	runs, err = store.ListScanRuns(ctx, 1)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, run2, runs[0].ID)
}

func TestFileIdentities(t *testing.T) {
	const dbPath = "/tmp/tarc_db_file_identities_test"
	ctx := context.Background()

	store := makeStore(ctx, t, dbPath)

	got, err := store.GetFileByOSHash(ctx, "f00fc7c8a1b2c3d4")
	require.NoError(t, err)
	require.Nil(t, got)

	hash := "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"

	file, err := store.AddFile(ctx, 1048576, "f00fc7c8a1b2c3d4", &hash)
	require.NoError(t, err)
	assert.NotZero(t, file.ID)

	got, err = store.GetFileByOSHash(ctx, "f00fc7c8a1b2c3d4")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "", cmp.Diff(file, got))

	_, err = store.AddFile(ctx, 2048, "f00fc7c8a1b2c3d4", nil)
	require.Error(t, err)
}

func TestLinkTorrentFile(t *testing.T) {
	const dbPath = "/tmp/tarc_db_link_torrent_file_test"
	ctx := context.Background()
	now := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)

	store := makeStore(ctx, t, dbPath)

	client, err := store.AddClient(ctx, "seedbox", "http://localhost:8080", now)
	require.NoError(t, err)

	snap := torrentSnapshotSample1()

	_, err = store.MergeTorrentSnapshot(ctx, client.ID, snap, db.MergeKeyPath, now)
	require.NoError(t, err)

	torrent, err := store.GetTorrentByInfoHash(ctx, snap.InfoHashV1)
	require.NoError(t, err)
	require.NotNil(t, torrent)

	files, err := store.ListTorrentFiles(ctx, torrent.ID)
	require.NoError(t, err)
	require.NotEmpty(t, files)
	require.Nil(t, files[0].FileID)

	file, err := store.AddFile(ctx, 4096, "0011223344556677", nil)
	require.NoError(t, err)

	err = store.LinkTorrentFile(ctx, files[0].ID, file.ID)
	require.NoError(t, err)

	files, err = store.ListTorrentFiles(ctx, torrent.ID)
	require.NoError(t, err)
	require.NotNil(t, files[0].FileID)
	assert.Equal(t, file.ID, *files[0].FileID)

	err = store.LinkTorrentFile(ctx, 9999, file.ID)
	require.EqualError(t, err, "no torrent file with id 9999")
}

// torrentSnapshotSample1 is a fully downloaded three-file dataset torrent.
func torrentSnapshotSample1() db.TorrentSnapshot {
	infoHashV2 := "b3e9b45b2a7a63c1205a851c5a770011a3a44913f7ae8a482e6a82e63e870a63"
	completedOn := time.Date(2026, 8, 20, 17, 30, 0, 0, time.UTC)

	return db.TorrentSnapshot{
		InfoHashV1:  "8c4adbf9ebe66f1d804fb6a4fb9b74966c3ab609",
		InfoHashV2:  &infoHashV2,
		Name:        "wikilinks-20260801",
		ContentPath: "/downloads/wikilinks-20260801",
		CompletedOn: &completedOn,
		Trackers: []string{
			"https://tracker.datasets.example/announce",
			"udp://open.example.org:1337/announce",
		},
		Files: []db.FileSnapshot{
			{Index: 0, Path: "wikilinks-20260801/part-000.jsonl.zst", IsDownloaded: true},
			{Index: 1, Path: "wikilinks-20260801/part-001.jsonl.zst", IsDownloaded: true},
			{Index: 2, Path: "wikilinks-20260801/checksums.sha256", IsDownloaded: true},
		},
	}
}

// torrentSnapshotSample2 is a second torrent that reports one file path also
// present in sample 1.
func torrentSnapshotSample2() db.TorrentSnapshot {
	return db.TorrentSnapshot{
		InfoHashV1:  "77ae0e9c3c6f1e9e4a2b8d5c0f3a6b9d2e5c8f1a",
		Name:        "aozora-mirror-2026",
		ContentPath: "/downloads/aozora-mirror-2026",
		Trackers:    []string{"https://tracker.datasets.example/announce"},
		Files: []db.FileSnapshot{
			{Index: 0, Path: "aozora-mirror-2026/index.json", IsDownloaded: false},
			{Index: 1, Path: "wikilinks-20260801/checksums.sha256", IsDownloaded: true},
		},
	}
}
