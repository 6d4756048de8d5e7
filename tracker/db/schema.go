package db

// Schema is the version this build writes into fresh stores and requires in
// existing ones. The format is YYYYMMDDX. Bump it whenever the DDL below
// changes; stores stamped with any other value are rejected, never migrated.
const Schema int64 = 202608250

var schemaSQLite3 = `
	CREATE TABLE "schema_version" (
		"id"          INTEGER PRIMARY KEY,
		"version"     INTEGER NOT NULL,
		"applied_at"  DATETIME NOT NULL
	);

	CREATE TABLE "clients" (
		"id"         INTEGER PRIMARY KEY,
		"name"       VARCHAR NOT NULL,
		"uuid"       VARCHAR NOT NULL,
		"endpoint"   VARCHAR NOT NULL,
		"last_seen"  DATETIME NOT NULL
	);

	CREATE UNIQUE INDEX "clients_name" ON "clients" ("name");
	CREATE UNIQUE INDEX "clients_uuid" ON "clients" ("uuid");

	CREATE TABLE "torrents" (
		"id"            INTEGER PRIMARY KEY,
		"info_hash_v1"  VARCHAR NOT NULL,
		"info_hash_v2"  VARCHAR NULL,     -- only for hybrid/v2 torrents
		"file_count"    INTEGER NOT NULL,
		"completed_on"  DATETIME NULL     -- null until the torrent completes
	);

	CREATE UNIQUE INDEX "torrents_info_hash_v1" ON "torrents" ("info_hash_v1");
	CREATE UNIQUE INDEX "torrents_info_hash_v2" ON "torrents" ("info_hash_v2");

	CREATE TABLE "trackers" (
		"id"         INTEGER PRIMARY KEY,
		"url"        VARCHAR NOT NULL,
		"last_seen"  DATETIME NOT NULL
	);

	CREATE UNIQUE INDEX "trackers_url" ON "trackers" ("url");

	CREATE TABLE "files" (
		"id"      INTEGER PRIMARY KEY,
		"size"    INTEGER NOT NULL,
		"oshash"  VARCHAR NOT NULL,
		"hash"    VARCHAR NULL -- full-content hash, filled lazily
	);

	CREATE UNIQUE INDEX "files_oshash" ON "files" ("oshash");
	CREATE UNIQUE INDEX "files_hash" ON "files" ("hash");

	CREATE TABLE "torrent_clients" (
		"id"            INTEGER PRIMARY KEY,
		"torrent_id"    INTEGER NOT NULL,
		"client_id"     INTEGER NOT NULL,
		"name"          VARCHAR NOT NULL,
		"content_path"  VARCHAR NOT NULL,
		"last_seen"     DATETIME NOT NULL,

		FOREIGN KEY ("torrent_id") REFERENCES "torrents" ("id"),
		FOREIGN KEY ("client_id") REFERENCES "clients" ("id")
	);

	CREATE UNIQUE INDEX "torrent_clients_torrent_client" ON "torrent_clients" ("torrent_id", "client_id");

	CREATE TABLE "torrent_trackers" (
		"id"          INTEGER PRIMARY KEY,
		"client_id"   INTEGER NOT NULL,
		"torrent_id"  INTEGER NOT NULL,
		"tracker_id"  INTEGER NOT NULL,
		"last_seen"   DATETIME NOT NULL,

		FOREIGN KEY ("client_id") REFERENCES "clients" ("id"),
		FOREIGN KEY ("torrent_id") REFERENCES "torrents" ("id"),
		FOREIGN KEY ("tracker_id") REFERENCES "trackers" ("id")
	);

	CREATE UNIQUE INDEX "torrent_trackers_client_torrent_tracker" ON "torrent_trackers" ("client_id", "torrent_id", "tracker_id");

	CREATE TABLE "torrent_files" (
		"id"             INTEGER PRIMARY KEY,
		"file_id"        INTEGER NULL, -- linked later by filesystem reconciliation
		"torrent_id"     INTEGER NOT NULL,
		"client_id"      INTEGER NOT NULL,
		"file_index"     INTEGER NOT NULL,
		"file_path"      VARCHAR NOT NULL,
		"is_downloaded"  BOOL DEFAULT FALSE,
		"last_checked"   DATETIME NOT NULL,

		FOREIGN KEY ("file_id") REFERENCES "files" ("id"),
		FOREIGN KEY ("torrent_id") REFERENCES "torrents" ("id"),
		FOREIGN KEY ("client_id") REFERENCES "clients" ("id")
	);

	CREATE UNIQUE INDEX "torrent_files_file_torrent_client_index" ON "torrent_files" ("file_id", "torrent_id", "client_id", "file_index");
	CREATE INDEX "torrent_files_file_path" ON "torrent_files" ("file_path");

	CREATE TABLE "scan_runs" (
		"id"             INTEGER PRIMARY KEY,
		"client_id"      INTEGER NOT NULL,
		"started_at"     DATETIME NOT NULL,
		"finished_at"    DATETIME NULL,
		"status"         VARCHAR NOT NULL,
		"torrents_seen"  INTEGER NOT NULL DEFAULT 0,
		"files_added"    INTEGER NOT NULL DEFAULT 0,

		FOREIGN KEY ("client_id") REFERENCES "clients" ("id")
	);
`
