package qbit

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// Torrent is one entry of the torrents/info listing.
type Torrent struct {
	Hash         string   `json:"hash"`
	InfoHashV1   string   `json:"infohash_v1"`
	InfoHashV2   string   `json:"infohash_v2"`
	Name         string   `json:"name"`
	ContentPath  string   `json:"content_path"`
	MagnetURI    string   `json:"magnet_uri"`
	Progress     float64  `json:"progress"`
	CompletionOn UnixTime `json:"completion_on"`
}

// IdentityHash returns the torrent's canonical identity: the v1 info-hash
// when the daemon reports one, the generic hash otherwise (v2-only torrents).
func (t Torrent) IdentityHash() string {
	if t.InfoHashV1 != "" {
		return t.InfoHashV1
	}
	return t.Hash
}

// TorrentFile is one entry of the torrents/files listing. Name holds the
// file path relative to the torrent root.
type TorrentFile struct {
	Index    int64   `json:"index"`
	Name     string  `json:"name"`
	Size     int64   `json:"size"`
	Progress float64 `json:"progress"`
}

// Tracker is one entry of the torrents/trackers listing. qBittorrent mixes
// pseudo-entries (DHT, PeX, LSD) into the list; their URLs carry a "**"
// wrapping.
type Tracker struct {
	URL    string `json:"url"`
	Status int    `json:"status"`
	Tier   int    `json:"tier"`
}

// AppVersion returns the daemon's version string, e.g. "v4.6.2".
// https://github.com/qbittorrent/qBittorrent/wiki/WebUI-API-(qBittorrent-4.1)#get-application-version
func (c *Client) AppVersion(ctx context.Context) (string, error) {
	body, err := c.get(ctx, "api/v2/app/version", url.Values{})
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(body)), nil
}

// ListTorrents returns the daemon's full torrent list.
func (c *Client) ListTorrents(ctx context.Context) ([]Torrent, error) {
	body, err := c.get(ctx, "api/v2/torrents/info", url.Values{})
	if err != nil {
		return nil, err
	}

	torrents := []Torrent{}

	err = json.Unmarshal(body, &torrents)
	if err != nil {
		return nil, errors.Wrap(err, "unmarshal")
	}

	return torrents, nil
}

// ListFiles returns the file slots of the torrent identified by hash.
func (c *Client) ListFiles(ctx context.Context, hash string) ([]TorrentFile, error) {
	q := url.Values{}
	q.Add("hash", hash)

	body, err := c.get(ctx, "api/v2/torrents/files", q)
	if err != nil {
		return nil, err
	}

	files := []TorrentFile{}

	err = json.Unmarshal(body, &files)
	if err != nil {
		return nil, errors.Wrap(err, "unmarshal")
	}

	return files, nil
}

// ListTrackers returns the tracker list of the torrent identified by hash.
func (c *Client) ListTrackers(ctx context.Context, hash string) ([]Tracker, error) {
	q := url.Values{}
	q.Add("hash", hash)

	body, err := c.get(ctx, "api/v2/torrents/trackers", q)
	if err != nil {
		return nil, err
	}

	trackers := []Tracker{}

	err = json.Unmarshal(body, &trackers)
	if err != nil {
		return nil, errors.Wrap(err, "unmarshal")
	}

	return trackers, nil
}
