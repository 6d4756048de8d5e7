package tracker

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tarc-io/tarc/qbit"
)

type snapshotClientMock struct {
	mock.Mock
}

func (m *snapshotClientMock) AppVersion(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *snapshotClientMock) ListTorrents(ctx context.Context) ([]qbit.Torrent, error) {
	args := m.Called(ctx)
	return args.Get(0).([]qbit.Torrent), args.Error(1)
}

func (m *snapshotClientMock) ListFiles(ctx context.Context, hash string) ([]qbit.TorrentFile, error) {
	args := m.Called(ctx, hash)
	return args.Get(0).([]qbit.TorrentFile), args.Error(1)
}

func (m *snapshotClientMock) ListTrackers(ctx context.Context, hash string) ([]qbit.Tracker, error) {
	args := m.Called(ctx, hash)
	return args.Get(0).([]qbit.Tracker), args.Error(1)
}
