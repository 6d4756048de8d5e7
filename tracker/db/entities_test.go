package db_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarc-io/tarc/tracker/db"
)

func TestParseMergeKey(t *testing.T) {
	key, err := db.ParseMergeKey("")
	require.NoError(t, err)
	assert.Equal(t, db.MergeKeyPath, key)

	key, err = db.ParseMergeKey("path")
	require.NoError(t, err)
	assert.Equal(t, db.MergeKeyPath, key)

	key, err = db.ParseMergeKey("tuple")
	require.NoError(t, err)
	assert.Equal(t, db.MergeKeyTuple, key)

	_, err = db.ParseMergeKey("basename")
	require.Error(t, err)
}
