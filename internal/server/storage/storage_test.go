package storage

import (
	"context"
	"testing"

	"github.com/abezemskiy/authforms/internal/server/storage/inmemory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	stor, err := New(context.Background(), "")
	require.NoError(t, err)
	assert.IsType(t, &inmemory.Store{}, stor)
	require.NoError(t, stor.Close())

	_, err = New(context.Background(), "not a dsn")
	require.Error(t, err)
}
