package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/jonathan/smartjob/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_Memory(t *testing.T) {
	s, err := Open(context.Background(), config.StoreConfig{Backend: config.BackendMemory})
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, s)
	assert.NoError(t, s.Close())
}

func TestOpen_Redis(t *testing.T) {
	mr := miniredis.RunT(t)

	s, err := Open(context.Background(), config.StoreConfig{Backend: config.BackendRedis, RedisAddr: mr.Addr()})
	require.NoError(t, err)
	defer s.Close()
	assert.IsType(t, &Redis{}, s)
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open(context.Background(), config.StoreConfig{Backend: "etcd"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown store backend")
}
