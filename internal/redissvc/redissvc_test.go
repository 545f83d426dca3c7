package redissvc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisService_UnreachableServer(t *testing.T) {
	svc, err := NewRedisService(context.Background(), "127.0.0.1:1")
	require.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "127.0.0.1:1")
}
