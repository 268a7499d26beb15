package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStartHealthMonitorSnapshotsBeforeFirstTick(t *testing.T) {
	StartHealthMonitor(nil, nil)

	status := GetHealthStatus()
	assert.False(t, status.CheckedAt.IsZero())
	assert.False(t, status.Mongo)
	assert.Empty(t, status.Redis)
}
