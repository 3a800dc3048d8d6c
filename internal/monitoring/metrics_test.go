package monitoring

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordOperation(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.RecordOperation(OpLoad, ".csv", 10*time.Millisecond, nil)
	m.RecordOperation(OpLoad, ".csv", 5*time.Millisecond, errors.New("boom"))
	m.RecordOperation(OpDump, ".json", time.Millisecond, nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Operations.WithLabelValues(OpLoad, ".csv", StatusOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Operations.WithLabelValues(OpLoad, ".csv", StatusError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Operations.WithLabelValues(OpDump, ".json", StatusOK)))

	snap := m.Snapshot()
	assert.Equal(t, int64(2), snap.Loads)
	assert.Equal(t, int64(1), snap.Dumps)
	assert.Equal(t, int64(1), snap.Errors)
	assert.Equal(t, 16*time.Millisecond, snap.TotalDuration)
}

func TestSeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewMetrics(prometheus.NewRegistry())
		NewMetrics(prometheus.NewRegistry())
	})
}

func TestTimer(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	d := NewTimer(m, OpDump, ".yaml").Stop(nil)
	assert.GreaterOrEqual(t, d, time.Duration(0))
	assert.Equal(t, int64(1), m.Snapshot().Dumps)

	// nil metrics is a no-op
	NewTimer(nil, OpLoad, ".csv").Stop(nil)
}
