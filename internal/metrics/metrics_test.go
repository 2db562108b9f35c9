package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveDelivery(t *testing.T) {
	before := testutil.ToFloat64(deliveries.WithLabelValues("pull_request", ResultAccepted))
	ObserveDelivery("pull_request", ResultAccepted)
	ObserveDelivery("pull_request", ResultAccepted)
	after := testutil.ToFloat64(deliveries.WithLabelValues("pull_request", ResultAccepted))
	assert.Equal(t, before+2, after)
}

func TestObserveRun(t *testing.T) {
	before := testutil.ToFloat64(runs.WithLabelValues("published"))
	ObserveRun("published", 3*time.Second)
	assert.Equal(t, before+1, testutil.ToFloat64(runs.WithLabelValues("published")))
	assert.Positive(t, testutil.CollectAndCount(runDuration, "clang_format_bot_pipeline_duration_seconds"))
}
