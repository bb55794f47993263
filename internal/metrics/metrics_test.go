package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNew_IndependentRegistries(t *testing.T) {
	a, b := New(), New()

	a.PageRenders.Inc()
	a.Requests.WithLabelValues("/", "200").Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.PageRenders))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.PageRenders))
	assert.Equal(t, 1.0, testutil.ToFloat64(a.Requests.WithLabelValues("/", "200")))
}
