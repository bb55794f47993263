package scheduletest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManual_FiresInDeadlineOrder(t *testing.T) {
	m := NewManual()
	var order []string
	m.AfterFunc(30*time.Millisecond, func() { order = append(order, "c") })
	m.AfterFunc(10*time.Millisecond, func() { order = append(order, "a") })
	m.AfterFunc(10*time.Millisecond, func() { order = append(order, "b") })

	m.Advance(9 * time.Millisecond)
	assert.Empty(t, order)
	assert.Equal(t, 3, m.Pending())

	m.Advance(21 * time.Millisecond)
	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Equal(t, 0, m.Pending())
	assert.Equal(t, 30*time.Millisecond, m.Now())
}

func TestManual_Cancel(t *testing.T) {
	m := NewManual()
	ran := false
	h := m.AfterFunc(150*time.Millisecond, func() { ran = true })

	require.True(t, h.Cancel())
	assert.False(t, h.Cancel())

	m.Advance(time.Second)
	assert.False(t, ran)
	assert.Equal(t, 1, m.Canceled())
	assert.Equal(t, 0, m.Pending())
}

func TestManual_CancelAfterFireReportsFalse(t *testing.T) {
	m := NewManual()
	h := m.AfterFunc(time.Millisecond, func() {})

	m.Advance(time.Millisecond)

	assert.False(t, h.Cancel())
	assert.Equal(t, 0, m.Canceled())
}

func TestManual_ChainedActionsInsideWindow(t *testing.T) {
	m := NewManual()
	var fired []time.Duration
	m.AfterFunc(10*time.Millisecond, func() {
		fired = append(fired, m.Now())
		m.AfterFunc(10*time.Millisecond, func() { fired = append(fired, m.Now()) })
	})

	m.Advance(25 * time.Millisecond)

	assert.Equal(t, []time.Duration{10 * time.Millisecond, 20 * time.Millisecond}, fired)
}
