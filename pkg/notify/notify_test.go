package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowThenDismiss(t *testing.T) {
	r := New()

	r.Show("saved", KindSuccess)
	current := r.Current()
	assert.True(t, current.Visible)
	assert.Equal(t, "saved", current.Message)
	assert.Equal(t, KindSuccess, current.Kind)

	r.Dismiss()
	assert.False(t, r.Current().Visible)
}

func TestSecondShowReplacesMessageAndRestartsTimer(t *testing.T) {
	r := New(WithAutoDismiss(60 * time.Millisecond))

	r.Show("A", KindSuccess)
	time.Sleep(40 * time.Millisecond)
	r.Show("B", KindError)

	// Past A's original deadline: B must still be visible because the timer
	// restarted with the second Show.
	time.Sleep(40 * time.Millisecond)
	current := r.Current()
	require.True(t, current.Visible)
	assert.Equal(t, "B", current.Message)

	// Past B's own deadline it auto-hides.
	time.Sleep(50 * time.Millisecond)
	assert.False(t, r.Current().Visible)
}

func TestStaleTimerNeverHidesNewerMessage(t *testing.T) {
	r := New(WithAutoDismiss(30 * time.Millisecond))

	for i := 0; i < 5; i++ {
		r.Show("newest", KindInfo)
		time.Sleep(10 * time.Millisecond)
	}
	assert.True(t, r.Current().Visible)
}

func TestAutoDismissAfterDelay(t *testing.T) {
	r := New(WithAutoDismiss(20 * time.Millisecond))

	r.Show("gone soon", KindInfo)
	time.Sleep(60 * time.Millisecond)
	assert.False(t, r.Current().Visible)
}

func TestChangeListenerObservesTransitions(t *testing.T) {
	var seen []Notification
	r := New(
		WithAutoDismiss(time.Hour),
		WithChangeListener(func(n Notification) { seen = append(seen, n) }),
	)

	r.Show("A", KindSuccess)
	r.Dismiss()

	require.Len(t, seen, 2)
	assert.True(t, seen[0].Visible)
	assert.False(t, seen[1].Visible)
}
