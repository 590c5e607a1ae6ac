package appstate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier_AutoDismiss(t *testing.T) {
	n := NewNotifier(40 * time.Millisecond)
	defer n.Close()

	n.Success("saved")
	require.NotNil(t, n.Current())

	assert.Eventually(t, func() bool {
		return n.Current() == nil
	}, time.Second, 10*time.Millisecond)
}

func TestNotifier_ManualDismiss(t *testing.T) {
	n := NewNotifier(time.Minute)
	defer n.Close()

	n.Error("boom")
	require.NotNil(t, n.Current())

	n.Dismiss()
	assert.Nil(t, n.Current())
}

func TestNotifier_ReplacementSupersedes(t *testing.T) {
	n := NewNotifier(60 * time.Millisecond)
	defer n.Close()

	n.Success("first")
	time.Sleep(40 * time.Millisecond)

	n.Error("second")

	// the first notice's timer would have fired by now; the replacement
	// must have cancelled it and restarted the countdown
	time.Sleep(30 * time.Millisecond)
	current := n.Current()
	require.NotNil(t, current)
	assert.Equal(t, "second", current.Message)
	assert.Equal(t, NoticeError, current.Kind)

	assert.Eventually(t, func() bool {
		return n.Current() == nil
	}, time.Second, 10*time.Millisecond)
}

func TestNotifier_DismissIsIdempotent(t *testing.T) {
	n := NewNotifier(time.Minute)

	n.Success("saved")
	n.Dismiss()
	n.Dismiss()
	n.Close()

	assert.Nil(t, n.Current())
}
