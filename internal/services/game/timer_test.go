package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRoundTimer_Fires(t *testing.T) {
	fired := make(chan struct{})
	newRoundTimer(5*time.Millisecond, func() {
		close(fired)
	})

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}
}

func TestRoundTimer_CancelPreventsFiring(t *testing.T) {
	fired := make(chan struct{})
	rt := newRoundTimer(20*time.Millisecond, func() {
		close(fired)
	})

	assert.True(t, rt.Cancel())

	select {
	case <-fired:
		t.Fatal("cancelled timer fired")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestRoundTimer_CancelAfterFire(t *testing.T) {
	fired := make(chan struct{})
	rt := newRoundTimer(time.Millisecond, func() {
		close(fired)
	})

	<-fired

	assert.False(t, rt.Cancel())
}

func TestRoundTimer_DoubleCancel(t *testing.T) {
	rt := newRoundTimer(time.Hour, func() {
		t.Error("timer fired")
	})

	assert.True(t, rt.Cancel())
	assert.False(t, rt.Cancel())
}
