package toggle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvent_String(t *testing.T) {
	tests := []struct {
		event    Event
		expected string
	}{
		{EventToggle, "toggle"},
		{EventRefresh, "refresh"},
		{Event(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.event.String())
		})
	}
}

func TestDispatcher_FIFO(t *testing.T) {
	d := NewDispatcher()
	sent := []Event{EventToggle, EventRefresh, EventToggle, EventToggle}
	for _, e := range sent {
		require.True(t, d.Send(e))
	}
	assert.Equal(t, len(sent), d.Len())

	for i, want := range sent {
		got, ok := d.Recv()
		require.True(t, ok)
		assert.Equal(t, want, got, "event %d", i)
	}
	assert.Equal(t, 0, d.Len())
}

func TestDispatcher_SendNeverBlocks(t *testing.T) {
	d := NewDispatcher()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10000; i++ {
			d.Send(EventToggle)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Send blocked without a consumer")
	}
	assert.Equal(t, 10000, d.Len())
}

func TestDispatcher_RecvBlocksUntilSend(t *testing.T) {
	d := NewDispatcher()
	got := make(chan Event, 1)
	go func() {
		e, ok := d.Recv()
		if ok {
			got <- e
		}
	}()

	select {
	case <-got:
		t.Fatal("Recv returned before anything was sent")
	case <-time.After(50 * time.Millisecond):
	}

	d.Send(EventRefresh)
	select {
	case e := <-got:
		assert.Equal(t, EventRefresh, e)
	case <-time.After(5 * time.Second):
		t.Fatal("Recv did not wake up")
	}
}

func TestDispatcher_CloseDrainsThenReportsClosed(t *testing.T) {
	d := NewDispatcher()
	d.Send(EventToggle)
	d.Send(EventRefresh)
	d.Close()
	d.Close()

	assert.False(t, d.Send(EventToggle), "send after close is dropped")

	e, ok := d.Recv()
	require.True(t, ok)
	assert.Equal(t, EventToggle, e)
	e, ok = d.Recv()
	require.True(t, ok)
	assert.Equal(t, EventRefresh, e)

	_, ok = d.Recv()
	assert.False(t, ok)
}

func TestDispatcher_CloseWakesConsumer(t *testing.T) {
	d := NewDispatcher()
	done := make(chan bool, 1)
	go func() {
		_, ok := d.Recv()
		done <- ok
	}()

	time.Sleep(20 * time.Millisecond)
	d.Close()

	select {
	case ok := <-done:
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("Close did not wake the consumer")
	}
}
