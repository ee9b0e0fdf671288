package slippstream

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInboxBackpressure(t *testing.T) {
	in := newInbox(2)
	stop := make(chan struct{})

	require.True(t, in.push([]byte("a"), stop))
	require.True(t, in.push([]byte("b"), stop))

	pushed := make(chan bool)
	go func() {
		pushed <- in.push([]byte("c"), stop)
	}()

	select {
	case <-pushed:
		t.Fatal("push into a full inbox returned")
	case <-time.After(20 * time.Millisecond):
	}

	data, err := in.pop(nil)
	require.NoError(t, err)
	assert.Equal(t, "a", string(data))
	assert.True(t, <-pushed)
	assert.Equal(t, 2, in.len())
}

func TestInboxPushStops(t *testing.T) {
	in := newInbox(1)
	stop := make(chan struct{})
	require.True(t, in.push([]byte("a"), stop))

	pushed := make(chan bool)
	go func() {
		pushed <- in.push([]byte("b"), stop)
	}()
	close(stop)
	assert.False(t, <-pushed)
}

func TestInboxCloseDrainsFirst(t *testing.T) {
	in := newInbox(0)
	stop := make(chan struct{})
	require.True(t, in.push([]byte("a"), stop))
	in.close()
	in.close()

	assert.False(t, in.push([]byte("b"), stop))

	data, err := in.pop(nil)
	require.NoError(t, err)
	assert.Equal(t, "a", string(data))

	_, err = in.pop(nil)
	assert.ErrorIs(t, err, ErrDisconnected)
}

func TestInboxPopTimeout(t *testing.T) {
	in := newInbox(4)
	data, err := in.pop(time.After(5 * time.Millisecond))
	assert.NoError(t, err)
	assert.Nil(t, data)
}

func TestInboxPopWakesOnPush(t *testing.T) {
	in := newInbox(4)
	go func() {
		time.Sleep(5 * time.Millisecond)
		in.push([]byte("late"), nil)
	}()

	data, err := in.pop(nil)
	require.NoError(t, err)
	assert.Equal(t, "late", string(data))
}
