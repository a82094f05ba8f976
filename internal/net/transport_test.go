package net

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ShapeBoard/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardURL(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"10.0.0.2:9000", "ws://10.0.0.2:9000/board"},
		{"shapeboard://10.0.0.2:9000/", "ws://10.0.0.2:9000/board"},
		{"10.0.0.2", "ws://10.0.0.2:8888/board"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, BoardURL(tt.input))
		})
	}
}

func receive(t *testing.T, ch <-chan *state.Document) *state.Document {
	t.Helper()
	select {
	case doc := <-ch:
		return doc
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for snapshot")
		return nil
	}
}

func TestFollowReceivesSnapshots(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(hub)
	defer srv.Close()

	doc := state.NewDocument()
	doc.Current().Add(state.NewCircle(state.Point{X: 100, Y: 100}, 25, state.Color{R: 1}))
	require.NoError(t, hub.Publish(doc))

	ctx, cancel := context.WithCancel(context.Background())
	got := make(chan *state.Document, 4)
	done := make(chan error, 1)
	go func() {
		done <- Follow(ctx, strings.TrimPrefix(srv.URL, "http://"), func(d *state.Document) {
			got <- d
		})
	}()

	first := receive(t, got)
	require.Equal(t, 1, first.Current().Len())
	assert.Equal(t, state.KindCircle, first.Current().At(0).Kind())

	// Later edits to the host document do not leak into a published snapshot.
	doc.AddPage()
	require.NoError(t, hub.Publish(doc))
	second := receive(t, got)
	assert.Equal(t, 2, second.Count())
	assert.Equal(t, 1, second.Index())
	assert.Equal(t, 1, first.Count())

	assert.Eventually(t, func() bool { return hub.Peers() == 1 }, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Follow did not return after cancel")
	}
	assert.Eventually(t, func() bool { return hub.Peers() == 0 }, 5*time.Second, 10*time.Millisecond)
}

func TestFollowUnreachableHost(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	err := Follow(ctx, "127.0.0.1:1", func(*state.Document) {})
	assert.Error(t, err)
}
