package state

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentJSON(t *testing.T) {
	d := NewDocument()
	d.Current().Add(NewCircle(Point{100, 100}, 25, Color{R: 1}))
	d.AddPage()
	d.Current().Add(NewRectangle(Point{5, 6}, 50, 30, Color{G: 0.5}))
	open := NewPolygon(Color{B: 1}, Point{0, 0}, Point{10, 0})
	d.Current().Add(open)
	d.PrevPage()

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"kind":"circle"`)
	assert.Contains(t, string(data), `"open":true`)

	var got Document
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, 2, got.Count())
	assert.Equal(t, 0, got.Index())

	c, ok := got.Page(0).At(0).(*Circle)
	require.True(t, ok)
	assert.Equal(t, 25.0, c.Radius)
	assert.Equal(t, Color{R: 1}, c.Fill())

	g, ok := got.Page(1).At(1).(*Polygon)
	require.True(t, ok)
	assert.True(t, g.Open)
	assert.Len(t, g.Vertices, 2)
}

func TestDocumentJSONRejectsBadInput(t *testing.T) {
	tests := map[string]string{
		"no pages":     `{"current":0,"pages":[]}`,
		"bad cursor":   `{"current":3,"pages":[[]]}`,
		"unknown kind": `{"current":0,"pages":[[{"kind":"star"}]]}`,
		"no center":    `{"current":0,"pages":[[{"kind":"circle","radius":3}]]}`,
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			var d Document
			assert.Error(t, json.Unmarshal([]byte(input), &d))
		})
	}
}
