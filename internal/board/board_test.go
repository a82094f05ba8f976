package board

import (
	"os"
	"path/filepath"
	"testing"

	"ShapeBoard/internal/render"
	"ShapeBoard/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoard(t *testing.T) (*Board, *int) {
	t.Helper()
	b := New(DefaultSizes)
	redraws := 0
	b.OnRedraw = func() { redraws++ }
	return b, &redraws
}

func press(b *Board, x, y float64) {
	b.Press(PressEvent{Pos: state.Point{X: x, Y: y}, Button: ButtonPrimary})
}

func TestCircleRoundTrip(t *testing.T) {
	b, redraws := newTestBoard(t)
	b.SelectTool(state.ToolCircle)
	b.SetColor(state.Color{R: 1})

	press(b, 100, 100)

	page := b.Document().Current()
	require.Equal(t, 1, page.Len())
	_, s, ok := page.HitTest(state.Point{X: 100, Y: 100})
	require.True(t, ok)
	c := s.(*state.Circle)
	assert.Equal(t, 25.0, c.Radius)
	assert.Equal(t, state.Color{R: 1}, c.Fill())
	assert.Equal(t, 1, *redraws)
}

func TestPressOnCircleStartsResize(t *testing.T) {
	b, _ := newTestBoard(t)
	b.SelectTool(state.ToolCircle)
	press(b, 100, 100)
	press(b, 110, 100)

	page := b.Document().Current()
	require.Equal(t, 1, page.Len(), "pressing an existing circle must not create one")
	require.True(t, b.Dragging())

	b.Motion(state.Point{X: 100, Y: 160})
	assert.Equal(t, 60.0, page.At(0).(*state.Circle).Radius)

	b.Release(ButtonPrimary)
	assert.False(t, b.Dragging())

	// Motion after release changes nothing.
	b.Motion(state.Point{X: 100, Y: 300})
	assert.Equal(t, 60.0, page.At(0).(*state.Circle).Radius)
}

func TestRectangleDragClamps(t *testing.T) {
	b, redraws := newTestBoard(t)
	b.SelectTool(state.ToolRectangle)

	press(b, 50, 50)
	page := b.Document().Current()
	require.Equal(t, 1, page.Len())
	r := page.At(0).(*state.Rectangle)
	assert.Equal(t, state.Point{X: 50, Y: 50}, r.Origin)
	assert.Equal(t, 50.0, r.Width)
	assert.Equal(t, 50.0, r.Height)

	press(b, 50, 50)
	require.True(t, b.Dragging())
	b.Motion(state.Point{X: 30, Y: 20})
	assert.Equal(t, state.Point{X: 30, Y: 20}, r.Origin)
	assert.Zero(t, r.Width)
	assert.Zero(t, r.Height)

	b.Release(ButtonPrimary)
	assert.False(t, b.Dragging())
	assert.Equal(t, 1, page.Len())
	assert.Zero(t, r.Width)
	assert.Equal(t, 2, *redraws)
}

func TestPolygonAccumulation(t *testing.T) {
	b, _ := newTestBoard(t)
	b.SelectTool(state.ToolPolygon)

	press(b, 0, 0)
	press(b, 10, 0)
	press(b, 5, 10)
	require.True(t, b.ClosePolygon())

	page := b.Document().Current()
	require.Equal(t, 1, page.Len())
	g := page.At(0).(*state.Polygon)
	assert.False(t, g.Open)
	assert.Equal(t, []state.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 10}}, g.Vertices)

	rec := &render.Recorder{}
	require.NoError(t, b.Render(rec))
	assert.Equal(t, []string{
		"polygon n=3 fill={0 0 0}",
		`label "Page 1 of 1" at 10,30`,
	}, rec.Ops)

	// The next click starts a new polygon.
	press(b, 50, 50)
	require.Equal(t, 2, page.Len())
	assert.True(t, page.At(1).(*state.Polygon).Open)
}

func TestPolygonDoubleClickCloses(t *testing.T) {
	b, _ := newTestBoard(t)
	b.SelectTool(state.ToolPolygon)

	press(b, 0, 0)
	press(b, 10, 0)
	press(b, 10, 10)
	b.Press(PressEvent{Pos: state.Point{X: 10, Y: 10}, Button: ButtonPrimary, Double: true})

	g := b.Document().Current().At(0).(*state.Polygon)
	assert.False(t, g.Open)
	assert.Len(t, g.Vertices, 3, "the double-click point is not repeated")
	assert.False(t, b.ClosePolygon())
}

func TestEraserRemovesFirstMatchOnly(t *testing.T) {
	b, redraws := newTestBoard(t)
	b.SelectTool(state.ToolCircle)
	press(b, 100, 100)
	b.SelectTool(state.ToolRectangle)
	press(b, 90, 90)

	b.SelectTool(state.ToolEraser)
	press(b, 100, 100)

	page := b.Document().Current()
	require.Equal(t, 1, page.Len())
	assert.Equal(t, state.KindRectangle, page.At(0).Kind())
	assert.Equal(t, 3, *redraws)

	press(b, 500, 500)
	assert.Equal(t, 1, page.Len())
	assert.Equal(t, 3, *redraws, "a miss does not redraw")
}

func TestEraserOnlyTouchesCurrentPage(t *testing.T) {
	b, _ := newTestBoard(t)
	b.SelectTool(state.ToolCircle)
	press(b, 100, 100)
	b.AddPage()

	b.SelectTool(state.ToolEraser)
	press(b, 100, 100)
	assert.Equal(t, 1, b.Document().Page(0).Len())
}

func TestNoToolAndOtherButtonsIgnored(t *testing.T) {
	b, redraws := newTestBoard(t)
	press(b, 10, 10)
	assert.Zero(t, b.Document().Current().Len())

	b.SelectTool(state.ToolCircle)
	b.Press(PressEvent{Pos: state.Point{X: 10, Y: 10}, Button: ButtonSecondary})
	assert.Zero(t, b.Document().Current().Len())
	assert.Zero(t, *redraws)
}

func TestColorOnlyAffectsNewShapes(t *testing.T) {
	b, _ := newTestBoard(t)
	b.SelectTool(state.ToolCircle)
	press(b, 0, 0)
	b.SetColor(state.Color{B: 1})
	press(b, 200, 200)

	page := b.Document().Current()
	assert.Equal(t, state.Black, page.At(0).Fill())
	assert.Equal(t, state.Color{B: 1}, page.At(1).Fill())
}

func TestSelectToolEndsGesture(t *testing.T) {
	b, _ := newTestBoard(t)
	b.SelectTool(state.ToolCircle)
	press(b, 0, 0)
	press(b, 0, 0)
	require.True(t, b.Dragging())

	b.SelectTool(state.ToolEraser)
	assert.False(t, b.Dragging())
	assert.Equal(t, state.ToolEraser, b.Tool())
}

func TestPageNavigation(t *testing.T) {
	b, redraws := newTestBoard(t)
	b.PrevPage()
	b.NextPage()
	assert.Zero(t, *redraws, "boundary moves are no-ops")

	b.AddPage()
	b.AddPage()
	assert.Equal(t, 2, b.Document().Index())
	for i := 0; i < 4; i++ {
		b.PrevPage()
	}
	assert.Equal(t, 0, b.Document().Index())
	assert.Equal(t, 4, *redraws)
}

func TestExportWritesNumberedPDF(t *testing.T) {
	b, _ := newTestBoard(t)
	b.SelectTool(state.ToolCircle)
	press(b, 100, 100)
	b.AddPage()

	dir := t.TempDir()
	path, err := b.Export(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "page_2.pdf"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, len(data) > 4 && string(data[:5]) == "%PDF-")
}

func TestExportFailureIsReturned(t *testing.T) {
	b, _ := newTestBoard(t)
	_, err := b.Export(filepath.Join(t.TempDir(), "missing", "dir"))
	assert.Error(t, err)
}
