package state

import (
	"fmt"
	"strings"
)

// Tool is the active editing mode. Exactly one is active at a time.
type Tool int

const (
	ToolNone Tool = iota
	ToolCircle
	ToolRectangle
	ToolPolygon
	ToolEraser
)

var toolNames = map[Tool]string{
	ToolNone:      "none",
	ToolCircle:    "circle",
	ToolRectangle: "rectangle",
	ToolPolygon:   "polygon",
	ToolEraser:    "eraser",
}

func (t Tool) String() string {
	if name, ok := toolNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Tool(%d)", int(t))
}

func ParseTool(s string) (Tool, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for t, name := range toolNames {
		if name == s {
			return t, nil
		}
	}
	return ToolNone, fmt.Errorf("unknown tool %q", s)
}
