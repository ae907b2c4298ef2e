package tools

import "fmt"

// Tool selects how pointer gestures are interpreted.
type Tool int

const (
	ToolPen Tool = iota
	ToolRect
	ToolCircle
	ToolText
	ToolEraser
	ToolSelect
)

func (t Tool) String() string {
	switch t {
	case ToolPen:
		return "pen"
	case ToolRect:
		return "rectangle"
	case ToolCircle:
		return "circle"
	case ToolText:
		return "text"
	case ToolEraser:
		return "eraser"
	case ToolSelect:
		return "select"
	}
	return fmt.Sprintf("tool(%d)", int(t))
}

// ParseTool maps the six command identifiers onto tools. "freehand" is
// accepted as an alias for the pen.
func ParseTool(name string) (Tool, error) {
	switch name {
	case "pen", "freehand":
		return ToolPen, nil
	case "rectangle":
		return ToolRect, nil
	case "circle":
		return ToolCircle, nil
	case "text":
		return ToolText, nil
	case "eraser":
		return ToolEraser, nil
	case "select":
		return ToolSelect, nil
	}
	return ToolPen, fmt.Errorf("unknown tool %q", name)
}
