package diff

import "strings"

// Render formats diff lines as conventional unified-diff text: one line per
// item with a "- ", "+ " or "  " prefix. The caller decides how to color
// each variant.
func Render(lines []Line) string {
	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		switch line.Op {
		case Removed:
			sb.WriteString("- ")
		case Added:
			sb.WriteString("+ ")
		default:
			sb.WriteString("  ")
		}
		sb.WriteString(line.Text)
	}
	return sb.String()
}
