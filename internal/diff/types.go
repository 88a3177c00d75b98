package diff

// Op indicates how a line participates in the unified diff.
type Op int

const (
	Context Op = iota
	Added
	Removed
)

// Line is one entry of a unified diff between two lists.
type Line struct {
	Op   Op
	Text string
}
