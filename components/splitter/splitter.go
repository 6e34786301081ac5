// Package splitter provides pluggable text segmentation strategies behind a
// single Splitter interface: Unicode segment scanners, separator hierarchies,
// token windows and markdown structure.
package splitter

// Splitter is the common contract for all segmentation strategies. Chunks
// are returned in document order.
type Splitter interface {
	SplitText(text string) ([]string, error)
}
