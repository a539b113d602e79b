// Package textsplit splits long documents into overlapping windows sized
// for embedding. Windows prefer to end on a paragraph, line, sentence or
// word boundary before falling back to a hard character cut.
package textsplit

import "strings"

const (
	DefaultChunkSize    = 1000
	DefaultChunkOverlap = 150
)

// separators in descending preference order. A window end snaps back to
// the last occurrence of the highest-priority separator it contains.
var separators = []string{"\n\n", "\n", ". ", " "}

type Splitter struct {
	chunkSize    int
	chunkOverlap int
}

// New creates a splitter. Non-positive size falls back to the default;
// overlap is clamped below size so every step makes progress.
func New(chunkSize, chunkOverlap int) *Splitter {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if chunkOverlap < 0 {
		chunkOverlap = DefaultChunkOverlap
	}
	if chunkOverlap >= chunkSize {
		chunkOverlap = chunkSize - 1
	}
	return &Splitter{chunkSize: chunkSize, chunkOverlap: chunkOverlap}
}

// Split is a convenience wrapper using the default window parameters.
func Split(text string) []string {
	return New(DefaultChunkSize, DefaultChunkOverlap).Split(text)
}

// Split cuts text into windows of at most chunkSize characters where
// consecutive windows share chunkOverlap characters of context. Blank
// input yields nil. Chunks are raw substrings of the input, produced in
// document order; the function is pure.
func (s *Splitter) Split(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	runes := []rune(text)
	if len(runes) <= s.chunkSize {
		return []string{text}
	}

	var chunks []string
	start := 0
	for start < len(runes) {
		end := start + s.chunkSize
		if end >= len(runes) {
			chunks = append(chunks, string(runes[start:]))
			break
		}

		if cut := s.findBoundary(runes, start, end); cut > 0 {
			end = cut
		}
		chunks = append(chunks, string(runes[start:end]))

		next := end - s.chunkOverlap
		if next <= start {
			// Window shorter than the overlap; step past it instead of
			// re-emitting the same region.
			next = end
		}
		start = next
	}

	return chunks
}

// findBoundary returns the preferred cut position in (start, end], or 0
// when no separator leaves enough room for forward progress.
func (s *Splitter) findBoundary(runes []rune, start, end int) int {
	window := string(runes[start:end])
	// A cut must sit beyond the overlap so the next window starts after
	// the current one.
	minCut := s.chunkOverlap + 1

	for _, sep := range separators {
		idx := strings.LastIndex(window, sep)
		if idx < 0 {
			continue
		}
		// Keep the separator with the left-hand chunk.
		cut := len([]rune(window[:idx])) + len([]rune(sep))
		if cut >= minCut && start+cut < end {
			return start + cut
		}
	}
	return 0
}
