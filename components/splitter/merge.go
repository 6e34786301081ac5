package splitter

import (
	"strings"
	"unicode/utf8"
)

// mergeSplits packs adjacent splits into chunks of at most chunkSize
// characters joined by separator, carrying roughly overlap characters from
// the tail of each chunk into the head of the next.
func mergeSplits(splits []string, separator string, chunkSize, overlap int) []string {
	sepLen := utf8.RuneCountInString(separator)
	var (
		chunks  []string
		current []string
		total   int
	)
	joined := func() int {
		if len(current) > 0 {
			return sepLen
		}
		return 0
	}
	for _, split := range splits {
		size := utf8.RuneCountInString(split)
		if len(current) > 0 && total+joined()+size > chunkSize {
			if chunk := strings.TrimSpace(strings.Join(current, separator)); chunk != "" {
				chunks = append(chunks, chunk)
			}
			// drop head splits until the remainder fits the overlap budget
			// and leaves room for the incoming split
			for len(current) > 0 && (total > overlap || total+joined()+size > chunkSize) {
				total -= utf8.RuneCountInString(current[0])
				if len(current) > 1 {
					total -= sepLen
				}
				current = current[1:]
			}
		}
		current = append(current, split)
		total += size
		if len(current) > 1 {
			total += sepLen
		}
	}
	if chunk := strings.TrimSpace(strings.Join(current, separator)); chunk != "" {
		chunks = append(chunks, chunk)
	}
	return chunks
}
