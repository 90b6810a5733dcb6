package urlcontent

import "unicode/utf8"

// TruncateText cuts s to at most max bytes without ever producing a
// malformed UTF-8 sequence. The cut is byte-exact; if it lands inside a
// multi-byte character the dangling partial sequence is dropped, so the
// result may be up to three bytes shorter than max. max <= 0 returns the
// empty string.
func TruncateText(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}

	cut := max
	// Back up over the partial rune at the cut point, if any. A boundary is
	// either an ASCII byte or a UTF-8 leading byte that fits entirely.
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	if cut < max {
		// s[cut] starts a rune that straddles the boundary; drop it.
		return s[:cut]
	}
	// The byte at max is a boundary, so s[:max] ends on a complete rune
	// unless its final rune is itself truncated, which cannot happen here
	// because s[max] starting a rune implies the previous one is whole.
	return s[:max]
}

// SplitBytes splits data into consecutive chunks of at most max bytes each;
// every chunk except the last is exactly max bytes. The chunks are subslices
// of data, so their concatenation reconstructs the input byte-for-byte.
// max <= 0 returns the whole input as a single chunk.
func SplitBytes(data []byte, max int) [][]byte {
	if max <= 0 || len(data) <= max {
		return [][]byte{data}
	}

	chunks := make([][]byte, 0, (len(data)+max-1)/max)
	for start := 0; start < len(data); start += max {
		end := min(start+max, len(data))
		chunks = append(chunks, data[start:end])
	}
	return chunks
}
