package ingest

// SplitWindows splits text into overlapping fixed-size windows of runes.
// Windows respect no semantic boundary: pure character-count slicing where
// consecutive windows share exactly overlap runes. overlap must be smaller
// than size. Removing the overlap from every window after the first
// reproduces the input character sequence.
func SplitWindows(text string, size, overlap int) []string {
	if size <= 0 || overlap < 0 || overlap >= size {
		return nil
	}

	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	step := size - overlap
	var windows []string
	for start := 0; start < len(runes); start += step {
		end := start + size
		if end >= len(runes) {
			windows = append(windows, string(runes[start:]))
			break
		}
		windows = append(windows, string(runes[start:end]))
	}

	return windows
}
