package jail

// Log is a bounded, newest-first list of narration lines.
// Push never modifies the receiver, so a Log can be handed out freely.
type Log struct {
	lines []string
	size  int
}

// NewLog creates a log holding at most size lines, seeded with the given
// lines (newest first).
func NewLog(size int, lines ...string) Log {
	if size <= 0 {
		size = 1
	}
	if len(lines) > size {
		lines = lines[:size]
	}
	out := make([]string, len(lines))
	copy(out, lines)
	return Log{lines: out, size: size}
}

// Push returns a new log with line in front, evicting the oldest entry once
// the log is full.
func (l Log) Push(line string) Log {
	n := min(len(l.lines)+1, l.size)
	out := make([]string, n)
	out[0] = line
	copy(out[1:], l.lines)
	return Log{lines: out, size: l.size}
}

// Lines returns a copy of the entries, newest first.
func (l Log) Lines() []string {
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Len returns the number of entries.
func (l Log) Len() int {
	return len(l.lines)
}

// Latest returns the newest entry, or "" for an empty log.
func (l Log) Latest() string {
	if len(l.lines) == 0 {
		return ""
	}
	return l.lines[0]
}
