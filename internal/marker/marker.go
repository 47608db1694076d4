// Package marker locates start-of-packet and start-of-message markers in a
// datastream buffer.
package marker

const (
	// PacketWindow is the marker length that starts a packet.
	PacketWindow = 4
	// MessageWindow is the marker length that starts a message.
	MessageWindow = 14
)

// Find returns how many characters of s have been processed when the first
// run of size pairwise distinct characters completes. It returns 0 when s has
// no such run.
func Find(s string, size int) int {
	if size <= 0 {
		return 0
	}
	buf := []rune(s)
	for end := size; end <= len(buf); end++ {
		if distinct(buf[end-size : end]) {
			return end
		}
	}
	return 0
}

func distinct(window []rune) bool {
	for i := 1; i < len(window); i++ {
		for j := 0; j < i; j++ {
			if window[i] == window[j] {
				return false
			}
		}
	}
	return true
}

func firstLine(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return lines[0]
}

// PartOne finds the start-of-packet marker in the first input line.
func PartOne(lines []string) int {
	return Find(firstLine(lines), PacketWindow)
}

// PartTwo finds the start-of-message marker in the first input line.
func PartTwo(lines []string) int {
	return Find(firstLine(lines), MessageWindow)
}
