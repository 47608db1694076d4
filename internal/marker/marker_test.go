package marker

import "testing"

func TestFind(t *testing.T) {
	cases := []struct {
		in              string
		packet, message int
	}{
		{"mjqjpqmgbljsphdztnvjfqwrcgsmlb", 7, 19},
		{"bvwbjplbgvbhsrlpgdmjqwftvncz", 5, 23},
		{"nppdvjthqldpwncqszvftbrmjlhg", 6, 23},
		{"nznrnfrfntjfmvfwmzdfjlvtqnbhcprsg", 10, 29},
		{"zcfzfwzzqfrljwzlrfnpqdbhtmscgvjw", 11, 26},
	}
	for _, tc := range cases {
		if got := Find(tc.in, PacketWindow); got != tc.packet {
			t.Fatalf("Find(%q, 4) = %d, want %d", tc.in, got, tc.packet)
		}
		if got := Find(tc.in, MessageWindow); got != tc.message {
			t.Fatalf("Find(%q, 14) = %d, want %d", tc.in, got, tc.message)
		}
	}
}

func TestFindNoMarker(t *testing.T) {
	for _, in := range []string{"", "abc", "aaaaaaaaaa", "abababab"} {
		if got := Find(in, PacketWindow); got != 0 {
			t.Fatalf("Find(%q, 4) = %d, want 0", in, got)
		}
	}
	if got := Find("abcd", 0); got != 0 {
		t.Fatalf("zero window should report 0, got %d", got)
	}
}

func TestParts(t *testing.T) {
	lines := []string{"mjqjpqmgbljsphdztnvjfqwrcgsmlb", "ignored"}
	if got := PartOne(lines); got != 7 {
		t.Fatalf("PartOne = %d, want 7", got)
	}
	if got := PartTwo(lines); got != 19 {
		t.Fatalf("PartTwo = %d, want 19", got)
	}
	if got := PartOne(nil); got != 0 {
		t.Fatalf("PartOne(nil) = %d, want 0", got)
	}
}
