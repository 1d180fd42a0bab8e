package input

import "testing"

func TestCodeForByte(t *testing.T) {
	cases := map[byte]string{
		' ':  "space",
		'\r': "enter",
		127:  "backspace",
		'W':  "w",
		'd':  "d",
		1:    "",
	}
	for b, want := range cases {
		if got := codeForByte(b); got != want {
			t.Errorf("codeForByte(%d) = %q, want %q", b, got, want)
		}
	}
}
