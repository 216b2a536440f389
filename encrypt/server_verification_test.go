package encrypt

import "testing"

func TestServerVerificationHash(t *testing.T) {
	cases := []struct {
		challenge int
		hash      int
	}{
		{0, 114000},
		{11092003, 112773},
		{12345678, -32046},
	}

	for _, c := range cases {
		if got := ServerVerificationHash(c.challenge); got != c.hash {
			t.Errorf("ServerVerificationHash(%d) = %d, want %d", c.challenge, got, c.hash)
		}
	}
}
