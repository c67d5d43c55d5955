// Package testutil holds assertions shared by the strbuf tests.
package testutil

import (
	"math/rand"
	"testing"
	"unsafe"
)

// RequireContent fails t unless got holds exactly the bytes of want.
func RequireContent(t *testing.T, got []byte, want string) {
	t.Helper()
	if string(got) != want {
		t.Fatalf("content = %q (len %d), want %q (len %d)", got, len(got), want, len(want))
	}
}

// RequireTerminated fails t unless cstr is n content bytes followed by a
// single zero terminator.
func RequireTerminated(t *testing.T, cstr []byte, n int) {
	t.Helper()
	if len(cstr) != n+1 {
		t.Fatalf("c string length = %d, want %d", len(cstr), n+1)
	}
	if cstr[n] != 0 {
		t.Fatalf("terminator = %#x, want 0", cstr[n])
	}
}

// SameStorage reports whether a and b start at the same address.
func SameStorage(a, b []byte) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	return unsafe.SliceData(a) == unsafe.SliceData(b)
}

// RequireDistinct fails t if a and b start at the same address.
func RequireDistinct(t *testing.T, a, b []byte) {
	t.Helper()
	if SameStorage(a, b) {
		t.Fatal("buffers share storage")
	}
}

// DeterministicText returns length bytes drawn from alphabet with a fixed
// seed, for reproducible randomized tests.
func DeterministicText(seed int64, alphabet string, length int) []byte {
	out := make([]byte, length)
	if alphabet == "" {
		return out
	}
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return out
}
