package bytealg

import (
	"runtime"
	"testing"

	"github.com/cwbudde/algo-strbuf/internal/bytealg/registry"
	"github.com/cwbudde/algo-strbuf/internal/cpu"
)

// withFeatures runs fn with the given CPU features forced and the kernel
// choice re-resolved, restoring hardware detection afterwards.
func withFeatures(t *testing.T, f cpu.Features, fn func()) {
	t.Helper()
	cpu.SetForcedFeatures(f)
	Reselect()
	defer func() {
		cpu.ResetDetection()
		Reselect()
	}()
	fn()
}

func TestForceGeneric(t *testing.T) {
	withFeatures(t, cpu.Features{ForceGeneric: true}, func() {
		if got := Implementation(); got != "generic" {
			t.Fatalf("Implementation() = %s, want generic", got)
		}
		checkKernels(t)
	})
}

func TestNativeSelected(t *testing.T) {
	var f cpu.Features
	switch runtime.GOARCH {
	case "amd64":
		f = cpu.Features{HasSSE2: true, Architecture: "amd64"}
	case "arm64":
		f = cpu.Features{HasNEON: true, Architecture: "arm64"}
	default:
		t.Skip("no native kernels on " + runtime.GOARCH)
	}
	withFeatures(t, f, func() {
		if got := Implementation(); got != "native" && got != "generic" {
			t.Fatalf("Implementation() = %s", got)
		}
		checkKernels(t)
	})
}

func TestDefaultSelection(t *testing.T) {
	Reselect()
	defer Reselect()
	if Implementation() == "" {
		t.Fatal("no implementation selected")
	}
	checkKernels(t)
}

func checkKernels(t *testing.T) {
	t.Helper()

	s := []byte("Hello World")
	if got := Index(s, []byte("World")); got != 6 {
		t.Errorf("Index = %d, want 6", got)
	}
	if got := Index(s, nil); got != 0 {
		t.Errorf("Index(empty) = %d, want 0", got)
	}
	if got := IndexByte(s, 'z'); got != -1 {
		t.Errorf("IndexByte(z) = %d, want -1", got)
	}
	if !HasPrefix(s, []byte("Hello")) || HasPrefix(s, []byte("World")) {
		t.Error("HasPrefix mismatch")
	}
	if !HasPrefix(s, nil) {
		t.Error("empty prefix must match")
	}
	if HasPrefix([]byte("He"), []byte("Hello")) {
		t.Error("longer prefix must not match")
	}
	if Compare([]byte("ab"), []byte("abc")) != -1 || Compare([]byte("b"), []byte("abc")) != 1 {
		t.Error("Compare ordering mismatch")
	}
	if !Equal([]byte("abc"), []byte("abc")) || Equal([]byte("abc"), []byte("abd")) {
		t.Error("Equal mismatch")
	}

	buf := []byte("abcdef__")
	Move(buf[2:], buf[:6])
	if string(buf) != "ababcdef" {
		t.Errorf("Move overlap = %q, want ababcdef", buf)
	}
}

func TestReselectFollowsForcedFeatures(t *testing.T) {
	Reselect()
	defer Reselect()
	_ = Implementation()

	cpu.SetForcedFeatures(cpu.Features{ForceGeneric: true})
	defer cpu.ResetDetection()
	Reselect()
	if got := Implementation(); got != "generic" {
		t.Fatalf("after forcing generic, Implementation() = %s", got)
	}

	cpu.ResetDetection()
	Reselect()
	if got, want := Implementation(), registry.Global.Lookup(cpu.DetectFeatures()).Name; got != want {
		t.Fatalf("after reset, Implementation() = %s, want %s", got, want)
	}
}
