package strbuf

import (
	"strings"
	"testing"

	"github.com/cwbudde/algo-strbuf/internal/testutil"
	"github.com/cwbudde/algo-strbuf/strbuf/diag"
)

// checkInvariants asserts the properties every buffer holds after any call.
func checkInvariants(t *testing.T, b Buffer) {
	t.Helper()
	if b.Len() < 0 || b.Len() > b.Cap() {
		t.Fatalf("Len() = %d outside [0, Cap() = %d]", b.Len(), b.Cap())
	}
	if b.Available() != b.Cap()-b.Len() {
		t.Fatalf("Available() = %d, want %d", b.Available(), b.Cap()-b.Len())
	}
	testutil.RequireTerminated(t, b.CString(), b.Len())
	testutil.RequireContent(t, b.CString()[:b.Len()], b.String())
}

type bufferCase struct {
	name string
	new  func(capacity int, s string, rec *diag.Recorder) Buffer
}

var bufferCases = []bufferCase{
	{"fixed", func(capacity int, s string, rec *diag.Recorder) Buffer {
		return NewFixedString(capacity, s, WithSink(rec))
	}},
	{"growable", func(capacity int, s string, rec *diag.Recorder) Buffer {
		g := NewGrowable(capacity, WithSink(rec))
		g.AssignString(s)
		return g
	}},
}

func TestReplaceShiftsTail(t *testing.T) {
	cases := []struct {
		name          string
		in, old, repl string
		want          string
	}{
		{"grow middle", "I like cats a lot", "cats", "elephants", "I like elephants a lot"},
		{"shrink middle", "I like elephants a lot", "elephants", "ox", "I like ox a lot"},
		{"same size", "abcdef", "cd", "XY", "abXYef"},
		{"at start", "abcdef", "ab", "Z", "Zcdef"},
		{"at end", "abcdef", "ef", "EFGH", "abcdEFGH"},
		{"to empty", "abcdef", "bcd", "", "aef"},
		{"whole", "abcd", "abcd", "wxyz", "wxyz"},
		{"first only", "a-a-a", "a", "bb", "bb-a-a"},
		{"empty old inserts", "abc", "", ">", ">abc"},
	}
	for _, bc := range bufferCases {
		for _, tc := range cases {
			t.Run(bc.name+"/"+tc.name, func(t *testing.T) {
				rec := &diag.Recorder{}
				b := bc.new(32, tc.in, rec)
				if !b.ReplaceString(tc.old, tc.repl) {
					t.Fatalf("ReplaceString(%q, %q) = false", tc.old, tc.repl)
				}
				testutil.RequireContent(t, b.Bytes(), tc.want)
				checkInvariants(t, b)
				if n := len(rec.Diagnostics()); n != 0 {
					t.Fatalf("unexpected diagnostics: %v", rec.Diagnostics())
				}
			})
		}
	}
}

func TestReplaceAbsentIsNoOp(t *testing.T) {
	for _, bc := range bufferCases {
		t.Run(bc.name, func(t *testing.T) {
			b := bc.new(16, "hello world", &diag.Recorder{})
			before := append([]byte(nil), b.CString()...)
			capBefore := b.Cap()

			if b.ReplaceString("cats", "dogs") {
				t.Fatal("ReplaceString of absent text returned true")
			}
			testutil.RequireContent(t, b.CString(), string(before))
			if b.Cap() != capBefore {
				t.Fatalf("Cap() changed from %d to %d", capBefore, b.Cap())
			}
		})
	}
}

func TestReplaceMatchesReference(t *testing.T) {
	for _, bc := range bufferCases {
		t.Run(bc.name, func(t *testing.T) {
			for seed := int64(1); seed <= 50; seed++ {
				text := string(testutil.DeterministicText(seed, "abc", 24))
				old := string(testutil.DeterministicText(seed+1000, "abc", 1+int(seed%3)))
				repl := string(testutil.DeterministicText(seed+2000, "xyz", int(seed%5)))

				b := bc.new(64, text, &diag.Recorder{})
				ok := b.ReplaceString(old, repl)
				want := strings.Replace(text, old, repl, 1)
				if ok != strings.Contains(text, old) {
					t.Fatalf("seed %d: ReplaceString = %v", seed, ok)
				}
				testutil.RequireContent(t, b.Bytes(), want)
				checkInvariants(t, b)
			}
		})
	}
}

func TestAppendDerivedRoutesThroughAppend(t *testing.T) {
	for _, bc := range bufferCases {
		t.Run(bc.name, func(t *testing.T) {
			b := bc.new(32, "", &diag.Recorder{})
			b.AppendInt(-42)
			b.AppendByte(' ')
			b.AppendFloat(3.14159)
			b.AppendByte(' ')
			b.AppendInt(0)
			b.AppendByte(' ')
			b.AppendFloat(-0.005)
			testutil.RequireContent(t, b.Bytes(), "-42 3.14 0 -0.01")
			checkInvariants(t, b)
		})
	}
}

func TestIndexedAccess(t *testing.T) {
	for _, bc := range bufferCases {
		t.Run(bc.name, func(t *testing.T) {
			rec := &diag.Recorder{}
			b := bc.new(8, "abc", rec)

			if b.At(0) != 'a' || b.Byte(2) != 'c' {
				t.Fatal("indexed read mismatch")
			}
			b.SetByte(1, 'X')
			testutil.RequireContent(t, b.Bytes(), "aXc")

			if b.At(3) != 0 || b.At(-1) != 0 {
				t.Fatal("out-of-range At must return 0")
			}
			if rec.Count(diag.OutOfRange) != 2 {
				t.Fatalf("OutOfRange count = %d, want 2", rec.Count(diag.OutOfRange))
			}
			checkInvariants(t, b)
		})
	}
}

func TestSetBytePastLengthPanics(t *testing.T) {
	b := NewFixedString(8, "abc")
	defer func() {
		if recover() == nil {
			t.Fatal("SetByte past Len() did not panic")
		}
		checkInvariants(t, b)
	}()
	b.SetByte(3, 'x')
}

func TestEqualityAndReset(t *testing.T) {
	for _, bc := range bufferCases {
		t.Run(bc.name, func(t *testing.T) {
			b := bc.new(8, "abc", &diag.Recorder{})
			if !b.Equal(ViewString("abc")) || b.Equal(ViewString("abcd")) {
				t.Fatal("Equal mismatch")
			}
			if b.Compare(ViewString("abd")) != -1 || b.Compare(ViewString("ab")) != 1 {
				t.Fatal("Compare mismatch")
			}
			capBefore := b.Cap()
			b.Reset()
			if !b.Empty() || b.Cap() != capBefore {
				t.Fatalf("Reset left Len %d Cap %d", b.Len(), b.Cap())
			}
			checkInvariants(t, b)
		})
	}
}

func TestViewFromBufferTracksContent(t *testing.T) {
	f := NewFixedString(16, "Hello World")
	v := f.View()
	if v.Find(ViewString("World")) != 6 {
		t.Fatal("View of buffer must see its content")
	}
	if v.Len() != f.Len() {
		t.Fatalf("View Len = %d, want %d", v.Len(), f.Len())
	}
}
