package strbuf_test

import (
	"fmt"

	"github.com/cwbudde/algo-strbuf/strbuf"
	"github.com/cwbudde/algo-strbuf/strbuf/diag"
)

func ExampleFixed() {
	f := strbuf.NewFixed(5, strbuf.WithSink(diag.Nop()))
	f.AssignString("HelloWorld")
	fmt.Println(f.String(), f.Len(), f.Cap())

	ok := f.ReplaceString("Hello", "Goodbye")
	fmt.Println(ok, f.String())

	// Output:
	// Hello 5 5
	// false Hello
}

func ExampleGrowable() {
	g := strbuf.NewGrowable(8)
	g.AssignString("12345")
	g.AppendString("67890")
	fmt.Println(g.String(), g.Len(), g.Cap())

	g.ReplaceString("34567", "-")
	g.AppendByte(' ')
	g.AppendFloat(9.999)
	fmt.Println(g.String())

	// Output:
	// 1234567890 10 16
	// 12-890 10.00
}

func ExampleGrowable_Move() {
	a := strbuf.NewGrowableString("payload")
	b := a.Move()
	fmt.Printf("%q %d\n", a.String(), a.Cap())
	fmt.Printf("%q\n", b.String())

	// Output:
	// "" 0
	// "payload"
}

func ExampleView() {
	v := strbuf.ViewString("Hello World")
	fmt.Println(v.Find(strbuf.ViewString("World")))
	fmt.Println(v.StartsWith(strbuf.ViewString("Hello")))
	fmt.Println(v.IndexByte('z'))

	// Output:
	// 6
	// true
	// -1
}

func ExampleBuffer() {
	fill := func(b strbuf.Buffer) {
		fmt.Printf("%v ", b.AppendString("a string longer than eight"))
		fmt.Println(b.Len(), b.String())
	}
	fill(strbuf.NewFixed(8, strbuf.WithSink(diag.Nop())))
	fill(strbuf.NewGrowable(8))

	// Output:
	// true 8 a string
	// true 26 a string longer than eight
}
