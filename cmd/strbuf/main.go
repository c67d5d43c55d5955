// Command strbuf exercises the strbuf buffers from the shell.
//
// Usage:
//
//	strbuf [global flags] <command> [flags] args...
//
// Examples:
//
//	strbuf assign -c 5 HelloWorld
//	strbuf append --growable 12345 67890
//	strbuf replace -c 4 abcd abcd toolong
//	strbuf view --find World --prefix Hello "Hello World"
//	strbuf grow --from 8 --to 300
//	strbuf --generic info
//
// Settings come from flags, then STRBUF_* environment variables, then an
// optional strbuf.yaml, then built-in defaults.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		code := 1
		var ec cli.ExitCoder
		if errors.As(err, &ec) {
			code = ec.ExitCode()
		}
		os.Exit(code)
	}
}
