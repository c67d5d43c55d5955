package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/cwbudde/algo-strbuf/internal/bytealg"
	"github.com/cwbudde/algo-strbuf/internal/cpu"
	"github.com/cwbudde/algo-strbuf/strbuf"
	"github.com/cwbudde/algo-strbuf/strbuf/diag"
)

// session is the state shared by the commands of one run.
type session struct {
	cfg      *Config
	sink     diag.Sink
	prevSink diag.Sink
	out      io.Writer
}

func bufferFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "capacity",
			Aliases: []string{"c"},
			Usage:   "buffer capacity in `BYTES` (default from config)",
		},
		&cli.BoolFlag{
			Name:    "growable",
			Aliases: []string{"g"},
			Usage:   "use a growable buffer instead of a fixed one",
		},
		&cli.BoolFlag{
			Name:  "strict",
			Usage: "fail assign/append on overflow instead of truncating",
		},
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	s := &session{out: stdout}

	return &cli.App{
		Name:      "strbuf",
		Usage:     "inspect fixed and growable string buffers",
		Writer:    stdout,
		ErrWriter: stderr,
		// main reports errors and picks the exit status.
		ExitErrHandler: func(*cli.Context, error) {},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "load settings from `FILE`",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "diagnostic level: debug, info, warn, error, disabled",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "suppress diagnostics",
			},
			&cli.BoolFlag{
				Name:  "generic",
				Usage: "force the portable byte kernels",
			},
		},
		Before: func(c *cli.Context) error {
			return s.setup(c, stderr)
		},
		After: func(c *cli.Context) error {
			s.teardown()
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "view",
				Usage:     "search and index a read-only view",
				ArgsUsage: "TEXT",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "find", Usage: "print the index of `NEEDLE`"},
					&cli.StringFlag{Name: "prefix", Usage: "test whether TEXT starts with `PREFIX`"},
					&cli.StringFlag{Name: "byte", Usage: "print the index of the first `CHAR`"},
					&cli.IntFlag{Name: "at", Value: -1, Usage: "print the byte at `INDEX` (checked)"},
				},
				Action: s.viewCmd,
			},
			{
				Name:      "assign",
				Usage:     "assign TEXT to a buffer",
				ArgsUsage: "TEXT",
				Flags:     bufferFlags(),
				Action:    s.assignCmd,
			},
			{
				Name:      "append",
				Usage:     "assign TEXT, then append each MORE",
				ArgsUsage: "TEXT MORE...",
				Flags:     bufferFlags(),
				Action:    s.appendCmd,
			},
			{
				Name:      "replace",
				Usage:     "replace the first OLD in TEXT with NEW",
				ArgsUsage: "TEXT OLD NEW",
				Flags:     bufferFlags(),
				Action:    s.replaceCmd,
			},
			{
				Name:  "grow",
				Usage: "trace growable capacity while the required size climbs",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "from", Value: strbuf.MinCapacity, Usage: "starting capacity"},
					&cli.IntFlag{Name: "to", Value: 256, Usage: "final required size"},
					&cli.IntFlag{Name: "step", Value: 1, Usage: "size increment per request"},
				},
				Action: s.growCmd,
			},
			{
				Name:   "info",
				Usage:  "show the selected byte kernels and CPU features",
				Action: s.infoCmd,
			},
		},
	}
}

func (s *session) setup(c *cli.Context, stderr io.Writer) error {
	cfg, err := LoadConfig(c.String("config"))
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.Bool("generic") {
		cfg.Generic = true
	}
	s.cfg = cfg

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return cli.Exit(fmt.Sprintf("invalid log level %q", cfg.LogLevel), 2)
	}
	if c.Bool("quiet") {
		s.sink = diag.Nop()
	} else {
		out := zerolog.ConsoleWriter{Out: stderr, NoColor: true, PartsExclude: []string{zerolog.TimestampFieldName}}
		s.sink = diag.NewLogSink(zerolog.New(out).Level(level))
	}
	s.prevSink = diag.SetDefault(s.sink)

	if cfg.Generic {
		f := cpu.DetectFeatures()
		f.ForceGeneric = true
		cpu.SetForcedFeatures(f)
		bytealg.Reselect()
	}
	return nil
}

func (s *session) teardown() {
	if s.prevSink != nil {
		diag.SetDefault(s.prevSink)
		s.prevSink = nil
	}
	if s.cfg != nil && s.cfg.Generic {
		cpu.ResetDetection()
		bytealg.Reselect()
	}
}

func (s *session) newBuffer(c *cli.Context) strbuf.Buffer {
	capacity := s.cfg.Capacity
	if c.IsSet("capacity") {
		capacity = c.Int("capacity")
	}
	opts := []strbuf.Option{strbuf.WithSink(s.sink)}
	if s.cfg.Strict || c.Bool("strict") {
		opts = append(opts, strbuf.WithStrict())
	}
	if c.Bool("growable") {
		return strbuf.NewGrowable(capacity, opts...)
	}
	return strbuf.NewFixed(capacity, opts...)
}

func (s *session) report(op string, ok bool, b strbuf.Buffer) {
	fmt.Fprintf(s.out, "%s ok=%t len=%d cap=%d content=%q\n", op, ok, b.Len(), b.Cap(), b.String())
}

func requireArgs(c *cli.Context, n int) error {
	if c.NArg() < n {
		return cli.Exit(fmt.Sprintf("%s: expected %s", c.Command.Name, c.Command.ArgsUsage), 2)
	}
	return nil
}

func (s *session) viewCmd(c *cli.Context) error {
	if err := requireArgs(c, 1); err != nil {
		return err
	}
	v := strbuf.ViewString(c.Args().First())
	fmt.Fprintf(s.out, "len=%d\n", v.Len())

	if c.IsSet("find") {
		fmt.Fprintf(s.out, "find %q = %d\n", c.String("find"), v.Find(strbuf.ViewString(c.String("find"))))
	}
	if c.IsSet("prefix") {
		fmt.Fprintf(s.out, "prefix %q = %t\n", c.String("prefix"), v.StartsWith(strbuf.ViewString(c.String("prefix"))))
	}
	if c.IsSet("byte") {
		ch := c.String("byte")
		if len(ch) != 1 {
			return cli.Exit("--byte takes exactly one character", 2)
		}
		fmt.Fprintf(s.out, "byte %q = %d\n", ch, v.IndexByte(ch[0]))
	}
	if c.IsSet("at") {
		i := c.Int("at")
		fmt.Fprintf(s.out, "at %d = %q\n", i, v.At(i))
	}
	return nil
}

func (s *session) assignCmd(c *cli.Context) error {
	if err := requireArgs(c, 1); err != nil {
		return err
	}
	b := s.newBuffer(c)
	ok := b.AssignString(c.Args().First())
	s.report("assign", ok, b)
	return nil
}

func (s *session) appendCmd(c *cli.Context) error {
	if err := requireArgs(c, 2); err != nil {
		return err
	}
	b := s.newBuffer(c)
	args := c.Args().Slice()
	ok := b.AssignString(args[0])
	s.report("assign", ok, b)
	for _, more := range args[1:] {
		ok = b.AppendString(more)
		s.report("append", ok, b)
	}
	return nil
}

func (s *session) replaceCmd(c *cli.Context) error {
	if err := requireArgs(c, 3); err != nil {
		return err
	}
	b := s.newBuffer(c)
	args := c.Args().Slice()
	b.AssignString(args[0])
	ok := b.ReplaceString(args[1], args[2])
	s.report("replace", ok, b)
	return nil
}

func (s *session) growCmd(c *cli.Context) error {
	from, to, step := c.Int("from"), c.Int("to"), c.Int("step")
	if step <= 0 {
		return cli.Exit("--step must be positive", 2)
	}
	if to < from {
		return cli.Exit("--to must not be below --from", 2)
	}

	g := strbuf.NewGrowable(from)
	tw := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Need\tOld Cap\tNew Cap\tAllocated\n")
	fmt.Fprintf(tw, "----\t-------\t-------\t---------\n")
	reallocs := 0
	for need := from; need <= to; need += step {
		before := g.Cap()
		g.Resize(need)
		if g.Cap() == before {
			continue
		}
		reallocs++
		fmt.Fprintf(tw, "%d\t%d\t%d\t%s\n", need, before, g.Cap(), humanize.Bytes(uint64(g.Cap()+1)))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	fmt.Fprintf(s.out, "%s reallocations for %s requests\n",
		humanize.Comma(int64(reallocs)), humanize.Comma(int64((to-from)/step+1)))
	return nil
}

func (s *session) infoCmd(c *cli.Context) error {
	f := cpu.DetectFeatures()
	tw := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "kernel\t%s\n", bytealg.Implementation())
	fmt.Fprintf(tw, "arch\t%s\n", f.Architecture)
	fmt.Fprintf(tw, "sse2\t%s\n", strconv.FormatBool(f.HasSSE2))
	fmt.Fprintf(tw, "avx2\t%s\n", strconv.FormatBool(f.HasAVX2))
	fmt.Fprintf(tw, "neon\t%s\n", strconv.FormatBool(f.HasNEON))
	fmt.Fprintf(tw, "force-generic\t%s\n", strconv.FormatBool(f.ForceGeneric))
	return tw.Flush()
}
