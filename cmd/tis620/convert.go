package main

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/urfave/cli"
	"go.uber.org/zap"

	"github.com/unkn0wn-root/tis620"
)

var cmdEncode = cli.Command{
	Name:  "encode",
	Usage: "Encode UTF-8 input as TIS-620",
	Description: `Read UTF-8 text and write TIS-620 octets.
Reads stdin and writes stdout unless --in/--out name files.`,
	Action: runEncode,
	Flags: []cli.Flag{
		cli.StringFlag{Name: "in, i", Usage: "input file (default: stdin)"},
		cli.StringFlag{Name: "out, o", Usage: "output file (default: stdout)"},
		cli.BoolFlag{Name: "lossy", Usage: "substitute or drop characters outside TIS-620 instead of failing"},
		cli.StringFlag{Name: "replacement, r", Usage: "replacement character for --lossy (omit to drop)"},
		cli.BoolFlag{Name: "verbose, v", Usage: "log conversion stats"},
	},
}

var cmdDecode = cli.Command{
	Name:  "decode",
	Usage: "Decode TIS-620 input as UTF-8",
	Description: `Read TIS-620 octets and write UTF-8 text.
Reads stdin and writes stdout unless --in/--out name files.`,
	Action: runDecode,
	Flags: []cli.Flag{
		cli.StringFlag{Name: "in, i", Usage: "input file (default: stdin)"},
		cli.StringFlag{Name: "out, o", Usage: "output file (default: stdout)"},
		cli.BoolFlag{Name: "verbose, v", Usage: "log conversion stats"},
	},
}

func runEncode(c *cli.Context) error {
	log := newLogger(c.Bool("verbose"))
	defer func() { _ = log.Sync() }()

	in, err := readInput(c.String("in"))
	if err != nil {
		return err
	}

	var out []byte
	if c.Bool("lossy") {
		repl, err := replacementPolicy(c.String("replacement"))
		if err != nil {
			return err
		}
		out = tis620.EncodeLossy(string(in), repl)
	} else {
		if c.String("replacement") != "" {
			return fmt.Errorf("--replacement requires --lossy")
		}
		out, err = tis620.Encode(string(in))
		if err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	}

	if err := writeOutput(c.String("out"), out); err != nil {
		return err
	}
	log.Info("encoded",
		zap.Int("in_bytes", len(in)),
		zap.Int("out_bytes", len(out)),
		zap.Bool("lossy", c.Bool("lossy")))
	return nil
}

func runDecode(c *cli.Context) error {
	log := newLogger(c.Bool("verbose"))
	defer func() { _ = log.Sync() }()

	in, err := readInput(c.String("in"))
	if err != nil {
		return err
	}

	text, err := tis620.Decode(in)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	if err := writeOutput(c.String("out"), []byte(text)); err != nil {
		return err
	}
	log.Info("decoded",
		zap.Int("in_bytes", len(in)),
		zap.Int("out_bytes", len(text)))
	return nil
}

// replacementPolicy turns the --replacement flag into a ReplacementFunc.
// Empty means drop; anything else must be exactly one TIS-620-representable
// character, validated here before any encoding starts.
func replacementPolicy(s string) (tis620.ReplacementFunc, error) {
	if s == "" {
		return nil, nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) || r == utf8.RuneError {
		return nil, fmt.Errorf("--replacement must be a single character, got %q", s)
	}
	rc, ok := tis620.ReplacementCharFromRune(r)
	if !ok {
		return nil, fmt.Errorf("--replacement %q is not representable in TIS-620", r)
	}
	return tis620.FixedReplacement(rc), nil
}

func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	log, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, b []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(b)
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
