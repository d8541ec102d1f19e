package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/reoring/qremis/i18n"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "qremis CLI\n\nUsage:\n  qremis [-v] [-lang en|ja] describe [-root T] [-format json|yaml]\n  qremis [-v] [-lang en|ja] jsonschema [-root T]\n  qremis [-v] [-lang en|ja] validate -type T [-format json|yaml] FILE\n  qremis [-v] [-lang en|ja] scaffold [-category C] [-format-name F] [-agent A] [-format json|yaml]\n\nNotes:\n  - validate reads stdin when FILE is \"-\".")
}

// run executes the CLI and returns the process exit status: 0 on success,
// 1 when the command failed or found issues, 2 on usage errors.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("qremis", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var verbose bool
	var lang string
	fs.BoolVar(&verbose, "v", false, "enable debug logs")
	fs.StringVar(&lang, "lang", "en", "message language (en, ja)")
	fs.Usage = func() { usage(stderr) }
	if err := fs.Parse(args); err != nil {
		return 2
	}

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).
		Level(level).With().Timestamp().Logger()
	i18n.SetLanguage(lang)

	rest := fs.Args()
	if len(rest) == 0 {
		usage(stderr)
		return 2
	}
	c := &cli{stdout: stdout, stdin: stdin, log: logger}
	sub, subArgs := rest[0], rest[1:]
	logger.Debug().Str("command", sub).Strs("args", subArgs).Msg("dispatch")
	switch sub {
	case "describe":
		return c.describe(subArgs)
	case "jsonschema":
		return c.jsonSchema(subArgs)
	case "validate":
		return c.validate(subArgs)
	case "scaffold":
		return c.scaffold(subArgs)
	default:
		logger.Error().Str("command", sub).Msg("unknown command")
		usage(stderr)
		return 2
	}
}
