package main

import (
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"

	"github.com/labstack/gommon/color"
	"github.com/sirupsen/logrus"

	"twospace/internal"
)

// main is the CLI driver, grounded on the teacher's cmd/grotsky/main.go
// (bare os.Args usage rather than a subcommand framework) generalized to a
// proper flag.FlagSet for verbosity, since this module's pipeline now has
// something worth tracing: the lex/parse/execute stages internal.Interpret
// logs at Debug.
func main() {
	verbose := flag.Bool("v", false, "set the log level to info (pipeline stages are traced only with -vv)")
	veryVerbose := flag.Bool("vv", false, "log every pipeline stage at debug level")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Println("Usage: twospace [-v|-vv] /path/to/source.2sp")
		os.Exit(1)
	}

	var src []byte
	var err error
	if args[0] == "-" {
		src, err = ioutil.ReadAll(os.Stdin)
	} else {
		src, err = ioutil.ReadFile(args[0])
	}
	if err != nil {
		log.Fatal(err)
	}

	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	if *verbose {
		logger.SetLevel(logrus.InfoLevel)
	}
	if *veryVerbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	if err := run(os.Stdout, logger, src); err != nil {
		os.Exit(1)
	}
}

func run(out io.Writer, logger *logrus.Logger, src []byte) error {
	err := internal.Interpret(out, logger, src)
	switch e := err.(type) {
	case nil:
		return nil
	case *internal.LexerError:
		fmt.Fprintln(os.Stderr, color.Yellow(fmt.Sprintf("lexer error: %s", e.Error())))
	default:
		fmt.Fprintln(os.Stderr, color.Red(fmt.Sprintf("error: %s", e.Error())))
	}
	return err
}
