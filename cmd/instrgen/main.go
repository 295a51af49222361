// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"io"
	"os"
	"os/signal"

	"github.com/tebeka/atexit"

	"github.com/ezrec/instrgen/gen"
	"github.com/ezrec/instrgen/prompt"
)

// options are the command line settings.
type options struct {
	output  string
	seed    string
	verbose bool
}

// run asks for the start value, then writes the table to opts.output.
func run(opts options, stdin io.Reader, stdout io.Writer) (err error) {
	con := prompt.NewConsole(stdin, stdout)

	text, err := con.Ask(gen.PROMPT_START)
	if err != nil {
		return
	}

	// Nothing is written for a bad start value.
	start, err := gen.ParseStart(text)
	if err != nil {
		return
	}

	ouf, err := os.Create(opts.output)
	if err != nil {
		return
	}
	atexit.Register(func() { ouf.Close() })
	defer func() {
		cerr := ouf.Close()
		if err == nil {
			err = cerr
		}
	}()

	gr := &gen.Generator{
		Verbose:  opts.verbose,
		Seed:     opts.seed,
		Prompter: con,
		Output:   ouf,
	}

	_, err = gr.Run(start)
	return
}

func main() {
	var opts options

	flag.StringVar(&opts.output, "o", "outfile.rs", "Instruction table output")
	flag.StringVar(&opts.seed, "s", "", "Function for a partial first group")
	flag.BoolVar(&opts.verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		atexit.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	// Close the table on interrupt.
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		<-interrupt
		atexit.Exit(1)
	}()

	err := run(opts, os.Stdin, os.Stdout)
	if err != nil {
		atexit.Fatalf("%v: %v", opts.output, err)
	}

	atexit.Exit(0)
}
