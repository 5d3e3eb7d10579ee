/*
Command fontcheck validates font files and reports their PostScript name and
whether their license allows embedding.

	fontcheck [-trace Info] [-checksums] font.ttf ...
	fontcheck -i

With -i, fontcheck reads font file paths interactively.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/fontvalid"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'font.check'
func tracer() tracing.Trace {
	return tracing.Select("font.check")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":  "go",
		"trace.font.check": "Info",
		"trace.font.valid": "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	interactive := flag.Bool("i", false, "Read font file paths interactively")
	checksums := flag.Bool("checksums", false, "Treat wrong table checksums as errors")
	flag.Parse()
	if err := setTraceLevel(*tlevel); err != nil {
		pterm.Error.Println(err)
		os.Exit(2)
	}
	var opts []fontvalid.Option
	if *checksums {
		opts = append(opts, fontvalid.WithChecksumVerification())
	}
	if *interactive {
		if err := repl(opts); err != nil {
			tracer().Errorf("%v", err)
			os.Exit(3)
		}
		return
	}
	if flag.NArg() == 0 {
		pterm.Error.Println("no font files given")
		flag.Usage()
		os.Exit(2)
	}
	reports := checkFiles(flag.Args(), opts)
	renderReports(reports)
	if failed(reports) > 0 {
		os.Exit(1)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func setTraceLevel(level string) error {
	switch level {
	case "Debug":
		tracing.Select("font.valid").SetTraceLevel(tracing.LevelDebug)
		tracing.Select("font.opentype").SetTraceLevel(tracing.LevelDebug)
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracing.Select("font.valid").SetTraceLevel(tracing.LevelInfo)
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		return fmt.Errorf("invalid trace level: %s", level)
	}
	return nil
}

// repl starts interactive mode.
func repl(opts []fontvalid.Option) error {
	rl, err := readline.New("fontcheck > ")
	if err != nil {
		return err
	}
	defer rl.Close()
	pterm.Info.Println("Enter font file paths, quit with <ctrl>D")
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if line == "quit" {
			break
		}
		if line == "help" {
			pterm.Println("Enter the path of a TrueType or OpenType font file, or 'quit'.")
			continue
		}
		renderReports(checkFiles(strings.Fields(line), opts))
	}
	pterm.Info.Println("Good bye!")
	return nil
}
