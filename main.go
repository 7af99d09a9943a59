package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"reader/internal/app"
	"reader/internal/model"
	"reader/internal/prompt"
	"reader/internal/search"
	"reader/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

const (
	exitError       = 1
	exitInterrupted = 130
)

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: -p <path>\n\n")
		fmt.Fprintf(os.Stderr, "reader lets you browse to a file, then print it or search it for a string.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  reader              # Start browsing in the current directory\n")
		fmt.Fprintf(os.Stderr, "  reader -p ~/notes   # Start browsing in ~/notes\n")
		fmt.Fprintf(os.Stderr, "  reader -p a.txt -r  # Open a.txt, search with regular expressions\n")
	}

	pathFlag := pflag.StringP("path", "p", "", "Path to a file or directory (default: current directory)")
	regexFlag := pflag.BoolP("regex", "r", false, "Treat the search string as a regular expression")
	logFileFlag := pflag.String("log-file", "", "Write debug logs to the specified file")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("reader version %s\n", model.Version)
		return
	}

	var logFile *os.File
	if *logFileFlag != "" {
		f, err := tea.LogToFile(*logFileFlag, "reader")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFileFlag, err)
			os.Exit(exitError)
		}
		logFile = f
	} else {
		log.SetOutput(io.Discard)
	}

	code := run(*pathFlag, *regexFlag)
	if logFile != nil {
		logFile.Close()
	}
	os.Exit(code)
}

func run(path string, regex bool) int {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		fmt.Fprintln(os.Stderr, "Error: reader needs an interactive terminal on stdin")
		return exitError
	}

	workDir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitError
	}

	cfg := app.Config{
		Path:    path,
		WorkDir: workDir,
		Mode:    search.Literal,
		Theme:   model.DefaultTheme(),
	}
	if regex {
		cfg.Mode = search.Pattern
	}

	err = app.Run(cfg, tui.NewPrompter(os.Stdin, os.Stdout), os.Stdout)
	return exitCode(err, os.Stderr)
}

// exitCode maps the result of a run to the process exit status, reporting
// failures on stderr.
func exitCode(err error, stderr io.Writer) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, prompt.ErrInterrupted):
		return exitInterrupted
	default:
		log.Printf("run failed: %+v", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
}
