package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/harrison/rustcheat/internal/highlight"
)

// Execute runs rustcheat with the process arguments and returns the exit code.
func Execute() int {
	return run(NewRootCommand(), os.Args[1:], os.Stderr)
}

// run executes root with args and reports a failure on stderr.
func run(root *cobra.Command, args []string, stderr io.Writer) int {
	root.SetArgs(positionalNegatives(root, args))
	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, errorRenderer().RenderError(err.Error()))
		return 1
	}
	return 0
}

// errorRenderer follows the color mode the command configured. Failures
// before configuration fall back to fatih/color's own terminal detection.
func errorRenderer() highlight.Renderer {
	renderer, err := highlight.NewRenderer(!color.NoColor, highlight.DefaultStyle)
	if err != nil {
		return highlight.Plain{}
	}
	return renderer
}

// positionalNegatives inserts "--" before the first negative number so that
// "-1" reaches the positional arguments and is rejected with the usage message
// instead of being parsed as a shorthand flag. A negative number that is the
// value of a preceding flag is left alone.
func positionalNegatives(root *cobra.Command, args []string) []string {
	takesValue := valueFlags(root)
	for i, arg := range args {
		if arg == "--" {
			return args
		}
		if !isNegativeNumber(arg) || (i > 0 && takesValue[args[i-1]]) {
			continue
		}
		out := make([]string, 0, len(args)+1)
		out = append(out, args[:i]...)
		out = append(out, "--")
		return append(out, args[i:]...)
	}
	return args
}

func isNegativeNumber(arg string) bool {
	digits, ok := strings.CutPrefix(arg, "-")
	return ok && digits != "" && strings.Trim(digits, "0123456789") == ""
}

// valueFlags collects the spellings of every flag that consumes the next
// argument as its value.
func valueFlags(root *cobra.Command) map[string]bool {
	names := make(map[string]bool)
	collect := func(f *pflag.Flag) {
		if f.NoOptDefVal != "" {
			return
		}
		names["--"+f.Name] = true
		if f.Shorthand != "" {
			names["-"+f.Shorthand] = true
		}
	}
	root.PersistentFlags().VisitAll(collect)
	for _, sub := range root.Commands() {
		sub.Flags().VisitAll(collect)
	}
	return names
}
