// strvec-selftest runs the strvec scenario suite and stops at the first failure.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"

	"github.com/hupe1980/strvec"
	"github.com/hupe1980/strvec/resource"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out io.Writer) int {
	fs := flag.NewFlagSet("strvec-selftest", flag.ContinueOnError)
	fs.SetOutput(out)
	verbose := fs.Bool("v", false, "log vector growth and allocation events to stderr")
	pattern := fs.String("run", "", "only run scenarios whose name matches this regexp")
	memLimit := fs.Int64("mem", 0, "memory budget in bytes shared by all vectors (0 = unlimited)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	var filter *regexp.Regexp
	if *pattern != "" {
		re, err := regexp.Compile(*pattern)
		if err != nil {
			fmt.Fprintf(out, "invalid -run pattern: %v\n", err)
			return 2
		}
		filter = re
	}

	rc := resource.NewController(resource.Config{MemoryLimitBytes: *memLimit})
	opts := []strvec.Option{strvec.WithMemoryController(rc)}
	if *verbose {
		opts = append(opts, strvec.WithLogLevel(slog.LevelDebug))
	}

	selected := make([]scenario, 0, len(scenarios))
	for _, s := range scenarios {
		if filter == nil || filter.MatchString(s.name) {
			selected = append(selected, s)
		}
	}

	fmt.Fprintf(out, "running %d test(s)...\n\n", len(selected))
	for _, s := range selected {
		fmt.Fprintf(out, "running test '%s'... ", s.name)

		ok, err := s.run(opts)
		switch {
		case err != nil:
			fmt.Fprintf(out, "FAIL (%v)\n\n", err)
			return 1
		case !ok:
			fmt.Fprint(out, "FAIL\n\n")
			return 1
		}
		fmt.Fprintln(out, "PASS")
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%d tests completed successfully!\n", len(selected))
	if usage := rc.MemoryUsage(); usage != 0 {
		fmt.Fprintf(out, "leaked %d bytes\n", usage)
		return 1
	}
	return 0
}
