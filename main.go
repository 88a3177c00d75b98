package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/pflag"

	"listkit/internal/app"
	"listkit/internal/compare"
	"listkit/internal/config"
)

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: listkit [options] <list1> [list2]\n\n")
		fmt.Fprintf(os.Stderr, "listkit compares and transforms delimited lists.\n")
		fmt.Fprintf(os.Stderr, "With two inputs it computes the set relationships between them;\n")
		fmt.Fprintf(os.Stderr, "with one input it applies a single-list operation. Use - for stdin.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  listkit a.txt b.txt             # set relationships, grid view\n")
		fmt.Fprintf(os.Stderr, "  listkit --diff a.txt b.txt      # unified diff\n")
		fmt.Fprintf(os.Stderr, "  listkit --sort asc -d comma -   # sort a comma list from stdin\n")
		fmt.Fprintf(os.Stderr, "  listkit --dedup list.txt        # trim and deduplicate\n")
	}

	delimFlag := pflag.StringP("delimiter", "d", "", "List delimiter: newline, tab, comma, semicolon or json")
	caseFlag := pflag.Bool("case-sensitive", false, "Compare items case-sensitively")
	trimFlag := pflag.Bool("trim", true, "Trim whitespace before comparing items")
	sortFlag := pflag.String("sort", "", "Sort one list: asc or desc")
	dedupFlag := pflag.Bool("dedup", false, "Trim whitespace and remove duplicates from one list")
	filterFlag := pflag.String("filter", "", "Keep only items matching this query")
	fuzzyFlag := pflag.Bool("fuzzy", false, "Use fuzzy matching with --filter")
	diffFlag := pflag.Bool("diff", false, "Show a unified diff instead of the grid view")
	summaryFlag := pflag.Bool("summary", false, "Print only the comparison counts")
	outputFlag := pflag.StringP("output-dir", "o", "", "Write the four comparison results to this directory")
	configFlag := pflag.String("config", "", "Path to an alternative config file")
	logFlag := pflag.String("log", "", "Write a debug log to this file")
	pflag.Parse()

	if *logFlag != "" {
		logFile, err := os.Create(*logFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logFile.Close()
		log.SetOutput(logFile)
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Flags override the config only when set on the command line.
	delimiter := cfg.Delimiter
	if pflag.Lookup("delimiter").Changed {
		delimiter = *delimFlag
	}
	opts := compare.Options{CaseSensitive: cfg.CaseSensitive, Trim: cfg.TrimSpaces}
	if pflag.Lookup("case-sensitive").Changed {
		opts.CaseSensitive = *caseFlag
	}
	if pflag.Lookup("trim").Changed {
		opts.Trim = *trimFlag
	}

	application, err := app.New(delimiter, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	args := pflag.Args()
	if len(args) == 0 || len(args) > 2 {
		pflag.Usage()
		os.Exit(2)
	}

	texts := make([]string, len(args))
	for i, arg := range args {
		text, err := readInput(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		texts[i] = text
	}

	if len(args) == 1 {
		if err := runSingle(application, texts[0], *sortFlag, *dedupFlag, *filterFlag, *fuzzyFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runCompare(application, texts[0], texts[1], *diffFlag, *summaryFlag, *outputFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}

// readInput reads a list file, or stdin when the argument is "-". The
// content is an opaque string; the delimiter decides its meaning.
func readInput(arg string) (string, error) {
	if arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", arg, err)
	}
	return string(data), nil
}

// runSingle applies one single-list operation and prints the result.
func runSingle(a *app.App, text, sortOrder string, dedup bool, filter string, fuzzyMatch bool) error {
	switch {
	case sortOrder != "":
		if sortOrder != "asc" && sortOrder != "desc" {
			return fmt.Errorf("invalid --sort order %q: use asc or desc", sortOrder)
		}
		out, err := a.Sort(text, sortOrder == "desc")
		if err != nil {
			return err
		}
		fmt.Println(out)
	case dedup:
		out, status, err := a.TrimDedup(text)
		if err != nil {
			return err
		}
		fmt.Println(out)
		fmt.Fprintln(os.Stderr, status)
	case filter != "":
		out, err := a.Filter(text, filter, fuzzyMatch)
		if err != nil {
			return err
		}
		fmt.Println(out)
	default:
		return fmt.Errorf("one input needs an operation: --sort, --dedup or --filter")
	}
	return nil
}

// runCompare computes the set relationships between two lists and prints
// them as a grid, a summary line or a unified diff.
func runCompare(a *app.App, textA, textB string, asDiff, summaryOnly bool, outputDir string) error {
	if asDiff {
		out, err := a.Diff(textA, textB)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	result, err := a.Compare(textA, textB)
	if err != nil {
		return err
	}
	log.Printf("compare: %s", result.Summary())

	if summaryOnly {
		fmt.Println(result.Summary())
	} else {
		printGrid(result)
	}

	if outputDir != "" {
		paths, err := app.SaveResults(result, outputDir)
		if err != nil {
			return err
		}
		for _, path := range paths {
			fmt.Fprintf(os.Stderr, "Saved %s\n", path)
		}
	}
	return nil
}

func printGrid(result compare.Result) {
	sections := []struct {
		title string
		items []string
	}{
		{"Only in List 1", result.OnlyA},
		{"Only in List 2", result.OnlyB},
		{"Intersection", result.Intersection},
		{"Union", result.Union},
	}

	for i, section := range sections {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s (%d items)\n", section.title, len(section.items))
		for _, item := range section.items {
			fmt.Println("  " + item)
		}
	}
}
