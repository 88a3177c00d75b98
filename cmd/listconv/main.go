package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"listkit/internal/convert"
	"listkit/internal/parser"
)

func main() {
	from := flag.String("from", "newline", "Source delimiter: newline, tab, comma, semicolon or json")
	to := flag.String("to", "comma", "Target delimiter: newline, tab, comma or semicolon")
	showRepaired := flag.Bool("show-repaired", false, "Print the normalized JSON to stderr when the source is json")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: listconv [options] [file]

Reparses a list under the source delimiter and re-serializes it with the
target delimiter. A json source holding objects is emitted as CSV with a
header row; unquoted object keys are repaired before decoding. Reads stdin
when no file is given.

Options:
`)
		flag.PrintDefaults()
	}
	flag.Parse()

	source, err := parser.FromName(*from)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	target, err := parser.FromName(*to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	text, err := readInput(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	output, err := convert.Convert(text, source, target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *showRepaired && output.Repaired != "" {
		fmt.Fprintln(os.Stderr, output.Repaired)
	}

	fmt.Println(output.Serialized)
	fmt.Fprintf(os.Stderr, "Converted %d item(s) to %s\n", len(output.Items), target.DisplayName())
}

func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}
