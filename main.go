package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/tenebris-tech/docxprune/prune"
	"github.com/tenebris-tech/docxprune/prune/docx"
	"github.com/tenebris-tech/docxprune/prune/scan"
)

func main() {
	// Parse command line flags
	minRun := flag.Int("min", 0, "Minimum consecutive empty paragraphs for an empty page (0 = ask interactively)")
	policyName := flag.String("policy", "threshold", "Detection policy: threshold or pages")
	verbose := flag.Bool("v", false, "Debug output")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	stdin := bufio.NewReader(os.Stdin)

	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("      DOCX Empty Page Finder & Remover")
	fmt.Println(strings.Repeat("=", 60))

	// Input path from positional argument, or prompt for it
	inputPath := flag.Arg(0)
	if inputPath == "" {
		inputPath = promptLine(stdin, "\nEnter path to DOCX file: ")
		// Handle quoted paths pasted from file managers
		inputPath = strings.Trim(inputPath, `"'`)
	}
	if inputPath == "" {
		fmt.Println("No file specified.")
		printUsage()
		os.Exit(1)
	}

	policy, err := buildPolicy(*policyName, *minRun, stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	pruner := prune.New(
		prune.WithPolicy(policy),
		prune.WithSelector(prune.NewConsoleSelector(stdin, os.Stdout)),
		prune.WithLogger(logger),
		prune.WithOnRegionsFound(printRegions),
	)

	fmt.Printf("\nProcessing: %s\n", inputPath)
	result, err := pruner.Run(inputPath)
	if err != nil {
		switch {
		case errors.Is(err, docx.ErrNotFound):
			fmt.Fprintf(os.Stderr, "Error: file not found: %s\n", inputPath)
		case errors.Is(err, docx.ErrInvalidFormat):
			fmt.Fprintf(os.Stderr, "Error: not a DOCX file: %v\n", err)
		default:
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	switch {
	case len(result.Regions) == 0:
		fmt.Println("\nNo empty page regions found.")
	case !result.Applied:
		fmt.Println("\nNo regions selected for deletion. The file was not modified.")
	default:
		fmt.Printf("\nRemoved %d empty paragraphs from %d region(s).\n", result.Removed, result.Selected)
		fmt.Printf("Backup created: %s\n", result.BackupPath)
		fmt.Printf("Saved: %s\n", result.Path)
	}
	fmt.Println("\nDone!")
}

// buildPolicy resolves the -policy and -min flags, prompting for the
// threshold when it was not given on the command line.
func buildPolicy(name string, minRun int, stdin *bufio.Reader) (scan.Policy, error) {
	switch name {
	case "threshold":
		if minRun < 1 {
			fmt.Println("\nHow many consecutive empty paragraphs count as an 'empty page'?")
			fmt.Println("(A typical page has ~25-30 lines, so 15-20 is a good minimum)")
			answer := promptLine(stdin, fmt.Sprintf("Minimum empty paragraphs [default: %d]: ", scan.DefaultMinRun))
			if n, err := strconv.Atoi(answer); err == nil && n > 0 {
				minRun = n
			} else {
				minRun = scan.DefaultMinRun
			}
		}
		return scan.NewThresholdPolicy(minRun), nil
	case "pages":
		return scan.NewBreakPagesPolicy(), nil
	default:
		return nil, fmt.Errorf("unknown policy %q (want threshold or pages)", name)
	}
}

func printRegions(regions []scan.Region) {
	fmt.Printf("\nFound %d empty page region(s):\n", len(regions))
	for i, region := range regions {
		fmt.Printf("  %d. %d empty paragraphs (elements %d-%d)\n",
			i+1, region.Count, region.Start, region.End)
	}
}

func promptLine(in *bufio.Reader, msg string) string {
	fmt.Print(msg)
	line, _ := in.ReadString('\n')
	return strings.TrimSpace(line)
}

func printUsage() {
	fmt.Println()
	fmt.Println("Usage: docxprune [options] <input.docx>")
	fmt.Println()
	fmt.Println("Finds pages made of consecutive empty paragraphs and offers to delete them.")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
}
