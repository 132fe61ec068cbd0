package prune

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/tenebris-tech/docxprune/prune/scan"
)

// ConfirmToken is the literal the operator must type before an
// accept-all selection deletes anything.
const ConfirmToken = "yes"

// ConsoleSelector prompts the operator for a decision per run of the
// selector. Accept-all requires typing ConfirmToken at a second prompt
// before anything is scheduled; any unrecognized top-level choice
// cancels.
type ConsoleSelector struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsoleSelector creates a selector reading operator input from in
// and writing prompts to out.
func NewConsoleSelector(in io.Reader, out io.Writer) *ConsoleSelector {
	return &ConsoleSelector{in: bufio.NewReader(in), out: out}
}

// Select implements the interactive accept-all / per-region / cancel
// decision.
func (c *ConsoleSelector) Select(regions []scan.Region) ([]scan.Region, error) {
	fmt.Fprintln(c.out, "\nOptions:")
	fmt.Fprintln(c.out, "  [a] Delete ALL empty page regions")
	fmt.Fprintln(c.out, "  [s] Select regions to delete")
	fmt.Fprintln(c.out, "  [n] Cancel - don't delete anything")

	choice, err := c.prompt("\nYour choice (a/s/n): ")
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(choice) {
	case "a":
		confirm, err := c.prompt(fmt.Sprintf("\nDelete all empty page regions? Type '%s' to confirm: ", ConfirmToken))
		if err != nil {
			return nil, err
		}
		if strings.ToLower(confirm) != ConfirmToken {
			return nil, nil
		}
		return regions, nil

	case "s":
		fmt.Fprintln(c.out, "\nFor each region, type 'y' to delete or 'n' to keep:")
		var selected []scan.Region
		for i, region := range regions {
			answer, err := c.prompt(fmt.Sprintf("  Delete region %d (%d empty paragraphs)? (y/n): ", i+1, region.Count))
			if err != nil {
				return nil, err
			}
			if strings.ToLower(answer) == "y" {
				selected = append(selected, region)
			}
		}
		return selected, nil

	default:
		return nil, nil
	}
}

func (c *ConsoleSelector) prompt(msg string) (string, error) {
	fmt.Fprint(c.out, msg)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		if err == io.EOF {
			// Operator closed the input stream; treat as cancel.
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
