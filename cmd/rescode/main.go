// Command rescode resolves resistances to standard E12 parts and prints
// their color codes.
//
// Usage:
//
//	rescode [flags] value ...
//
// Values take an optional o, k or M suffix.
//
// Examples:
//
//	rescode 4.7k
//	rescode -combos 1100 15.2k
//	rescode -list
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/algo-analog/analog/resistor"
	"github.com/cwbudde/algo-analog/analog/units"
)

func main() {
	combos := flag.Bool("combos", false, "also list two-resistor combinations closer than the nearest standard value")
	list := flag.Bool("list", false, "list the standard series with color codes")
	precision := flag.Int("precision", 4, "significant digits of printed values")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: rescode [flags] value ...\n\n")
		fmt.Fprintf(os.Stderr, "Prints the nearest E12 resistor and its color code for each value.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  rescode 4.7k\n")
		fmt.Fprintf(os.Stderr, "  rescode -combos 1100 15.2k\n")
		fmt.Fprintf(os.Stderr, "  rescode -list\n")
	}
	flag.Parse()

	if *list {
		if err := printList(os.Stdout, resistor.E12()); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	values := parseValues(flag.Args(), os.Stderr)
	if len(values) == 0 {
		fmt.Fprintf(os.Stderr, "error: no valid resistance values\n")
		os.Exit(1)
	}

	if err := printCodes(os.Stdout, resistor.E12(), values, *combos, *precision); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// parseValues converts arguments to ohms, warning about and skipping the
// ones that do not parse.
func parseValues(args []string, warn io.Writer) []float64 {
	var values []float64
	for _, arg := range args {
		m, err := units.Parse(arg, units.Resistance)
		if err != nil {
			fmt.Fprintf(warn, "warning: skipping %q: %v\n", arg, err)
			continue
		}
		values = append(values, m.Magnitude)
	}
	return values
}

func printList(w io.Writer, s resistor.Series) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Value\tOhms\tColor Code\n")
	fmt.Fprintf(tw, "-----\t----\t----------\n")
	for _, v := range s.Values() {
		bands, err := resistor.Encode(v)
		if err != nil {
			return fmt.Errorf("encode %v: %w", v, err)
		}
		fmt.Fprintf(tw, "%s\t%s\t%v\n", units.Format(v, units.Resistance, 4), strconv.FormatFloat(v, 'g', -1, 64), bands)
	}
	return tw.Flush()
}

func printCodes(w io.Writer, s resistor.Series, values []float64, combos bool, precision int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Target\tNearest\tDifference\tColor Code\n")
	fmt.Fprintf(tw, "------\t-------\t----------\t----------\n")

	var extra [][]resistor.Combination
	for _, v := range values {
		code, err := s.StandardCode(v)
		if err != nil {
			fmt.Fprintf(tw, "%s\t-\t-\t%v\n", units.Format(v, units.Resistance, precision), err)
			extra = append(extra, nil)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%v\n",
			units.Format(v, units.Resistance, precision),
			units.Format(code.Value, units.Resistance, precision),
			units.Format(code.Difference, units.Resistance, precision),
			code.Bands,
		)

		var cs []resistor.Combination
		if combos && !code.Exact() {
			if cs, err = s.SuggestCombinations(v, code.Difference); err != nil {
				return fmt.Errorf("combinations for %v: %w", v, err)
			}
		}
		extra = append(extra, cs)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if !combos {
		return nil
	}
	for i, cs := range extra {
		if len(cs) == 0 {
			continue
		}
		fmt.Fprintf(w, "\nCombinations for %s:\n", units.Format(values[i], units.Resistance, precision))
		for _, c := range cs {
			fmt.Fprintf(w, "  %v\n", c)
		}
	}
	return nil
}
