// Command gword is a small front-end over the symword library: it parses
// words in the canonical text form ("t*s^-1", "(id)") over an alphabet
// given with --gens and runs reduction, arithmetic, search/replace, or
// ball enumeration on them. Failures surface the error kind and the
// offending operands on stderr.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/symword/symword/ball"
	"github.com/symword/symword/match"
	"github.com/symword/symword/word"
)

var (
	flagGens       string
	flagWorkers    int
	flagNoInverses bool
)

func main() {
	root := &cobra.Command{
		Use:           "gword",
		Short:         "symbolic computation over free-group words",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flagGens, "gens", "s,t", "comma-separated generator names")

	ballCmd := &cobra.Command{
		Use:   "ball <radius>",
		Short: "enumerate all elements up to a word-length bound",
		Args:  cobra.ExactArgs(1),
		RunE:  runBall,
	}
	ballCmd.Flags().IntVar(&flagWorkers, "workers", 1, "parallel workers for sphere expansion")
	ballCmd.Flags().BoolVar(&flagNoInverses, "no-inverses", false, "do not close the generating set under inversion")

	root.AddCommand(
		&cobra.Command{
			Use:   "reduce <word>",
			Short: "print the freely reduced form and geodesic length",
			Args:  cobra.ExactArgs(1),
			RunE:  runReduce,
		},
		&cobra.Command{
			Use:   "mul <a> <b>",
			Short: "print the reduced product a*b",
			Args:  cobra.ExactArgs(2),
			RunE:  runMul,
		},
		&cobra.Command{
			Use:   "inv <word>",
			Short: "print the inverse word",
			Args:  cobra.ExactArgs(1),
			RunE:  runInv,
		},
		&cobra.Command{
			Use:   "pow <word> <n>",
			Short: "print the n-th power (n may be negative or zero)",
			Args:  cobra.ExactArgs(2),
			RunE:  runPow,
		},
		&cobra.Command{
			Use:   "find <needle> <haystack>",
			Short: "print the syllable index of the first occurrence, or -1",
			Args:  cobra.ExactArgs(2),
			RunE:  runFind,
		},
		&cobra.Command{
			Use:   "replace <haystack> <pattern> <replacement>",
			Short: "rewrite every non-overlapping occurrence, left to right",
			Args:  cobra.ExactArgs(3),
			RunE:  runReplace,
		},
		ballCmd,
	)

	if err := root.Execute(); err != nil {
		slog.Error("gword failed", "error", err)
		os.Exit(1)
	}
}

// alphabet builds the group from the --gens flag.
func alphabet() (*word.Group, error) {
	names := strings.Split(flagGens, ",")
	for i := range names {
		names[i] = strings.TrimSpace(names[i])
	}

	return word.NewGroup(names...)
}

// parseArgs parses every positional word argument over one group.
func parseArgs(args ...string) (*word.Group, []*word.Word, error) {
	g, err := alphabet()
	if err != nil {
		return nil, nil, err
	}
	words := make([]*word.Word, len(args))
	for i, a := range args {
		if words[i], err = word.Parse(g, a); err != nil {
			return nil, nil, fmt.Errorf("operand %q: %w", a, err)
		}
	}

	return g, words, nil
}

func runReduce(_ *cobra.Command, args []string) error {
	_, ws, err := parseArgs(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("%s (length %d)\n", ws[0], ws[0].Len())

	return nil
}

func runMul(_ *cobra.Command, args []string) error {
	_, ws, err := parseArgs(args[0], args[1])
	if err != nil {
		return err
	}
	prod, err := word.Mul(ws[0], ws[1])
	if err != nil {
		return err
	}
	fmt.Println(prod)

	return nil
}

func runInv(_ *cobra.Command, args []string) error {
	_, ws, err := parseArgs(args[0])
	if err != nil {
		return err
	}
	inv, err := word.Inv(ws[0])
	if err != nil {
		return err
	}
	fmt.Println(inv)

	return nil
}

func runPow(_ *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("exponent %q is not an integer", args[1])
	}
	_, ws, err := parseArgs(args[0])
	if err != nil {
		return err
	}
	p, err := word.Pow(ws[0], n)
	if err != nil {
		return err
	}
	fmt.Println(p)

	return nil
}

func runFind(_ *cobra.Command, args []string) error {
	_, ws, err := parseArgs(args[0], args[1])
	if err != nil {
		return err
	}
	idx, err := match.Find(ws[0], ws[1])
	if err != nil {
		return err
	}
	fmt.Println(idx)

	return nil
}

func runReplace(_ *cobra.Command, args []string) error {
	_, ws, err := parseArgs(args[0], args[1], args[2])
	if err != nil {
		return err
	}
	out, err := match.Replace(ws[0], ws[1], ws[2])
	if err != nil {
		return err
	}
	fmt.Println(out)

	return nil
}

func runBall(_ *cobra.Command, args []string) error {
	radius, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("radius %q is not an integer", args[0])
	}
	g, err := alphabet()
	if err != nil {
		return err
	}
	gens := make([]*word.Word, g.Rank())
	for i := range gens {
		if gens[i], err = g.Generator(i); err != nil {
			return err
		}
	}

	opts := ball.DefaultOptions()
	opts.Workers = flagWorkers
	opts.IncludeInverses = !flagNoInverses
	elems, err := ball.Grow(gens, radius, &opts)
	if err != nil {
		return err
	}
	for _, w := range elems {
		fmt.Println(w)
	}
	fmt.Fprintf(os.Stderr, "%d elements within radius %d\n", len(elems), radius)

	return nil
}
