package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/limaJavier/npreductions/pkg/graph"
	"github.com/limaJavier/npreductions/pkg/reduction"
	"github.com/limaJavier/npreductions/pkg/sat"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newReduceCommand(opts *options) *cobra.Command {
	var kind, file, out string

	cmd := &cobra.Command{
		Use:   "reduce [files...]",
		Short: "Reduce an instance with one of the reductions listed by \"kinds\"",
		Long: `Reduce an instance read from --file (or the standard input) and write the result to --out (or the standard output).
When several files are given as arguments they are reduced concurrently and --out must name a directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				input, err := readInput(cmd, file)
				if err != nil {
					return err
				}
				output, err := reduction.Reduce(reduction.Kind(kind), input)
				if err != nil {
					return errors.Wrapf(err, "cannot reduce %v", kind)
				}
				return writeOutput(cmd, out, output)
			}

			if out == "" {
				return errors.New("--out must name a directory when reducing several files")
			}
			inputs := make([]string, 0, len(args))
			for _, path := range args {
				input, err := readInput(cmd, path)
				if err != nil {
					return err
				}
				inputs = append(inputs, input)
			}

			results := reduction.ReduceAll(reduction.Kind(kind), inputs, opts.config.Workers)
			failed := 0
			for i, result := range results {
				if result.Err != nil {
					log.WithField("file", args[i]).Errorf("cannot reduce: %v", result.Err)
					failed++
					continue
				}
				path := filepath.Join(out, filepath.Base(args[i]))
				if err := writeOutput(cmd, path, result.Output); err != nil {
					return err
				}
				log.WithField("file", args[i]).Infof("reduced into %v", path)
			}
			if failed > 0 {
				return errors.Errorf("%d of %d reductions failed", failed, len(results))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", "", "reduction to apply")
	cmd.Flags().StringVarP(&file, "file", "f", "", "path to the input instance")
	cmd.Flags().StringVarP(&out, "out", "o", "", "path where the output is written")
	_ = cmd.MarkFlagRequired("kind")
	return cmd
}

func newChainCommand() *cobra.Command {
	var kinds []string
	var file, out string

	cmd := &cobra.Command{
		Use:   "chain",
		Short: "Apply several reductions in a row, e.g. --kinds 3SAT-HamCycle,HamCycle-HamCircuit,HamCircuit-TSP",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, file)
			if err != nil {
				return err
			}
			output, err := reduction.Chain(input, lo.Map(kinds, func(kind string, _ int) reduction.Kind {
				return reduction.Kind(strings.TrimSpace(kind))
			})...)
			if err != nil {
				return errors.Wrap(err, "cannot apply chain")
			}
			return writeOutput(cmd, out, output)
		},
	}
	cmd.Flags().StringSliceVar(&kinds, "kinds", nil, "comma-separated reductions to apply in order")
	cmd.Flags().StringVarP(&file, "file", "f", "", "path to the input instance")
	cmd.Flags().StringVarP(&out, "out", "o", "", "path where the output is written")
	_ = cmd.MarkFlagRequired("kinds")
	return cmd
}

func newFormulaCommand(opts *options) *cobra.Command {
	var file, out string
	var includeNegations, keepDuplicates bool

	cmd := &cobra.Command{
		Use:   "formula",
		Short: "Convert a formula such as \"(a or b or !c) and (not a || b)\" into a SAT instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, file)
			if err != nil {
				return err
			}

			parseOptions := opts.config.Sat
			if cmd.Flags().Changed("include-negations") {
				parseOptions.IncludeNegations = includeNegations
			}
			if cmd.Flags().Changed("keep-duplicates") {
				parseOptions.RemoveDuplicateLiterals = !keepDuplicates
			}

			expression, err := sat.ParseFormula(strings.TrimSpace(text), parseOptions)
			if err != nil {
				return err
			}
			return writeOutput(cmd, out, sat.FormatInstance(expression))
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "path to the formula")
	cmd.Flags().StringVarP(&out, "out", "o", "", "path where the instance is written")
	cmd.Flags().BoolVar(&includeNegations, "include-negations", false, "keep negation markers on variable names")
	cmd.Flags().BoolVar(&keepDuplicates, "keep-duplicates", false, "keep repeated literals within a clause")
	return cmd
}

func newGraphCommand() *cobra.Command {
	var file, out string

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Convert free-form lines (one vertex or one \"u v\" edge per line) into a graph instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, file)
			if err != nil {
				return err
			}
			g, err := graph.ParseLines(text)
			if err != nil {
				return err
			}
			return writeOutput(cmd, out, graph.FormatInstance(g))
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "path to the graph lines")
	cmd.Flags().StringVarP(&out, "out", "o", "", "path where the instance is written")
	return cmd
}

func newDimacsCommand() *cobra.Command {
	var file, out string
	var reverse bool

	cmd := &cobra.Command{
		Use:   "dimacs",
		Short: "Convert a SAT instance into DIMACS-CNF, or back with --reverse",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, file)
			if err != nil {
				return err
			}

			if reverse {
				expression, err := sat.ParseDIMACS(strings.NewReader(text))
				if err != nil {
					return err
				}
				return writeOutput(cmd, out, sat.FormatInstance(expression))
			}

			expression, err := sat.ParseInstance(text)
			if err != nil {
				return err
			}
			dimacs, err := expression.ToDIMACS()
			if err != nil {
				return err
			}
			return writeOutput(cmd, out, dimacs)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "path to the input")
	cmd.Flags().StringVarP(&out, "out", "o", "", "path where the output is written")
	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "read DIMACS-CNF and write a SAT instance")
	return cmd
}

func newKindsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the available reductions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, kind := range reduction.Kinds() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-20v %v -> %v\n", string(kind), kind.Source(), kind.Target())
			}
			return nil
		},
	}
}
