package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/limaJavier/npreductions/pkg/config"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	verbose    bool
	config     config.Config
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "npreductions",
		Short:         "Reduce NP-complete problem instances into one another (3-SAT, Hamiltonian cycle/circuit, TSP, Subset-Sum, 3DM)",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			opts.config = cfg

			log.SetLevel(cfg.Level())
			if opts.verbose {
				log.SetLevel(log.DebugLevel)
			}
			log.Debugf("loaded config %+v", cfg)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to a YAML or JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		newReduceCommand(opts),
		newChainCommand(),
		newFormulaCommand(opts),
		newGraphCommand(),
		newDimacsCommand(),
		newKindsCommand(),
	)
	return rootCmd
}

// readInput reads the file, or the standard input when the path is empty
func readInput(cmd *cobra.Command, path string) (string, error) {
	var (
		bytes []byte
		err   error
	)
	if path == "" {
		bytes, err = io.ReadAll(cmd.InOrStdin())
	} else {
		bytes, err = os.ReadFile(path)
	}
	if err != nil {
		return "", errors.Wrapf(err, "cannot read input %q", path)
	}
	return string(bytes), nil
}

// writeOutput writes the text to the file, or to the standard output when the path is empty
func writeOutput(cmd *cobra.Command, path, text string) error {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	if path == "" {
		_, err := io.WriteString(cmd.OutOrStdout(), text)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, "cannot create directory for %q", path)
	}
	return errors.Wrapf(os.WriteFile(path, []byte(text), 0666), "cannot write output %q", path)
}
