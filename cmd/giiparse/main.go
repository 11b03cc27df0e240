// Command giiparse parses gii-norm documents from gesetze-im-internet.de
// into JSON.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/andaru/gii/config"
	"github.com/andaru/gii/metrics"
	"github.com/andaru/gii/parser"
	"github.com/andaru/gii/record"
	"github.com/andaru/gii/serialize"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var version = "0.1.0"

var zipMagic = []byte("PK\x03\x04")

// app is the state shared by the subcommands.
type app struct {
	envFiles    []string
	metricsFile string
	warnings    bool

	cfg    *config.Config
	reg    *prometheus.Registry
	parser *parser.Parser
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		glog.Flush()
		os.Exit(1)
	}
	glog.Flush()
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "giiparse",
		Short: "Parse gii-norm legal documents",
		Long: `giiparse reads gii-norm XML documents, as published per code at
https://www.gesetze-im-internet.de/<code>/xml.zip, and writes them as JSON.

Input is a file name, or standard input if none is given. Zip archives
are detected and their XML member is parsed.

Configuration is read from GII_* environment variables, optionally
loaded from --env-file.`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.writeMetrics()
		},
	}

	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	pf := rootCmd.PersistentFlags()
	pf.AddFlagSet(pflag.CommandLine)
	pf.StringSliceVar(&a.envFiles, "env-file", nil, "load environment variables from these files")
	pf.StringVar(&a.metricsFile, "metrics-file", "", "write parse metrics to this file in Prometheus text format (default $GII_METRICS_FILE)")
	pf.BoolVar(&a.warnings, "warnings", false, "print parse warnings to standard error")

	rootCmd.AddCommand(parseCmd(a))
	rootCmd.AddCommand(recordsCmd(a))
	rootCmd.AddCommand(versionCmd())
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.envFiles...)
	if err != nil {
		return err
	}
	if a.metricsFile == "" {
		a.metricsFile = cfg.MetricsFile
	}
	a.cfg = cfg
	a.reg = prometheus.NewRegistry()
	collector, err := metrics.NewCollector(a.reg)
	if err != nil {
		return errors.Wrap(err, "register metrics")
	}
	a.parser = parser.New(append(cfg.ParserOptions(), parser.WithObserver(collector))...)
	return nil
}

func (a *app) writeMetrics() error {
	if a.metricsFile == "" || a.reg == nil {
		return nil
	}
	return errors.Wrapf(prometheus.WriteToTextfile(a.metricsFile, a.reg), "write metrics to %s", a.metricsFile)
}

// parse reads and parses the input named by args.
func (a *app) parse(cmd *cobra.Command, args []string) (*parser.Result, error) {
	var (
		input []byte
		err   error
	)
	if len(args) == 0 || args[0] == "-" {
		input, err = io.ReadAll(cmd.InOrStdin())
	} else {
		input, err = os.ReadFile(args[0])
	}
	if err != nil {
		return nil, errors.Wrap(err, "read input")
	}

	var res *parser.Result
	if bytes.HasPrefix(input, zipMagic) {
		res, err = a.parser.ParseArchive(input)
	} else {
		res, err = a.parser.ParseBytes(input)
	}
	if err != nil {
		return nil, err
	}
	if a.warnings {
		for _, w := range res.Warnings {
			fmt.Fprintln(cmd.ErrOrStderr(), w)
		}
	}
	return res, nil
}

func parseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a document and print it as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.parse(cmd, args)
			if err != nil {
				return err
			}
			out, err := serialize.JSON(res.Document)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

// row is a LegalText with its change detection hash.
type row struct {
	record.LegalText
	TextHash string `json:"text_hash"`
}

func recordsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records [file]",
		Short: "Print the legal text rows of a document as JSON",
		Long: `Print one row per paragraph of every designated norm, or a single
metadata-only row when the document carries no sectioned text.

Example:
  giiparse records --code bgb bgb.xml
  curl -s https://www.gesetze-im-internet.de/bgb/xml.zip | giiparse records --code bgb`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, _ := cmd.Flags().GetString("code")
			if code == "" {
				return fmt.Errorf("--code flag is required")
			}
			res, err := a.parse(cmd, args)
			if err != nil {
				return err
			}
			rows := []row{}
			for _, lt := range record.FromDocument(res.Document, code) {
				rows = append(rows, row{LegalText: lt, TextHash: lt.Hash()})
			}
			out, err := serialize.JSON(rows)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().String("code", "", "download code of the document, e.g. bgb (required)")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "giiparse version %s\n", version)
		},
	}
}
