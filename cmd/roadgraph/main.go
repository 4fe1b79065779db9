package main

import (
	"fmt"
	"os"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zerologr"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/LdDl/roadgraph"
)

var (
	configFileName string
	inputFileName  string
	verbose        bool
)

var rootCmd = &cobra.Command{
	Use:           "roadgraph",
	Short:         "Build road graph from NVDB road objects and walk it",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFileName, "config", "", "Filename of HCL configuration (optional)")
	rootCmd.PersistentFlags().StringVar(&inputFileName, "file", "", "Filename of JSON document with road objects. Overrides 'input' from configuration")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print progress and per-record diagnostics")

	rootCmd.AddCommand(dumpCmd, traverseCmd, routeCmd, exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger() logr.Logger {
	zerologr.NameFieldName = "logger"
	zerologr.NameSeparator = "/"
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "2006-01-02T15:04:05.000Z07:00"}
	zlog := zerolog.New(output).Level(level).With().Timestamp().Logger()
	return zerologr.New(&zlog).WithName("roadgraph")
}

// settings Configuration file merged with command line flags
type settings struct {
	input  string
	seed   *int64
	fields roadgraph.FieldMapping
}

func loadSettings() (*settings, error) {
	cfg := roadgraph.DefaultConfiguration()
	if configFileName != "" {
		var err error
		cfg, err = roadgraph.LoadConfiguration(configFileName)
		if err != nil {
			return nil, err
		}
	}
	fields, err := cfg.FieldMapping()
	if err != nil {
		return nil, err
	}
	s := &settings{
		input:  cfg.Input,
		seed:   cfg.Seed,
		fields: fields,
	}
	if inputFileName != "" {
		s.input = inputFileName
	}
	if s.input == "" {
		return nil, fmt.Errorf("input file is required: set --file or 'input' in configuration")
	}
	return s, nil
}

func buildGraph(log logr.Logger) (*roadgraph.Graph, *settings, error) {
	s, err := loadSettings()
	if err != nil {
		return nil, nil, err
	}
	st := time.Now()
	graph, err := roadgraph.ImportFromFile(s.input,
		roadgraph.WithFieldMapping(s.fields),
		roadgraph.WithLogger(log.WithName("builder")),
	)
	if err != nil {
		return nil, nil, err
	}
	log.V(1).Info("Graph ready", "file", s.input, "elapsed", time.Since(st))
	return graph, s, nil
}
