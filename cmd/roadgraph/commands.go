package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/LdDl/roadgraph"
)

var (
	traverseSeed  int64
	traverseStart string
	routeFrom     string
	routeTo       string
	exportOut     string
	exportGeomFmt string
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print every link with its endpoints and geometry",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		graph, _, err := buildGraph(newLogger())
		if err != nil {
			return err
		}
		text, err := roadgraph.RenderLinks(graph)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), text)
		return err
	},
}

var traverseCmd = &cobra.Command{
	Use:   "traverse",
	Short: "Walk graph breadth-first from random (or given) node and print passed links",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		graph, s, err := buildGraph(log)
		if err != nil {
			return err
		}
		var steps []roadgraph.TraversalStep
		if traverseStart != "" {
			steps, err = roadgraph.BreadthFirstFrom(graph, traverseStart)
		} else {
			seed := time.Now().UnixNano()
			if s.seed != nil {
				seed = *s.seed
			}
			if cmd.Flags().Changed("seed") {
				seed = traverseSeed
			}
			log.Info("Random start", "seed", seed)
			steps, err = roadgraph.BreadthFirst(graph, rand.New(rand.NewSource(seed)))
		}
		if err != nil {
			return err
		}
		return roadgraph.WriteTrace(cmd.OutOrStdout(), steps)
	},
}

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Find shortest directed path between two nodes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		graph, _, err := buildGraph(log)
		if err != nil {
			return err
		}
		router, err := roadgraph.NewRouter(graph, log.WithName("router"))
		if err != nil {
			return err
		}
		cost, path, err := router.ShortestPath(routeFrom, routeTo)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Cost: %f m\nPath: %s\n", cost, strings.Join(path, " -> "))
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export graph to GeoJSON or CSV files",
	Long: `Export graph to files.
If --out ends with '.geojson' a single FeatureCollection is written.
Otherwise two ';'-separated files are written: 'X.csv' (links) and 'X_nodes.csv'.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		graph, _, err := buildGraph(newLogger())
		if err != nil {
			return err
		}
		if strings.HasSuffix(strings.ToLower(exportOut), ".geojson") {
			return exportGeoJSON(graph, exportOut)
		}
		format, err := roadgraph.ParseGeometryFormat(exportGeomFmt)
		if err != nil {
			return err
		}
		return exportCSV(graph, exportOut, format)
	},
}

func init() {
	traverseCmd.Flags().Int64Var(&traverseSeed, "seed", 0, "Seed for start node selection. Overrides 'seed' from configuration")
	traverseCmd.Flags().StringVar(&traverseStart, "start", "", "Start node identifier instead of random one")

	routeCmd.Flags().StringVar(&routeFrom, "from", "", "Source node identifier")
	routeCmd.Flags().StringVar(&routeTo, "to", "", "Target node identifier")
	_ = routeCmd.MarkFlagRequired("from")
	_ = routeCmd.MarkFlagRequired("to")

	exportCmd.Flags().StringVar(&exportOut, "out", "roadgraph.csv", "Output filename ('*.geojson' or '*.csv')")
	exportCmd.Flags().StringVar(&exportGeomFmt, "geomf", "wkt", "Format of geometry in CSV. Expected values: wkt / geojson")
}

func exportGeoJSON(graph *roadgraph.Graph, fname string) error {
	b, err := roadgraph.ExportGeoJSON(graph)
	if err != nil {
		return err
	}
	return errors.Wrap(os.WriteFile(fname, b, 0644), "Can't write GeoJSON")
}

func exportCSV(graph *roadgraph.Graph, fname string, format roadgraph.GeometryFormat) (err error) {
	fnamePart := strings.Split(fname, ".csv") // to guarantee proper filename and its extension
	fnameLinks := fnamePart[0] + ".csv"
	fnameNodes := fnamePart[0] + "_nodes.csv"

	fileLinks, err := os.Create(fnameLinks)
	if err != nil {
		return errors.Wrap(err, "Can't create links file")
	}
	defer func() {
		err = multierr.Append(err, fileLinks.Close())
	}()
	fileNodes, err := os.Create(fnameNodes)
	if err != nil {
		return errors.Wrap(err, "Can't create nodes file")
	}
	defer func() {
		err = multierr.Append(err, fileNodes.Close())
	}()

	err = roadgraph.ExportLinksCSV(fileLinks, graph, format)
	if err != nil {
		return errors.Wrap(err, "Can't export links")
	}
	err = roadgraph.ExportNodesCSV(fileNodes, graph)
	if err != nil {
		return errors.Wrap(err, "Can't export nodes")
	}
	return nil
}
