package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/peterstace/quadtree"
	"github.com/peterstace/quadtree/internal/config"
	"github.com/peterstace/quadtree/internal/dataset"
	"github.com/peterstace/quadtree/quadprom"
)

type rootFlags struct {
	configPath string
	itemsPath  string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	var flags rootFlags
	rootCmd := &cobra.Command{
		Use:           "quadtree",
		Short:         "Build a quadtree over rectangles and query it",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "tree.yaml", "YAML file with the tree bounds and limits")
	rootCmd.PersistentFlags().StringVarP(&flags.itemsPath, "items", "i", "items.json", "JSON array of {id, x, y, w, h} items")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Log tree events to stderr")

	rootCmd.AddCommand(newQueryCmd(&flags), newTreeCmd(&flags))
	return rootCmd
}

func newQueryCmd(flags *rootFlags) *cobra.Command {
	var (
		rect       string
		exact      bool
		metricsOut string
	)
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Print the items that may overlap a rectangle",
		Long: `Query prints the candidate items held by every node whose region
touches the query rectangle. With --exact only items whose own bounds
overlap the rectangle are printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := parseRect(rect)
			if err != nil {
				return err
			}

			var (
				metrics quadtree.MetricsCollector
				reg     *prometheus.Registry
			)
			if metricsOut != "" {
				c := quadprom.NewCollector("")
				reg = prometheus.NewRegistry()
				if err := reg.Register(c); err != nil {
					return err
				}
				metrics = c
			}

			tr, err := buildTree(cmd, flags, metrics)
			if err != nil {
				return err
			}

			found := []*dataset.Item{}
			tr.Retrieve(q, func(it *dataset.Item) {
				if exact && !it.Bounds().Overlaps(q) {
					return
				}
				found = append(found, it)
			})
			if err := dataset.Encode(cmd.OutOrStdout(), found); err != nil {
				return err
			}

			if reg != nil {
				if err := prometheus.WriteToTextfile(metricsOut, reg); err != nil {
					return fmt.Errorf("write metrics: %w", err)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&rect, "rect", "r", "", "Query rectangle as x,y,w,h")
	cmd.Flags().BoolVar(&exact, "exact", false, "Drop candidates that do not overlap the query")
	cmd.Flags().StringVar(&metricsOut, "metrics-out", "", "Write Prometheus metrics in text format to this file")
	_ = cmd.MarkFlagRequired("rect")
	return cmd
}

// nodeView is the JSON shape of a node printed by the tree command.
type nodeView struct {
	Bounds   quadtree.Rect `json:"bounds"`
	Depth    int           `json:"depth"`
	Items    []string      `json:"items"`
	Children []nodeView    `json:"children,omitempty"`
}

func viewNode(n *quadtree.Node[*dataset.Item]) nodeView {
	v := nodeView{Bounds: n.Bounds(), Depth: n.Depth(), Items: []string{}}
	for _, it := range n.Items() {
		v.Items = append(v.Items, it.ID)
	}
	if children, ok := n.Children(); ok {
		for _, c := range children {
			v.Children = append(v.Children, viewNode(c))
		}
	}
	return v
}

func newTreeCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Print the node structure of the tree as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := buildTree(cmd, flags, nil)
			if err != nil {
				return err
			}
			return dataset.Encode(cmd.OutOrStdout(), struct {
				Stats quadtree.Stats `json:"stats"`
				Root  nodeView       `json:"root"`
			}{tr.Stats(), viewNode(tr.Root())})
		},
	}
}

func buildTree(cmd *cobra.Command, flags *rootFlags, metrics quadtree.MetricsCollector) (*quadtree.Tree[*dataset.Item], error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}
	items, err := dataset.Load(flags.itemsPath)
	if err != nil {
		return nil, err
	}

	logger := quadtree.NoopLogger()
	if flags.verbose {
		logger = quadtree.NewLogger(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	opts := append(cfg.Options(), quadtree.WithLogger(logger), quadtree.WithMetricsCollector(metrics))

	tr, err := quadtree.New[*dataset.Item](cfg.Rect(), opts...)
	if err != nil {
		return nil, err
	}
	if err := tr.InsertAll(items); err != nil {
		return nil, fmt.Errorf("%s: %w", flags.itemsPath, err)
	}
	logger.Info("tree built", "items", tr.Len(), "nodes", tr.Stats().Nodes)
	return tr, nil
}

func parseRect(s string) (quadtree.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return quadtree.Rect{}, fmt.Errorf("rect %q: want x,y,w,h", s)
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return quadtree.Rect{}, fmt.Errorf("rect %q: %w", s, err)
		}
		v[i] = f
	}
	return quadtree.Rect{X: v[0], Y: v[1], W: v[2], H: v[3]}, nil
}
