// Command cnm is a CLI front end for the clustering engine: run it against
// a plain edge-list file and print the resulting partition.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nucleus/cnm-core/pkg/cnm"
	"github.com/nucleus/cnm-core/pkg/config"
	"github.com/nucleus/cnm-core/pkg/graphmodel"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "cnm",
		Short: "Clauset-Newman-Moore community detection",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "optional YAML file overriding default tunables")

	root.AddCommand(newRunCmd(&configPath))
	return root
}

func newRunCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "run <edgelist-file>",
		Short: "Run community detection over an edge-list file and print the partition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadWithOverrideFile(*configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			graph, err := loadEdgeList(args[0])
			if err != nil {
				return fmt.Errorf("load edge list: %w", err)
			}

			result, err := cnm.TryCompute(graph, cnm.Options{
				Progress: func(done, total int) {
					if cfg.LogProgress {
						log.Printf("merges: %d/%d", done, total)
					}
				},
				ReportInterval: cfg.ReportInterval,
			})
			if err != nil {
				return fmt.Errorf("compute: %w", err)
			}

			for i, c := range result.Communities {
				ids := make([]string, len(c.Vertices()))
				for j, v := range c.Vertices() {
					ids[j] = strconv.Itoa(int(v))
				}
				fmt.Printf("community %d: %s\n", i, strings.Join(ids, ","))
			}
			return nil
		},
	}
}

// loadEdgeList reads whitespace-separated "u v" pairs, one per line,
// allocating vertices for every distinct id encountered.
func loadEdgeList(path string) (*graphmodel.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g := graphmodel.New()
	ids := make(map[int]cnm.VertexID)

	resolve := func(raw int) cnm.VertexID {
		id, ok := ids[raw]
		if !ok {
			id = g.AddVertex(map[string]any{"sourceID": raw})
			ids[raw] = id
		}
		return id
	}

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: expected 2 fields, got %d", lineNo, len(fields))
		}
		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if err := g.AddEdge(resolve(u), resolve(v)); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return g, nil
}
