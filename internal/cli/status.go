package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/depwatch/depwatch/internal/graph"
	"github.com/depwatch/depwatch/internal/logger"
	"github.com/depwatch/depwatch/internal/snapshot"
)

// StatusOutput is the JSON shape of the status command.
type StatusOutput struct {
	Server    string       `json:"server"`
	Reachable bool         `json:"reachable"`
	Error     string       `json:"error,omitempty"`
	Stats     *graph.Stats `json:"stats,omitempty"`
	Nodes     []string     `json:"nodes,omitempty"`
}

// statusCommand fetches the snapshot once and prints a summary.
func statusCommand(serverFlag string, asJSON bool) error {
	cfg, err := loadConfig(serverFlag)
	if err != nil {
		return err
	}

	loader := snapshot.NewHTTPLoader(cfg.Server.URL, cfg.Server.Timeout,
		snapshot.WithLogger(logger.NewEnvLogger("[status]")))
	defer loader.Close()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout)
	defer cancel()

	snap, err := loader.Load(ctx)

	if asJSON {
		return outputStatusJSON(cfg.Server.URL, snap, err)
	}

	if err != nil {
		return err
	}
	outputStatusText(cfg.Server.URL, snap)
	return nil
}

// outputStatusJSON prints machine-readable status, including fetch failures.
func outputStatusJSON(server string, snap *graph.Snapshot, fetchErr error) error {
	out := StatusOutput{
		Server:    server,
		Reachable: fetchErr == nil,
	}
	if fetchErr != nil {
		out.Error = fetchErr.Error()
	} else {
		stats := snap.Stats
		out.Stats = &stats
		out.Nodes = snap.NodeIDs()
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// outputStatusText prints the human-readable summary.
func outputStatusText(server string, snap *graph.Snapshot) {
	okStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#39FF14"))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B6B8D"))
	titleStyle := lipgloss.NewStyle().Bold(true)

	fmt.Printf("%s %s\n\n", okStyle.Render("●"), titleStyle.Render(server))

	stats := snap.Stats
	fmt.Printf("Nodes:      %d\n", stats.NodeCount)
	fmt.Printf("Edges:      %d\n", stats.EdgeCount)
	if stats.IsDAG {
		fmt.Printf("Shape:      acyclic\n")
	} else {
		fmt.Printf("Shape:      %s\n", lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFAA00")).Render("contains cycles"))
	}
	if stats.ConnectedComponents > 0 {
		fmt.Printf("Components: %d\n", stats.ConnectedComponents)
	}
	if stats.Density > 0 {
		fmt.Printf("Density:    %.3f\n", stats.Density)
	}

	if len(stats.NodeTypes) > 0 {
		fmt.Println()
		fmt.Println(titleStyle.Render("Node types"))
		types := make([]string, 0, len(stats.NodeTypes))
		for t := range stats.NodeTypes {
			types = append(types, t)
		}
		sort.Strings(types)
		for _, t := range types {
			fmt.Printf("  %-12s %s\n", t, mutedStyle.Render(fmt.Sprintf("%d", stats.NodeTypes[t])))
		}
	}
}
