package app

import (
	"fmt"
	"io"
	"strings"
	"time"

	"go.trai.ch/bdroads/internal/core/domain"
	"go.trai.ch/bdroads/internal/core/ports"
	"go.trai.ch/bdroads/internal/ui/output"
	"go.trai.ch/bdroads/internal/ui/style"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const cacheRule = "========================"

// writeReport prints the connectivity summary of stats.
func writeReport(w io.Writer, region string, stats *domain.StatsSnapshot) error {
	if stats == nil {
		return nil
	}

	out := output.New(w)
	p := message.NewPrinter(language.English)

	connected := output.Paint(out, "No", style.Red)
	if stats.IsConnected {
		connected = output.Paint(out, "Yes", style.Green)
	}

	var b strings.Builder
	b.WriteString("\n" + style.Rule + "\n")
	b.WriteString(output.Bold(out, strings.ToUpper(region)+" ROAD CONNECTIVITY REPORT") + "\n")
	b.WriteString(style.Rule + "\n")
	b.WriteString(p.Sprintf("Total Road Nodes: %d\n", stats.NodeCount))
	b.WriteString(p.Sprintf("Total Road Segments: %d\n", stats.EdgeCount))
	b.WriteString("Network Connected: " + connected + "\n")
	b.WriteString(p.Sprintf("Number of Components: %d\n", stats.ComponentCount))

	if c := stats.Centrality; c.Computed {
		b.WriteString(fmt.Sprintf("Average Degree Centrality: %.4f\n", c.AvgDegree))
		if c.Sampled {
			b.WriteString(p.Sprintf("Average Betweenness Centrality: %.4f (sampled over %d nodes)\n",
				c.AvgBetweenness, c.SampleSize))
		} else {
			b.WriteString(fmt.Sprintf("Average Betweenness Centrality: %.4f\n", c.AvgBetweenness))
		}
	}

	b.WriteString("Analysis Date: " + stats.ComputedAt.Local().Format(time.DateTime) + "\n")
	b.WriteString(style.Rule + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func (a *App) printCacheInfo(store ports.CacheStore) error {
	entries, err := store.Describe()
	if err != nil {
		return err
	}
	return writeCacheInfo(a.out, entries)
}

func writeCacheInfo(w io.Writer, entries []domain.CacheEntryInfo) error {
	out := output.New(w)

	var b strings.Builder
	b.WriteString("\n=== CACHE INFORMATION ===\n")
	for _, e := range entries {
		state := output.Paint(out, "Not cached", style.Slate)
		if e.Present {
			state = output.Paint(out, "Cached", style.Green) + fmt.Sprintf(" (%.1f MB, %s)",
				float64(e.SizeBytes)/(1024*1024), e.LastModified.Local().Format(time.DateTime))
		}
		b.WriteString(e.Kind.Label() + ": " + state + "\n")
	}
	b.WriteString(cacheRule + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}
