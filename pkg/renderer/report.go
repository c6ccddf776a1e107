package renderer

import (
	"bytes"
	"fmt"

	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/olekukonko/tablewriter"
)

// RenderStatsTable formats render statistics as a text table
func RenderStatsTable(config Config, stats RenderStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Resolution", "SPP", "Max depth", "Workers", "Tiles", "Samples", "Samples/sec"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", config.Width, config.Height),
		fmt.Sprintf("%d", config.SamplesPerPixel),
		fmt.Sprintf("%d", config.MaxDepth),
		fmt.Sprintf("%d", stats.Workers),
		fmt.Sprintf("%d", stats.TilesRendered),
		fmt.Sprintf("%d", stats.TotalSamples),
		fmt.Sprintf("%.0f", stats.SamplesPerSecond()),
	})
	table.SetFooter([]string{"", "", "", "", "", "TOTAL", stats.Duration.String()})
	table.Render()
	return buf.String()
}

// BVHStatsTable formats the shape of a BVH as a text table
func BVHStatsTable(stats geometry.BVHStats) string {
	extent := stats.Bounds.Size()

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Nodes", "Leaves", "Max depth", "Avg depth", "Extent"})
	table.Append([]string{
		fmt.Sprintf("%d", stats.TotalNodes),
		fmt.Sprintf("%d", stats.Leaves),
		fmt.Sprintf("%d", stats.MaxDepth),
		fmt.Sprintf("%.2f", stats.AvgDepth),
		fmt.Sprintf("%.1f x %.1f x %.1f", extent.X, extent.Y, extent.Z),
	})
	table.Render()
	return buf.String()
}

// LogRenderStats writes the render statistics table at notice level
func LogRenderStats(config Config, stats RenderStats) {
	logger.Noticef("render statistics\n%s", RenderStatsTable(config, stats))
}
