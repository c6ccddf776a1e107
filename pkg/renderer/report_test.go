package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

func TestRenderStatsTable(t *testing.T) {
	config := testConfig()
	stats := RenderStats{TotalSamples: 1152, TilesRendered: 6, Workers: 2, Duration: time.Second}

	table := RenderStatsTable(config, stats)
	for _, want := range []string{"Resolution", "24x12", "1152", "TOTAL", "1s"} {
		if !strings.Contains(table, want) {
			t.Errorf("Table should contain %q:\n%s", want, table)
		}
	}
}

func TestBVHStatsTable(t *testing.T) {
	bounds := core.NewAABB(core.NewVec3(-1, 0, -2), core.NewVec3(3, 0.5, 8))
	table := BVHStatsTable(geometry.BVHStats{TotalNodes: 63, Leaves: 64, MaxDepth: 6, AvgDepth: 6, Bounds: bounds})
	for _, want := range []string{"Nodes", "63", "64", "6.00", "Extent", "4.0 x 0.5 x 10.0"} {
		if !strings.Contains(table, want) {
			t.Errorf("Table should contain %q:\n%s", want, table)
		}
	}
}
