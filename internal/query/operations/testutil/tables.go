package testutil

import (
	"github.com/dmuriuki/reportkit/internal/domain/data"
	"github.com/dmuriuki/reportkit/internal/domain/schema"
)

// CreatePageViewsTable creates a page-views report with per-URL hit
// counts, suitable for grouping by host
func CreatePageViewsTable() *schema.Table {
	table := schema.NewTable("page_views")
	table.AppendRow(data.NewRow(map[string]interface{}{
		"label": "a.com/x", "count": int64(1),
	}))
	table.AppendRow(data.NewRow(map[string]interface{}{
		"label": "a.com/y", "count": int64(2),
	}))
	table.AppendRow(data.NewRow(map[string]interface{}{
		"label": "b.com/z", "count": int64(3),
	}))
	table.Dirty = false
	return table
}

// CreateLatencyTable creates a latency report where "peak" aggregates
// with max and "label" keeps the first value seen
func CreateLatencyTable() *schema.Table {
	table := schema.NewTable("latency")
	table.SetMetaValue("aggregate", map[string]string{
		"peak":  "max",
		"label": "first",
	})
	table.AppendRow(data.NewRow(map[string]interface{}{
		"label": "checkout", "peak": int64(5), "requests": int64(100),
	}))
	table.AppendRow(data.NewRow(map[string]interface{}{
		"label": "checkout-v2", "peak": int64(9), "requests": int64(50),
	}))
	table.Dirty = false
	return table
}

// CreateTableWithSummary creates a report whose last row is a summary
// row totalling the data rows
func CreateTableWithSummary() *schema.Table {
	table := schema.NewTable("with_summary")
	table.AppendRow(data.NewRow(map[string]interface{}{
		"label": "a.com/x", "count": int64(1),
	}))
	table.AppendRow(data.NewRow(map[string]interface{}{
		"label": "a.com/y", "count": int64(2),
	}))
	table.SetSummary(data.NewRow(map[string]interface{}{
		"label": "total", "count": int64(3),
	}))
	table.Dirty = false
	return table
}
