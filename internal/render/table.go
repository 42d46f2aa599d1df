package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"swarm-utilization/internal/analysis"
	"swarm-utilization/internal/model"
)

var rowHeader = []string{"strategy", "group size", "enemies", "talent", "ticks/s", "friendly ticks", "enemy ticks"}

// RowsTable writes a titled table of result rows, e.g. "Filtered data".
func RowsTable(w io.Writer, title string, rows []model.ResultRow) {
	if title != "" {
		fmt.Fprintln(w, titleStyle.Render(title))
	}
	t := tablewriter.NewWriter(w)
	t.SetHeader(rowHeader)
	t.SetAutoWrapText(false)
	t.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, r := range rows {
		t.Append([]string{
			r.StrategyName,
			strconv.Itoa(r.GroupSize),
			strconv.Itoa(r.EnemyCount),
			strconv.FormatBool(r.HasTalent),
			formatValue(r.TicksPerSecond),
			formatValue(r.FriendlyTicksPerTime),
			formatValue(r.EnemyTicksPerTime),
		})
	}
	t.SetFooter([]string{"", "", "", "", "", "rows", strconv.Itoa(len(rows))})
	t.Render()
}

// RankTable writes ranked strategies with their interval bounds.
func RankTable(w io.Writer, ranked []analysis.RankedStrategy) {
	t := tablewriter.NewWriter(w)
	t.SetHeader([]string{"rank", "strategy", "kind", "n", "mean", "ci low", "ci high", "min", "max"})
	t.SetAutoWrapText(false)
	for _, r := range ranked {
		t.Append([]string{
			strconv.Itoa(r.Rank),
			r.StrategyName,
			r.Kind.Label(),
			strconv.Itoa(r.Count),
			formatValue(r.Mean),
			formatValue(r.CILower),
			formatValue(r.CIUpper),
			formatValue(r.Min),
			formatValue(r.Max),
		})
	}
	t.Render()
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
