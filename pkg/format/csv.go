package format

import (
	"strings"
	"time"
)

// CSV renders a header row plus data rows, comma-separated. Values that
// contain a comma are wrapped in quotes; everything else is written as-is.
func CSV(headers []string, rows [][]string) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(headers, ","))
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, v := range row {
			if strings.Contains(v, ",") {
				v = `"` + v + `"`
			}
			cells[i] = v
		}
		lines = append(lines, strings.Join(cells, ","))
	}
	return strings.Join(lines, "\n")
}

// CSVFilename builds the export filename: <name>_<ISO-date>.csv.
func CSVFilename(name string, t time.Time) string {
	return name + "_" + t.Format("2006-01-02") + ".csv"
}
