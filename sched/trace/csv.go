package trace

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteDecisionsCSV writes one row per (decision, path) pair, mirroring the
// per-path telemetry columns used by the offline analysis tooling:
// simTime,subflowId,lastRttMs,cWnd,bytesInFlight,availableWindow plus the
// decision's hint and the weight given to that path.
func WriteDecisionsCSV(w io.Writer, st *ScheduleTrace) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"simTime", "subflowId", "lastRttMs", "cWnd", "bytesInFlight", "availableWindow", "hint", "weight"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write decisions header: %w", err)
	}
	if st == nil {
		return cw.Error()
	}
	for _, d := range st.Decisions {
		for i, p := range d.Paths {
			weight := 0.0
			if i < len(d.Weights) {
				weight = d.Weights[i]
			}
			row := []string{
				formatTick(d.Tick),
				strconv.Itoa(p.Path),
				strconv.FormatFloat(p.RTTMs, 'f', 6, 64),
				strconv.FormatInt(p.CWnd, 10),
				strconv.FormatInt(p.BytesInFlight, 10),
				strconv.FormatInt(p.AvailableWindow, 10),
				strconv.FormatFloat(d.Hint, 'f', 4, 64),
				strconv.FormatFloat(weight, 'f', 6, 64),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("write decision row: %w", err)
			}
		}
	}
	return cw.Error()
}

// WriteOutcomesCSV writes one row per completed send.
func WriteOutcomesCSV(w io.Writer, st *ScheduleTrace) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"simTime", "subflowId", "bytes", "elapsedMs"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write outcomes header: %w", err)
	}
	if st == nil {
		return cw.Error()
	}
	for _, o := range st.Outcomes {
		row := []string{
			formatTick(o.Tick),
			strconv.Itoa(o.Path),
			strconv.FormatInt(o.Bytes, 10),
			strconv.FormatFloat(o.ElapsedMs, 'f', 3, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write outcome row: %w", err)
		}
	}
	return cw.Error()
}

// WritePathStatsCSV writes the periodic path samples, one row per
// (sample, path), in the reference path_stats.csv layout.
func WritePathStatsCSV(w io.Writer, st *ScheduleTrace) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"simTime", "subflowId", "lastRttMs", "cWnd", "bytesInFlight", "availableWindow"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write path stats header: %w", err)
	}
	if st == nil {
		return cw.Error()
	}
	for _, s := range st.Samples {
		row := []string{
			formatTick(s.Tick),
			strconv.Itoa(s.Stat.Path),
			strconv.FormatFloat(s.Stat.RTTMs, 'f', 6, 64),
			strconv.FormatInt(s.Stat.CWnd, 10),
			strconv.FormatInt(s.Stat.BytesInFlight, 10),
			strconv.FormatInt(s.Stat.AvailableWindow, 10),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write path stats row: %w", err)
		}
	}
	return cw.Error()
}

// formatTick renders a microsecond tick as seconds with fixed precision,
// matching the reference logs' simTime column.
func formatTick(tick int64) string {
	return strconv.FormatFloat(float64(tick)/1e6, 'f', 6, 64)
}
