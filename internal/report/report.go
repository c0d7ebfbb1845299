package report

import (
	"bytes"
	"fmt"
	"io"

	"accesslogstats/internal/entity"
)

const (
	NoHitsMessage    = "No hits found."
	NoBrowserMessage = "No browser information available."
)

// Write prints the image share, the most popular browser and the hourly histogram, in that order
func Write(w io.Writer, stats *entity.Stats) error {
	for _, line := range Lines(stats) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("could not write report: %w", err)
		}
	}
	return nil
}

// Render returns the report as a single string
func Render(stats *entity.Stats) string {
	buf := new(bytes.Buffer)
	_ = Write(buf, stats)
	return buf.String()
}

// Lines returns the report lines without trailing newlines
func Lines(stats *entity.Stats) []string {
	lines := []string{
		imageLine(stats),
		browserLine(stats.Browsers),
	}
	return append(lines, hourLines(stats.Hourly)...)
}

func imageLine(stats *entity.Stats) string {
	pct, ok := stats.ImagePercentage()
	if !ok {
		return NoHitsMessage
	}
	return fmt.Sprintf("Image requests account for %.2f%% of all requests", pct)
}

func browserLine(browsers *entity.Counter) string {
	best, ok := browsers.MostCommon()
	if !ok {
		return NoBrowserMessage
	}
	return fmt.Sprintf("The most popular browser is %s with %d hits", best.Key, best.Count)
}

func hourLines(hourly entity.HourlyHits) []string {
	var lines []string
	for _, hour := range hourly.Hours() {
		lines = append(lines, fmt.Sprintf("Hour %02d has %d hits", hour, hourly[hour]))
	}
	return lines
}
