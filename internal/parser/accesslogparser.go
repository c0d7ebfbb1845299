package parser

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"accesslogstats/internal/entity"

	"github.com/jszwec/csvutil"
	"github.com/sirupsen/logrus"
)

type AccessLogParser struct {
}

func NewAccessLogParser() *AccessLogParser {
	return &AccessLogParser{}
}

// ParseEntries reads CSV records and returns those with at least as many fields as
// entity.LogRowHeader. Shorter records are dropped, extra trailing fields are ignored.
func (p *AccessLogParser) ParseEntries(data io.Reader) ([]*entity.LogRow, error) {
	rr := newRowReader(data)
	dec, err := csvutil.NewDecoder(rr, entity.LogRowHeader...)
	if err != nil {
		return nil, fmt.Errorf("could not create decoder: %w", err)
	}

	var rows []*entity.LogRow
	for {
		row := new(entity.LogRow)
		err := dec.Decode(row)
		if err == io.EOF {
			break
		}
		if err != nil {
			if rr.err != nil {
				return nil, fmt.Errorf("could not parse data: %w", err)
			}
			logrus.WithError(err).Debug("Skipping undecodable record")
			continue
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// maxLineLength bounds a single log line
const maxLineLength = 10 * 1024 * 1024

// rowReader feeds csvutil one record per line, and only records of the expected width.
// Each line gets its own csv.Reader so an unbalanced quote cannot swallow the lines after it.
type rowReader struct {
	lines   *bufio.Scanner
	width   int
	skipped int
	err     error
}

func newRowReader(data io.Reader) *rowReader {
	lines := bufio.NewScanner(data)
	lines.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	lines.Split(ScanLines)

	return &rowReader{
		lines: lines,
		width: len(entity.LogRowHeader),
	}
}

func (rr *rowReader) Read() ([]string, error) {
	for rr.lines.Scan() {
		record, err := parseLine(rr.lines.Text())
		if err == io.EOF {
			continue
		}
		if err != nil {
			logrus.WithError(err).Debug("Skipping malformed record")
			rr.skipped++
			continue
		}

		if len(record) < rr.width {
			rr.skipped++
			continue
		}

		return record[:rr.width], nil
	}

	if err := rr.lines.Err(); err != nil {
		rr.err = err
		return nil, err
	}

	logrus.WithField("skipped_records", rr.skipped).Debug("Finished reading records")
	return nil, io.EOF
}

// parseLine splits a single line into fields. Blank lines return io.EOF.
func parseLine(line string) ([]string, error) {
	r := csv.NewReader(strings.NewReader(line))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	record, err := r.Read()
	if err != nil {
		var parseErr *csv.ParseError
		if err != io.EOF && !errors.As(err, &parseErr) {
			return nil, fmt.Errorf("could not read line: %w", err)
		}
		return nil, err
	}
	return record, nil
}
