// Package zscore turns collected samples into a cumulative z-score series
// and writes it to an Excel workbook with a line chart.
//
// For a block of n bits the number of ones is expected to have mean n/2 and
// standard deviation sqrt(n/4). After i blocks the cumulative mean is
// compared to the expected mean:
//
//	z_i = (mean_i - n/2) / (sqrt(n/4) / sqrt(i))
package zscore

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"math/bits"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const (
	SheetName = "Zscore"

	// Header for the first column of rows read from .bin files.
	SamplesHeader = "samples"
	// Header for the first column of rows read from .csv files.
	TimeHeader = "time"
)

// Row is one block: its label, the number of ones, and the computed
// cumulative statistics.
type Row struct {
	Label          string
	Ones           int
	CumulativeMean float64
	ZScore         float64
}

// CountOnes counts the set bits among the first bitCount bits of buf. The
// valid bits of a partial final byte are its low-order bits, matching
// rdseed.GetExactBits.
func CountOnes(buf []byte, bitCount int) int {
	if bitCount <= 0 || len(buf) == 0 {
		return 0
	}
	used := (bitCount + 7) / 8
	if used > len(buf) {
		used = len(buf)
		bitCount = 8 * used
	}
	total := 0
	for _, b := range buf[:used-1] {
		total += bits.OnesCount8(b)
	}
	last := buf[used-1]
	if rem := bitCount - 8*(used-1); rem < 8 {
		last &= 0xFF >> (8 - rem)
	}
	return total + bits.OnesCount8(last)
}

// ReadBin reads a .bin file of consecutive blocks of ceil(blockBits/8) bytes
// and counts the ones in each. A short final block is counted as far as it
// goes.
func ReadBin(path string, blockBits int) ([]Row, error) {
	if blockBits <= 0 {
		return nil, errors.New("block size must be > 0")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	buf := make([]byte, (blockBits+7)/8)
	rows := make([]Row, 0, 1024)
	for block := 1; ; block++ {
		n, err := io.ReadFull(r, buf)
		if n > 0 {
			ones := CountOnes(buf[:n], min(blockBits, 8*n))
			rows = append(rows, Row{Label: strconv.Itoa(block), Ones: ones})
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return rows, nil
		}
		if err != nil {
			return nil, errors.Wrapf(err, "reading block %d of %s", block, path)
		}
	}
}

// ReadCSV reads rows of "timestamp,ones" without a header. Timestamps are
// shown as HH:MM:SS when they can be parsed.
func ReadCSV(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		if len(rec) < 2 {
			continue
		}
		s := strings.TrimSpace(rec[1])
		ones, err := strconv.Atoi(s)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid ones value %q", s)
		}
		rows = append(rows, Row{Label: timeLabel(strings.TrimSpace(rec[0])), Ones: ones})
	}
	return rows, nil
}

var timeLayouts = []string{
	"20060102T15:04:05", // written by cmd/collect
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006/01/02 15:04:05",
	"15:04:05",
	"15:04",
}

func timeLabel(s string) string {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("15:04:05")
		}
	}
	return s
}

// Calculate fills CumulativeMean and ZScore for each row in place and
// returns rows.
func Calculate(rows []Row, blockBits int) []Row {
	expectedMean := 0.5 * float64(blockBits)
	expectedStdDev := math.Sqrt(float64(blockBits) * 0.25)
	if expectedStdDev == 0 {
		return rows
	}
	sum := 0
	for i := range rows {
		sum += rows[i].Ones
		n := float64(i + 1)
		mean := float64(sum) / n
		rows[i].CumulativeMean = mean
		rows[i].ZScore = (mean - expectedMean) / (expectedStdDev / math.Sqrt(n))
	}
	return rows
}

// WorkbookPath is the .xlsx path written for an input file.
func WorkbookPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".xlsx"
}

// WriteWorkbook writes rows and a z-score line chart next to input and
// returns the workbook path.
func WriteWorkbook(rows []Row, input string, blockBits int, interval time.Duration, firstHeader string) (string, error) {
	if len(rows) == 0 {
		return "", errors.New("no data to write")
	}
	out := WorkbookPath(input)
	f := excelize.NewFile()
	defer f.Close()

	if def := f.GetSheetName(0); def != SheetName {
		f.NewSheet(SheetName)
		f.DeleteSheet(def)
	}

	for col, h := range []string{firstHeader, "ones", "cumulative_mean", "z_test"} {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellStr(SheetName, cell, h); err != nil {
			return "", err
		}
	}
	for i, r := range rows {
		row := i + 2
		if err := f.SetSheetRow(SheetName, fmt.Sprintf("A%d", row), &[]any{r.Label, r.Ones, r.CumulativeMean, r.ZScore}); err != nil {
			return "", errors.Wrapf(err, "row %d", row)
		}
	}

	end := len(rows) + 1
	chart := &excelize.Chart{
		Type: excelize.Line,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("%s!$D$1", SheetName),
			Categories: fmt.Sprintf("%s!$A$2:$A$%d", SheetName, end),
			Values:     fmt.Sprintf("%s!$D$2:$D$%d", SheetName, end),
		}},
		Title:  []excelize.RichTextRun{{Text: filepath.Base(input)}},
		Legend: excelize.ChartLegend{Position: "none"},
		XAxis: excelize.ChartAxis{Title: []excelize.RichTextRun{{
			Text: fmt.Sprintf("Number of Samples - one sample every %d second(s)", int(interval/time.Second)),
		}}},
		YAxis: excelize.ChartAxis{
			Title:          []excelize.RichTextRun{{Text: fmt.Sprintf("Z-score - Sample Size = %d bits", blockBits)}},
			MajorGridLines: true,
		},
	}
	if err := f.AddChart(SheetName, "F2", chart); err != nil {
		return "", errors.Wrap(err, "adding chart")
	}
	if err := f.SaveAs(out); err != nil {
		return "", err
	}
	return out, nil
}
