// filetoexcel converts a .bin or .csv file written by collect into a
// z-score workbook next to the input.
//
// Usage: filetoexcel <path-to-.bin-or-.csv>
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/Thiagojm/rdseed_go/naming"
	"github.com/Thiagojm/rdseed_go/zscore"
)

func run(path string) (string, error) {
	r, err := naming.ParseBaseName(path)
	if err != nil {
		return "", err
	}

	var (
		rows   []zscore.Row
		header string
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bin":
		rows, err = zscore.ReadBin(path, r.Bits)
		header = zscore.SamplesHeader
	case ".csv":
		rows, err = zscore.ReadCSV(path)
		header = zscore.TimeHeader
	default:
		return "", fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}
	if err != nil {
		return "", err
	}
	log.WithFields(log.Fields{"rows": len(rows), "bits": r.Bits, "device": r.Device}).Debug("samples loaded")

	rows = zscore.Calculate(rows, r.Bits)
	return zscore.WriteWorkbook(rows, path, r.Bits, r.Interval, header)
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: filetoexcel <path-to-.bin-or-.csv>")
		os.Exit(2)
	}
	out, err := run(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	log.Infof("wrote %s", out)
}
