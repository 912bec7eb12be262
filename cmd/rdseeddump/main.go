// rdseeddump writes raw RDSEED output to a file, for feeding statistical
// test suites such as dieharder or NIST STS.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	log "github.com/sirupsen/logrus"

	"github.com/Thiagojm/rdseed_go/config"
	"github.com/Thiagojm/rdseed_go/rdseed"
)

const chunkSize = 64 * 1024

// dump copies size bytes from src to w in chunks, advancing bar.
func dump(w io.Writer, src io.Reader, size int64, bar *progressbar.ProgressBar) error {
	buf := make([]byte, chunkSize)
	for remaining := size; remaining > 0; {
		n := int64(len(buf))
		if remaining < n {
			n = remaining
		}
		if _, err := io.ReadFull(src, buf[:n]); err != nil {
			return err
		}
		if _, err := w.Write(buf[:n]); err != nil {
			return err
		}
		remaining -= n
		_ = bar.Add64(n)
	}
	return nil
}

// parseSize reads a human size such as "10MB" and rejects values that do
// not fit in an int64.
func parseSize(s string) (int64, error) {
	size, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, err
	}
	if size > math.MaxInt64 {
		return 0, errors.Errorf("%s is larger than %s", s, humanize.IBytes(math.MaxInt64))
	}
	return int64(size), nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	sizeFlag := flag.String("size", "1MiB", "amount of entropy to write (e.g. 4096, 10MB, 1GiB)")
	outFlag := flag.String("out", "rdseed.bin", "output file, - for stdout")
	flag.StringVar(&cfg.LibraryPath, "lib", cfg.LibraryPath, "path to librdseed; empty uses the builtin instruction")
	flag.IntVar(&cfg.Retries, "retries", cfg.Retries, "attempts per word before failing")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	flag.Parse()
	if err := cfg.SetupLogging(); err != nil {
		log.Fatal(err)
	}

	size, err := parseSize(*sizeFlag)
	if err != nil {
		log.Fatalf("invalid -size: %v", err)
	}

	src, err := rdseed.New(cfg.RDSEEDOptions()...)
	if err != nil {
		log.Fatalf("rdseed: %v", err)
	}

	var w io.Writer = os.Stdout
	if *outFlag != "-" {
		f, err := os.Create(*outFlag)
		if err != nil {
			log.Fatalf("create %s: %v", *outFlag, err)
		}
		defer f.Close()
		w = f
	}
	bw := bufio.NewWriter(w)

	bar := progressbar.NewOptions64(size,
		progressbar.OptionSetDescription(fmt.Sprintf("rdseed %s", humanize.IBytes(uint64(size)))),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetTheme(progressbar.ThemeUnicode),
	)
	if err := dump(bw, src, size, bar); err != nil {
		log.Fatalf("dump: %v", err)
	}
	if err := bw.Flush(); err != nil {
		log.Fatalf("flush: %v", err)
	}
	_ = bar.Close()
	fmt.Fprintln(os.Stderr)
	log.Infof("wrote %s to %s", humanize.IBytes(uint64(size)), *outFlag)
}
