package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"

	"github.com/Thiagojm/rdseed_go/config"
	"github.com/Thiagojm/rdseed_go/naming"
	"github.com/Thiagojm/rdseed_go/source"
	"github.com/Thiagojm/rdseed_go/zscore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	bitsFlag := flag.Int("bits", 2048, "number of bits per batch (required > 0)")
	intervalSec := flag.Int("interval", 1, "interval between batches in seconds (required > 0)")
	deviceFlag := flag.String("device", "auto", "device to read from: rdseed|pseudo|auto")
	flag.StringVar(&cfg.OutDir, "outdir", cfg.OutDir, "output directory for files")
	flag.StringVar(&cfg.LibraryPath, "lib", cfg.LibraryPath, "path to librdseed; empty uses the builtin instruction")
	flag.IntVar(&cfg.Retries, "retries", cfg.Retries, "attempts per word before failing")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	flag.Parse()

	if err := cfg.SetupLogging(); err != nil {
		log.Fatal(err)
	}
	if *bitsFlag <= 0 {
		log.Fatal("-bits must be > 0")
	}
	if *intervalSec <= 0 {
		log.Fatal("-interval must be > 0")
	}

	var (
		src source.Bits
		dev naming.Device
	)
	if *deviceFlag == "auto" {
		src, dev, err = source.PreferHardware(cfg.RDSEEDOptions()...)
	} else if dev, err = naming.ParseDevice(*deviceFlag); err == nil {
		src, err = source.Open(dev, cfg.RDSEEDOptions()...)
	}
	if err != nil {
		log.Fatalf("open %s: %v", *deviceFlag, err)
	}

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		log.Fatalf("creating outdir: %v", err)
	}

	bitCount := *bitsFlag
	interval := time.Duration(*intervalSec) * time.Second
	run := naming.Run{Start: time.Now(), Device: dev, Bits: bitCount, Interval: interval}
	binPath, csvPath, err := run.Paths(cfg.OutDir)
	if err != nil {
		log.Fatalf("build filenames: %v", err)
	}

	binFile, err := os.OpenFile(binPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		log.Fatalf("open bin file: %v", err)
	}
	defer func() { _ = binFile.Close() }()
	binBuf := bufio.NewWriter(binFile)
	defer binBuf.Flush()

	csvFile, err := os.OpenFile(csvPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		log.Fatalf("open csv file: %v", err)
	}
	defer func() { _ = csvFile.Close() }()
	csvBuf := bufio.NewWriter(csvFile)
	defer csvBuf.Flush()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.WithFields(log.Fields{"bin": binPath, "csv": csvPath}).Debug("writing samples")
	log.Infof("collecting %d bits every %s from %s", bitCount, interval, dev)

	var (
		sampleNum int
		written   uint64
		werr      error
	)
	err = source.CollectBitsAtInterval(ctx, src, bitCount, interval, func(batch []byte) {
		if werr != nil {
			return
		}
		if _, werr = binBuf.Write(batch); werr != nil {
			stop()
			return
		}
		_ = binBuf.Flush()
		written += uint64(len(batch))

		ones := zscore.CountOnes(batch, bitCount)
		sampleNum++
		ts := time.Now().Format("20060102T15:04:05")
		if _, werr = fmt.Fprintf(csvBuf, "%s,%d\n", ts, ones); werr != nil {
			stop()
			return
		}
		_ = csvBuf.Flush()

		fmt.Printf("sample %d: ones=%d/%d at %s (%s written)\n", sampleNum, ones, bitCount, ts, humanize.Bytes(written))
	})
	if werr != nil {
		log.Fatalf("write samples: %v", werr)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Errorf("read error: %v", err)
	}
	log.Infof("collected %d samples (%s) into %s", sampleNum, humanize.Bytes(written), binPath)
}
