// rdseedcli reads entropy from RDSEED (or the software fallback) once or at
// a fixed interval and prints it as hex.
package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Thiagojm/rdseed_go/config"
	"github.com/Thiagojm/rdseed_go/naming"
	"github.com/Thiagojm/rdseed_go/source"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	bits := flag.Int("bits", 1024, "number of bits to read per batch")
	nbytes := flag.Int("bytes", 0, "number of bytes to read per batch (overrides -bits)")
	exact := flag.Bool("exact", true, "clear the unused high bits of the final byte")
	interval := flag.Duration("interval", 0, "interval between reads (e.g. 2s). 0 for one-shot")
	device := flag.String("device", "auto", "source: rdseed|pseudo|auto (auto falls back to pseudo on unsupported CPUs)")
	seed := flag.Uint64("seed", 0, "seed for -device pseudo; 0 reads from crypto/rand, anything else is reproducible")
	flag.StringVar(&cfg.LibraryPath, "lib", cfg.LibraryPath, "path to librdseed; empty uses the builtin instruction")
	flag.IntVar(&cfg.Retries, "retries", cfg.Retries, "attempts per word before failing")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	flag.Parse()

	if err := cfg.SetupLogging(); err != nil {
		log.Fatal(err)
	}

	var (
		src source.Bits
		dev naming.Device
	)
	if *device == "auto" {
		src, dev, err = source.PreferHardware(cfg.RDSEEDOptions()...)
	} else if dev, err = naming.ParseDevice(*device); err == nil {
		if dev == naming.DevicePseudo {
			src, err = source.Pseudo(*seed)
		} else {
			src, err = source.Open(dev, cfg.RDSEEDOptions()...)
		}
	}
	if err != nil {
		log.Fatalf("open source: %v", err)
	}
	if *seed != 0 && dev != naming.DevicePseudo {
		log.WithField("device", dev).Warn("-seed only applies to the pseudo device, ignoring")
	}
	log.WithField("device", dev).Debug("source ready")

	read := func() ([]byte, int, error) {
		if *nbytes > 0 {
			b, err := src.GetBytes(*nbytes)
			return b, 8 * *nbytes, err
		}
		if *exact {
			b, err := src.GetExactBits(*bits)
			return b, *bits, err
		}
		b, err := src.GetBits(*bits)
		return b, *bits, err
	}

	if *interval == 0 {
		data, n, err := read()
		if err != nil {
			log.Fatalf("read error: %v", err)
		}
		fmt.Printf("read %d bits (%d bytes) from %s\n", n, len(data), dev)
		fmt.Printf("%s\n", hex.EncodeToString(data))
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	log.Infof("reading every %s from %s. press Ctrl+C to stop...", *interval, dev)

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for {
		data, n, err := read()
		if err != nil {
			log.Fatalf("read error: %v", err)
		}
		fmt.Printf("%s  %d bits  %s\n", time.Now().Format(time.RFC3339), n, hex.EncodeToString(data))

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
