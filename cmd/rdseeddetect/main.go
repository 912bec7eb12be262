// rdseeddetect reports whether RDSEED can be used. It exits 0 when the
// instruction is available or simply unsupported, and 1 when the binding is
// broken.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/cpu"

	"github.com/Thiagojm/rdseed_go/config"
	"github.com/Thiagojm/rdseed_go/rdseed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	flag.StringVar(&cfg.LibraryPath, "lib", cfg.LibraryPath, "path to librdseed; empty uses the builtin instruction")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	flag.Parse()
	if err := cfg.SetupLogging(); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("CPUID RDSEED: %t\n", cpu.X86.HasRDSEED)
	fmt.Printf("CPUID RDRAND: %t\n", cpu.X86.HasRDRAND)
	if cfg.LibraryPath != "" {
		fmt.Printf("Library: %s\n", cfg.LibraryPath)
	} else {
		fmt.Println("Library: builtin")
	}

	a, err := rdseed.Probe(cfg.RDSEEDOptions()...)
	fmt.Printf("Status: %s\n", a)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if a != rdseed.Available {
		fmt.Println("RDSEED is not usable here; use -device pseudo or a software RNG")
	}
}
