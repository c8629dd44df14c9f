package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/rhartert/satir/internal/dimacs"
	"github.com/rhartert/satir/sat"
)

var flagCPUProfile = flag.Bool(
	"cpuprof",
	false,
	"save pprof CPU profile in cpuprof",
)

var flagMemProfile = flag.Bool(
	"memprof",
	false,
	"save pprof memory profile in memprof",
)

var flagGzip = flag.Bool(
	"gzip",
	false,
	"treat the instance file as gzip-compressed",
)

func parseConfig() (*config, error) {
	flag.Parse()

	if flag.NArg() == 0 || flag.Arg(0) == "" {
		return nil, fmt.Errorf("missing instance file")
	}
	return &config{
		instanceFile: flag.Arg(0),
		gzipped:      *flagGzip,
		memProfile:   *flagMemProfile,
		cpuProfile:   *flagCPUProfile,
	}, nil
}

type config struct {
	instanceFile string
	gzipped      bool
	memProfile   bool
	cpuProfile   bool
}

// run parses the instance, solves it, and prints exactly one line to
// stdout: "sat" or "unsat". Everything else -- sizes, timing, the conflict
// count -- is diagnostic and goes to stderr, so stdout stays parseable by
// scripts that only care about the verdict.
func run(cfg *config) error {
	s := sat.NewDefaultSolver()

	if err := dimacs.Load(cfg.instanceFile, cfg.gzipped, s); err != nil {
		return fmt.Errorf("could not parse instance: %w", err)
	}

	fmt.Fprintf(os.Stderr, "c variables: %d\n", s.NumVariables())

	start := time.Now()
	result := s.Solve()
	elapsed := time.Since(start)

	stats := s.Stats()
	fmt.Fprintf(os.Stderr, "c time (sec):  %f\n", elapsed.Seconds())
	fmt.Fprintf(os.Stderr, "c decisions:   %d\n", stats.Decisions)
	fmt.Fprintf(os.Stderr, "c propagations: %d\n", stats.Propagations)
	fmt.Fprintf(os.Stderr, "c conflicts:   %d\n", stats.Conflicts)

	if result.Satisfiable {
		fmt.Println("sat")
	} else {
		fmt.Println("unsat")
	}
	return nil
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.cpuProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}

	if cfg.memProfile {
		f, err := os.Create("memprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}
}
