// Command testdata generates input files for the built-in executors.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/schollz/progressbar/v3"

	"pkg.jsn.cam/minireduce/cmd/testdata/generator"
)

var (
	genName    = flag.String("generator", "wordcount", "Generator to use (see -list)")
	count      = flag.Int64("count", 0, "Lines to generate (0 = generator default)")
	outputPath = flag.String("output", "var/testdata.log", "Output file path")
	seed       = flag.Uint64("seed", 0, "Random seed (0 = time-based)")
	userCount  = flag.Int("users", 100, "Unique users for action data")
	keyCount   = flag.Int("keys", 10, "Unique keys for metric data")
	listOnly   = flag.Bool("list", false, "List available generators and exit")
)

func main() {
	flag.Parse()

	if *listOnly {
		names := generator.List()
		sort.Strings(names)
		for _, name := range names {
			g, _ := generator.Get(name)
			fmt.Printf("%-12s %s\n", name, g.Description())
		}
		return
	}

	generator.SetUserCount(*genName, *userCount)
	generator.SetKeyCount(*genName, *keyCount)

	gen, err := generator.Get(*genName)
	if err != nil {
		log.Fatalf("testdata: %v", err)
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	gen.Init(rand.New(rand.NewPCG(*seed, *seed)))

	lines := *count
	if lines <= 0 {
		lines = gen.DefaultCount()
	}

	if err := os.MkdirAll(filepath.Dir(*outputPath), 0755); err != nil {
		log.Fatalf("testdata: %v", err)
	}
	file, err := os.Create(*outputPath)
	if err != nil {
		log.Fatalf("testdata: %v", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	bar := progressbar.Default(lines, "generating")
	for i := int64(0); i < lines; i++ {
		if err := gen.WriteLine(w); err != nil {
			log.Fatalf("testdata: writing line %d: %v", i, err)
		}
		bar.Add(1)
	}
	if err := w.Flush(); err != nil {
		log.Fatalf("testdata: %v", err)
	}
	bar.Finish()

	fmt.Fprintf(os.Stderr, "wrote %d lines of %s data to %s (seed %d)\n", lines, *genName, *outputPath, *seed)
}
