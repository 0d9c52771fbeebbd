//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/markkurossi/tabulate"
	"github.com/xyproto/env/v2"

	"github.com/markkurossi/tacopt/optimizer"
	"github.com/markkurossi/tacopt/optimizer/utils"
	"github.com/markkurossi/tacopt/quad"
)

var log = utils.NewLogger(os.Stderr)

type result struct {
	source  string
	in      int
	out     int
	elapsed time.Duration
	err     error
}

func main() {
	params := utils.NewParams()

	fVerbose := flag.Bool("v", env.Bool("TACOPT_VERBOSE"),
		"verbose output")
	fDAG := flag.Bool("dag", false, "print DAG structure of each block")
	fStats := flag.Bool("stats", false, "print optimization statistics")
	fWorkers := flag.Int("workers", env.Int("TACOPT_WORKERS", params.Workers),
		"number of blocks optimized concurrently")
	flag.Parse()

	params.Verbose = *fVerbose
	params.Workers = *fWorkers
	if *fDAG {
		params.DAGOut = os.Stdout
	}

	if flag.NArg() == 0 {
		if err := optimizeStdin(params); err != nil {
			os.Exit(1)
		}
		return
	}

	files, err := discover(flag.Args())
	if err != nil {
		fmt.Printf("Failed to collect input files: %s\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Printf("No input files\n")
		os.Exit(1)
	}

	// Diagnostics of concurrent blocks would interleave; keep the
	// blocks sequential when dumping.
	workers := params.Workers
	if workers < 1 || params.DAGOut != nil {
		workers = 1
	}

	ch := make(chan string)
	results := make(chan result)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			opt := optimizer.New(params)
			for file := range ch {
				results <- optimizeFile(opt, file)
			}
		}()
	}
	go func() {
		for _, file := range files {
			ch <- file
		}
		close(ch)
		wg.Wait()
		close(results)
	}()

	var all []result
	var failed bool

	for r := range results {
		if r.err != nil {
			failed = true
			log.Errorf(utils.Point{Source: r.source}, "%s", r.err)
			continue
		}
		if params.Verbose {
			fmt.Printf("%s: %d => %d instructions\n", r.source, r.in, r.out)
		}
		all = append(all, r)
	}
	if *fStats {
		printStats(all)
	}
	if failed {
		os.Exit(1)
	}
}

// optimizeStdin optimizes one block from the standard input to the
// standard output.
func optimizeStdin(params *utils.Params) error {
	quads, err := quad.Parse("{stdin}", os.Stdin)
	if err != nil {
		return log.Errorf(utils.Point{Source: "{stdin}"}, "%s", err)
	}
	optimized, err := optimizer.New(params).OptimizeBlock("{stdin}", quads)
	if err != nil {
		return log.Errorf(utils.Point{Source: "{stdin}"}, "%s", err)
	}
	return quad.Print(os.Stdout, optimized)
}

// discover expands the arguments into input files. A directory
// argument is searched recursively for .quad files.
func discover(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		err = filepath.WalkDir(arg,
			func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if !d.IsDir() && strings.HasSuffix(path, ".quad") {
					files = append(files, path)
				}
				return nil
			})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

// optimizeFile optimizes the file as one independent block and writes
// the result next to the input. A failed block produces no output
// file.
func optimizeFile(opt *optimizer.Optimizer, file string) result {
	r := result{
		source: file,
	}
	f, err := os.Open(file)
	if err != nil {
		r.err = err
		return r
	}
	quads, err := quad.Parse(file, f)
	f.Close()
	if err != nil {
		r.err = err
		return r
	}
	r.in = len(quads)

	start := time.Now()
	optimized, err := opt.OptimizeBlock(file, quads)
	r.elapsed = time.Since(start)
	if err != nil {
		r.err = err
		return r
	}
	r.out = len(optimized)

	out, err := os.Create(outputName(file))
	if err != nil {
		r.err = err
		return r
	}
	err = quad.Print(out, optimized)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	r.err = err
	return r
}

func outputName(file string) string {
	if strings.HasSuffix(file, ".quad") {
		return strings.TrimSuffix(file, ".quad") + ".opt"
	}
	return file + ".opt"
}

// printStats renders the per-block optimization report.
func printStats(results []result) {
	if len(results) == 0 {
		return
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].source < results[j].source
	})

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Block").SetAlign(tabulate.ML)
	tab.Header("In").SetAlign(tabulate.MR)
	tab.Header("Out").SetAlign(tabulate.MR)
	tab.Header("Saved").SetAlign(tabulate.MR)
	tab.Header("Time").SetAlign(tabulate.MR)

	var tIn, tOut int
	var tElapsed time.Duration

	for _, r := range results {
		tIn += r.in
		tOut += r.out
		tElapsed += r.elapsed

		row := tab.Row()
		row.Column(r.source)
		row.Column(fmt.Sprintf("%d", r.in))
		row.Column(fmt.Sprintf("%d", r.out))
		row.Column(saved(r.in, r.out))
		row.Column(r.elapsed.String())
	}

	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column(fmt.Sprintf("%d", tIn)).SetFormat(tabulate.FmtBold)
	row.Column(fmt.Sprintf("%d", tOut)).SetFormat(tabulate.FmtBold)
	row.Column(saved(tIn, tOut)).SetFormat(tabulate.FmtBold)
	row.Column(tElapsed.String()).SetFormat(tabulate.FmtBold)

	tab.Print(os.Stdout)
}

func saved(in, out int) string {
	if in == 0 {
		return "0.00%"
	}
	return fmt.Sprintf("%.2f%%", float64(in-out)/float64(in)*100)
}
