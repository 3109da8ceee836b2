// SPDX-License-Identifier: GPL-2.0-or-later

// gxview builds the vertex buffers and programs of a fixture file, reports
// what it built and optionally checks the programs with the GL driver.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"gxview/conlog"

	"github.com/gopxl/mainthread/v2"
)

var (
	fixturePath = flag.String("fixture", "", "YAML fixture with materials and meshes")
	outDir      = flag.String("out", "", "write the generated program sources to this directory")
	validate    = flag.Bool("validate", false, "compile and draw every program in a hidden GL window")
	cachePath   = flag.String("cache", "", "program source file, read at start and rewritten at exit")
	verbose     = flag.Bool("v", false, "log cache misses and GL debug output")
	workers     = flag.Int("j", runtime.NumCPU(), "number of build workers")
)

func main() {
	flag.Parse()
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	conlog.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	if *fixturePath == "" || flag.NArg() != 0 {
		fmt.Fprintf(os.Stderr, "usage: %s -fixture file.yaml [flags]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	cfg := config{
		fixture:  *fixturePath,
		out:      *outDir,
		validate: *validate,
		cache:    *cachePath,
		workers:  max(*workers, 1),
	}
	var err error
	mainthread.Run(func() {
		err = run(cfg)
	})
	if err != nil {
		conlog.Logger().Error("gxview failed", "err", err)
		os.Exit(1)
	}
}
