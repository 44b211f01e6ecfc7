package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"

	"Pathfinder/astar"
	"Pathfinder/constants"

	"go.uber.org/zap"
)

var (
	configFile = flag.String("config", "", "YAML config file")
	layoutFile = flag.String("layout", "", "search the layout in this file, print the result and exit")
	noColor    = flag.Bool("no-color", false, "print without colors")
)

func main() {
	flag.Parse()

	if err := constants.Init(*configFile); err != nil {
		log.Fatal("config: ", err)
	}
	logger, err := newLogger(constants.ENV)
	if err != nil {
		log.Fatal("logger: ", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if *layoutFile != "" {
		code := printLayout(context.Background(), os.Stdout, *layoutFile, !*noColor)
		logger.Sync()
		os.Exit(code)
	}

	srv := NewServer(constants.SEARCH, logger)
	logger.Info("listening", zap.String("addr", constants.Addr()))
	if err := srv.Router().Run(constants.Addr()); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "SERVER" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// printLayout searches the layout file and prints the grid to w. The exit code
// is 0 when a path was found, 1 when none exists and 2 on errors.
func printLayout(ctx context.Context, w io.Writer, path string, colors bool) int {
	text, err := ioutil.ReadFile(path)
	if err != nil {
		zap.L().Error("read layout", zap.String("path", path), zap.Error(err))
		return 2
	}
	grid, err := astar.ParseLayout(string(text))
	if err != nil {
		zap.L().Error("parse layout", zap.String("path", path), zap.Error(err))
		return 2
	}
	grid.RecomputeAllNeighbors()

	engine, err := astar.NewEngine(grid, grid.Start(), grid.End(), astar.WithLogger(zap.L()))
	if err != nil {
		zap.L().Error("search", zap.Error(err))
		return 2
	}
	if _, err := engine.Run(ctx); err != nil {
		zap.L().Error("search", zap.Int("expanded", engine.Expanded()), zap.Error(err))
		return 2
	}

	if err := astar.Print(w, grid, colors); err != nil {
		zap.L().Error("print", zap.Error(err))
		return 2
	}
	if engine.Status() != astar.Found {
		fmt.Fprintf(w, "no path (%d expanded)\n", engine.Expanded())
		return 1
	}
	fmt.Fprintf(w, "path length %d (%d expanded)\n", engine.Length(), engine.Expanded())
	return 0
}
