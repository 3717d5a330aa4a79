package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/alecthomas/kong"
	mangokong "github.com/alecthomas/mango-kong"
	"go.uber.org/zap"

	"github.com/ozontech/nextline/consts"
)

var CLI struct {
	Cat     CatCommand        `cmd:"" help:"Print lines of files."`
	Count   CountCommand      `cmd:"" help:"Count lines of files."`
	Man     mangokong.ManFlag `help:"Write man page." hidden:""`
	Verbose bool              `help:"Verbose output"`
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	kongCtx := kong.Parse(
		&CLI,
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.Vars{
			"chunk_size":    strconv.Itoa(consts.DefaultChunkSize),
			"max_line_size": strconv.Itoa(consts.DefaultMaxLineSize),
			"shards":        strconv.Itoa(consts.DefaultShards),
		},
		kong.Groups(map[string]string{
			"reader": `Reader flags:`,
		}),
		kong.ConfigureHelp(kong.HelpOptions{
			Tree:    true,
			Compact: true,
		}),
		kong.Description(`line by line reader

nextline reads files one line per call through a fixed size read chunk.
		`),
	)

	log := zap.NewNop()
	if CLI.Verbose {
		log = zap.Must(zap.NewDevelopment())
	}
	defer log.Sync() //nolint:errcheck

	err := kongCtx.Run(log)
	kongCtx.FatalIfErrorf(err)
}
