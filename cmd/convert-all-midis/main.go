package main

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"midi2json/batch"
	"midi2json/config"
	"midi2json/convert"
)

func newCommand(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:   "convert-all-midis",
		Usage:  "Convert every MIDI file in a directory to JSON",
		Writer: stdout,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "dir",
				Usage: "directory to scan (default: directory of this executable)",
			},
			&cli.StringFlag{
				Name:      "config",
				Usage:     "TOML settings file",
				TakesFile: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			settings, err := config.Load(cmd.String("config"))
			if err != nil {
				return err
			}

			dir := cmd.String("dir")
			if dir == "" {
				if dir, err = batch.DefaultDir(); err != nil {
					return err
				}
			}

			runner := batch.NewRunner(convert.NewConverter(settings), cmd.Writer, settings.Pattern)
			_, err = runner.Run(dir)
			return err
		},
	}
}

func main() {
	log.SetFlags(0)

	if err := newCommand(os.Stdout).Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
