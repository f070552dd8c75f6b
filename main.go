package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"midi2json/config"
	"midi2json/convert"
)

// version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func newCommand(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "midi2json",
		Usage:     "Convert MIDI files to JSON",
		ArgsUsage: "<midi_file>",
		Version:   version,
		Writer:    stdout,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:      "output",
				Aliases:   []string{"o"},
				Usage:     "Output JSON file (default: same name with .json extension)",
				TakesFile: true,
			},
			&cli.StringFlag{
				Name:      "config",
				Usage:     "TOML settings file",
				TakesFile: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() < 1 {
				return errors.New("missing required argument: midi_file")
			}
			src := cmd.Args().First()

			settings, err := config.Load(cmd.String("config"))
			if err != nil {
				return err
			}

			dst, err := convert.NewConverter(settings).Convert(src, cmd.String("output"))
			if err != nil {
				return errors.Wrap(err, "Error converting MIDI file")
			}

			fmt.Fprintf(cmd.Writer, "Successfully converted %s to %s\n", src, dst)
			return nil
		},
	}
}

func main() {
	log.SetFlags(0)

	if err := newCommand(os.Stdout).Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
