// seehuhn.de/go/spiral - Fibonacci spiral plots
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"seehuhn.de/go/spiral"
	"seehuhn.de/go/spiral/encode"
)

// Formats lists the accepted values of the --format flag.
var Formats = []string{"png", "svg", "fragment", "datauri", "embed", "pdf"}

// Options holds the command line flags.
type Options struct {
	Terms   int
	Size    int
	Height  int
	Padding int
	Model   string
	Format  string // one of Formats, or empty to use the output file extension
	Output  string // "-" means standard output
	Verbose bool
}

// NewRootCommand creates the fibspiral command.
func NewRootCommand() *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:   "fibspiral",
		Short: "Plot the Fibonacci spiral",
		Long: `Plot the golden spiral, or a chain of Fibonacci quarter circles, on a
grid with labelled axes and a legend.

Raster output accepts up to 1000 terms, vector output up to 50 terms.
Canvas sizes are limited to 100 to 2000 pixels.  Values outside these
ranges are clamped.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.Terms, "terms", "n", 12, "number of Fibonacci terms")
	cmd.Flags().IntVarP(&opts.Size, "size", "s", 800, "image width in pixels")
	cmd.Flags().IntVar(&opts.Height, "height", 0, "image height in pixels (default 3/4 of the width)")
	cmd.Flags().IntVar(&opts.Padding, "padding", 0, "margin around the plot area in pixels (default 12)")
	cmd.Flags().StringVar(&opts.Model, "model", "log", "curve family (log|arcs)")
	cmd.Flags().StringVar(&opts.Format, "format", "", "output format ("+strings.Join(Formats, "|")+")")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "fib_test.png", "output file, - for standard output")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	return cmd
}

func run(opts *Options, cmd *cobra.Command) error {
	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	format, err := resolveFormat(opts.Format, opts.Output)
	if err != nil {
		return err
	}
	model, err := spiral.ParseModel(opts.Model)
	if err != nil {
		return err
	}

	bounds := spiral.VectorBounds()
	if format == "png" || format == "pdf" {
		bounds = spiral.RasterBounds()
	}
	plotOpts := &spiral.Options{
		Terms:   opts.Terms,
		Size:    opts.Size,
		Height:  opts.Height,
		Padding: opts.Padding,
		Model:   model,
		Bounds:  bounds,
	}
	c := plotOpts.Clamped()
	logger.Debug("plot parameters",
		"terms", c.Terms, "width", c.Size, "height", c.Height,
		"padding", c.Padding, "model", c.Model, "format", format)

	data, err := render(format, plotOpts)
	if err != nil {
		return err
	}

	if opts.Output == "-" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := writeFile(opts.Output, data); err != nil {
		return err
	}
	logger.Info("wrote plot", "file", opts.Output, "format", format, "bytes", len(data))
	return nil
}

// resolveFormat returns the explicit format, or guesses it from the
// extension of the output file.
func resolveFormat(format, output string) (string, error) {
	if format == "" {
		switch strings.ToLower(filepath.Ext(output)) {
		case ".svg":
			return "svg", nil
		case ".pdf":
			return "pdf", nil
		case ".html", ".htm":
			return "fragment", nil
		default:
			return "png", nil
		}
	}
	if !slices.Contains(Formats, format) {
		return "", fmt.Errorf("invalid format %q: must be one of %v", format, Formats)
	}
	return format, nil
}

func render(format string, opts *spiral.Options) ([]byte, error) {
	switch format {
	case "png":
		return spiral.Render(spiral.FormatPNG, opts)
	case "pdf":
		return spiral.Render(spiral.FormatPDF, opts)
	}

	data, err := spiral.Render(spiral.FormatSVG, opts)
	if err != nil {
		return nil, err
	}
	doc := string(data)
	switch format {
	case "fragment":
		doc = encode.Fragment(doc)
	case "datauri":
		doc = encode.DataURI(doc)
	case "embed":
		doc = encode.ObjectEmbed(encode.Fragment(doc))
	}
	return []byte(doc), nil
}

// writeFile writes data to a new file, removing the file again if the
// data cannot be written completely.
func writeFile(name string, data []byte) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(name)
		}
	}()
	_, err = f.Write(data)
	return err
}
