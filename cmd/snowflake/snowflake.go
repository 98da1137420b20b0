package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/willbeason/snowflake/pkg/errors"
	"github.com/willbeason/snowflake/pkg/geometry"
	"github.com/willbeason/snowflake/pkg/outline"
	"github.com/willbeason/snowflake/pkg/render/nodelink"
	"github.com/willbeason/snowflake/pkg/render/raster"
	"github.com/willbeason/snowflake/pkg/render/svg"
	"github.com/willbeason/snowflake/pkg/spec"
	"github.com/willbeason/snowflake/pkg/tree"
)

const (
	FormatSVG   = "svg"
	FormatPNG   = "png"
	FormatDOT   = "dot"
	FormatGraph = "graph"
	FormatDump  = "dump"

	PresetStar      = "star"
	PresetSymmetric = "symmetric"
	PresetBalanced  = "balanced"
	PresetRandom    = "random"
)

var formats = []string{FormatSVG, FormatPNG, FormatDOT, FormatGraph, FormatDump}

var presets = []string{PresetStar, PresetSymmetric, PresetBalanced, PresetRandom}

// options holds the command-line flags.
type options struct {
	output    string
	format    string
	width     int
	height    int
	originX   float64
	originY   float64
	angle     float64
	markers   bool
	namespace string
	detailed  bool

	preset string
	seed   int64
	layers int
	arms   int
	spread float64

	verbose bool
}

func mainCmd() *cobra.Command {
	opts := options{
		format:    FormatSVG,
		width:     1024,
		height:    1024,
		angle:     -90,
		namespace: svg.Namespace,
		preset:    PresetSymmetric,
		layers:    3,
		arms:      6,
		spread:    90,
	}

	cmd := &cobra.Command{
		Use:   "snowflake [spec-file]",
		Short: "Draw the outline of a branching snowflake",
		Long: `snowflake lays out a recursive branch spec, traces the closed outline of
the branch network, and writes it as SVG, PNG, Graphviz or a debug dump.

The spec is read from a .toml, .hcl or .json file, or built from --preset.`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := log.InfoLevel
			if opts.verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCmd(cmd, args, &opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "", `output file, "-" for stdout (default "out.<format>")`)
	flags.StringVarP(&opts.format, "format", "f", opts.format, "output format: "+strings.Join(formats, ", "))
	flags.IntVar(&opts.width, "width", opts.width, "image width in pixels")
	flags.IntVar(&opts.height, "height", opts.height, "image height in pixels")
	flags.Float64Var(&opts.originX, "origin-x", 0, "x coordinate of the root junction")
	flags.Float64Var(&opts.originY, "origin-y", 0, "y coordinate of the root junction")
	flags.Float64Var(&opts.angle, "angle", opts.angle, "direction of the root, in degrees")
	flags.BoolVar(&opts.markers, "markers", false, "draw junction markers and branch lines (svg)")
	flags.StringVar(&opts.namespace, "namespace", opts.namespace, "xmlns of the svg root element")
	flags.BoolVar(&opts.detailed, "detailed", false, "label every junction with its position (dot, graph)")
	flags.StringVar(&opts.preset, "preset", opts.preset, "spec to build without a file: "+strings.Join(presets, ", "))
	flags.Int64Var(&opts.seed, "seed", 0, "random seed for the random preset (default: time based)")
	flags.IntVar(&opts.layers, "layers", opts.layers, "fork depth of preset arms")
	flags.IntVar(&opts.arms, "arms", opts.arms, "number of preset arms around the center")
	flags.Float64Var(&opts.spread, "spread", opts.spread, "fork spread of preset arms, in degrees")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func runCmd(cmd *cobra.Command, args []string, opts *options) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	if err := opts.validate(); err != nil {
		return err
	}

	b, err := loadSpec(ctx, args, opts)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	origin := geometry.XY{X: opts.originX, Y: opts.originY}
	root, polygon, err := outline.Snowflake(b, origin, opts.angle)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Traced %d junctions into %d vertices", tree.Count(root), polygon.Len()))

	return writeOutput(cmd, opts, func(w io.Writer) error {
		return render(ctx, w, root, polygon, opts)
	})
}

func (o *options) validate() error {
	if !contains(formats, o.format) {
		return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (want %s)", o.format, strings.Join(formats, ", "))
	}
	if !contains(presets, o.preset) {
		return errors.New(errors.ErrCodeInvalidInput, "unknown preset %q (want %s)", o.preset, strings.Join(presets, ", "))
	}
	if o.width < raster.MinSize || o.width > raster.MaxSize || o.height < raster.MinSize || o.height > raster.MaxSize {
		return errors.New(errors.ErrCodeInvalidInput, "size %dx%d outside %d..%d", o.width, o.height, raster.MinSize, raster.MaxSize)
	}
	if o.layers < 0 || o.arms < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "layers and arms must not be negative")
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// loadSpec reads the spec file named in args, or builds the preset.
func loadSpec(ctx context.Context, args []string, opts *options) (spec.Branch, error) {
	logger := loggerFromContext(ctx)

	if len(args) == 1 {
		logger.Debug("Loading spec", "path", args[0])
		b, err := spec.Load(args[0])
		if err != nil {
			return spec.Branch{}, err
		}
		logger.Info("Loaded spec", "path", args[0], "junctions", spec.Count(b))
		return b, nil
	}

	logger.Debug("Building preset", "preset", opts.preset, "layers", opts.layers, "arms", opts.arms)
	switch opts.preset {
	case PresetStar:
		return spec.Star(opts.arms, 10, 2), nil
	case PresetBalanced:
		return spec.Around(opts.arms, 10, 2, spec.Balanced(opts.layers, opts.spread, 6, 1.4, 0.6)), nil
	case PresetRandom:
		seed := opts.seed
		if seed == 0 {
			seed = rand.Int63()
		}
		logger.Info("Random preset", "seed", seed)
		return spec.Random(opts.layers, rand.New(rand.NewSource(seed))), nil
	default:
		return spec.Symmetric(opts.layers, opts.arms, 3, opts.spread, 10, 2, 0.5), nil
	}
}

func render(ctx context.Context, w io.Writer, root tree.Node, polygon outline.Polygon, opts *options) error {
	switch opts.format {
	case FormatPNG:
		img, err := raster.Render(polygon, opts.width, opts.height)
		if err != nil {
			return err
		}
		return raster.Encode(w, img)
	case FormatDOT:
		_, err := io.WriteString(w, nodelink.ToDOT(root, nodelink.Options{Detailed: opts.detailed}))
		return err
	case FormatGraph:
		out, err := nodelink.RenderSVG(ctx, nodelink.ToDOT(root, nodelink.Options{Detailed: opts.detailed}))
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	case FormatDump:
		return tree.Dump(w, root)
	default:
		svgOpts := []svg.Option{
			svg.WithNamespace(opts.namespace),
			svg.WithSize(opts.width, opts.height),
		}
		if opts.markers {
			svgOpts = append(svgOpts, svg.WithTree(root))
		}
		return svg.Render(w, polygon, svgOpts...)
	}
}

// writeOutput runs write against the output file, or stdout for "-".
func writeOutput(cmd *cobra.Command, opts *options, write func(io.Writer) error) error {
	logger := loggerFromContext(cmd.Context())

	path := opts.output
	if path == "" {
		path = "out." + extension(opts.format)
	}
	if path == "-" {
		return write(cmd.OutOrStdout())
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "create output")
	}

	err = write(f)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}

	logger.Info("Wrote output", "path", path, "format", opts.format)
	return nil
}

func extension(format string) string {
	switch format {
	case FormatGraph:
		return "graph.svg"
	case FormatDump:
		return "txt"
	default:
		return format
	}
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// Cobra prints the error; only the exit status is left to set.
		os.Exit(1)
	}
}
