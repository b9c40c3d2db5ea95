package main

import (
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/pspoerri/isea/internal/config"
	"github.com/pspoerri/isea/internal/coord"
	"github.com/pspoerri/isea/internal/encode"
	"github.com/pspoerri/isea/internal/render"
)

func newRenderCmd() *config.SubCommand {
	sc := &config.SubCommand{}
	sc.Cmd = &cobra.Command{
		Use:   "render",
		Short: "Render a world map colored by face",
		Long: `Render draws a world map where each pixel is colored by the face of
the icosahedron it belongs to. The map is written in the format given by
--format, or by the extension of --output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := projection(sc)
			if err != nil {
				return err
			}
			conf := sc.Conf
			output := conf.GetString("output")
			if output == "" {
				return errors.New("--output is required")
			}
			format := conf.GetString("format")
			if format == "" {
				if format, err = encode.FormatFromPath(output); err != nil {
					return err
				}
			}
			enc, err := encode.NewEncoder(format, conf.GetInt("quality"))
			if err != nil {
				return err
			}
			lossless := conf.GetBool("lossless")
			if w, ok := enc.(*encode.WebPEncoder); ok {
				w.Lossless = lossless
			} else if lossless {
				return errors.Errorf("--lossless is only supported for webp, not %s", enc.Format())
			}
			grid, err := coord.ForName(conf.GetString("grid"))
			if err != nil {
				return err
			}

			cfg := render.Config{
				Width:       conf.GetInt("width"),
				Height:      conf.GetInt("height"),
				Grid:        grid,
				Concurrency: conf.GetInt("concurrency"),
				Shade:       conf.GetBool("shade"),
				Edges:       conf.GetBool("edges"),
			}
			if conf.GetBool("progress") {
				cfg.Progress = os.Stderr
			}
			if cfg.Height == 0 {
				// Keep the aspect ratio of the grid.
				minX, minY, maxX, maxY := grid.Extent()
				cfg.Height = int(float64(cfg.Width) * (maxY - minY) / (maxX - minX))
			}

			start := time.Now()
			img, stats, err := render.Render(cmd.Context(), p, cfg)
			if err != nil {
				return err
			}
			data, err := enc.Encode(img)
			if err != nil {
				return errors.Wrapf(err, "encoding %s", enc.Format())
			}
			glog.Infof("Rendered %dx%d %s map, %s pixels in %s",
				cfg.Width, cfg.Height, enc.Format(), humanize.Comma(stats.Pixels),
				time.Since(start).Round(time.Millisecond))
			return writeOutput(cmd.OutOrStdout(), output, data)
		},
	}
	flags := sc.Cmd.Flags()
	flags.StringP("output", "o", "", "Output image file, or - for standard output.")
	flags.String("format", "", "Image format: png, jpeg, webp (default: from the output extension).")
	flags.Int("quality", encode.DefaultQuality, "JPEG/WebP quality 1-100.")
	flags.Bool("lossless", false, "Encode WebP losslessly.")
	flags.Int("width", 2048, "Image width in pixels.")
	flags.Int("height", 0, "Image height in pixels (default: keep the aspect ratio of the grid).")
	flags.String("grid", "equirectangular", "Map grid: equirectangular, mercator.")
	flags.Int("concurrency", 0, "Number of parallel workers (default: number of CPUs).")
	flags.Bool("shade", true, "Darken pixels towards the face vertices.")
	flags.Bool("edges", true, "Draw the face boundaries.")
	flags.Bool("progress", false, "Show a progress bar on standard error.")
	return sc
}
