package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/midbel/speedchart/config"
	"github.com/midbel/speedchart/controller"
	"github.com/midbel/speedchart/render"
	"github.com/midbel/speedchart/source"
)

var errSource = errors.New("no source given")

type chartFlags struct {
	format string
	output string
	title  string
	width  int
	height int
}

func (f chartFlags) apply(cfg config.Config) (config.Config, error) {
	cfg = cfg.Merge(config.Config{
		Format: f.format,
		Output: f.output,
		Chart: config.Chart{
			Title:  f.title,
			Width:  f.width,
			Height: f.height,
		},
	})
	return cfg, cfg.Validate()
}

func (f *chartFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "output format: svg|png|text")
	cmd.Flags().StringVar(&f.title, "title", "", "chart title")
	cmd.Flags().IntVar(&f.width, "width", 0, "chart width")
	cmd.Flags().IntVar(&f.height, "height", 0, "chart height")
}

func renderCmd(a *app) *cobra.Command {
	var flags chartFlags

	cmd := &cobra.Command{
		Use:   "render [source]",
		Short: "Render the chart of a csv source once",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.apply(a.cfg)
			if err != nil {
				return err
			}
			if len(args) > 0 {
				cfg.Source = args[0]
			}
			if cfg.Source == "" {
				return errSource
			}
			canvas, st, err := renderOnce(cmd.Context(), a, cfg)
			if err != nil {
				return err
			}
			switch st.Kind {
			case controller.Error:
				return fmt.Errorf("render: %s", st.Message)
			case controller.Empty:
				fmt.Fprintln(cmd.ErrOrStderr(), warnStyle.Render(st.Message))
			}
			return writeOutput(cmd.OutOrStdout(), cfg.Output, canvas)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (default stdout)")
	return cmd
}

func renderOnce(ctx context.Context, a *app, cfg config.Config) (*render.Canvas, controller.State, error) {
	rdr, err := render.New(cfg.Format, cfg.Options())
	if err != nil {
		return nil, controller.State{}, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	var (
		canvas = render.NewCanvas(float64(cfg.Chart.Width), float64(cfg.Chart.Height))
		ctrl   = controller.New(source.At(cfg.Source), canvas,
			controller.WithRenderer(rdr),
			controller.WithLogger(a.logger()),
		)
	)
	defer ctrl.Close()

	if err := ctrl.Mount(ctx); err != nil {
		return nil, controller.State{}, err
	}
	select {
	case <-ctrl.Done():
		return canvas, ctrl.State(), nil
	case <-ctx.Done():
		return nil, controller.State{}, ctx.Err()
	}
}

func writeOutput(stdout io.Writer, file string, canvas *render.Canvas) error {
	if file == "" || file == "-" {
		_, err := canvas.WriteTo(stdout)
		return err
	}
	return os.WriteFile(file, canvas.Bytes(), 0o644)
}
