package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/midbel/speedchart/animal"
	"github.com/midbel/speedchart/config"
	"github.com/midbel/speedchart/controller"
	"github.com/midbel/speedchart/render"
	"github.com/midbel/speedchart/search"
	"github.com/midbel/speedchart/source"
)

const shutdownTimeout = 5 * time.Second

func serveCmd(a *app) *cobra.Command {
	var (
		flags chartFlags
		addr  string
	)
	cmd := &cobra.Command{
		Use:   "serve [source]",
		Short: "Serve the chart and the search proxy over http",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.apply(a.cfg)
			if err != nil {
				return err
			}
			if len(args) > 0 {
				cfg.Source = args[0]
			}
			if addr != "" {
				cfg.Addr = addr
			}
			if cfg.Source == "" {
				return errSource
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, a.logger())
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&addr, "addr", "", "listen address")
	return cmd
}

type server struct {
	cfg  config.Config
	ctrl *controller.Controller
	svg  render.Renderer
	png  render.Renderer
	log  *slog.Logger
}

func newServer(cfg config.Config, log *slog.Logger) (*server, error) {
	svg, err := render.New(render.FormatSVG, cfg.Options())
	if err != nil {
		return nil, err
	}
	png, err := render.New(render.FormatPNG, cfg.Options())
	if err != nil {
		return nil, err
	}
	var (
		src    = source.NewOnce(source.At(cfg.Source))
		canvas = render.NewCanvas(float64(cfg.Chart.Width), float64(cfg.Chart.Height))
	)
	s := server{
		cfg:  cfg,
		svg:  svg,
		png:  png,
		log:  log,
		ctrl: controller.New(src, canvas, controller.WithRenderer(svg), controller.WithLogger(log)),
	}
	return &s, nil
}

func (s *server) routes() http.Handler {
	client := search.NewClient()
	client.SearchURL = s.cfg.Search.SearchURL
	client.SummaryURL = s.cfg.Search.SummaryURL
	client.UserAgent = s.cfg.Search.UserAgent
	client.HTTP = &http.Client{Timeout: s.cfg.Timeout}

	mux := http.NewServeMux()
	mux.HandleFunc("/chart.svg", s.chart(s.svg, render.FormatSVG))
	mux.HandleFunc("/chart.png", s.chart(s.png, render.FormatPNG))
	mux.HandleFunc("/state", s.state)
	mux.Handle("/api/search", search.Handler(client, s.log))
	return mux
}

func (s *server) chart(rdr render.Renderer, format string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			width  = s.queryInt(r, "width", s.cfg.Chart.Width)
			height = s.queryInt(r, "height", s.cfg.Chart.Height)
			canvas = render.NewCanvas(float64(width), float64(height))
		)
		if err := s.ctrl.DrawWith(canvas, rdr); err != nil {
			s.log.Error("serve.chart.failed", "format", format, "err", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("content-type", render.ContentType(format))
		w.Header().Set("cache-control", "no-store")
		canvas.WriteTo(w)
	}
}

type recordView struct {
	Name  string  `json:"name"`
	Speed float64 `json:"speed"`
	Diet  string  `json:"diet"`
}

type stateView struct {
	State    controller.Kind `json:"state"`
	Message  string          `json:"message,omitempty"`
	Records  []recordView    `json:"records"`
	Total    int             `json:"total"`
	Rejected int             `json:"rejected"`
}

func viewState(st controller.State) stateView {
	view := stateView{
		State:    st.Kind,
		Message:  st.Message,
		Records:  []recordView{},
		Total:    st.Dataset.Total(),
		Rejected: len(st.Dataset.Rejected()),
	}
	for _, r := range st.Dataset.Records() {
		view.Records = append(view.Records, viewRecord(r))
	}
	return view
}

func viewRecord(r animal.Record) recordView {
	return recordView{
		Name:  r.Name,
		Speed: r.Speed,
		Diet:  string(r.Diet),
	}
}

func (s *server) state(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("content-type", "application/json")
	json.NewEncoder(w).Encode(viewState(s.ctrl.State()))
}

// maxSize bounds the width and height a request may ask for.
const maxSize = 4096

func (s *server) queryInt(r *http.Request, name string, def int) int {
	str := r.URL.Query().Get(name)
	if str == "" {
		return def
	}
	n, err := strconv.Atoi(str)
	if err != nil || n <= 0 {
		return def
	}
	return min(n, maxSize)
}

func serve(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	s, err := newServer(cfg, log)
	if err != nil {
		return err
	}
	if err := s.ctrl.Mount(ctx); err != nil {
		return err
	}
	defer s.ctrl.Close()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	grp, ctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		log.Info("serve.start", "addr", cfg.Addr, "source", cfg.Source)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	grp.Go(func() error {
		<-ctx.Done()
		log.Info("serve.shutdown")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(sctx)
	})
	return grp.Wait()
}
