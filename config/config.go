// Package config loads the settings of speedchart from a yaml file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/midbel/speedchart/render"
	"github.com/midbel/speedchart/search"
)

const (
	DefaultWidth   = 960
	DefaultHeight  = 540
	DefaultAddr    = ":8080"
	DefaultTimeout = 30 * time.Second
)

// Error reports an invalid setting.
type Error struct {
	Field string
	Path  string
	Err   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	base := "config"
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Field != "" {
		base += ": " + e.Field
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

var (
	ErrFormat = errors.New("unknown format")
	ErrSize   = errors.New("size must be positive")
)

type Chart struct {
	Title  string `yaml:"title"`
	XLabel string `yaml:"x_label"`
	YLabel string `yaml:"y_label"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type Search struct {
	SearchURL  string `yaml:"search_url"`
	SummaryURL string `yaml:"summary_url"`
	UserAgent  string `yaml:"user_agent"`
}

type Config struct {
	Source  string        `yaml:"source"`
	Output  string        `yaml:"output"`
	Format  string        `yaml:"format"`
	Addr    string        `yaml:"addr"`
	Timeout time.Duration `yaml:"timeout"`
	Chart   Chart         `yaml:"chart"`
	Search  Search        `yaml:"search"`
}

func Default() Config {
	return Config{
		Format:  render.FormatSVG,
		Addr:    DefaultAddr,
		Timeout: DefaultTimeout,
		Chart: Chart{
			XLabel: "Animal",
			YLabel: "Speed (km/h)",
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
		Search: Search{
			SearchURL:  search.DefaultSearchURL,
			SummaryURL: search.DefaultSummaryURL,
			UserAgent:  search.DefaultUserAgent,
		},
	}
}

// Load reads the file at path. An empty path gives the default settings.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &Error{
			Path: path,
			Err:  err,
		}
	}
	cfg, err := Decode(bytes.NewReader(b))
	if err != nil {
		var ce *Error
		if errors.As(err, &ce) {
			ce.Path = path
			return Config{}, ce
		}
		return Config{}, &Error{
			Path: path,
			Err:  err,
		}
	}
	return cfg, nil
}

// Decode reads settings from r and fills the missing ones with their
// default value.
func Decode(r io.Reader) (Config, error) {
	var file Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	cfg := Default().Merge(file)
	return cfg, cfg.Validate()
}

// Merge returns c with every non zero field of other copied over it.
func (c Config) Merge(other Config) Config {
	setString(&c.Source, other.Source)
	setString(&c.Output, other.Output)
	setString(&c.Format, other.Format)
	setString(&c.Addr, other.Addr)
	if other.Timeout != 0 {
		c.Timeout = other.Timeout
	}
	setString(&c.Chart.Title, other.Chart.Title)
	setString(&c.Chart.XLabel, other.Chart.XLabel)
	setString(&c.Chart.YLabel, other.Chart.YLabel)
	if other.Chart.Width != 0 {
		c.Chart.Width = other.Chart.Width
	}
	if other.Chart.Height != 0 {
		c.Chart.Height = other.Chart.Height
	}
	setString(&c.Search.SearchURL, other.Search.SearchURL)
	setString(&c.Search.SummaryURL, other.Search.SummaryURL)
	setString(&c.Search.UserAgent, other.Search.UserAgent)
	return c
}

func (c Config) Validate() error {
	switch strings.ToLower(c.Format) {
	case render.FormatSVG, render.FormatPNG, render.FormatText:
	default:
		return &Error{
			Field: "format",
			Err:   fmt.Errorf("%w: %q", ErrFormat, c.Format),
		}
	}
	if c.Chart.Width < 0 {
		return &Error{
			Field: "chart.width",
			Err:   ErrSize,
		}
	}
	if c.Chart.Height < 0 {
		return &Error{
			Field: "chart.height",
			Err:   ErrSize,
		}
	}
	if c.Timeout < 0 {
		return &Error{
			Field: "timeout",
			Err:   errors.New("timeout must not be negative"),
		}
	}
	return nil
}

// Options returns the texts of the chart.
func (c Config) Options() render.Options {
	return render.Options{
		Title:  c.Chart.Title,
		XLabel: c.Chart.XLabel,
		YLabel: c.Chart.YLabel,
	}
}

func setString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
