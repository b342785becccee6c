package main

import (
	"image"
	"image/color"
	"image/draw"
	"log/slog"

	"github.com/gogpu/gg"
	"github.com/spf13/cobra"
	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"dasa.cc/seekarc/gesture"
	"dasa.cc/seekarc/render"
	"dasa.cc/seekarc/ring"
	"dasa.cc/seekarc/seek"
)

func viewCmd() *cobra.Command {
	var width, height int
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Show a control in a window",
		Long:  "Show a control in a window and drag it with the mouse. Escape quits.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			driver.Main(func(s screen.Screen) {
				err = view(s, width, height)
			})
			return err
		},
	}
	cmd.Flags().IntVar(&width, "width", 400, "window width")
	cmd.Flags().IntVar(&height, "height", 400, "window height")
	return cmd
}

// viewer paints a control into a window-sized buffer.
type viewer struct {
	bar     *seek.Seekbar
	theme   render.Theme
	density ring.Density
	sz      size.Event
	buf     screen.Buffer
}

func (v *viewer) resize(e size.Event) {
	v.sz = e
	v.density = ring.DensityOf(e)
	v.theme.Style = cfg.Style(v.density)
	v.bar.SetRing(ring.Measure(e.WidthPx, e.HeightPx, v.theme.Style))
}

func (v *viewer) paint(s screen.Screen, w screen.Window) error {
	sz := v.sz.Size()
	if sz.X == 0 || sz.Y == 0 {
		return nil
	}
	if v.buf == nil || v.buf.Size() != sz {
		if v.buf != nil {
			v.buf.Release()
		}
		var err error
		if v.buf, err = s.NewBuffer(sz); err != nil {
			return err
		}
	}

	img, err := render.Image(sz.X, sz.Y, v.bar.Frame(), v.theme)
	if err != nil {
		return err
	}
	dst := v.buf.RGBA()
	draw.Draw(dst, dst.Bounds(), img, image.Point{}, draw.Src)
	render.Label(dst, render.ValueLabel(v.bar.Value(), v.bar.Max()), color.White, 72*float64(v.density))

	w.Upload(image.Point{}, v.buf, v.buf.Bounds())
	w.Publish()
	return nil
}

func view(s screen.Screen, width, height int) error {
	w, err := s.NewWindow(&screen.NewWindowOptions{Title: "seekarc", Width: width, Height: height})
	if err != nil {
		return err
	}
	defer w.Release()

	bar, err := seek.New(cfg.Seek())
	if err != nil {
		return err
	}
	bar.SetListener(func(c seek.Change) {
		seek.Logger().Info("progress", slog.Int("value", c.Value), slog.Bool("user", c.FromUser))
	})

	v := &viewer{bar: bar, theme: render.DefaultTheme}
	v.theme.Background = gg.Hex("#212121")
	defer func() {
		if v.buf != nil {
			v.buf.Release()
		}
	}()

	filter := gesture.EventFilter{Target: bar, OnSize: v.resize}

	// paintPending batches repaints while input events queue up.
	paintPending := false
	for {
		e := filter.Filter(w.NextEvent())

		switch e := e.(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return nil
			}
		case key.Event:
			if e.Code == key.CodeEscape {
				return nil
			}
		case paint.Event:
			if err := v.paint(s, w); err != nil {
				return err
			}
			paintPending = false
		case size.Event:
			paintPending = true
			w.Send(paint.Event{})
		case error:
			return e
		}

		if !paintPending && bar.Dirty() {
			paintPending = true
			w.Send(paint.Event{})
		}
	}
}
