package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"dasa.cc/seekarc/render"
	"dasa.cc/seekarc/ring"
)

var densities = map[string]ring.Density{
	"ldpi":    ring.LDPI,
	"mdpi":    ring.MDPI,
	"hdpi":    ring.HDPI,
	"xhdpi":   ring.XHDPI,
	"xxhdpi":  ring.XXHDPI,
	"xxxhdpi": ring.XXXHDPI,
}

func renderCmd() *cobra.Command {
	var (
		size    int
		value   int
		density string
		label   bool
	)
	cmd := &cobra.Command{
		Use:   "render file.png",
		Short: "Render a control to PNG",
		Long: `Render a control to PNG. The control is drawn at mdpi in a square view and
scaled for the named density: ldpi, mdpi, hdpi, xhdpi, xxhdpi or xxxhdpi.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, ok := densities[density]
			if !ok {
				return fmt.Errorf("unknown density %q", density)
			}
			if cmd.Flags().Changed("value") {
				cfg.Progress = value
			}
			sess, err := newSession(cfg, size, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			img, err := render.Image(size, size, sess.bar.Frame(), sess.theme)
			if err != nil {
				return err
			}
			if label {
				rgba := image.NewRGBA(img.Bounds())
				draw.Draw(rgba, rgba.Bounds(), img, image.Point{}, draw.Src)
				render.Label(rgba, render.ValueLabel(sess.bar.Value(), sess.bar.Max()), color.White, 72)
				img = rgba
			}
			return writePNG(args[0], render.Scale(img, d))
		},
	}
	cmd.Flags().IntVar(&size, "size", 200, "view width and height at mdpi")
	cmd.Flags().IntVar(&value, "value", 0, "value to render, overriding the configured progress")
	cmd.Flags().StringVar(&density, "density", "mdpi", "output density")
	cmd.Flags().BoolVar(&label, "label", false, "draw the value in the center")
	return cmd
}

func writePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
