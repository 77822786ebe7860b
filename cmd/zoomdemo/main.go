// Command zoomdemo renders a scatter map of synthetic geocoded points with a
// magnified inset of its densest cluster.
package main

import (
	"flag"
	"fmt"
	"image"
	"log/slog"
	"math"
	"math/rand"
	"os"

	"github.com/zoomplot/zoomplot"
	"github.com/zoomplot/zoomplot/internal/config"
	"github.com/zoomplot/zoomplot/plot"
	"github.com/zoomplot/zoomplot/render"
	_ "github.com/zoomplot/zoomplot/render/pdf"
	_ "github.com/zoomplot/zoomplot/render/raster"
	"github.com/zoomplot/zoomplot/zoom"
)

// cluster is a group of points around a named place.
type cluster struct {
	name   string
	center zoomplot.Point
	spread float64
	share  float64
}

var clusters = []cluster{
	{"Harbor", zoomplot.Pt(3, 4), 0.25, 0.45},
	{"Uplands", zoomplot.Pt(7, 7.5), 0.8, 0.3},
	{"Ferry", zoomplot.Pt(6.5, 2), 0.5, 0.25},
}

// insetPlacement is the inset rectangle in axes fractions.
var insetPlacement = zoomplot.NewRect(0.6, 0.05, 0.95, 0.4)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "zoomdemo: %v\n", err)
		os.Exit(1)
	}
	flag.StringVar(&cfg.Output, "output", cfg.Output, "output file")
	flag.StringVar(&cfg.Backend, "backend", cfg.Backend, "output backend ("+fmt.Sprint(render.Backends())+")")
	flag.Float64Var(&cfg.Zoom, "zoom", cfg.Zoom, "inset magnification")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "zoomdemo: %v\n", err)
		os.Exit(2)
	}
	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	zoomplot.SetLogger(logger)

	if err := run(cfg); err != nil {
		logger.Error("zoomdemo failed", "err", err)
		os.Exit(1)
	}
	logger.Info("zoomdemo saved", "output", cfg.Output, "backend", cfg.Backend)
}

func run(cfg *config.Config) error {
	fig := plot.NewFigure(cfg.Width, cfg.Height, cfg.DPI)
	ax := fig.AddAxes(zoomplot.NewRect(0.08, 0.08, 0.95, 0.95))
	if err := ax.SetLimits(zoomplot.NewRect(0, 0, 10, 10)); err != nil {
		return err
	}
	bg := zoomplot.Hex("#f4f1ea")
	ax.Background = &bg

	rng := rand.New(rand.NewSource(cfg.Seed))
	addTerrain(ax)
	addCoastline(ax)
	addPoints(ax, rng, cfg.Points)
	addLabels(ax)

	// The target is sized so the inset magnifies it exactly cfg.Zoom times.
	home := clusters[0].center
	limits := ax.Limits()
	halfW := insetPlacement.Width() * limits.Width() / cfg.Zoom / 2
	halfH := insetPlacement.Height() * limits.Height() / cfg.Zoom / 2
	target := zoomplot.NewRect(home.X-halfW, home.Y-halfH, home.X+halfW, home.Y+halfH)
	if _, err := zoom.New(ax, cfg.Zoom, target, insetPlacement,
		zoom.WithPlacementSpace(zoom.SpaceAxes),
		zoom.WithCulling(0.1),
	); err != nil {
		return fmt.Errorf("inset: %w", err)
	}
	outline := plot.NewRectangle(target, zoomplot.Transparent)
	outline.Fill = nil
	outline.EdgeColor = zoomplot.Gray
	outline.EdgeWidth = 1
	ax.AddPatch(outline)

	f, err := os.Create(cfg.Output)
	if err != nil {
		return err
	}
	if err := fig.Render(cfg.Backend, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// addTerrain adds a shaded elevation raster and a Gouraud-shaded ridge.
func addTerrain(ax *plot.Axes) {
	const n = 64
	low, high := zoomplot.Hex("#dfe9d8"), zoomplot.Hex("#b9c9a6")
	img := image.NewRGBA(image.Rect(0, 0, n, n))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			u, v := float64(x)/n, float64(y)/n
			t := 0.5 + 0.5*math.Sin(6*u)*math.Cos(4*v)
			img.Set(x, y, low.Lerp(high, t))
		}
	}
	terrain := plot.NewImage(img, zoomplot.NewRect(5, 5, 10, 10))
	terrain.Interpolation = plot.Bilinear
	ax.AddImage(terrain)

	ridge := []render.Triangle{
		{P: [3]zoomplot.Point{{X: 0, Y: 6}, {X: 2, Y: 9}, {X: 4, Y: 6.5}}, C: [3]zoomplot.RGBA{low, high, low}},
		{P: [3]zoomplot.Point{{X: 2, Y: 9}, {X: 4, Y: 6.5}, {X: 5, Y: 9.5}}, C: [3]zoomplot.RGBA{high, low, high}},
	}
	mesh := plot.NewTriMesh(ridge)
	mesh.Alpha = 0.8
	ax.AddArtist(mesh)
}

func addCoastline(ax *plot.Axes) {
	water := zoomplot.Hex("#a9cce3")
	var shore []zoomplot.Point
	for i := 0; i <= 40; i++ {
		x := float64(i) / 4
		shore = append(shore, zoomplot.Pt(x, 2.8+0.6*math.Sin(x*1.3)+0.2*math.Cos(x*4)))
	}
	sea := append([]zoomplot.Point{{X: 0, Y: 0}}, shore...)
	sea = append(sea, zoomplot.Pt(10, 0))
	ax.AddPatch(plot.NewPolygon(sea, water))
	ax.Plot(shore, plot.WithColor(zoomplot.Hex("#5d8aa8")), plot.WithWidth(1))

	ax.Plot([]zoomplot.Point{{X: 1, Y: 9}, {X: 3, Y: 4}, {X: 6.5, Y: 2}, {X: 7, Y: 7.5}},
		plot.WithColor(zoomplot.Hex("#8e5c3a")), plot.WithWidth(0.8), plot.WithDash(4, 2), plot.WithMarkers(4))
}

// addPoints scatters count points over the clusters with sizes by weight.
func addPoints(ax *plot.Axes, rng *rand.Rand, count int) {
	palette := []zoomplot.RGBA{
		zoomplot.Hex("#c0392b").WithAlpha(0.7),
		zoomplot.Hex("#2874a6").WithAlpha(0.7),
		zoomplot.Hex("#7d3c98").WithAlpha(0.7),
	}
	for ci, c := range clusters {
		n := int(math.Round(float64(count) * c.share))
		offsets := make([]zoomplot.Point, n)
		sizes := make([]float64, n)
		for i := range offsets {
			offsets[i] = zoomplot.Pt(c.center.X+rng.NormFloat64()*c.spread, c.center.Y+rng.NormFloat64()*c.spread)
			sizes[i] = 8 + 30*rng.Float64()
		}
		coll := ax.Scatter(offsets, sizes, []zoomplot.RGBA{palette[ci%len(palette)]})
		coll.EdgeWidth = 0.3
		coll.Label = c.name
	}
}

func addLabels(ax *plot.Axes) {
	for _, c := range clusters {
		t := plot.NewText(c.center.Add(zoomplot.Pt(0, c.spread+0.3)), c.name)
		t.Align = plot.AlignCenter
		t.Font.Bold = true
		ax.AddText(t)
	}
	note := plot.NewText(zoomplot.Pt(0.3, 0.3), "synthetic survey, seeded")
	note.Font.Size = 7
	note.Color = zoomplot.Gray
	ax.AddText(note)
}
