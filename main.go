package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	log "github.com/sirupsen/logrus"

	"github.com/fermatics/raybend/anim"
	"github.com/fermatics/raybend/explore"
	"github.com/fermatics/raybend/refract"
	refractConfig "github.com/fermatics/raybend/refract/config"
	"github.com/fermatics/raybend/rundir"
)

var CLI struct {
	Verbose bool `name:"verbose" short:"v" help:"enable debug logging"`

	Simulate SimulateCmd `cmd:"" help:"Solve the least-time light path and render it"`
	Sweep    SweepCmd    `cmd:"" help:"Plot travel time across candidate crossings"`
	Explore  ExploreCmd  `cmd:"" help:"Browse candidate crossings interactively"`
	Validate ValidateCmd `cmd:"" help:"Check a config file and exit"`
}

func loadConfig(path string) (*refractConfig.Config, error) {
	return refractConfig.LoadFromFile(path, refractConfig.LoadOptions{
		ApplyDefaults:       true,
		ValidateImmediately: true,
		ResolvePaths:        true,
	})
}

func buildParams(cfg *refractConfig.Config) refract.Params {
	width, height := cfg.Plane.Dimensions()
	return refract.Params{
		ReferenceSpeed: cfg.SpeedOfLight,
		Medium1:        refract.Medium{Speed: cfg.Material.Velocity1},
		Medium2:        refract.Medium{Speed: cfg.Material.Velocity2},
		A:              refract.P(cfg.Points.StartX, cfg.Points.StartY),
		B:              refract.P(cfg.Points.EndX, cfg.Points.EndY),
		InterfaceY:     cfg.Plane.InterfaceY,
		PlaneSize:      refract.Size{Width: width, Height: height},
	}
}

type SimulateCmd struct {
	Config  string `arg:"" name:"config" help:"config file describing the media and endpoints"`
	Out     string `name:"out" short:"o" help:"output file (default light_path.<format>)"`
	Format  string `name:"format" default:"gif" enum:"gif,png,html,json" help:"artifact to produce"`
	Pacing  string `name:"pacing" default:"length" enum:"length,speed" help:"frame pacing along the path"`
	Archive bool   `name:"archive" help:"keep the artifact and config copy in a fresh run directory"`
}

func (c SimulateCmd) Run() error {
	cfg, err := loadConfig(c.Config)
	if err != nil {
		return err
	}

	pf, err := refract.NewPathFinder(buildParams(cfg))
	if err != nil {
		return err
	}
	path, err := pf.ComputePath()
	if err != nil {
		return err
	}

	format, err := anim.ParseFormat(c.Format)
	if err != nil {
		return err
	}
	out := c.Out
	if out == "" {
		out = "light_path" + format.Ext()
	}
	if c.Archive {
		rd, err := rundir.Create("")
		if err != nil {
			return err
		}
		if err := rd.CopyConfig(c.Config); err != nil {
			return err
		}
		out = rd.FilePath(filepath.Base(out))
	}

	scene := anim.NewScene(path, pf.Params().PlaneSize, cfg.Animation.WidthPx, cfg.Animation.Title)
	scene.UseMarkerImage(cfg.Animation.Image, cfg.Animation.ImageZoom)

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	switch format {
	case anim.GIF:
		pacing, err := anim.ParsePacing(c.Pacing)
		if err != nil {
			return err
		}
		frames := anim.Schedule(path, cfg.Animation.Frames, pacing, cfg.Material.Velocity1, cfg.Material.Velocity2)
		a := &anim.Animation{Scene: scene, Frames: frames, FPS: cfg.Animation.FPS}
		if err := a.WriteGIF(f); err != nil {
			return err
		}
	case anim.PNG:
		if err := scene.WritePNG(f); err != nil {
			return err
		}
	case anim.HTML:
		if err := anim.WritePathChart(f, path, cfg.Plane.InterfaceY, cfg.Animation.Title); err != nil {
			return err
		}
	case anim.JSON:
		if err := anim.WriteSolutionJSON(f, pf, path); err != nil {
			return err
		}
	}

	log.WithFields(log.Fields{
		"output":     out,
		"crossing_x": path.DepartureCrossing().X,
	}).Info("Simulation complete")
	return nil
}

type SweepCmd struct {
	Config  string `arg:"" name:"config" help:"config file describing the media and endpoints"`
	Out     string `name:"out" short:"o" help:"output file (default travel_time.<format>)"`
	Format  string `name:"format" default:"png" enum:"png,csv,html" help:"artifact to produce"`
	Samples int    `name:"samples" default:"200" help:"number of crossings to sample"`
	Archive bool   `name:"archive" help:"keep the artifact and config copy in a fresh run directory"`
}

func (c SweepCmd) Run() error {
	cfg, err := loadConfig(c.Config)
	if err != nil {
		return err
	}

	pf, err := refract.NewPathFinder(buildParams(cfg))
	if err != nil {
		return err
	}
	bestX, err := pf.FindOptimalCrossing()
	if err != nil {
		return err
	}
	bestT := pf.TravelTime(bestX)
	xs, times := pf.TimeCurve(c.Samples)

	format, err := anim.ParseFormat(c.Format)
	if err != nil {
		return err
	}
	out := c.Out
	if out == "" {
		out = "travel_time" + format.Ext()
	}
	if c.Archive {
		rd, err := rundir.Create("")
		if err != nil {
			return err
		}
		if err := rd.CopyConfig(c.Config); err != nil {
			return err
		}
		out = rd.FilePath(filepath.Base(out))
	}
	title := "Travel Time by Crossing"

	switch format {
	case anim.PNG:
		if err := anim.SweepPlot(xs, times, bestX, bestT, title, out); err != nil {
			return err
		}
	case anim.CSV:
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := anim.WriteSweepCSV(f, xs, times); err != nil {
			return err
		}
	case anim.HTML:
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := anim.WriteTimeChart(f, xs, times, bestX, title); err != nil {
			return err
		}
	}

	log.WithFields(log.Fields{
		"output":      out,
		"optimum_x":   bestX,
		"travel_time": bestT,
	}).Info("Sweep complete")
	return nil
}

type ExploreCmd struct {
	Config  string `arg:"" name:"config" help:"config file describing the media and endpoints"`
	Out     string `name:"out" short:"o" default:"crossing.png" help:"where selected crossings are rendered"`
	Samples int    `name:"samples" default:"50" help:"number of crossings to list"`
}

func (c ExploreCmd) Run() error {
	cfg, err := loadConfig(c.Config)
	if err != nil {
		return err
	}

	pf, err := refract.NewPathFinder(buildParams(cfg))
	if err != nil {
		return err
	}
	return explore.Explore(pf, c.Samples, cfg.Animation.WidthPx, c.Out)
}

type ValidateCmd struct {
	Config string `arg:"" name:"config" help:"config file to check"`
}

func (c ValidateCmd) Run() error {
	cfg, err := refractConfig.LoadFromFile(c.Config, refractConfig.LoadOptions{
		ApplyDefaults: true,
		ResolvePaths:  true,
	})
	if err != nil {
		return err
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		fmt.Fprint(os.Stderr, refractConfig.FormatValidationErrors(errs))
		return fmt.Errorf("%d validation error(s) in %s", len(errs), c.Config)
	}
	if _, err := refract.NewPathFinder(buildParams(cfg)); err != nil {
		return err
	}
	fmt.Printf("%s: OK\n", c.Config)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI)
	if CLI.Verbose {
		log.SetLevel(log.DebugLevel)
	}
	err := ctx.Run()
	if err != nil {
		log.Fatal(err)
	}
}
