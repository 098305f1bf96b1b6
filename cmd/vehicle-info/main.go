// Command vehicle-info converts speed and angle units and inspects a vehicle
// description: maximum road-wheel angle, steering-wheel to road-wheel mapping
// and the heading rate it implies at a given speed.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/banshee-data/canvehicle/internal/config"
	"github.com/banshee-data/canvehicle/internal/monitoring"
	"github.com/banshee-data/canvehicle/internal/steeringmap"
	"github.com/banshee-data/canvehicle/internal/units"
	"github.com/banshee-data/canvehicle/internal/vehicle"
	"github.com/banshee-data/canvehicle/internal/version"
)

// CLI is the root command.
type CLI struct {
	Debug bool `help:"Enable debug logging." env:"VEHICLE_INFO_DEBUG"`

	Convert     ConvertCmd     `cmd:"" help:"Convert speed or angle units."`
	Geometry    GeometryCmd    `cmd:"" help:"Show geometry derived from a vehicle description."`
	SteeringMap SteeringMapCmd `cmd:"" name:"steering-map" help:"Sweep the steering-wheel range and report road-wheel angle and yaw rate."`
	Version     VersionCmd     `cmd:"" help:"Print version information."`
}

// ConvertCmd groups the unit conversion subcommands.
type ConvertCmd struct {
	Speed SpeedCmd `cmd:"" help:"Convert a speed."`
	Angle AngleCmd `cmd:"" help:"Convert an angle."`
}

// SpeedCmd converts a speed between units.
type SpeedCmd struct {
	Value float64 `arg:"" help:"Speed to convert."`
	From  string  `help:"Source unit." enum:"mps,mph,kmph,kph" default:"kmph"`
	To    string  `help:"Target unit." enum:"mps,mph,kmph,kph" default:"mps"`
}

func (c *SpeedCmd) Run(out io.Writer) error {
	v, err := units.ConvertSpeedUnits(c.Value, c.From, c.To)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%g %s\n", v, c.To)
	return err
}

// AngleCmd converts an angle between units.
type AngleCmd struct {
	Value float64 `arg:"" help:"Angle to convert."`
	From  string  `help:"Source unit." enum:"deg,rad" default:"deg"`
	To    string  `help:"Target unit." enum:"deg,rad" default:"rad"`
}

func (c *AngleCmd) Run(out io.Writer) error {
	v, err := units.ConvertAngle(c.Value, c.From, c.To)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%g %s\n", v, c.To)
	return err
}

// GeometryCmd loads a vehicle description and prints its derived values.
type GeometryCmd struct {
	Config        string  `help:"Vehicle description (.json, .yaml, .toml)." type:"path" default:"${default_config}"`
	SteeringWheel float64 `help:"Steering-wheel angle in degrees to translate." name:"steering-wheel" default:"0"`
	Speed         float64 `help:"Vehicle speed used for the yaw rate." default:"0"`
	Unit          string  `help:"Unit of --speed." enum:"mps,mph,kmph,kph" default:"kmph"`
}

func (c *GeometryCmd) Run(out io.Writer) error {
	g, err := loadGeometry(c.Config)
	if err != nil {
		return err
	}
	p, _ := g.Params()

	// bufio keeps the first write error and reports it from Flush.
	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "state:                      %s\n", g.State())
	fmt.Fprintf(w, "wheelbase:                  %.3f m\n", p.Wheelbase)
	fmt.Fprintf(w, "minimum turning radius:     %.3f m\n", p.MinimumTurningRadius)
	fmt.Fprintf(w, "max steering wheel angle:   %.1f deg\n", p.MaximumSteeringWheelAngleDeg)
	fmt.Fprintf(w, "max road wheel angle:       %.3f deg (%.4f rad)\n",
		units.RadToDeg(g.MaximumSteeringAngle()), g.MaximumSteeringAngle())

	roadWheel := g.CurrentSteeringAngle(units.DegToRad(c.SteeringWheel))
	speed := units.ToMPS(c.Speed, c.Unit)
	fmt.Fprintf(w, "road wheel angle:           %.3f deg\n", units.RadToDeg(roadWheel))
	fmt.Fprintf(w, "yaw rate at %.2f m/s:        %.4f rad/s\n", speed, g.SteeringAngleToAngularVelocity(speed, roadWheel))
	return w.Flush()
}

// SteeringMapCmd sweeps a vehicle description across its steering range.
type SteeringMapCmd struct {
	Config string  `help:"Vehicle description (.json, .yaml, .toml)." type:"path" default:"${default_config}"`
	Speed  float64 `help:"Vehicle speed used for the yaw rate." default:"10"`
	Unit   string  `help:"Unit of --speed." enum:"mps,mph,kmph,kph" default:"kmph"`
	Steps  int     `help:"Number of samples across the steering range." default:"21"`
	HTML   string  `help:"Also write an HTML chart to this path." name:"html" type:"path"`
	PNG    string  `help:"Also write a PNG plot to this path." name:"png" type:"path"`
}

func (c *SteeringMapCmd) Run(out io.Writer) error {
	g, err := loadGeometry(c.Config)
	if err != nil {
		return err
	}
	samples, err := steeringmap.Build(g, units.ToMPS(c.Speed, c.Unit), c.Steps)
	if err != nil {
		return err
	}
	if err := steeringmap.WriteTable(out, samples); err != nil {
		return err
	}

	title := fmt.Sprintf("Steering map at %g %s", c.Speed, c.Unit)
	if c.HTML != "" {
		f, err := os.Create(c.HTML)
		if err != nil {
			return fmt.Errorf("create %s: %w", c.HTML, err)
		}
		if err := steeringmap.RenderHTML(f, samples, title); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		monitoring.Logf("wrote %s", c.HTML)
	}
	if c.PNG != "" {
		if err := steeringmap.SavePNG(c.PNG, samples, title); err != nil {
			return err
		}
		monitoring.Logf("wrote %s", c.PNG)
	}
	return nil
}

// VersionCmd prints build metadata.
type VersionCmd struct{}

func (c *VersionCmd) Run(out io.Writer) error {
	_, err := fmt.Fprintln(out, version.String("vehicle-info"))
	return err
}

func loadGeometry(path string) (*vehicle.Geometry, error) {
	cfg, err := config.LoadVehicleConfig(path)
	if err != nil {
		return nil, err
	}
	g := vehicle.New()
	if err := cfg.Apply(g); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("vehicle-info"),
		kong.Description("Vehicle geometry and unit conversion tool"),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Vars{"default_config": config.DefaultConfigPath},
	)
	if err != nil {
		return err
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	monitoring.SetDebug(cli.Debug)
	ctx.BindTo(stdout, (*io.Writer)(nil))
	return ctx.Run()
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "vehicle-info: %v\n", err)
		os.Exit(1)
	}
}
