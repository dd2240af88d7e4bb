package config

// Config represents the complete configuration for a refraction simulation
type Config struct {
	// SpeedOfLight is the reference speed for refractive indices, in
	// meters per second. Zero selects the vacuum speed of light.
	SpeedOfLight float64   `yaml:"speed_of_light"`
	Material     Material  `yaml:"material"`
	Points       Points    `yaml:"points"`
	Plane        Plane     `yaml:"plane"`
	Animation    Animation `yaml:"animation"`
}

type Material struct {
	Velocity1 float64 `yaml:"velocity_1"` // wave speed above the interface, m/s
	Velocity2 float64 `yaml:"velocity_2"` // wave speed below the interface, m/s
}

type Points struct {
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	EndX   float64 `yaml:"end_x"`
	EndY   float64 `yaml:"end_y"`
}

type Plane struct {
	InterfaceY float64 `yaml:"interface_y"`
	// Size sets a square plane. Width and Height override it per axis
	// when non-zero.
	Size   float64 `yaml:"size"`
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
}

// Animation holds presentation settings; none of them affect the
// solved path.
type Animation struct {
	Frames    int     `yaml:"frames"`
	FPS       int     `yaml:"fps"`
	WidthPx   int     `yaml:"width_px"`
	Image     string  `yaml:"image,omitempty"` // optional marker image
	ImageZoom float64 `yaml:"image_zoom"`
	Title     string  `yaml:"title"`
}

// Dimensions returns the plane extent with per-axis overrides applied.
func (p Plane) Dimensions() (width, height float64) {
	width, height = p.Size, p.Size
	if p.Width != 0 {
		width = p.Width
	}
	if p.Height != 0 {
		height = p.Height
	}
	return width, height
}

// Defaults for optional fields.
const (
	DefaultFrames    = 200
	DefaultFPS       = 30
	DefaultWidthPx   = 800
	DefaultImageZoom = 0.5
	DefaultTitle     = "Animation of Light Path"

	// vacuum speed of light, m/s
	defaultSpeedOfLight = 299792458
)

// ApplyDefaults fills zero-valued optional fields in place. Required
// fields such as the material speeds and plane size are left alone for
// Validate to flag.
func (c *Config) ApplyDefaults() {
	if c.SpeedOfLight == 0 {
		c.SpeedOfLight = defaultSpeedOfLight
	}
	if c.Animation.Frames == 0 {
		c.Animation.Frames = DefaultFrames
	}
	if c.Animation.FPS == 0 {
		c.Animation.FPS = DefaultFPS
	}
	if c.Animation.WidthPx == 0 {
		c.Animation.WidthPx = DefaultWidthPx
	}
	if c.Animation.ImageZoom == 0 {
		c.Animation.ImageZoom = DefaultImageZoom
	}
	if c.Animation.Title == "" {
		c.Animation.Title = DefaultTitle
	}
}
