package config

import (
	"fmt"
	"math"
	"strings"
)

// Validation helper functions
func validatePositive(field string, value float64) []ValidationError {
	if value <= 0 {
		return []ValidationError{{
			Field:   field,
			Message: "must be positive",
		}}
	}
	return nil
}

func validateNonNegative(field string, value float64) []ValidationError {
	if value < 0 {
		return []ValidationError{{
			Field:   field,
			Message: "must be non-negative",
		}}
	}
	return nil
}

func validateFinite(field string, value float64) []ValidationError {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return []ValidationError{{
			Field:   field,
			Message: "must be a finite number",
		}}
	}
	return nil
}

// ValidationError represents a structured validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FormatValidationErrors renders validation errors grouped by config section
func FormatValidationErrors(errs []ValidationError) string {
	if len(errs) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Validation Errors:\n")

	sections := map[string][]ValidationError{}
	for _, err := range errs {
		section := strings.Split(err.Field, ".")[0]
		sections[section] = append(sections[section], err)
	}

	for section, sectionErrors := range sections {
		b.WriteString(fmt.Sprintf("\n%s:\n", strings.ToUpper(section)))
		for _, err := range sectionErrors {
			field := strings.TrimPrefix(err.Field, section+".")
			if field == section {
				field = "general"
			}
			b.WriteString(fmt.Sprintf("  - %s: %s\n", field, err.Message))
		}
	}

	return b.String()
}

// Validate performs validation on the entire configuration
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, validatePositive("speed_of_light", c.SpeedOfLight)...)
	errors = append(errors, c.Material.Validate()...)
	errors = append(errors, c.Points.Validate()...)
	errors = append(errors, c.Plane.Validate()...)
	errors = append(errors, c.Animation.Validate()...)
	return errors
}

func (m *Material) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, validatePositive("material.velocity_1", m.Velocity1)...)
	errors = append(errors, validatePositive("material.velocity_2", m.Velocity2)...)

	return errors
}

func (p *Points) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, validateFinite("points.start_x", p.StartX)...)
	errors = append(errors, validateFinite("points.start_y", p.StartY)...)
	errors = append(errors, validateFinite("points.end_x", p.EndX)...)
	errors = append(errors, validateFinite("points.end_y", p.EndY)...)

	return errors
}

func (p *Plane) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, validateFinite("plane.interface_y", p.InterfaceY)...)
	errors = append(errors, validateNonNegative("plane.size", p.Size)...)

	// The per-axis overrides may legitimately be zero; what matters is
	// that the effective extent is drawable.
	width, height := p.Dimensions()
	errors = append(errors, validatePositive("plane.width", width)...)
	errors = append(errors, validatePositive("plane.height", height)...)

	return errors
}

func (a *Animation) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, validatePositive("animation.frames", float64(a.Frames))...)
	errors = append(errors, validatePositive("animation.fps", float64(a.FPS))...)
	errors = append(errors, validatePositive("animation.width_px", float64(a.WidthPx))...)
	errors = append(errors, validatePositive("animation.image_zoom", a.ImageZoom)...)

	return errors
}
