package rundir

import (
	"math/rand"
	"time"
)

var (
	adjectives = []string{
		"amber", "bent", "bright", "clear", "coherent", "crimson", "dim",
		"drifting", "faint", "flickering", "focused", "glancing", "golden",
		"grazing", "hidden", "indigo", "luminous", "muted", "narrow",
		"oblique", "pale", "polarized", "prismatic", "quiet", "radiant",
		"scattered", "shallow", "sharp", "slanted", "slow", "steady",
		"stray", "submerged", "tilted", "violet", "vivid", "wandering",
	}

	nouns = []string{
		"beam", "caustic", "crossing", "dawn", "facet", "fringe", "glare",
		"glass", "glimmer", "glow", "halo", "horizon", "lagoon", "lens",
		"mirage", "mirror", "pond", "prism", "ray", "reflection", "ripple",
		"shimmer", "shoal", "spark", "spectrum", "surface", "tide", "wave",
	}
)

// GenerateRunName creates a memorable run identifier in the format
// "adjective-noun".
func GenerateRunName() string {
	adj := adjectives[rand.Intn(len(adjectives))]
	noun := nouns[rand.Intn(len(nouns))]
	return adj + "-" + noun
}

// GenerateRunID combines the memorable name with a timestamp so
// concurrent runs stay distinguishable and sortable.
func GenerateRunID() string {
	timestamp := time.Now().UTC().Format("20060102-150405")
	return GenerateRunName() + "-" + timestamp
}
