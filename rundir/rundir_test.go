package rundir

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var idPattern = regexp.MustCompile(`^[a-z]+-[a-z]+-\d{8}-\d{6}$`)

func TestGenerateRunID(t *testing.T) {
	for i := 0; i < 20; i++ {
		id := GenerateRunID()
		if !idPattern.MatchString(id) {
			t.Fatalf("malformed run id %q", id)
		}
	}
}

func TestCreate(t *testing.T) {
	assert := assert.New(t)
	parent := filepath.Join(t.TempDir(), "runs")

	rd, err := Create(parent)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	info, err := os.Stat(rd.Path)
	assert.NoError(err)
	assert.True(info.IsDir())
	assert.True(idPattern.MatchString(rd.ID))
	assert.True(filepath.IsAbs(rd.Path))

	target, err := os.Readlink(filepath.Join(parent, LatestSymlink))
	assert.NoError(err)
	assert.Equal(rd.ID, target)
}

func TestCreateMovesLatest(t *testing.T) {
	parent := filepath.Join(t.TempDir(), "runs")

	first, err := Create(parent)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	second, err := Create(parent)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	target, err := os.Readlink(filepath.Join(parent, LatestSymlink))
	if err != nil {
		t.Fatalf("Readlink: %v", err)
	}
	assert.Equal(t, second.ID, target)

	// The first run survives being superseded.
	if _, err := os.Stat(first.Path); err != nil {
		t.Errorf("first run directory lost: %v", err)
	}
}

func TestCopyConfig(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()

	src := filepath.Join(dir, "scene.yaml")
	if err := os.WriteFile(src, []byte("plane:\n  size: 10\n"), 0644); err != nil {
		t.Fatal(err)
	}

	rd, err := Create(filepath.Join(dir, "runs"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := rd.CopyConfig(src); err != nil {
		t.Fatalf("CopyConfig: %v", err)
	}

	copied, err := os.ReadFile(rd.FilePath("scene.yaml"))
	assert.NoError(err)
	assert.Equal("plane:\n  size: 10\n", string(copied))
}

func TestCopyConfigMissingSource(t *testing.T) {
	rd, err := Create(filepath.Join(t.TempDir(), "runs"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	assert.Error(t, rd.CopyConfig(filepath.Join(t.TempDir(), "nope.yaml")))
}
