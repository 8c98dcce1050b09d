package trailcatalog

import (
	"bytes"
	"os"

	"ride-together/internal/domain/trail"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

type file struct {
	Trails []entry `yaml:"trails"`
}

type entry struct {
	Name        string    `yaml:"name"`
	Coordinates []float64 `yaml:"coordinates"`
	Distance    string    `yaml:"distance"`
	Difficulty  string    `yaml:"difficulty"`
	Type        string    `yaml:"type"`
	Elevation   string    `yaml:"elevation"`
	Description string    `yaml:"description"`
}

// Catalog is an immutable trail list loaded once at startup.
type Catalog struct {
	trails []*trail.Trail
}

func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read trail catalog %s", path)
	}
	return Parse(raw)
}

func Parse(raw []byte) (*Catalog, error) {
	var f file
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, errors.Wrap(err, "failed to parse trail catalog")
	}

	trails := make([]*trail.Trail, 0, len(f.Trails))
	for i, e := range f.Trails {
		t, err := e.toTrail()
		if err != nil {
			return nil, errors.Wrapf(err, "trail #%d (%q)", i+1, e.Name)
		}
		trails = append(trails, t)
	}
	return &Catalog{trails: trails}, nil
}

func (c *Catalog) Trails() []*trail.Trail {
	out := make([]*trail.Trail, len(c.trails))
	copy(out, c.trails)
	return out
}

func (e entry) toTrail() (*trail.Trail, error) {
	if len(e.Coordinates) != 2 {
		return nil, trail.ErrInvalidCoordinates
	}
	coords, err := trail.NewCoordinates(e.Coordinates[0], e.Coordinates[1])
	if err != nil {
		return nil, err
	}
	difficulty, err := trail.ParseDifficulty(e.Difficulty)
	if err != nil {
		return nil, err
	}
	return trail.NewTrail(trail.Params{
		Name:        e.Name,
		Coordinates: coords,
		Distance:    e.Distance,
		Difficulty:  difficulty,
		Kind:        e.Type,
		Elevation:   e.Elevation,
		Description: e.Description,
	})
}
