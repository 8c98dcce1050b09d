package trail

import (
	"errors"
	"strings"
)

var (
	ErrInvalidDifficulty  = errors.New("invalid trail difficulty")
	ErrInvalidCoordinates = errors.New("coordinates out of range")
	ErrMissingName        = errors.New("trail name required")
)

type Difficulty string

const (
	DifficultyEasy     Difficulty = "easy"
	DifficultyModerate Difficulty = "moderate"
	DifficultyHard     Difficulty = "hard"
)

func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case DifficultyEasy, DifficultyModerate, DifficultyHard:
		return d, nil
	default:
		return "", ErrInvalidDifficulty
	}
}

// Marker colors used by the map client, keyed by difficulty.
var difficultyColors = map[Difficulty]string{
	DifficultyEasy:     "#10b981",
	DifficultyModerate: "#f59e0b",
	DifficultyHard:     "#ef4444",
}

func (d Difficulty) Color() string {
	if c, ok := difficultyColors[d]; ok {
		return c
	}
	return "#2563eb"
}

// Coordinates in [longitude, latitude] order.
type Coordinates struct {
	Lng float64
	Lat float64
}

func NewCoordinates(lng, lat float64) (Coordinates, error) {
	if lng < -180 || lng > 180 || lat < -90 || lat > 90 {
		return Coordinates{}, ErrInvalidCoordinates
	}
	return Coordinates{Lng: lng, Lat: lat}, nil
}

func (c Coordinates) LngLat() [2]float64 { return [2]float64{c.Lng, c.Lat} }

type Trail struct {
	name        string
	coordinates Coordinates
	distance    string
	difficulty  Difficulty
	kind        string
	elevation   string
	description string
}

type Params struct {
	Name        string
	Coordinates Coordinates
	Distance    string
	Difficulty  Difficulty
	Kind        string
	Elevation   string
	Description string
}

func NewTrail(p Params) (*Trail, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, ErrMissingName
	}
	if _, err := ParseDifficulty(string(p.Difficulty)); err != nil {
		return nil, err
	}
	if _, err := NewCoordinates(p.Coordinates.Lng, p.Coordinates.Lat); err != nil {
		return nil, err
	}
	return &Trail{
		name:        name,
		coordinates: p.Coordinates,
		distance:    strings.TrimSpace(p.Distance),
		difficulty:  p.Difficulty,
		kind:        strings.TrimSpace(p.Kind),
		elevation:   strings.TrimSpace(p.Elevation),
		description: strings.TrimSpace(p.Description),
	}, nil
}

func (t *Trail) Name() string             { return t.name }
func (t *Trail) Coordinates() Coordinates { return t.coordinates }
func (t *Trail) Distance() string         { return t.distance }
func (t *Trail) Difficulty() Difficulty   { return t.difficulty }
func (t *Trail) Kind() string             { return t.kind }
func (t *Trail) Elevation() string        { return t.elevation }
func (t *Trail) Description() string      { return t.description }

// Marker is what the mapping client places on the map.
type Marker struct {
	Coordinates [2]float64
	Label       string
	Metadata    map[string]string
}

func (t *Trail) Marker() Marker {
	meta := map[string]string{
		"difficulty": string(t.difficulty),
		"color":      t.difficulty.Color(),
	}
	if t.distance != "" {
		meta["distance"] = t.distance
	}
	if t.kind != "" {
		meta["type"] = t.kind
	}
	if t.elevation != "" {
		meta["elevation"] = t.elevation
	}
	if t.description != "" {
		meta["description"] = t.description
	}
	return Marker{
		Coordinates: t.coordinates.LngLat(),
		Label:       t.name,
		Metadata:    meta,
	}
}
