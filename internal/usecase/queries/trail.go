package queries

import (
	"context"

	"ride-together/internal/domain/trail"
)

var ErrInvalidDifficulty = trail.ErrInvalidDifficulty

type TrailQueries interface {
	// ListTrails filters by difficulty unless difficulty is empty.
	ListTrails(ctx context.Context, difficulty string) ([]*TrailView, error)
	ListTrailMarkers(ctx context.Context) ([]*MarkerView, error)
}

type trailQueriesImpl struct {
	catalog TrailCatalog
}

func NewTrailQueries(catalog TrailCatalog) TrailQueries {
	return &trailQueriesImpl{catalog: catalog}
}

func (q *trailQueriesImpl) ListTrails(_ context.Context, difficulty string) ([]*TrailView, error) {
	var want trail.Difficulty
	if difficulty != "" {
		d, err := trail.ParseDifficulty(difficulty)
		if err != nil {
			return nil, err
		}
		want = d
	}

	result := make([]*TrailView, 0)
	for _, t := range q.catalog.Trails() {
		if want != "" && t.Difficulty() != want {
			continue
		}
		result = append(result, &TrailView{
			Name:        t.Name(),
			Coordinates: t.Coordinates().LngLat(),
			Distance:    t.Distance(),
			Difficulty:  string(t.Difficulty()),
			Color:       t.Difficulty().Color(),
			Type:        t.Kind(),
			Elevation:   t.Elevation(),
			Description: t.Description(),
		})
	}
	return result, nil
}

func (q *trailQueriesImpl) ListTrailMarkers(_ context.Context) ([]*MarkerView, error) {
	trails := q.catalog.Trails()
	result := make([]*MarkerView, len(trails))
	for i, t := range trails {
		m := t.Marker()
		result[i] = &MarkerView{
			Coordinates: m.Coordinates,
			Label:       m.Label,
			Metadata:    m.Metadata,
		}
	}
	return result, nil
}
