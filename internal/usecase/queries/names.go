package queries

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// lookupNames never fails: a directory error leaves every name to its
// fallback.
func lookupNames(ctx context.Context, dir UserDirectory, ids []uuid.UUID) map[uuid.UUID]string {
	if dir == nil || len(ids) == 0 {
		return nil
	}
	names, err := dir.DisplayNames(ctx, uniqueIDs(ids))
	if err != nil {
		slog.Warn("display name lookup failed, using fallback names",
			"count", len(ids),
			"error", err.Error())
		return nil
	}
	return names
}

func nameOr(names map[uuid.UUID]string, id uuid.UUID, fallback string) string {
	if name, ok := names[id]; ok && name != "" {
		return name
	}
	return fallback
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// lessRide orders by date, then start time, then id. Dates and times are
// zero-padded so string order is chronological.
func lessRide(dateA, startA string, idA uuid.UUID, dateB, startB string, idB uuid.UUID) bool {
	if dateA != dateB {
		return dateA < dateB
	}
	if startA != startB {
		return startA < startB
	}
	return idA.String() < idB.String()
}
