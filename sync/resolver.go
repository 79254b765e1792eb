package sync

import (
	"context"
	"errors"

	"smokey-backend/models"
)

// ErrLocationNotFound is returned when neither identifier resolves to a
// location.
var ErrLocationNotFound = errors.New("location not found")

// resolveLocation turns the caller's claimed identifiers into a canonical
// location. Session identifiers go stale and sometimes point at an org
// instead of a location, so this tries a direct lookup first, then queries by
// organization, then by the legacy brand field. First match wins. Read-only.
func (e *Engine) resolveLocation(ctx context.Context, locationID, orgID string) (string, *models.Location, error) {
	if locationID != "" {
		loc, err := e.Repo.GetLocation(ctx, locationID)
		if err == nil {
			return locationID, loc, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return "", nil, err
		}
	}

	if orgID != "" {
		for _, field := range []string{"orgId", "brandId"} {
			docs, err := e.Repo.QueryLocationsByField(ctx, field, orgID)
			if err != nil {
				return "", nil, err
			}
			if len(docs) > 0 {
				loc := docs[0].Location
				return docs[0].ID, &loc, nil
			}
		}
	}

	return "", nil, ErrLocationNotFound
}
