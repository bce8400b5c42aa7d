package validators

import (
	"math"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// ParsePagination parses the raw page and limit query values.
//
// Empty values fall back to models.DefaultPage and models.DefaultLimit.
// Non-numeric or non-positive values are rejected. A limit above
// models.MaxLimit is clamped to it. A page whose offset does not fit in an
// int is rejected as ErrInvalidPage.
func ParsePagination(rawPage, rawLimit string) (models.Pagination, error) {
	p := models.Pagination{Page: models.DefaultPage, Limit: models.DefaultLimit}

	if s := strings.TrimSpace(rawPage); s != "" {
		page, err := strconv.Atoi(s)
		if err != nil || page < 1 {
			return models.Pagination{}, ErrInvalidPage
		}
		p.Page = page
	}

	if s := strings.TrimSpace(rawLimit); s != "" {
		limit, err := strconv.Atoi(s)
		if err != nil || limit < 1 {
			return models.Pagination{}, ErrInvalidLimit
		}
		p.Limit = min(limit, models.MaxLimit)
	}

	if p.Page-1 > math.MaxInt/p.Limit {
		return models.Pagination{}, ErrInvalidPage
	}

	return p, nil
}
