package service

import (
	"time"

	"github.com/fantiss0511/MaliDiscover/internal/repository"
)

// withID merges a record's store id into its field set under the record
// kind's id key, the way the API has always returned documents.
func withID(key string, r repository.Record) repository.Fields {
	out := make(repository.Fields, len(r.Fields)+1)
	for k, v := range r.Fields {
		out[k] = v
	}
	out[key] = r.ID
	return out
}

// filterMutable keeps only allow-listed fields from an update payload and
// parses the record's date field when the client sent it as a string.
// System-derived fields (id_personne, timestamps) never pass through.
func filterMutable(fields map[string]any, allowed map[string]struct{}, dateField string) (repository.Fields, error) {
	out := make(repository.Fields, len(fields))
	for k, v := range fields {
		if _, ok := allowed[k]; !ok {
			continue
		}
		if k == dateField {
			if s, ok := v.(string); ok {
				t, err := parseDate(s)
				if err != nil {
					return nil, err
				}
				v = t
			}
		}
		out[k] = v
	}
	return out, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, ErrInvalidDate
}

// nullable keeps unset target references as explicit nulls in the stored
// document.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
