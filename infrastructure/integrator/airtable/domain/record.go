package domain

// Record is a single Airtable row: an opaque identifier plus a mapping of
// named fields. Field values are whatever shape Airtable returns, so the
// accessors below give malformed or absent fields a defined default
// instead of panicking on a type assertion.
type Record struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

// String returns the named field as a string, or "" when the field is
// absent or not a string.
func (r Record) String(field string) string {
	value, ok := r.Fields[field].(string)
	if !ok {
		return ""
	}
	return value
}

// LinkedRecordIDs returns the record IDs of a linked-record field.
// Airtable serializes links as an array of record ID strings; absent
// fields and non-string entries yield an empty result.
func (r Record) LinkedRecordIDs(field string) []string {
	raw, ok := r.Fields[field].([]any)
	if !ok {
		return nil
	}

	ids := make([]string, 0, len(raw))
	for _, entry := range raw {
		if id, ok := entry.(string); ok && id != "" {
			ids = append(ids, id)
		}
	}

	return ids
}
