package reports

import (
	"gorm.io/gorm"
)

// Membership filters against the store are bounded; lookups are chunked
// to stay under the limit.
const resolveChunkSize = 30

// Fallback display names for unresolved references.
const (
	UnknownTenant    = "Unknown Tenant"
	UnknownProperty  = "Unknown Property"
	UnknownCaretaker = "N/A"
)

// ResolveNames maps each id to the named column of its row in table,
// querying in chunks. Ids with no matching row map to fallback; the
// result always contains every requested id.
func ResolveNames(db *gorm.DB, table, nameColumn string, ids []string, fallback string) (map[string]string, error) {
	resolved := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return resolved, nil
	}

	unique := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}

	type row struct {
		ID   string
		Name string
	}
	for start := 0; start < len(unique); start += resolveChunkSize {
		end := start + resolveChunkSize
		if end > len(unique) {
			end = len(unique)
		}
		var rows []row
		err := db.Table(table).
			Select("id, "+nameColumn+" AS name").
			Where("id IN ?", unique[start:end]).
			Scan(&rows).Error
		if err != nil {
			return nil, err
		}
		for _, r := range rows {
			resolved[r.ID] = r.Name
		}
	}

	for _, id := range unique {
		if _, ok := resolved[id]; !ok {
			resolved[id] = fallback
		}
	}
	return resolved, nil
}

// ResolveUserNames resolves user ids to full names with the
// unknown-tenant fallback.
func ResolveUserNames(db *gorm.DB, ids []string) (map[string]string, error) {
	return ResolveNames(db, "users", "full_name", ids, UnknownTenant)
}

// ResolvePropertyNames resolves property ids to their locations.
func ResolvePropertyNames(db *gorm.DB, ids []string) (map[string]string, error) {
	return ResolveNames(db, "properties", "location", ids, UnknownProperty)
}
