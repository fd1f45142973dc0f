package document

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// errNotFound is translated to the owning domain's sentinel by each repository.
var errNotFound = errors.New("item not found")

func findIndex[T any](items []T, id string, idOf func(T) string) int {
	for i, item := range items {
		if idOf(item) == id {
			return i
		}
	}
	return -1
}

// removeByID retains every item whose id is not in ids. Absent ids are a no-op.
func removeByID[T any](items []T, idOf func(T) string, ids ...string) []T {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	kept := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := drop[idOf(item)]; !ok {
			kept = append(kept, item)
		}
	}
	return kept
}

// mergeByID shallow-merges partial over the item matching id: fields named in
// partial replace the stored ones, the rest are untouched. Merging into a
// missing id reports errNotFound; an empty partial leaves the item unchanged.
func mergeByID[T any](items []T, id string, idOf func(T) string, partial map[string]interface{}) (T, error) {
	var zero T
	i := findIndex(items, id, idOf)
	if i < 0 {
		return zero, errNotFound
	}

	raw, err := json.Marshal(items[i])
	if err != nil {
		return zero, errors.Wrap(err, "merging item")
	}
	merged := make(map[string]interface{})
	if err = json.Unmarshal(raw, &merged); err != nil {
		return zero, errors.Wrap(err, "merging item")
	}
	for k, v := range partial {
		merged[k] = v
	}

	if raw, err = json.Marshal(merged); err != nil {
		return zero, errors.Wrap(err, "merging item")
	}
	var out T
	if err = json.Unmarshal(raw, &out); err != nil {
		return zero, errors.Wrap(err, "merging item")
	}
	items[i] = out
	return out, nil
}

// asPartial flattens a full record into the field map mergeByID consumes.
func asPartial(v interface{}) (map[string]interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "flattening item")
	}
	partial := make(map[string]interface{})
	if err = json.Unmarshal(raw, &partial); err != nil {
		return nil, errors.Wrap(err, "flattening item")
	}
	return partial, nil
}
