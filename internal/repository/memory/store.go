package memory

import (
	"cmp"
	"fmt"
	"regexp"
	"slices"
	"sort"
	"sync"
	"time"

	"noteful-be/internal/repository/specification"

	"github.com/patrickmn/go-cache"
)

// Store keeps folders, tags and notes in process memory. Items never expire.
// Writes hold mu so uniqueness checks and read-modify-write updates are
// atomic; reads go straight to the caches.
type Store struct {
	mu      sync.Mutex
	folders *cache.Cache
	tags    *cache.Cache
	notes   *cache.Cache
	now     func() time.Time
}

func NewStore() *Store {
	return &Store{
		folders: cache.New(cache.NoExpiration, 0),
		tags:    cache.New(cache.NoExpiration, 0),
		notes:   cache.New(cache.NoExpiration, 0),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// accessor returns the value of a column-named field, nil when unset.
type accessor[T any] func(v *T, field string) interface{}

func items[T any](c *cache.Cache) []*T {
	all := c.Items()
	out := make([]*T, 0, len(all))
	for _, it := range all {
		out = append(out, it.Object.(*T))
	}
	return out
}

// query filters and orders rows the way the gorm specifications do in SQL.
func query[T any](rows []*T, get accessor[T], specs []specification.Specification) ([]*T, error) {
	var (
		filters []func(*T) bool
		orders  []specification.OrderBy
	)

	for _, s := range specs {
		switch s := s.(type) {
		case specification.ByID:
			filters = append(filters, func(v *T) bool { return get(v, "id") == s.ID })
		case specification.ByName:
			filters = append(filters, func(v *T) bool { return get(v, "name") == s.Name })
		case specification.ByFolderID:
			filters = append(filters, func(v *T) bool { return get(v, "folder_id") == s.FolderID })
		case specification.HasTag:
			filters = append(filters, func(v *T) bool {
				tags, _ := get(v, "tags").([]string)
				return slices.Contains(tags, s.TagID)
			})
		case specification.TitleMatches:
			re, err := regexp.Compile(s.Pattern)
			if err != nil {
				return nil, fmt.Errorf("memory: title pattern: %w", err)
			}
			filters = append(filters, func(v *T) bool {
				title, _ := get(v, "title").(string)
				return re.MatchString(title)
			})
		case specification.OrderBy:
			orders = append(orders, s)
		default:
			return nil, fmt.Errorf("memory: unsupported specification %T", s)
		}
	}

	out := make([]*T, 0, len(rows))
next:
	for _, row := range rows {
		for _, keep := range filters {
			if !keep(row) {
				continue next
			}
		}
		out = append(out, row)
	}

	sort.SliceStable(out, func(i, j int) bool {
		for _, o := range orders {
			c := compare(get(out[i], o.Field), get(out[j], o.Field))
			if c == 0 {
				continue
			}
			if o.Desc {
				return c > 0
			}
			return c < 0
		}
		return false
	})

	return out, nil
}

func compare(a, b interface{}) int {
	switch a := a.(type) {
	case string:
		b, _ := b.(string)
		return cmp.Compare(a, b)
	case time.Time:
		b, _ := b.(time.Time)
		return a.Compare(b)
	}
	return 0
}
