// Package catalog loads the embedded jurisdiction catalog. The data is
// editorial and ships with the binary; there is no remote source.
package catalog

import (
	_ "embed"
	"sort"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/btc-haven/haven-cli/internal/model"
)

//go:embed jurisdictions.yaml
var rawCatalog []byte

type catalogFile struct {
	Jurisdictions []model.Jurisdiction `yaml:"jurisdictions"`
}

// Load parses the embedded catalog and returns the jurisdictions sorted
// by rank. It validates that IDs and slugs are present and unique so a
// bad data edit fails at startup instead of surfacing as a missing
// lookup later.
func Load() ([]model.Jurisdiction, error) {
	var f catalogFile
	if err := yaml.Unmarshal(rawCatalog, &f); err != nil {
		return nil, eris.Wrap(err, "catalog: parse embedded data")
	}
	if len(f.Jurisdictions) == 0 {
		return nil, eris.New("catalog: embedded data contains no jurisdictions")
	}

	seen := make(map[string]struct{}, len(f.Jurisdictions))
	for i := range f.Jurisdictions {
		j := &f.Jurisdictions[i]
		if j.ID == "" || j.Slug == "" {
			return nil, eris.Errorf("catalog: entry %d (%q) missing id or slug", i, j.Name)
		}
		if _, dup := seen[j.Slug]; dup {
			return nil, eris.Errorf("catalog: duplicate slug %q", j.Slug)
		}
		seen[j.Slug] = struct{}{}
	}

	sort.SliceStable(f.Jurisdictions, func(a, b int) bool {
		return f.Jurisdictions[a].Rank < f.Jurisdictions[b].Rank
	})
	return f.Jurisdictions, nil
}

// BySlug returns the jurisdiction with the given slug, or nil.
func BySlug(all []model.Jurisdiction, slug string) *model.Jurisdiction {
	for i := range all {
		if all[i].Slug == slug {
			return &all[i]
		}
	}
	return nil
}

// Top returns the main-list jurisdictions (honorable mentions excluded)
// in rank order.
func Top(all []model.Jurisdiction) []model.Jurisdiction {
	out := make([]model.Jurisdiction, 0, len(all))
	for _, j := range all {
		if !j.IsHonorableMention {
			out = append(out, j)
		}
	}
	return out
}

// HonorableMentions returns the honorable-mention jurisdictions in rank
// order.
func HonorableMentions(all []model.Jurisdiction) []model.Jurisdiction {
	out := make([]model.Jurisdiction, 0, len(all))
	for _, j := range all {
		if j.IsHonorableMention {
			out = append(out, j)
		}
	}
	return out
}
