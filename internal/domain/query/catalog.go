package query

import (
	"math"
	"sort"
	"strings"

	"github.com/okian/shaftdb/internal/domain/model"
	"github.com/okian/shaftdb/internal/domain/types"
)

// WeightProgression returns one model line ordered from most flexible to
// stiffest. Records sharing a flex keep their catalog order.
func WeightProgression(records []model.ShaftSpec, manufacturer, modelName string) []model.ShaftSpec {
	out := make([]model.ShaftSpec, 0)
	for _, r := range records {
		if r.Manufacturer() == manufacturer && r.Model() == modelName {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].FlexOrder() < out[j].FlexOrder() })
	return out
}

// Search returns records whose manufacturer or model contains q,
// case-insensitively.
func Search(records []model.ShaftSpec, q string) []model.ShaftSpec {
	q = strings.ToLower(q)
	out := make([]model.ShaftSpec, 0)
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Manufacturer()), q) ||
			strings.Contains(strings.ToLower(r.Model()), q) {
			out = append(out, r)
		}
	}
	return out
}

// ByDisplayName picks records by display name in the order the names are
// given. Names with no record are returned as missing.
func ByDisplayName(records []model.ShaftSpec, names []string) (found []model.ShaftSpec, missing []string) {
	index := make(map[string]model.ShaftSpec, len(records))
	for _, r := range records {
		if _, dup := index[r.DisplayName()]; !dup {
			index[r.DisplayName()] = r
		}
	}
	for _, n := range names {
		if r, ok := index[n]; ok {
			found = append(found, r)
		} else {
			missing = append(missing, n)
		}
	}
	return found, missing
}

// Manufacturers returns the distinct manufacturer names, sorted.
func Manufacturers(records []model.ShaftSpec) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, r := range records {
		if _, ok := seen[r.Manufacturer()]; ok {
			continue
		}
		seen[r.Manufacturer()] = struct{}{}
		out = append(out, r.Manufacturer())
	}
	sort.Strings(out)
	return out
}

// Summarize computes catalog statistics.
func Summarize(records []model.ShaftSpec) types.Stats {
	if len(records) == 0 {
		return types.Stats{}
	}

	s := types.Stats{
		TotalShafts:      len(records),
		ClubTypes:        make(map[string]int),
		FlexDistribution: make(map[string]int),
		WeightRange:      &types.WeightRange{Min: math.Inf(1), Max: math.Inf(-1)},
	}
	manufacturers := make(map[string]struct{})
	models := make(map[string]struct{})
	var sum float64
	for _, r := range records {
		manufacturers[r.Manufacturer()] = struct{}{}
		models[r.Model()] = struct{}{}
		s.ClubTypes[string(r.ClubType())]++
		s.FlexDistribution[string(r.Flex())]++

		w := r.WeightGrams()
		sum += w
		s.WeightRange.Min = math.Min(s.WeightRange.Min, w)
		s.WeightRange.Max = math.Max(s.WeightRange.Max, w)
	}
	s.Manufacturers = len(manufacturers)
	s.Models = len(models)
	s.WeightRange.Mean = math.Round(sum/float64(len(records))*10) / 10
	return s
}

// Page slices records for offset pagination. Out-of-range offsets yield an
// empty page; a non-positive limit yields everything after offset.
func Page(records []model.ShaftSpec, offset, limit int) []model.ShaftSpec {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(records) {
		return []model.ShaftSpec{}
	}
	end := len(records)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return records[offset:end]
}
