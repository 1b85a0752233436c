package normalize

import (
	"sort"
	"strings"

	"github.com/okian/shaftdb/internal/adapters/source"
	"github.com/okian/shaftdb/internal/domain/model"
)

// Group is a run of rows sharing one manufacturer and one club-type label.
type Group struct {
	Source       string
	Manufacturer string
	// Label is the lower-cased club_type cell the rows carried, empty when the
	// sheet has no club_type column.
	Label    string
	ClubType model.ClubType
	Rows     []source.Row
}

// GroupRows partitions a sheet by manufacturer, in sorted order, and then by
// club-type label in order of first appearance. Labels outside the canonical
// set map to woods. A sheet without a club_type column yields one woods group
// per manufacturer. Rows keep their sheet order inside a group.
func GroupRows(t *source.Table) ([]Group, error) {
	if err := t.Require(source.ColManufacturer); err != nil {
		return nil, err
	}

	byManufacturer := make(map[string][]source.Row)
	var manufacturers []string
	for _, r := range t.Rows {
		m, _ := r.Get(source.ColManufacturer)
		if _, seen := byManufacturer[m]; !seen {
			manufacturers = append(manufacturers, m)
		}
		byManufacturer[m] = append(byManufacturer[m], r)
	}
	sort.Strings(manufacturers)

	hasClubType := t.HasColumn(source.ColClubType)
	var groups []Group
	for _, m := range manufacturers {
		rows := byManufacturer[m]
		if !hasClubType {
			groups = append(groups, Group{Source: t.Name, Manufacturer: m, ClubType: model.ClubWoods, Rows: rows})
			continue
		}
		groups = append(groups, byLabel(t.Name, m, rows)...)
	}
	return groups, nil
}

func byLabel(src, manufacturer string, rows []source.Row) []Group {
	index := make(map[string]int)
	var groups []Group
	for _, r := range rows {
		raw, _ := r.Get(source.ColClubType)
		label := strings.ToLower(raw)
		i, ok := index[label]
		if !ok {
			ct, known := model.ParseClubType(label)
			if !known {
				ct = model.ClubWoods
			}
			i = len(groups)
			index[label] = i
			groups = append(groups, Group{Source: src, Manufacturer: manufacturer, Label: label, ClubType: ct})
		}
		groups[i].Rows = append(groups[i].Rows, r)
	}
	return groups
}
