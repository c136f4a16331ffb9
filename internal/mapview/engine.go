// Package mapview turns the profile collection into map-ready records and
// summary statistics for the geographic discovery view.
package mapview

import (
	"math"

	"talentmap/internal/profile/models"
)

// Record is a read-only projection of a profile used for plotting. It never
// exposes owner credentials.
type Record struct {
	ID          string           `json:"id"`
	DisplayName string           `json:"displayName"`
	Headline    string           `json:"headline,omitempty"`
	Skills      []string         `json:"skills"`
	Verified    bool             `json:"verified"`
	Location    *models.Location `json:"location,omitempty"`
	IsRemote    bool             `json:"isRemote"`
}

// Stats summarizes the selected set: profiles carrying any location,
// coordinate or remote signal.
type Stats struct {
	Countries     int `json:"countries"`
	Cities        int `json:"cities"`
	RemoteTalents int `json:"remoteTalents"`
	TotalTalents  int `json:"totalTalents"`
}

// MapView is the aggregation result.
type MapView struct {
	Profiles []Record `json:"profiles"`
	Stats    Stats    `json:"stats"`
}

// BuildMapView computes records and stats over the given profiles. The engine
// is agnostic to upstream filtering: pass the full directory or any subset.
//
// Records contain only profiles with both finite coordinates. Stats iterate
// the broader selected set independent of plotting eligibility. Distinct
// country and city counts use exact string equality: whitespace and case
// variants of a place name are distinct entries, and cities form one global
// set, so same-named cities in different countries count once.
func BuildMapView(profiles []*models.Profile) *MapView {
	records := make([]Record, 0, len(profiles))
	countries := make(map[string]struct{})
	cities := make(map[string]struct{})
	remoteTalents := 0
	totalTalents := 0

	for _, p := range profiles {
		if !selected(p) {
			continue
		}
		totalTalents++

		if p.Location != nil {
			if p.Location.Country != "" {
				countries[p.Location.Country] = struct{}{}
			}
			if p.Location.City != "" {
				cities[p.Location.City] = struct{}{}
			}
		}
		if p.IsRemote {
			remoteTalents++
		}

		if plottable(p) {
			records = append(records, project(p))
		}
	}

	return &MapView{
		Profiles: records,
		Stats: Stats{
			Countries:     len(countries),
			Cities:        len(cities),
			RemoteTalents: remoteTalents,
			TotalTalents:  totalTalents,
		},
	}
}

// selected reports whether the profile carries any location, coordinate or
// remote signal and therefore belongs to the stats population.
func selected(p *models.Profile) bool {
	if p.IsRemote {
		return true
	}
	loc := p.Location
	if loc == nil {
		return false
	}
	if loc.City != "" || loc.Country != "" {
		return true
	}
	return loc.Coordinates != nil && (loc.Coordinates.Lat != nil || loc.Coordinates.Lng != nil)
}

// plottable requires both coordinates present and finite; one without the
// other is excluded from plotting.
func plottable(p *models.Profile) bool {
	if !p.HasCoordinates() {
		return false
	}
	return finite(*p.Location.Coordinates.Lat) && finite(*p.Location.Coordinates.Lng)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func project(p *models.Profile) Record {
	skills := p.Skills
	if skills == nil {
		skills = []string{}
	}
	return Record{
		ID:          p.ID.Hex(),
		DisplayName: p.DisplayName,
		Headline:    p.Headline,
		Skills:      skills,
		Verified:    p.Verified,
		Location:    p.Location,
		IsRemote:    p.IsRemote,
	}
}
