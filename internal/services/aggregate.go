package services

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"fyyur/internal/domain"
)

type location struct {
	city  string
	state string
}

// AggregateByLocation groups venues by exact (city, state) and annotates each
// venue with its own upcoming show count relative to now. Groups are sorted
// by state, then city; venues keep their input order inside a group.
func AggregateByLocation(venues []*domain.Venue, shows []*domain.ShowListing, now time.Time) ([]domain.LocationGroup, error) {
	seen := make(map[location]struct{})
	locations := make([]location, 0)
	for _, v := range venues {
		loc := location{city: v.City, state: v.State}
		if _, ok := seen[loc]; ok {
			continue
		}
		seen[loc] = struct{}{}
		locations = append(locations, loc)
	}
	slices.SortFunc(locations, func(a, b location) int {
		return cmp.Or(cmp.Compare(a.state, b.state), cmp.Compare(a.city, b.city))
	})

	groups := make([]domain.LocationGroup, len(locations))
	index := make(map[location]int, len(locations))
	for i, loc := range locations {
		groups[i] = domain.LocationGroup{City: loc.city, State: loc.state, Venues: make([]domain.VenueSummary, 0)}
		index[loc] = i
	}

	upcoming := countUpcoming(shows, venueOf, now)
	for _, v := range venues {
		i, ok := index[location{city: v.City, state: v.State}]
		if !ok {
			return nil, fmt.Errorf("%w: venue %d has no location group for %q, %q", domain.ErrConsistency, v.ID, v.City, v.State)
		}
		groups[i].Venues = append(groups[i].Venues, domain.VenueSummary{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: upcoming[v.ID],
		})
	}
	return groups, nil
}
