package services

import (
	"time"

	"fyyur/internal/domain"
)

// Partition splits items around now. An item whose start is at or before now
// is past; only a strictly later start is upcoming. Both results keep the
// input order and are never nil.
func Partition[T any](items []T, startOf func(T) time.Time, now time.Time) (past, upcoming []T) {
	past = make([]T, 0, len(items))
	upcoming = make([]T, 0)
	for _, it := range items {
		if startOf(it).After(now) {
			upcoming = append(upcoming, it)
			continue
		}
		past = append(past, it)
	}
	return past, upcoming
}

func showStart(l *domain.ShowListing) time.Time { return l.StartTime }

// countUpcoming returns the number of upcoming shows per owner id.
func countUpcoming(shows []*domain.ShowListing, ownerOf func(*domain.ShowListing) int64, now time.Time) map[int64]int {
	_, upcoming := Partition(shows, showStart, now)
	counts := make(map[int64]int, len(upcoming))
	for _, l := range upcoming {
		counts[ownerOf(l)]++
	}
	return counts
}

func venueOf(l *domain.ShowListing) int64  { return l.VenueID }
func artistOf(l *domain.ShowListing) int64 { return l.ArtistID }
