package model

import (
	"fmt"
	"strings"
)

// AnonymousPrefix marks locally generated user identifiers.
const AnonymousPrefix = "anon_"

// IsAnonymous reports whether id is an anonymous user identifier.
func IsAnonymous(id string) bool {
	return strings.HasPrefix(id, AnonymousPrefix)
}

// Rating defines one user's rating of an entry. At most one exists per
// (MovieID, UserIdentifier); a repeat submission overwrites it.
type Rating struct {
	MovieID        int64  `json:"movieId" validate:"required"`
	Value          int    `json:"rating" validate:"min=1,max=5"`
	UserIdentifier string `json:"userIdentifier" validate:"required,max=128"`
	Timestamp      int64  `json:"timestamp"`
}

func (r *Rating) String() string {
	return fmt.Sprintf("Rating{movieId=%d, user=%s, rating=%d}", r.MovieID, r.UserIdentifier, r.Value)
}

// AggregatedRating defines the community rating of an entry.
type AggregatedRating struct {
	MovieID int64   `json:"movieId"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// RatingEvent defines an event containing rating information.
type RatingEvent struct {
	Rating
	ProviderID string          `json:"providerId"`
	EventType  RatingEventType `json:"eventType"`
}

func (ev *RatingEvent) String() string {
	return fmt.Sprintf("RatingEvent{Rating=%s, ProviderId=%s, EventType=%s}", ev.Rating.String(), ev.ProviderID, ev.EventType)
}

// RatingEventType defines the type of rating event.
type RatingEventType string

// Rating event types.
const (
	RatingEventTypePut    = RatingEventType("put")
	RatingEventTypeDelete = RatingEventType("delete")
)

// Aggregate averages the ratings of one entry. No ratings yield a zero average.
func Aggregate(movieID int64, ratings []Rating) AggregatedRating {
	res := AggregatedRating{MovieID: movieID, Count: len(ratings)}
	if len(ratings) == 0 {
		return res
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Value
	}
	res.Average = float64(sum) / float64(len(ratings))
	return res
}
