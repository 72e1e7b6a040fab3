package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryDecodesLeniently(t *testing.T) {
	var e Entry
	err := json.Unmarshal([]byte(`{
		"id": 5,
		"title": "Se7en",
		"year": "1995",
		"genre": "Crime, Drama",
		"rating": "N/A",
		"imdbRating": "8.6",
		"tags": ["noir"]
	}`), &e)
	require.NoError(t, err)
	assert.Equal(t, Int(1995), e.Year)
	assert.False(t, e.Rating.Valid)
	assert.Equal(t, F(8.6), e.ImdbRating)
	assert.Equal(t, 8.6, e.EffectiveRating())
	assert.Equal(t, []string{"Crime", "Drama"}, e.Genres())
	assert.Equal(t, "crime", e.PrimaryGenre())
}

func TestEffectiveRating(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  float64
	}{
		{name: "imdb wins", entry: Entry{Rating: F(5), ImdbRating: F(7)}, want: 7},
		{name: "legacy fallback", entry: Entry{Rating: F(5)}, want: 5},
		{name: "none", entry: Entry{}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entry.EffectiveRating())
		})
	}
}

func TestIntDecoding(t *testing.T) {
	tests := map[string]Int{
		`2003`:         2003,
		`"2010–2015"`:  2010,
		`2003.9`:       2003,
		`"unknown"`:    0,
		`null`:         0,
		`{"bad":true}`: 0,
	}
	for in, want := range tests {
		var got Int
		require.NoError(t, json.Unmarshal([]byte(in), &got), in)
		assert.Equal(t, want, got, in)
	}
}

func TestFloatRoundTripKeepsAbsence(t *testing.T) {
	b, err := json.Marshal(struct {
		A Float `json:"a"`
		B Float `json:"b"`
	}{A: F(3.5)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":3.5,"b":null}`, string(b))
}

func TestPatchApply(t *testing.T) {
	e := Entry{ID: 1, Title: "Old", Tags: []string{"a"}}
	title := "New"
	trailer := "https://example.com/t"
	p := EntryPatch{Title: &title, Trailer: &trailer}
	p.Apply(&e)
	assert.Equal(t, "New", e.Title)
	assert.Equal(t, "https://example.com/t", e.Trailer)
	assert.Equal(t, []string{"a"}, e.Tags, "untouched fields survive")
}

func TestProfileHidesPassword(t *testing.T) {
	u := User{ID: "1", Username: "ana", PasswordHash: "secret"}
	b, err := json.Marshal(u.Profile())
	require.NoError(t, err)
	assert.NotContains(t, string(b), "secret")
}

func TestAggregate(t *testing.T) {
	assert.Equal(t, AggregatedRating{MovieID: 7}, Aggregate(7, nil))
	got := Aggregate(7, []Rating{
		{MovieID: 7, Value: 4, UserIdentifier: "anon_a"},
		{MovieID: 7, Value: 2, UserIdentifier: "anon_b"},
	})
	assert.Equal(t, AggregatedRating{MovieID: 7, Average: 3.0, Count: 2}, got)
}
