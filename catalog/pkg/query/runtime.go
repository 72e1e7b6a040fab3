package query

import (
	"moviecatalog/catalog/pkg/model"
	"regexp"
	"strconv"
)

// RuntimeBucket selects entries by runtime.
type RuntimeBucket string

// Runtime buckets. Unknown names behave as RuntimeAll.
const (
	RuntimeAll         = RuntimeBucket("all")
	RuntimeShort       = RuntimeBucket("short")
	RuntimeMedium      = RuntimeBucket("medium")
	RuntimeLong        = RuntimeBucket("long")
	RuntimeOneSeason   = RuntimeBucket("oneSeason")
	RuntimeMultiSeason = RuntimeBucket("multiSeason")
)

const (
	shortMaxMinutes  = 90
	mediumMaxMinutes = 150
)

var (
	oneSeason = regexp.MustCompile(`(?i)\b1\s*seasons?\b`)
	seasons   = regexp.MustCompile(`(?i)(\d+)\s*seasons?\b`)
)

// Match reports whether a runtime text falls into the bucket.
func (b RuntimeBucket) Match(runtime string) bool {
	switch b {
	case RuntimeShort, RuntimeMedium, RuntimeLong:
		if seasons.MatchString(runtime) {
			return false
		}
		m, ok := model.FirstInt(runtime)
		if !ok || m <= 0 {
			return false
		}
		switch b {
		case RuntimeShort:
			return m <= shortMaxMinutes
		case RuntimeMedium:
			return m > shortMaxMinutes && m <= mediumMaxMinutes
		default:
			return m > mediumMaxMinutes
		}
	case RuntimeOneSeason:
		return oneSeason.MatchString(runtime)
	case RuntimeMultiSeason:
		m := seasons.FindStringSubmatch(runtime)
		if m == nil {
			return false
		}
		n, err := strconv.Atoi(m[1])
		return err == nil && n > 1
	default:
		return true
	}
}
