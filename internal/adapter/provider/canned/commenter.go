// Package canned is an offline commenter that picks a stock comment for the
// entry's emotion. The same entry always gets the same comment.
package canned

import (
	"context"
	"hash/fnv"

	"github.com/heartmarshall/moodbook-backend/internal/domain"
)

const fallback = "Thank you for recording today. Every feeling you write down matters."

var comments = map[domain.EmotionCategory][]string{
	domain.EmotionHappy: {
		"There is positive energy in this day! It is great to see you enjoying it.",
		"What a bright day. Hold on to this feeling.",
	},
	domain.EmotionLove: {
		"It sounds like a day full of warmth. Those moments are worth keeping.",
	},
	domain.EmotionExcited: {
		"Your excitement comes through! Good luck with what comes next.",
		"A new start is always exciting. Enjoy the momentum.",
	},
	domain.EmotionCalm: {
		"A quiet, peaceful day is a gift too. Rest well.",
	},
	domain.EmotionGrateful: {
		"Noticing what you are grateful for is a lovely habit.",
	},
	domain.EmotionHopeful: {
		"Hope is a good companion. Keep looking forward.",
	},
	domain.EmotionTired: {
		"You worked hard today. Make sure you get some real rest tonight.",
		"Being tired is a signal to slow down. Be gentle with yourself.",
	},
	domain.EmotionSad: {
		"It is okay to feel sad. Thank you for putting it into words.",
		"Some days are heavy. Tomorrow can be a little lighter.",
	},
	domain.EmotionAngry: {
		"That sounds frustrating. Writing it down is a good first step to letting it go.",
	},
	domain.EmotionAnxious: {
		"Worry can feel overwhelming. Try taking a few slow breaths before bed.",
	},
	domain.EmotionNeutral: {
		fallback,
	},
}

// Commenter returns a stock comment chosen by the entry's category.
type Commenter struct{}

// New creates a Commenter.
func New() *Commenter {
	return &Commenter{}
}

// Comment never fails.
func (c *Commenter) Comment(_ context.Context, f domain.DiaryFields) (string, error) {
	options := comments[domain.Classify(f.EmotionMarker)]
	if len(options) == 0 {
		return fallback, nil
	}

	h := fnv.New32a()
	_, _ = h.Write([]byte(f.Title))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(f.Note))
	return options[h.Sum32()%uint32(len(options))], nil
}
