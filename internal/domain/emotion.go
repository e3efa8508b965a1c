package domain

// EmotionCategory is the closed classification derived from an emotion marker.
type EmotionCategory string

const (
	EmotionHappy    EmotionCategory = "happy"
	EmotionLove     EmotionCategory = "love"
	EmotionExcited  EmotionCategory = "excited"
	EmotionCalm     EmotionCategory = "calm"
	EmotionGrateful EmotionCategory = "grateful"
	EmotionHopeful  EmotionCategory = "hopeful"
	EmotionTired    EmotionCategory = "tired"
	EmotionSad      EmotionCategory = "sad"
	EmotionAngry    EmotionCategory = "angry"
	EmotionAnxious  EmotionCategory = "anxious"
	EmotionNeutral  EmotionCategory = "neutral"
)

// EmotionCategories lists every category in display order.
var EmotionCategories = []EmotionCategory{
	EmotionHappy, EmotionLove, EmotionExcited, EmotionCalm, EmotionGrateful,
	EmotionHopeful, EmotionTired, EmotionSad, EmotionAngry, EmotionAnxious,
	EmotionNeutral,
}

func (c EmotionCategory) String() string { return string(c) }

func (c EmotionCategory) IsValid() bool {
	switch c {
	case EmotionHappy, EmotionLove, EmotionExcited, EmotionCalm, EmotionGrateful,
		EmotionHopeful, EmotionTired, EmotionSad, EmotionAngry, EmotionAnxious,
		EmotionNeutral:
		return true
	}
	return false
}

// IsNegative reports whether the category counts toward the negative-mood ratio.
func (c EmotionCategory) IsNegative() bool {
	switch c {
	case EmotionSad, EmotionAngry, EmotionAnxious, EmotionTired:
		return true
	}
	return false
}

// IsHighRisk reports whether the category counts toward the high-risk pattern.
// Every high-risk category is also negative.
func (c EmotionCategory) IsHighRisk() bool {
	switch c {
	case EmotionSad, EmotionAngry, EmotionAnxious:
		return true
	}
	return false
}

// markerCategories binds the markers offered by the diary's emotion picker
// (emoji and their Korean labels) to a category.
var markerCategories = map[string]EmotionCategory{
	"😊": EmotionHappy, "😄": EmotionHappy, "🌟": EmotionHappy,
	"행복": EmotionHappy, "기쁨": EmotionHappy, "영감": EmotionHappy,

	"🥰": EmotionLove, "💖": EmotionLove,
	"사랑": EmotionLove, "감동": EmotionLove,

	"🎉": EmotionExcited, "✨": EmotionExcited,
	"설렘": EmotionExcited, "신남": EmotionExcited,

	"😌": EmotionCalm, "평온": EmotionCalm,

	"🤗": EmotionGrateful, "감사": EmotionGrateful,

	"🌈": EmotionHopeful, "희망": EmotionHopeful,

	"😴": EmotionTired, "피곤": EmotionTired,

	"😢": EmotionSad, "😞": EmotionSad, "😔": EmotionSad, "😭": EmotionSad,
	"슬픔": EmotionSad,

	"😠": EmotionAngry, "😡": EmotionAngry, "🤬": EmotionAngry,
	"분노": EmotionAngry,

	"😰": EmotionAnxious, "😟": EmotionAnxious, "😨": EmotionAnxious,
	"불안": EmotionAnxious,
}

// Classify maps an emotion marker to its category. Unknown markers are neutral.
func Classify(marker string) EmotionCategory {
	if c, ok := markerCategories[marker]; ok {
		return c
	}
	return EmotionNeutral
}
