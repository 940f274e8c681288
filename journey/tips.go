package journey

// Tips are the motivational lines shown while the train is moving.
var Tips = []string{
	"Deep Work is a superpower in the 21st century.",
	"Focus isn't about saying yes, it's about saying no to good ideas.",
	"The train is moving. Don't jump off.",
	"Momentum creates motivation, not the other way around.",
	"Just one more minute of focus.",
	"You are building mental muscle right now.",
	"Distraction is the enemy of depth.",
	"Keep your eyes on the rails.",
	"Flow state is just around the corner.",
	"Every mile counts.",
}
