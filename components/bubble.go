package components

import "github.com/yohamta/donburi"

// Bubble is a single trail particle. Particles live in a pooled slice on the
// singleton trail component rather than as entities; they have no collision
// or per-particle behavior beyond drifting and fading.
type Bubble struct {
	X, Y    float64
	Size    float64
	Life    int
	MaxLife int
	Speed   float64
	Angle   float64 // drift direction in compass degrees
}

// BubbleTrailData holds the live particles emitted behind the vehicle.
type BubbleTrailData struct {
	Bubbles  []Bubble
	Cooldown int // ticks until the next emission
}

var BubbleTrail = donburi.NewComponentType[BubbleTrailData]()
