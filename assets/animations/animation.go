package animations

// Animation steps through frame indices First..Last at a fixed frame time.
// Frames are drawn procedurally by the renderer, so an animation only tracks
// which index is current.
type Animation struct {
	First     int
	Last      int
	FrameTime float64 // seconds each frame is shown
	Looping   bool

	elapsed float64
	frame   int
	Looped  bool
}

// Update advances the animation by dt seconds.
func (a *Animation) Update(dt float64) {
	if a.FrameTime <= 0 {
		return
	}
	a.elapsed += dt
	for a.elapsed > a.FrameTime {
		a.elapsed -= a.FrameTime
		a.frame++
		if a.frame > a.Last {
			a.Looped = true
			if a.Looping {
				a.frame = a.First
			} else {
				// Stay on last frame
				a.frame = a.Last
			}
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// Index returns the current frame relative to First.
func (a *Animation) Index() int {
	return a.frame - a.First
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.elapsed = 0
	a.Looped = false
}

func NewAnimation(first, last int, frameTime float64, looping bool) *Animation {
	return &Animation{
		First:     first,
		Last:      last,
		FrameTime: frameTime,
		Looping:   looping,
		frame:     first,
	}
}
