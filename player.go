package linview

// tRatePerMs is how far t advances per elapsed millisecond while playing.
const tRatePerMs = 0.0004

// Player sweeps the interpolation parameter back and forth between 0 and 1
// (ping-pong) while the state's Playing flag is set. The host invokes Tick
// once per display refresh with the elapsed time since the previous tick and
// must not accumulate elapsed time while playback is inactive, so resuming
// never produces a discontinuous jump.
type Player struct {
	state     *State
	direction float64
}

// NewPlayer returns a player driving the given state, sweeping upward first.
func NewPlayer(state *State) *Player {
	return &Player{state: state, direction: 1}
}

// Direction returns the current sweep sign, +1 or -1.
func (p *Player) Direction() float64 {
	return p.direction
}

// Tick advances t by elapsedMs at the fixed sweep rate. Overshoot clamps to
// the boundary and flips the direction; the direction never changes anywhere
// else. No-op while the state is not playing.
func (p *Player) Tick(elapsedMs float64) {
	if !p.state.Playing || elapsedMs <= 0 {
		return
	}
	t := p.state.T + elapsedMs*tRatePerMs*p.direction
	if t >= 1 {
		t = 1
		p.direction = -1
	} else if t <= 0 {
		t = 0
		p.direction = 1
	}
	p.state.T = t
}
