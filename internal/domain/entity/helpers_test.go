package entity

// stepJump is a minimal impulse jump used by entity tests
type stepJump struct {
	launch  float64
	gravity float64
}

func (j stepJump) Launch(p *Player) { p.VY = -j.launch }

func (j stepJump) Advance(p *Player, dt float64) bool {
	p.VY += j.gravity * dt
	p.Y += p.VY * dt
	return false
}

func (j stepJump) Rebound(p *Player) { p.VY = -j.launch / 2 }

const testDT = 1.0 / 60.0

func createTestField() Playfield {
	return Playfield{Width: 800, Height: 600, Ground: 500}
}

func createTestPlayerSpec() PlayerSpec {
	return PlayerSpec{
		Small:          Size{W: 40, H: 50},
		Large:          Size{W: 40, H: 80},
		Speed:          300,
		Lives:          3,
		StompTolerance: 10,
	}
}

func createTestPlayer(x float64) *Player {
	return NewPlayer(x, createTestField(), createTestPlayerSpec(), stepJump{launch: 720, gravity: 2880})
}

// createAirbornePlayer places a falling player so its feet are at feetY
func createAirbornePlayer(x, feetY float64) *Player {
	p := createTestPlayer(x)
	p.State = Airborne
	p.Y = feetY - p.H
	p.VY = 200
	return p
}

type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) Intn(int) int     { return r.n }
