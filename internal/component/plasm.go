// internal/component/plasm.go
package component

// PlasmPool — общий запас плазмы игрока (награды за сбежавших смертных).
type PlasmPool struct {
	Stored int
	Max    int
}

// Spend debits amount if the pool can afford it.
func (p *PlasmPool) Spend(amount int) bool {
	if amount < 0 || p.Stored < amount {
		return false
	}
	p.Stored -= amount
	return true
}

// Gain credits amount, capped at Max.
func (p *PlasmPool) Gain(amount int) {
	if amount <= 0 {
		return
	}
	p.Stored = min(p.Stored+amount, p.Max)
}

// PlasmPickup — сгусток плазмы, который призрак собирает один раз.
type PlasmPickup struct {
	Amount    float64
	Radius    float64
	Collected bool
}

// Current returns the stored amount.
func (p *PlasmPool) Current() int {
	return p.Stored
}
