package component

// Health - компонент здоровья
type Health struct {
	Current float64
	Max     float64
}

// Dead reports whether health has run out.
func (h *Health) Dead() bool {
	return h.Current <= 0
}

// Visible returns the health value safe to show: never negative.
func (h *Health) Visible() float64 {
	if h.Current < 0 {
		return 0
	}
	return h.Current
}
