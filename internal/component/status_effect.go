// internal/component/status_effect.go
package component

// SlowEffect замедляет врага, пока Timer больше нуля
type SlowEffect struct {
	Timer  int     // осталось тиков, уменьшается раз за тик движения
	Factor float64 // множитель скорости
}

// Active сообщает, действует ли замедление в этом тике
func (s *SlowEffect) Active() bool {
	return s.Timer > 0
}

// Apply перезаписывает замедление. Замедления не складываются.
func (s *SlowEffect) Apply(duration int, factor float64) {
	s.Timer = duration
	s.Factor = factor
}
