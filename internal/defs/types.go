// internal/defs/types.go
package defs

import "fmt"

// Behavior — закрытый набор классов атаки башен
type Behavior string

const (
	BehaviorProjectile Behavior = "projectile"
	BehaviorInstant    Behavior = "instant"
	BehaviorTrap       Behavior = "trap"
)

// Valid сообщает, известен ли класс b
func (b Behavior) Valid() bool {
	switch b {
	case BehaviorProjectile, BehaviorInstant, BehaviorTrap:
		return true
	}
	return false
}

// ValidationError описывает определение, не прошедшее проверку при загрузке
type ValidationError struct {
	Kind  string // "tower", "enemy" or "path"
	ID    string
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("invalid %s: %s %s", e.Kind, e.Field, e.Msg)
	}
	return fmt.Sprintf("invalid %s %q: %s %s", e.Kind, e.ID, e.Field, e.Msg)
}
