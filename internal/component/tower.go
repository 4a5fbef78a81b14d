// internal/component/tower.go
package component

// Tower — поставленная башня или ловушка
type Tower struct {
	DefID    string // ключ в таблице башен
	Pos      Position
	Range    float64 // копируется из определения при постройке
	Cooldown int     // тиков до следующего выстрела
}
