// internal/defs/loader.go
package defs

import (
	"embed"
	"encoding/json"
	"fmt"
	"log"
	"os"
)

//go:embed data/*.json
var builtin embed.FS

// Library — набор архетипов и маршрут, с которыми играется сессия
type Library struct {
	Towers     map[string]TowerDefinition
	Enemies    map[string]EnemyDefinition
	TowerOrder []string // порядок в палитре, как в исходном файле
	EnemyOrder []string
	Path       Path
}

// LoadDefault собирает библиотеку из встроенных файлов определений
func LoadDefault() (*Library, error) {
	lib := &Library{}
	for name, load := range map[string]func([]byte) error{
		"data/towers.json":  lib.parseTowers,
		"data/enemies.json": lib.parseEnemies,
		"data/path.json":    lib.parsePath,
	} {
		raw, err := builtin.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded %s: %w", name, err)
		}
		if err := load(raw); err != nil {
			return nil, fmt.Errorf("embedded %s: %w", name, err)
		}
	}
	return lib, nil
}

// MustLoadDefault паникует вместо возврата ошибки
func MustLoadDefault() *Library {
	lib, err := LoadDefault()
	if err != nil {
		panic(err)
	}
	return lib
}

// LoadTowerDefinitions заменяет таблицу башен содержимым JSON-файла
func (l *Library) LoadTowerDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tower definitions file: %w", err)
	}
	if err := l.parseTowers(file); err != nil {
		return fmt.Errorf("tower definitions %s: %w", path, err)
	}
	log.Printf("Loaded %d tower definitions from %s", len(l.Towers), path)
	return nil
}

// LoadEnemyDefinitions заменяет таблицу врагов содержимым JSON-файла
func (l *Library) LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}
	if err := l.parseEnemies(file); err != nil {
		return fmt.Errorf("enemy definitions %s: %w", path, err)
	}
	log.Printf("Loaded %d enemy definitions from %s", len(l.Enemies), path)
	return nil
}

// LoadPath заменяет маршрут содержимым JSON-файла
func (l *Library) LoadPath(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read path file: %w", err)
	}
	if err := l.parsePath(file); err != nil {
		return fmt.Errorf("path %s: %w", path, err)
	}
	log.Printf("Loaded path with %d waypoints from %s", len(l.Path.Waypoints), path)
	return nil
}

func (l *Library) parseTowers(raw []byte) error {
	var towerDefs []TowerDefinition
	if err := json.Unmarshal(raw, &towerDefs); err != nil {
		return fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}

	towers := make(map[string]TowerDefinition, len(towerDefs))
	order := make([]string, 0, len(towerDefs))
	for _, def := range towerDefs {
		if err := def.validate(); err != nil {
			return err
		}
		if _, dup := towers[def.ID]; dup {
			return &ValidationError{Kind: "tower", ID: def.ID, Field: "id", Msg: "is duplicated"}
		}
		towers[def.ID] = def
		order = append(order, def.ID)
	}
	l.Towers, l.TowerOrder = towers, order
	return nil
}

func (l *Library) parseEnemies(raw []byte) error {
	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(raw, &enemyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	enemies := make(map[string]EnemyDefinition, len(enemyDefs))
	order := make([]string, 0, len(enemyDefs))
	for _, def := range enemyDefs {
		if err := def.validate(); err != nil {
			return err
		}
		if _, dup := enemies[def.ID]; dup {
			return &ValidationError{Kind: "enemy", ID: def.ID, Field: "id", Msg: "is duplicated"}
		}
		enemies[def.ID] = def
		order = append(order, def.ID)
	}
	for _, id := range []string{EnemyBasic, EnemyFast, EnemyTank, EnemyBoss} {
		if _, ok := enemies[id]; !ok {
			return &ValidationError{Kind: "enemy", ID: id, Field: "id", Msg: "is required by the wave schedule"}
		}
	}
	l.Enemies, l.EnemyOrder = enemies, order
	return nil
}

func (l *Library) parsePath(raw []byte) error {
	var p Path
	if err := json.Unmarshal(raw, &p); err != nil {
		return fmt.Errorf("failed to unmarshal path: %w", err)
	}
	if err := p.validate(); err != nil {
		return err
	}
	l.Path = p
	return nil
}
