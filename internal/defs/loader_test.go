package defs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefault(t *testing.T) {
	lib, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}

	wantOrder := []string{"archer", "cannon", "mage", "sniper", "bomb"}
	if len(lib.TowerOrder) != len(wantOrder) {
		t.Fatalf("TowerOrder = %v, want %v", lib.TowerOrder, wantOrder)
	}
	for i, id := range wantOrder {
		if lib.TowerOrder[i] != id {
			t.Errorf("TowerOrder[%d] = %q, want %q", i, lib.TowerOrder[i], id)
		}
	}

	archer := lib.Towers["archer"]
	if archer.Cost != 50 || archer.Range != 150 || archer.Damage != 10 || archer.FireRate != 30 || archer.Behavior != BehaviorProjectile {
		t.Errorf("archer = %+v", archer)
	}
	if mage := lib.Towers["mage"]; mage.Slow == nil || mage.Slow.Duration != 120 || mage.Slow.Factor != 0.5 {
		t.Errorf("mage slow = %+v", mage.Slow)
	}
	if sniper := lib.Towers["sniper"]; sniper.Behavior != BehaviorInstant {
		t.Errorf("sniper behavior = %q", sniper.Behavior)
	}
	if bomb := lib.Towers["bomb"]; bomb.Behavior != BehaviorTrap || bomb.AOE != 100 || bomb.Range != 30 {
		t.Errorf("bomb = %+v", bomb)
	}

	boss := lib.Enemies[EnemyBoss]
	if boss.Health != 500 || boss.Speed != 0.5 || boss.Reward != 100 || boss.Radius != 25 {
		t.Errorf("boss = %+v", boss)
	}

	if n := len(lib.Path.Waypoints); n != 8 {
		t.Fatalf("path has %d waypoints, want 8", n)
	}
	if end := lib.Path.End(); end.X != 1024 || end.Y != 450 {
		t.Errorf("path end = %+v", end)
	}
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
	return p
}

func TestLoadTowerDefinitionsRejectsBadData(t *testing.T) {
	tests := []struct {
		name  string
		json  string
		field string
	}{
		{"unknown behavior", `[{"id":"x","cost":1,"range":1,"damage":1,"behavior":"laser"}]`, "behavior"},
		{"zero cost", `[{"id":"x","cost":0,"range":1,"damage":1,"behavior":"instant"}]`, "cost"},
		{"projectile without speed", `[{"id":"x","cost":1,"range":1,"damage":1,"behavior":"projectile"}]`, "projectile_speed"},
		{"trap without aoe", `[{"id":"x","cost":1,"range":1,"damage":1,"behavior":"trap"}]`, "aoe"},
		{"duplicate id", `[{"id":"x","cost":1,"range":1,"damage":1,"behavior":"instant"},{"id":"x","cost":1,"range":1,"damage":1,"behavior":"instant"}]`, "id"},
	}
	for _, tt := range tests {
		lib := MustLoadDefault()
		err := lib.LoadTowerDefinitions(writeTemp(t, "towers.json", tt.json))
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("%s: err = %v, want a ValidationError", tt.name, err)
			continue
		}
		if verr.Field != tt.field {
			t.Errorf("%s: field = %q, want %q", tt.name, verr.Field, tt.field)
		}
		if len(lib.Towers) != 5 {
			t.Errorf("%s: failed load replaced the tower table", tt.name)
		}
	}
}

func TestLoadTowerDefinitionsFromFile(t *testing.T) {
	lib := MustLoadDefault()
	p := writeTemp(t, "towers.json", `[{"id":"zap","name":"Zap","cost":10,"range":90,"damage":3,"fire_rate":0,"behavior":"instant"}]`)
	if err := lib.LoadTowerDefinitions(p); err != nil {
		t.Fatalf("LoadTowerDefinitions: %v", err)
	}
	if len(lib.Towers) != 1 || lib.TowerOrder[0] != "zap" {
		t.Errorf("towers = %v", lib.TowerOrder)
	}
}

func TestLoadEnemyDefinitionsRequiresScheduleKinds(t *testing.T) {
	lib := MustLoadDefault()
	p := writeTemp(t, "enemies.json", `[{"id":"basic","health":1,"speed":1,"reward":1,"radius":1}]`)
	err := lib.LoadEnemyDefinitions(p)
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.ID != EnemyFast {
		t.Fatalf("err = %v, want a missing %q error", err, EnemyFast)
	}
}

func TestLoadPath(t *testing.T) {
	lib := MustLoadDefault()
	if err := lib.LoadPath(writeTemp(t, "path.json", `{"waypoints":[{"x":0,"y":0}]}`)); err == nil {
		t.Errorf("single-point path accepted")
	}
	if err := lib.LoadPath(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Errorf("missing file accepted")
	}
	if err := lib.LoadPath(writeTemp(t, "path.json", `{"waypoints":[{"x":0,"y":0},{"x":10,"y":0}]}`)); err != nil {
		t.Fatalf("LoadPath: %v", err)
	}
	if lib.Path.Segments() != 1 {
		t.Errorf("segments = %d, want 1", lib.Path.Segments())
	}
	if _, ok := lib.Path.Next(1); ok {
		t.Errorf("Next past the last segment reported a waypoint")
	}
}
