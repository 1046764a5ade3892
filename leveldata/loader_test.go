package leveldata_test

import (
	"testing"

	"github.com/automoto/duskrunner/assets"
	"github.com/automoto/duskrunner/leveldata"
)

func TestLoadShippedLevel(t *testing.T) {
	level, err := leveldata.Load(assets.LevelFS, assets.LevelPath)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if level.Width != 1920 || level.Height != 384 {
		t.Errorf("level size = %vx%v, want 1920x384", level.Width, level.Height)
	}
	if level.GroundLevel != 336 {
		t.Errorf("ground level = %v, want 336", level.GroundLevel)
	}
	if len(level.Platforms) != 7 {
		t.Errorf("platform count = %d, want 7", len(level.Platforms))
	}
	if level.PlayerX != 48 || level.PlayerY != 288 {
		t.Errorf("player spawn = (%v, %v), want (48, 288)", level.PlayerX, level.PlayerY)
	}
	if len(level.Crows) != 2 {
		t.Errorf("crow count = %d, want 2", len(level.Crows))
	}
	if level.Finish.W == 0 || level.Finish.H == 0 {
		t.Errorf("finish marker missing")
	}
}

func TestLoadParsesEnemySpawns(t *testing.T) {
	level, err := leveldata.Load(assets.LevelFS, assets.LevelPath)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(level.Enemies) != 3 {
		t.Fatalf("enemy count = %d, want 3", len(level.Enemies))
	}

	heavies := 0
	for _, spawn := range level.Enemies {
		if spawn.PatrolRange <= 0 {
			t.Errorf("spawn %q has no patrol range", spawn.Type)
		}
		if spawn.Type == "HeavyWarden" {
			heavies++
		}
	}
	if heavies != 1 {
		t.Errorf("heavy warden count = %d, want 1", heavies)
	}
}

func TestLoadRejectsMissingFile(t *testing.T) {
	if _, err := leveldata.Load(assets.LevelFS, "levels/nope.tmx"); err == nil {
		t.Errorf("expected error for a missing level file")
	}
}
