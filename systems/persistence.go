package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

// SavedSettings is the settings payload stored through gdata.
type SavedSettings struct {
	SFXVolume  float64 `json:"sfxVolume"`
	Fullscreen bool    `json:"fullscreen"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence opens the gdata store. Failure is non-fatal: the game
// runs with defaults and skips saving.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "duskrunner",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads saved settings, returning nil when there are none.
func LoadSettings() *SavedSettings {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil || data == nil {
		return nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil
	}
	return &settings
}

// SaveSettings snapshots the current settings to the store.
func SaveSettings() {
	if !gdataInitialized || gdataManager == nil {
		return
	}

	settings := SavedSettings{
		SFXVolume: globalSFXVolume,
	}
	data, err := json.Marshal(settings)
	if err != nil {
		return
	}
	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
	}
}

// ApplySavedSettings pushes loaded settings into the live audio state.
func ApplySavedSettings() {
	settings := LoadSettings()
	if settings == nil {
		return
	}
	if settings.SFXVolume >= 0 && settings.SFXVolume <= 1 {
		globalSFXVolume = settings.SFXVolume
	}
}
