package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/kcc-testbed/components"
	cfg "github.com/automoto/kcc-testbed/config"
)

// SavedSettings represents the viewer settings stored on disk
type SavedSettings struct {
	Zoom           float64 `json:"zoom"`
	ShowFootprints bool    `json:"showFootprints"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "kcc_testbed",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk; nil means no saved settings yet.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// ApplySavedSettings applies loaded settings to the running scene.
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}

	cfg.Debug.ShowFootprints = saved.ShowFootprints

	if entry, ok := components.Camera.First(e.World); ok {
		cam := components.Camera.Get(entry)
		zoom := saved.Zoom
		if zoom < cfg.Camera.MinZoom || zoom > cfg.Camera.MaxZoom {
			zoom = cfg.Camera.DefaultZoom
		}
		cam.Zoom = zoom
		cam.TargetZoom = zoom
	}
}

// UpdateSettings handles the footprint overlay toggle and writes the
// current viewer settings back to disk whenever they change.
func UpdateSettings(e *ecs.ECS) {
	inputEntry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	in := components.Input.Get(inputEntry)

	changed := false
	if in.Action(cfg.ActionToggleFootprints).JustPressed {
		cfg.Debug.ShowFootprints = !cfg.Debug.ShowFootprints
		changed = true
	}
	if in.Action(cfg.ActionZoomIn).JustPressed || in.Action(cfg.ActionZoomOut).JustPressed {
		changed = true
	}
	if !changed {
		return
	}

	zoom := cfg.Camera.DefaultZoom
	if entry, ok := components.Camera.First(e.World); ok {
		zoom = components.Camera.Get(entry).TargetZoom
	}
	_ = SaveSettings(&SavedSettings{
		Zoom:           zoom,
		ShowFootprints: cfg.Debug.ShowFootprints,
	})
}
