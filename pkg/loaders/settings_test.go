package loaders

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadSettings_MergesDefaults(t *testing.T) {
	settings, err := ReadSettings(strings.NewReader(`{"spp": 64, "width": 320, "height": 240, "n_thrd": 8}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := DefaultSettings()
	expected.SamplesPerPixel = 64
	expected.Width = 320
	expected.Height = 240
	expected.Threads = 8
	if settings != expected {
		t.Errorf("Expected %+v, got %+v", expected, settings)
	}
}

func TestReadSettings_SceneOverrides(t *testing.T) {
	settings, err := ReadSettings(strings.NewReader(`{"fov": 60, "max_depth": 3, "russian_roulette": 0.5, "epsilon": 0.001}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if settings.FOV == nil || *settings.FOV != 60 {
		t.Errorf("Expected fov 60, got %v", settings.FOV)
	}
	if settings.MaxDepth == nil || *settings.MaxDepth != 3 {
		t.Errorf("Expected max_depth 3, got %v", settings.MaxDepth)
	}
	if settings.RussianRoulette == nil || *settings.RussianRoulette != 0.5 {
		t.Errorf("Expected russian_roulette 0.5, got %v", settings.RussianRoulette)
	}
	if settings.Epsilon == nil || *settings.Epsilon != 0.001 {
		t.Errorf("Expected epsilon 0.001, got %v", settings.Epsilon)
	}

	defaults, err := ReadSettings(strings.NewReader(`{}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if defaults.FOV != nil || defaults.MaxDepth != nil || defaults.RussianRoulette != nil || defaults.Epsilon != nil {
		t.Error("Expected absent overrides to stay nil")
	}
}

func TestReadSettings_Invalid(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"malformed", `{"spp": `},
		{"wrong type", `{"spp": "many"}`},
		{"zero width", `{"width": 0}`},
		{"negative height", `{"height": -4}`},
		{"zero spp", `{"spp": 0}`},
		{"negative threads", `{"n_thrd": -1}`},
		{"fov too wide", `{"fov": 180}`},
		{"negative depth", `{"max_depth": -1}`},
		{"roulette of one", `{"russian_roulette": 1}`},
		{"zero epsilon", `{"epsilon": 0}`},
		{"zero gamma", `{"gamma": 0}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadSettings(strings.NewReader(tt.json))
			if !errors.Is(err, ErrInvalidSettings) {
				t.Errorf("Expected ErrInvalidSettings, got %v", err)
			}
		})
	}
}

func TestDefaultSettingsAreValid(t *testing.T) {
	if err := DefaultSettings().Validate(); err != nil {
		t.Errorf("default settings rejected: %v", err)
	}
}

func TestLoadSettings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")
	if err := os.WriteFile(path, []byte(`{"spp": 4, "width": 10, "height": 20, "n_thrd": 2}`), 0o644); err != nil {
		t.Fatal(err)
	}

	settings, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if settings.SamplesPerPixel != 4 || settings.Width != 10 || settings.Height != 20 || settings.Threads != 2 {
		t.Errorf("unexpected settings %+v", settings)
	}

	if _, err := LoadSettings(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("Expected error for missing file")
	} else if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected wrapped os.ErrNotExist, got %v", err)
	}
}
