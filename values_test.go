package hud

import (
	"testing"
	"time"
)

var standardKeys = []string{
	"user_name", "file_path", "file_name",
	"time_iso", "date_iso", "datetime_iso",
	"time", "date", "datetime",
	"camera_short_name", "camera_long_name",
	"frame_integer", "frame_float",
	"film_back_width_inches", "film_back_height_inches",
	"film_back_width_mm", "film_back_height_mm",
	"camera_tilt", "camera_pan", "camera_roll",
	"camera_shutter_angle",
	"lens_focal_length", "lens_focus_distance", "lens_f_stop",
	"lens_angle_of_view_x", "lens_angle_of_view_y",
}

func TestStandardValues_KeySet(t *testing.T) {
	vals := StandardValues(SceneState{}, Camera{}, time.Now())
	for _, k := range standardKeys {
		if _, ok := vals[k]; !ok {
			t.Errorf("missing key %q", k)
		}
	}
	if len(vals) != len(standardKeys) {
		t.Errorf("len = %d, want %d", len(vals), len(standardKeys))
	}
}

func TestStandardValues_FileName(t *testing.T) {
	tests := []struct {
		path     string
		wantPath string
		wantName string
	}{
		{"/projects/shots/sh010_v003.ma", "/projects/shots/sh010_v003.ma", "sh010_v003"},
		{"scene.mb", "scene.mb", "scene"},
		{"", "Untitled", "Untitled"},
	}
	for _, tt := range tests {
		t.Run(tt.wantName, func(t *testing.T) {
			vals := StandardValues(SceneState{FilePath: tt.path}, Camera{}, time.Now())
			if got := vals["file_path"].String(); got != tt.wantPath {
				t.Errorf("file_path = %q, want %q", got, tt.wantPath)
			}
			if got := vals["file_name"].String(); got != tt.wantName {
				t.Errorf("file_name = %q, want %q", got, tt.wantName)
			}
		})
	}
}

func TestStandardValues_TimeFormats(t *testing.T) {
	now := time.Date(2024, time.March, 5, 14, 7, 0, 0, time.UTC)
	vals := StandardValues(SceneState{}, Camera{}, now)

	tests := []struct {
		key  string
		want string
	}{
		{"time_iso", "14:07"},
		{"date_iso", "2024-03-05"},
		{"datetime_iso", "2024-03-05 14:07"},
		{"time", "02:07PM"},
		{"date", "Tue Mar 05 2024"},
		{"datetime", "Tue Mar 05 02:07PM 2024"},
	}
	for _, tt := range tests {
		if got := vals[tt.key].String(); got != tt.want {
			t.Errorf("%s = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestStandardValues_Frame(t *testing.T) {
	vals := StandardValues(SceneState{Frame: 101.25}, Camera{}, time.Now())
	if got, ok := vals["frame_integer"].AsInt(); !ok || got != 101 {
		t.Errorf("frame_integer = %v, want 101", got)
	}
	if got, ok := vals["frame_float"].AsFloat(); !ok || got != 101.25 {
		t.Errorf("frame_float = %v, want 101.25", got)
	}
}

func TestStandardValues_FilmBack(t *testing.T) {
	cam := Camera{ApertureX: 1.417, ApertureY: 0.945}
	vals := StandardValues(SceneState{}, cam, time.Now())

	if got, _ := vals["film_back_width_inches"].AsFloat(); got != 1.417 {
		t.Errorf("film_back_width_inches = %v, want 1.417", got)
	}
	wantMM := 1.417 * MillimetersPerInch
	if got, _ := vals["film_back_width_mm"].AsFloat(); !approx(got, wantMM) {
		t.Errorf("film_back_width_mm = %v, want %v", got, wantMM)
	}
}
