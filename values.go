package hud

import (
	"path/filepath"
	"strings"
	"time"
)

// SceneState is the host-side information that feeds the standard value
// dictionary: who is working, in which file, through which camera, at
// which frame. Rebuilt by the host every evaluation.
type SceneState struct {
	UserName string
	FilePath string // empty means an unsaved scene

	CameraShortName string
	CameraLongName  string

	Frame float64

	// Camera orientation in degrees, decomposed in pan/tilt/roll order.
	CameraTilt float64
	CameraPan  float64
	CameraRoll float64
}

// StandardValues builds the value dictionary every HUD template can draw
// from. The key set is a contract with the templates and must not be
// renamed: user_name, file_path, file_name, the date/time variants,
// camera_short_name, camera_long_name, frame_integer, frame_float, the
// film_back_* sizes, camera_tilt/pan/roll, camera_shutter_angle, and the
// lens_* parameters.
func StandardValues(s SceneState, cam Camera, now time.Time) Values {
	filePath := s.FilePath
	if filePath == "" {
		filePath = "Untitled"
	}
	fileName := filepath.Base(filePath)
	fileName = strings.TrimSuffix(fileName, filepath.Ext(fileName))

	return Values{
		// Environment details.
		"user_name": Str(s.UserName),
		"file_path": Str(filePath),
		"file_name": Str(fileName),

		// Date and time.
		"time_iso":     Str(now.Format("15:04")),
		"date_iso":     Str(now.Format("2006-01-02")),
		"datetime_iso": Str(now.Format("2006-01-02 15:04")),
		"time":         Str(now.Format("03:04PM")),
		"date":         Str(now.Format("Mon Jan 02 2006")),
		"datetime":     Str(now.Format("Mon Jan 02 03:04PM 2006")),

		// Camera name.
		"camera_short_name": Str(s.CameraShortName),
		"camera_long_name":  Str(s.CameraLongName),

		// Shot frame.
		"frame_integer": Int(int64(s.Frame)),
		"frame_float":   Float(s.Frame),

		// Film back.
		"film_back_width_inches":  Float(cam.ApertureX),
		"film_back_height_inches": Float(cam.ApertureY),
		"film_back_width_mm":      Float(cam.ApertureX * MillimetersPerInch),
		"film_back_height_mm":     Float(cam.ApertureY * MillimetersPerInch),

		// Camera.
		"camera_tilt":          Float(s.CameraTilt),
		"camera_pan":           Float(s.CameraPan),
		"camera_roll":          Float(s.CameraRoll),
		"camera_shutter_angle": Float(cam.ShutterAngle),

		// Lens.
		"lens_focal_length":    Float(cam.FocalLength),
		"lens_focus_distance":  Float(cam.FocusDistance),
		"lens_f_stop":          Float(cam.FStop),
		"lens_angle_of_view_x": Float(cam.AngleOfViewX()),
		"lens_angle_of_view_y": Float(cam.AngleOfViewY()),
	}
}
