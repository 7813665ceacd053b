package config

import "sort"

// Presets are named starting configurations for the visualizer.
var Presets = map[string]*Config{
	"classic": {
		Simulation: SimulationConfig{
			Sigma: 10, Beta: 8.0 / 3.0, Rho: 28,
			Dt: 0.005, TailLength: 5000, StepsPerFrame: 10,
		},
		Camera: CameraConfig{Distance: 100},
	},
	"gentle": {
		// Below the chaotic regime; the trajectory spirals into a fixed point.
		Simulation: SimulationConfig{
			Sigma: 10, Beta: 8.0 / 3.0, Rho: 14,
			Dt: 0.005, TailLength: 5000, StepsPerFrame: 10,
		},
		Camera: CameraConfig{Distance: 80},
	},
	"divergent": {
		Simulation: SimulationConfig{
			Sigma: 18, Beta: 1.2, Rho: 38,
			Dt: 0.005, TailLength: 8000, StepsPerFrame: 15,
		},
		Camera: CameraConfig{Distance: 140},
	},
}

// GetPreset returns the named preset, or nil if it does not exist. The
// returned config is a copy with window defaults filled in.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Simulation = p.Simulation
	cfg.Camera = p.Camera
	return cfg
}

// ListPresets returns the preset names sorted alphabetically.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
