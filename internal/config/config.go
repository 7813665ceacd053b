package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/stepanmracek/lorenz/internal/physics"
)

const (
	DefaultTailLength    = 5000
	DefaultStepsPerFrame = 10
	DefaultDistance      = 100.0
	DefaultWindowWidth   = 1280
	DefaultWindowHeight  = 720
	DefaultFPS           = 60
)

type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Camera     CameraConfig     `yaml:"camera"`
	Window     WindowConfig     `yaml:"window"`
}

type SimulationConfig struct {
	Sigma         float64 `yaml:"sigma"`
	Beta          float64 `yaml:"beta"`
	Rho           float64 `yaml:"rho"`
	Dt            float64 `yaml:"dt"`
	TailLength    int     `yaml:"tail_length"`
	StepsPerFrame int     `yaml:"steps_per_frame"`
}

type CameraConfig struct {
	Distance float64 `yaml:"distance"`
	Yaw      float64 `yaml:"yaw"`
	Pitch    float64 `yaml:"pitch"`
}

type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	FPS    int `yaml:"fps"`
}

func DefaultConfig() *Config {
	return &Config{
		Simulation: SimulationConfig{
			Sigma:         physics.DefaultSigma,
			Beta:          physics.DefaultBeta,
			Rho:           physics.DefaultRho,
			Dt:            physics.DefaultDt,
			TailLength:    DefaultTailLength,
			StepsPerFrame: DefaultStepsPerFrame,
		},
		Camera: CameraConfig{
			Distance: DefaultDistance,
		},
		Window: WindowConfig{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
			FPS:    DefaultFPS,
		},
	}
}

// Load reads a yaml config file, starting from the defaults so partial
// files only override what they name.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
