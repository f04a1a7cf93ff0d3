package drift

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Theme colors selectable via DRIFT_THEME.
var themes = map[string]Color{
	"white":  ColorWhite,
	"green":  {0.25, 1, 0.45, 1},
	"amber":  {1, 0.75, 0, 1},
	"cyan":   {0, 1, 1, 1},
	"blue":   {0.35, 0.6, 1, 1},
	"purple": {0.65, 0.4, 1, 1},
}

// Config holds the page's tunable settings, loaded from the environment with
// optional .env support.
type Config struct {
	// WindowWidth and WindowHeight are the initial window size in pixels.
	WindowWidth  int
	WindowHeight int
	// PoolSize is the starfield pool length.
	PoolSize int
	// RainInterval is the glyph rain step interval in seconds.
	RainInterval float64
	// AudioEnabled controls the notification chime.
	AudioEnabled bool
	// Theme is the resolved star color.
	Theme Color
}

// DefaultConfig returns the settings used when the environment is empty.
func DefaultConfig() Config {
	return Config{
		WindowWidth:  960,
		WindowHeight: 640,
		PoolSize:     DefaultPoolSize,
		RainInterval: defaultStepInterval,
		AudioEnabled: true,
		Theme:        ColorWhite,
	}
}

// LoadConfig reads settings from a .env file (if present) and the process
// environment. Unset variables keep their defaults; set variables are
// validated and rejected with an error when out of range.
func LoadConfig() (Config, error) {
	// A missing .env file is fine; the environment alone is enough.
	_ = godotenv.Load()

	cfg := DefaultConfig()

	var err error
	if cfg.WindowWidth, err = envInt("DRIFT_WINDOW_WIDTH", cfg.WindowWidth, 320, 7680); err != nil {
		return Config{}, err
	}
	if cfg.WindowHeight, err = envInt("DRIFT_WINDOW_HEIGHT", cfg.WindowHeight, 240, 4320); err != nil {
		return Config{}, err
	}
	if cfg.PoolSize, err = envInt("DRIFT_POOL_SIZE", cfg.PoolSize, 1, 100000); err != nil {
		return Config{}, err
	}
	if cfg.RainInterval, err = envFloat("DRIFT_RAIN_INTERVAL", cfg.RainInterval, 0.01, 1); err != nil {
		return Config{}, err
	}
	if cfg.AudioEnabled, err = envBool("DRIFT_AUDIO", cfg.AudioEnabled); err != nil {
		return Config{}, err
	}

	if name, ok := os.LookupEnv("DRIFT_THEME"); ok && name != "" {
		theme, ok := themes[strings.ToLower(name)]
		if !ok {
			return Config{}, fmt.Errorf("unknown theme %q (have: %s)", name, themeNames())
		}
		cfg.Theme = theme
	}

	return cfg, nil
}

func themeNames() string {
	names := make([]string, 0, len(themes))
	for n := range themes {
		names = append(names, n)
	}
	return strings.Join(names, ", ")
}

func envInt(key string, def, min, max int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if v < min || v > max {
		return 0, fmt.Errorf("%s out of range %d-%d (got %d)", key, min, max, v)
	}
	return v, nil
}

func envFloat(key string, def, min, max float64) (float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if v < min || v > max {
		return 0, fmt.Errorf("%s out of range %g-%g (got %g)", key, min, max, v)
	}
	return v, nil
}

func envBool(key string, def bool) (bool, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}
