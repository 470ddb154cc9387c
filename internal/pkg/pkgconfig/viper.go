package pkgconfig

import (
	"errors"
	"path"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Viper is a Config implementation backed by github.com/spf13/viper.
type Viper struct {
	v      *viper.Viper
	loaded bool

	mu       sync.Mutex
	watchers []func()
}

// NewViper loads configuration from the given file path and returns a Viper-backed Config.
//
// The config file type is inferred by Viper from the filename extension. A
// missing file is not an error: defaults and environment variables still
// apply. Environment variables override file values, with "." in a key
// replaced by "_" (log.level is read from LOG_LEVEL).
func NewViper(pathFile string, defaults map[string]any) (*Viper, error) {
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	filename := path.Base(pathFile)
	filePath := path.Dir(pathFile)

	configName := path.Base(filename[:len(filename)-len(path.Ext(filename))])

	v.AddConfigPath(filePath)
	v.SetConfigName(configName)

	vc := &Viper{v: v}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		return vc, nil
	}

	vc.loaded = true
	v.OnConfigChange(func(fsnotify.Event) {
		vc.notify()
	})
	v.WatchConfig()

	return vc, nil
}

// Loaded reports whether a config file was read.
func (vc *Viper) Loaded() bool {
	return vc.loaded
}

// File returns the path of the config file in use, if any.
func (vc *Viper) File() string {
	return vc.v.ConfigFileUsed()
}

// GetInt returns the value for key as int64.
func (vc *Viper) GetInt(key string) int64 {
	return vc.v.GetInt64(key)
}

// GetBool returns the value for key as bool.
func (vc *Viper) GetBool(key string) bool {
	return vc.v.GetBool(key)
}

// GetFloat returns the value for key as float64.
func (vc *Viper) GetFloat(key string) float64 {
	return vc.v.GetFloat64(key)
}

// GetString returns the value for key as string.
func (vc *Viper) GetString(key string) string {
	return vc.v.GetString(key)
}

// GetArray returns the value for key split by commas. Empty items are dropped.
func (vc *Viper) GetArray(key string) []string {
	parts := strings.Split(vc.v.GetString(key), ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// OnChange registers fn to run after the config file changes on disk.
// It is never called when no file was loaded.
func (vc *Viper) OnChange(fn func()) {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	vc.watchers = append(vc.watchers, fn)
}

func (vc *Viper) notify() {
	vc.mu.Lock()
	watchers := append([]func(){}, vc.watchers...)
	vc.mu.Unlock()

	for _, fn := range watchers {
		fn()
	}
}

// Close implements io.Closer for interface compatibility.
func (vc *Viper) Close() error {
	// Viper's file watcher has no stop hook; this is just for interface completeness.
	return nil
}
