package config

import (
	"context"
	"os"
	"sync"
	"time"

	"applens-agent/pkg/log"
)

// ConfigWatcher polls a configuration file for changes and reloads it, so
// settings like the log level or refresh interval can change at runtime.
type ConfigWatcher struct {
	configPath string
	lastMod    time.Time
	interval   time.Duration
	onChange   func(*Config)
	stopCh     chan struct{}
	mu         sync.Mutex
	wg         sync.WaitGroup
}

// NewConfigWatcher creates a new configuration file watcher.
func NewConfigWatcher(configPath string, onChange func(*Config)) *ConfigWatcher {
	return &ConfigWatcher{
		configPath: configPath,
		interval:   5 * time.Second,
		onChange:   onChange,
		stopCh:     make(chan struct{}),
	}
}

// Start begins watching the configuration file for changes.
func (w *ConfigWatcher) Start(ctx context.Context) error {
	info, err := os.Stat(w.configPath)
	if err != nil {
		return log.Errorf("failed to stat config file", "path", w.configPath, "error", err)
	}
	w.lastMod = info.ModTime()

	w.wg.Add(1)
	go w.watchLoop(ctx)
	log.Info("Config watcher started", "path", w.configPath)
	return nil
}

// Stop stops watching the configuration file.
func (w *ConfigWatcher) Stop() {
	w.mu.Lock()
	select {
	case <-w.stopCh:
		w.mu.Unlock()
		return
	default:
		close(w.stopCh)
	}
	w.mu.Unlock()

	w.wg.Wait()
	log.Info("Config watcher stopped")
}

func (w *ConfigWatcher) watchLoop(ctx context.Context) {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.checkForChanges()
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		}
	}
}

func (w *ConfigWatcher) checkForChanges() {
	w.mu.Lock()
	defer w.mu.Unlock()

	info, err := os.Stat(w.configPath)
	if err != nil {
		log.Warn("Failed to stat config file", "path", w.configPath, "error", err)
		return
	}
	if !info.ModTime().After(w.lastMod) {
		return
	}

	log.Info("Configuration file changed, reloading", "path", w.configPath)
	newConfig, err := LoadConfig(w.configPath)
	if err != nil {
		log.Error("Failed to load new configuration", "error", err)
		return
	}
	w.lastMod = info.ModTime()

	if w.onChange != nil {
		w.onChange(newConfig)
	}
}

// SetInterval sets the interval for checking file changes.
func (w *ConfigWatcher) SetInterval(interval time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.interval = interval
}
