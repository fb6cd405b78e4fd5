// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Thread-safe configuration store with validated updates and reload propagation.

package control

import (
	"fmt"
	"sync"

	"github.com/momentics/hioload-alloc/api"
)

// Known configuration keys.
const (
	// KeyTracingHistory is the number of failure events a Tracer keeps (int >= 0).
	KeyTracingHistory = "tracing.history"
	// KeyTracingLogFailures enables a debug log line per failed allocation (bool).
	KeyTracingLogFailures = "tracing.log_failures"
)

// Defaults for the known keys.
const (
	DefaultTracingHistory     = 64
	DefaultTracingLogFailures = false
)

// ConfigStore is a dynamic key/value map with atomic snapshot and listener support.
type ConfigStore struct {
	mu        sync.RWMutex
	config    map[string]any
	listeners []func()
}

// NewConfigStore initializes a new config store with empty data.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{
		config:    make(map[string]any),
		listeners: make([]func(), 0),
	}
}

// GetSnapshot returns a copy of all config values.
func (cs *ConfigStore) GetSnapshot() map[string]any {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	out := make(map[string]any, len(cs.config))
	for k, v := range cs.config {
		out[k] = v
	}
	return out
}

// SetConfig validates and merges new values, then runs reload listeners.
// Nothing is applied if any known key has an invalid value.
func (cs *ConfigStore) SetConfig(newCfg map[string]any) error {
	for k, v := range newCfg {
		if err := validate(k, v); err != nil {
			return err
		}
	}
	cs.mu.Lock()
	for k, v := range newCfg {
		cs.config[k] = v
	}
	listeners := append([]func(){}, cs.listeners...)
	cs.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
	return nil
}

// OnReload registers a listener called synchronously after each SetConfig.
func (cs *ConfigStore) OnReload(fn func()) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.listeners = append(cs.listeners, fn)
}

// Int returns the int value of key, or def when unset.
func (cs *ConfigStore) Int(key string, def int) int {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	if v, ok := cs.config[key].(int); ok {
		return v
	}
	return def
}

// Bool returns the bool value of key, or def when unset.
func (cs *ConfigStore) Bool(key string, def bool) bool {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	if v, ok := cs.config[key].(bool); ok {
		return v
	}
	return def
}

func validate(key string, v any) error {
	switch key {
	case KeyTracingHistory:
		n, ok := v.(int)
		if !ok || n < 0 {
			return api.NewError(api.ErrCodeInvalidArgument, fmt.Sprintf("%s must be a non-negative int", key)).
				WithContext("value", v)
		}
	case KeyTracingLogFailures:
		if _, ok := v.(bool); !ok {
			return api.NewError(api.ErrCodeInvalidArgument, fmt.Sprintf("%s must be a bool", key)).
				WithContext("value", v)
		}
	}
	return nil
}
