package storage

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/quasilyte/gdata/v2"
)

// gdataObject groups every Galaxy Wars value in the gdata app directory.
const gdataObject = "galaxy_wars"

// GdataStore keeps highscores in the platform's per-user app data location
// (XDG data dir on Linux, browser local storage under wasm). It is the
// lightweight alternative to the SQLite store and keeps no score history.
type GdataStore struct {
	m *gdata.Manager
}

// OpenGdata opens the app data directory for appName.
func OpenGdata(appName string) (*GdataStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open app data %s: %w", appName, err)
	}
	return &GdataStore{m: m}, nil
}

// Highscore returns the highscore stored under key.
func (g *GdataStore) Highscore(key string) *GdataHighscore {
	return &GdataHighscore{m: g.m, key: key}
}

// GdataHighscore stores one highscore as a decimal string property.
type GdataHighscore struct {
	m   *gdata.Manager
	key string
}

// LoadHighscore returns the stored highscore, or 0 if none was saved.
// Content that is not a number is reported as an error.
func (h *GdataHighscore) LoadHighscore() (int, error) {
	if !h.m.ObjectPropExists(gdataObject, h.key) {
		return 0, nil
	}
	data, err := h.m.LoadObjectProp(gdataObject, h.key)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read %s: %w", h.key, err)
	}
	v, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("storage: corrupt value for %s: %w", h.key, err)
	}
	return v, nil
}

// SaveHighscore stores score if it beats the stored highscore. A corrupt
// stored value is overwritten.
func (h *GdataHighscore) SaveHighscore(score int) error {
	if stored, err := h.LoadHighscore(); err == nil && stored >= score {
		return nil
	}
	if err := h.m.SaveObjectProp(gdataObject, h.key, []byte(strconv.Itoa(score))); err != nil {
		return fmt.Errorf("storage: cannot write %s: %w", h.key, err)
	}
	return nil
}

// Clear deletes the highscore stored under key.
func (g *GdataStore) Clear(key string) error {
	if !g.m.ObjectPropExists(gdataObject, key) {
		return nil
	}
	if err := g.m.DeleteObjectProp(gdataObject, key); err != nil {
		return fmt.Errorf("storage: cannot clear %s: %w", key, err)
	}
	return nil
}
