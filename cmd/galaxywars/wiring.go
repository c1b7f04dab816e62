package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/galaxy-wars/internal/audio"
	"github.com/vovakirdan/galaxy-wars/internal/event"
	"github.com/vovakirdan/galaxy-wars/internal/galaxy"
	"github.com/vovakirdan/galaxy-wars/internal/storage"
)

const (
	storeSQLite = "sqlite"
	storeGdata  = "gdata"
	storeNone   = "none"

	gdataAppName = "galaxywars"
)

// newLogger returns the logger for a command. Interactive commands pass
// io.Discard as fallback so nothing is written under the alternate screen.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	if flagLogPath == "" {
		return log.NewWithOptions(fallback, log.Options{
			ReportTimestamp: true,
			Prefix:          prefix,
		}), func() {}, nil
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}

// stores holds whatever persistence --store selected.
type stores struct {
	scores *storage.Store // score history, sqlite only
	gdata  *storage.GdataStore
}

// openStores opens the selected backend. Failures are logged and leave the
// game running without persistence.
func openStores(logger *log.Logger) (stores, error) {
	var st stores
	switch flagStore {
	case storeSQLite:
		s, err := storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
			return st, nil
		}
		st.scores = s
	case storeGdata:
		g, err := storage.OpenGdata(gdataAppName)
		if err != nil {
			logger.Warn("could not open app data", "error", err)
			return st, nil
		}
		st.gdata = g
	case storeNone:
	default:
		return st, fmt.Errorf("unknown store %q (want sqlite, gdata or none)", flagStore)
	}
	return st, nil
}

// highscore returns the highscore store for key, or nil without persistence.
func (st stores) highscore(key string) galaxy.HighscoreStore {
	switch {
	case st.scores != nil:
		return st.scores.Highscore(key)
	case st.gdata != nil:
		return st.gdata.Highscore(key)
	default:
		return nil
	}
}

func (st stores) Close() {
	if st.scores != nil {
		st.scores.Close()
	}
}

// wireGame connects a game to logging, highscore persistence and, when
// sound is not nil, sound effects.
func wireGame(g *galaxy.Game, st stores, logger *log.Logger, sound *audio.Player) {
	g.SetLogger(logger.With("game", g.ID()))
	if hs := st.highscore(g.HighscoreKey()); hs != nil {
		g.SetHighscoreStore(hs)
	}
	g.Events().SubscribeAll(eventTrace{logger: logger})
	if sound != nil {
		sound.Subscribe(g.Events())
	}
}

// eventTrace writes every gameplay event to the debug log.
type eventTrace struct {
	logger *log.Logger
}

func (t eventTrace) OnEvent(e event.Event) {
	t.logger.Debug("event", "type", e.Type, "value", e.Value)
}

// startAudio opens the sound player shared by every game of the process.
// It returns nil when muted or when no audio device is available.
func startAudio(logger *log.Logger, mute bool) *audio.Player {
	if mute {
		return nil
	}
	player := audio.NewPlayer(audio.DefaultConfig())
	player.SetVolume(flagVolume)
	if err := player.Start(); err != nil {
		logger.Warn("sound disabled", "error", err)
		return nil
	}
	return player
}
