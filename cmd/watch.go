package cmd

import (
	"fmt"

	"beenama/internal/log"
	"beenama/internal/media"
	"beenama/internal/player"
	"beenama/internal/store"
	"beenama/internal/ui/watch"
)

// watchStream runs the in-app player, resuming from the stored
// position when --continue is set and saving the final one on exit.
func watchStream(st *store.Store, item media.Summary, title string, season, episode int, stream *media.Stream) error {
	if err := requireInteractive(); err != nil {
		return err
	}
	if !player.Available() {
		return fmt.Errorf("mpv not found in PATH")
	}

	var startMillis int64
	if flagContinue && cfg.History {
		entry, err := st.Resume(item.ID, item.Type, season, episode)
		if err != nil {
			log.Warnf("loading resume point: %v", err)
		}
		if entry != nil {
			startMillis = entry.PositionMillis
			log.Debugf("resuming from %dms", startMillis)
		}
	}

	opts := watch.Options{
		Stream:      stream,
		Title:       title,
		StartMillis: startMillis,
	}
	if cfg.History {
		opts.OnResume = func(positionMillis, durationMillis int64) {
			err := st.SaveResume(media.ResumeEntry{
				MediaID:        item.ID,
				Type:           item.Type,
				Title:          item.Title,
				Season:         season,
				Episode:        episode,
				PositionMillis: positionMillis,
				DurationMillis: durationMillis,
			})
			if err != nil {
				log.Warnf("saving resume point: %v", err)
			}
		}
	}

	return watch.Run(opts)
}
