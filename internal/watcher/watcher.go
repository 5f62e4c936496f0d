// Package watcher observa o diretório do dataset e dispara a reconstrução
// do checkpoint quando o arquivo de polls muda
package watcher

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-monitor-api/internal/config"
)

// RebuildTrigger dispara uma reconstrução do checkpoint em segundo plano
type RebuildTrigger interface {
	TriggerManualSync()
}

// DatasetWatcher observa o arquivo de polls e dispara a reconstrução do
// checkpoint. Eventos em rajada (editores gravam em vários writes) são
// absorvidos por um debounce simples.
type DatasetWatcher struct {
	directory     string
	watchedFile   string
	debounce      time.Duration
	trigger       RebuildTrigger
	lastTriggered time.Time
}

func New(cfg *config.Config, trigger RebuildTrigger) *DatasetWatcher {
	return &DatasetWatcher{
		directory:   cfg.Dataset.Directory,
		watchedFile: filepath.Clean(cfg.StoreStatusPath()),
		debounce:    time.Duration(cfg.Watcher.DebounceMS) * time.Millisecond,
		trigger:     trigger,
	}
}

// Run bloqueia até o contexto ser cancelado
func (w *DatasetWatcher) Run(ctx context.Context) error {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "erro ao criar o watcher do dataset")
	}
	defer fsWatcher.Close()

	// Observa-se o diretório, não o arquivo: renames atômicos trocam o inode
	if err := fsWatcher.Add(w.directory); err != nil {
		return errors.Wrapf(err, "erro ao observar o diretório %s", w.directory)
	}

	logrus.WithFields(logrus.Fields{
		"directory": w.directory,
		"file":      w.watchedFile,
	}).Info("Watcher do dataset iniciado")

	for {
		select {
		case <-ctx.Done():
			logrus.Info("Parando watcher do dataset")
			return nil
		case event, ok := <-fsWatcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)
		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return nil
			}
			logrus.WithError(err).Error("Erro no watcher do dataset")
		}
	}
}

func (w *DatasetWatcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.watchedFile {
		return
	}

	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}

	now := time.Now()
	if now.Sub(w.lastTriggered) < w.debounce {
		return
	}
	w.lastTriggered = now

	logrus.WithField("file", event.Name).Info("Arquivo de polls modificado, disparando reconstrução do checkpoint")
	w.trigger.TriggerManualSync()
}
