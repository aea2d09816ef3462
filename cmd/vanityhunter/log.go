package main

import (
	"fmt"
	"io"

	"github.com/btcsuite/btclog/v2"

	"github.com/Amr-9/VanityHunter/pkg/generator/search"
)

// setupLogging routes the library subsystem loggers to w at the given
// level ("trace" through "critical", or "off").
func setupLogging(w io.Writer, level string) error {
	lvl, ok := btclog.LevelFromString(level)
	if !ok {
		return fmt.Errorf("unknown log level %q", level)
	}

	handler := btclog.NewDefaultHandler(w)

	logger := btclog.NewSLogger(handler.SubSystem(search.Subsystem))
	logger.SetLevel(lvl)
	search.UseLogger(logger)

	return nil
}
