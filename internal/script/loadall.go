package script

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/chalklang/chalk/internal/objlog"
)

// LoadAll reads and parses every source in sources, appending each
// successfully parsed script to list in order. Unlike a fail-fast loop,
// it keeps going after a failure so one bad script in a batch doesn't hide
// errors in the rest — the same reasoning the teacher's unit loader uses
// for loading a program's full unit set — and returns every failure
// aggregated via go-multierror rather than just the first. logger may be
// nil, in which case loads are not logged.
func LoadAll(list *List, sources []Source, parse Parse, logger objlog.Logger) ([]*Script, error) {
	if logger == nil {
		logger = objlog.Discard()
	}

	var loaded []*Script
	var errs *multierror.Error

	for _, src := range sources {
		path, data, err := src.read()
		if err != nil {
			logger.Error("failed to read script source", "path", path, "error", err)
			errs = multierror.Append(errs, err)
			continue
		}

		tree, parser, err := parse(data)
		if err != nil {
			logger.Error("failed to parse script", "path", path, "error", err)
			errs = multierror.Append(errs, fmt.Errorf("parse %s: %w", path, err))
			continue
		}

		s := list.Append(&Script{
			Path:      path,
			Data:      data,
			ParseTree: tree,
			Parser:    parser,
		})
		logger.Debug("loaded script", "path", path, "order", s.Order, "size", s.Size())
		loaded = append(loaded, s)
	}

	return loaded, errs.ErrorOrNil()
}
