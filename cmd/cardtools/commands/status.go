package commands

import (
	"io"

	"github.com/keraattin/cardtools/internal/bindb"
	"github.com/keraattin/cardtools/internal/ui"
)

// RunStatus prints the banner and the loaded BIN database size.
func RunStatus(db *bindb.Database, w io.Writer, version string) error {
	ui.ShowBanner(w, version)
	ui.ShowStatus(w, db.Count(), db.Brands())
	return nil
}
