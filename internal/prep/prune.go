package prep

import (
	"log/slog"

	"github.com/go-gota/gota/dataframe"
)

// PruneColumns returns df without the columns named in dropIfPresent.
// Both sides are canonicalized before matching; names that do not exist
// are silently ignored. Survivor column order is preserved. The columns
// actually dropped are logged when there are any.
func PruneColumns(df dataframe.DataFrame, dropIfPresent []string, log *slog.Logger) dataframe.DataFrame {
	drops := make(map[string]bool, len(dropIfPresent))
	for _, name := range dropIfPresent {
		drops[Canonical(name)] = true
	}

	var keep, dropped []string
	for _, name := range df.Names() {
		if drops[Canonical(name)] {
			dropped = append(dropped, name)
		} else {
			keep = append(keep, name)
		}
	}

	if len(dropped) == 0 {
		return df
	}

	log.Info("dropping columns", "columns", dropped)
	return df.Select(keep)
}
