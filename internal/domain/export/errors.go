package export

import "errors"

// Sentinel kinds for export errors.
var (
	ErrExportFailed = errors.New("export failed")
)
