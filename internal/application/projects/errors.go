package projects

import "errors"

var ErrSourceNotConfigured = errors.New("project source not configured")
