package tui

import (
	"github.com/MKhiriev/go-posts-client/models"
)

// initDoneMsg is sent once the saved base URL was looked up and, when one
// exists, the first list finished.
type initDoneMsg struct {
	cfg models.ClientConfig
	ok  bool
}

// actionDoneMsg is sent when a controller operation returned. The model
// re-reads the controller snapshot on receipt.
type actionDoneMsg struct{}

type copiedMsg struct {
	err error
}
