package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-posts-client/internal/logger"
	"github.com/MKhiriev/go-posts-client/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUI struct {
	err    error
	called bool
	ctxOK  bool
}

func (f *fakeUI) Run(ctx context.Context) error {
	f.called = true
	f.ctxOK = ctx != nil && ctx.Err() == nil
	return f.err
}

func TestNewApp_NilUI(t *testing.T) {
	_, err := NewApp(nil, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrNoUI)
}

func TestApp_Run(t *testing.T) {
	ui := &fakeUI{}
	app, err := NewApp(ui, &store.ClientStorages{}, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.Run())
	assert.True(t, ui.called)
	assert.True(t, ui.ctxOK)
}

func TestApp_Run_UIError(t *testing.T) {
	wantErr := errors.New("terminal gone")
	app, err := NewApp(&fakeUI{err: wantErr}, nil, logger.Nop())
	require.NoError(t, err)

	assert.ErrorIs(t, app.Run(), wantErr)
}
