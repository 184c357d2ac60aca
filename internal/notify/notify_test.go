package notify_test

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/projectfu-discord/internal/notify"
	mocknotify "github.com/KirkDiggler/projectfu-discord/internal/notify/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestFromContext_FallsBackToLog(t *testing.T) {
	n := notify.FromContext(context.Background())
	assert.IsType(t, notify.LogNotifier{}, n)
	assert.NoError(t, n.Notify(context.Background(), notify.LevelInfo, "FU.Test"))
}

func TestHelpers_UseContextNotifier(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockNotifier := mocknotify.NewMockNotifier(ctrl)
	ctx := notify.WithNotifier(context.Background(), mockNotifier)

	mockNotifier.EXPECT().Notify(gomock.Any(), notify.LevelInfo, "FU.Info").Return(nil)
	mockNotifier.EXPECT().Notify(gomock.Any(), notify.LevelWarning, "FU.Warn").Return(nil)
	mockNotifier.EXPECT().Notify(gomock.Any(), notify.LevelError, "FU.Error").Return(errors.New("closed"))

	notify.Info(ctx, "FU.Info")
	notify.Warn(ctx, "FU.Warn")
	assert.NotPanics(t, func() { notify.Error(ctx, "FU.Error") })
}
