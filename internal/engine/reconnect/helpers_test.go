package reconnect_test

import (
	"testing"

	"go.trai.ch/reattach/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// newQuietLogger returns a logger mock that accepts any message.
func newQuietLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	logger := mocks.NewMockLogger(gomock.NewController(t))
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()
	return logger
}
