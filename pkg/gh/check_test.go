//go:build unit

package gh

import (
	"context"
	"errors"
	"testing"

	"github.com/lerenn/issue-triage/pkg/gh/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCheck_OK(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockGH := mocks.NewMockGH(ctrl)

	mockGH.EXPECT().Version(gomock.Any()).Return("gh version 2.45.0", nil)
	mockGH.EXPECT().AuthStatus(gomock.Any()).Return(nil)

	assert.NoError(t, Check(context.Background(), mockGH))
}

func TestCheck_NotInstalled(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockGH := mocks.NewMockGH(ctrl)

	mockGH.EXPECT().Version(gomock.Any()).Return("", errors.New("boom"))

	assert.ErrorIs(t, Check(context.Background(), mockGH), ErrGHNotInstalled)
}

func TestCheck_NotAuthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockGH := mocks.NewMockGH(ctrl)

	mockGH.EXPECT().Version(gomock.Any()).Return("gh version 2.45.0", nil)
	mockGH.EXPECT().AuthStatus(gomock.Any()).Return(ErrCommandFailed)

	err := Check(context.Background(), mockGH)
	assert.ErrorIs(t, err, ErrGHNotAuthenticated)
	assert.ErrorIs(t, err, ErrCommandFailed)
}
