package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/founder-directory/internal/adapter"
	"github.com/MKhiriev/founder-directory/internal/logger"
	"github.com/MKhiriev/founder-directory/internal/mock"
	"github.com/MKhiriev/founder-directory/internal/store"
	"github.com/MKhiriev/founder-directory/models"
)

func newTestPhotoSvc(t *testing.T, ctrl *gomock.Controller) (ClientPhotoService, *mock.MockPhotoStorage, *mock.MockServerAdapter) {
	t.Helper()
	photos := mock.NewMockPhotoStorage(ctrl)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	return NewClientPhotoService(photos, serverAdapter, logger.Nop()), photos, serverAdapter
}

var (
	founderKey = models.PhotoKey{Role: models.RoleFounder, ID: "77"}
	spouseKey  = models.PhotoKey{Role: models.RoleSpouse, ID: "77"}
)

func TestClientPhotoService_UploadPhotos_MissingPhotoIsSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, photos, serverAdapter := newTestPhotoSvc(t, ctrl)

	photos.EXPECT().LoadPhoto(gomock.Any(), founderKey).Return([]byte("jpeg"), nil)
	photos.EXPECT().LoadPhoto(gomock.Any(), spouseKey).Return(nil, fmt.Errorf("%w: %s", store.ErrPhotoNotFound, spouseKey))
	serverAdapter.EXPECT().UploadPhoto(gomock.Any(), testToken, founderKey, []byte("jpeg")).Return(nil)

	require.NoError(t, svc.UploadPhotos(context.Background(), testToken, "77"))
}

func TestClientPhotoService_UploadPhotos_EmptyPhotoSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, photos, _ := newTestPhotoSvc(t, ctrl)

	photos.EXPECT().LoadPhoto(gomock.Any(), founderKey).Return([]byte{}, nil)
	photos.EXPECT().LoadPhoto(gomock.Any(), spouseKey).Return(nil, store.ErrPhotoNotFound)

	require.NoError(t, svc.UploadPhotos(context.Background(), testToken, "77"))
}

func TestClientPhotoService_UploadPhotos_FailureIsReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, photos, serverAdapter := newTestPhotoSvc(t, ctrl)

	photos.EXPECT().LoadPhoto(gomock.Any(), founderKey).Return([]byte("a"), nil)
	photos.EXPECT().LoadPhoto(gomock.Any(), spouseKey).Return([]byte("b"), nil)
	serverAdapter.EXPECT().UploadPhoto(gomock.Any(), testToken, founderKey, []byte("a")).Return(adapter.ErrRejected)
	serverAdapter.EXPECT().UploadPhoto(gomock.Any(), testToken, spouseKey, []byte("b")).Return(nil)

	err := svc.UploadPhotos(context.Background(), testToken, "77")
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrRejected)
	assert.Equal(t, 1, countErrors(err))
}

func TestClientPhotoService_UploadPhotos_LoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, photos, _ := newTestPhotoSvc(t, ctrl)

	photos.EXPECT().LoadPhoto(gomock.Any(), founderKey).Return(nil, errors.New("permission denied"))
	photos.EXPECT().LoadPhoto(gomock.Any(), spouseKey).Return(nil, store.ErrPhotoNotFound)

	err := svc.UploadPhotos(context.Background(), testToken, "77")
	assert.Error(t, err)
}

func TestClientPhotoService_DownloadPhotos_NoPhotoIsSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, photos, serverAdapter := newTestPhotoSvc(t, ctrl)

	serverAdapter.EXPECT().DownloadPhoto(gomock.Any(), testToken, founderKey).Return([]byte("jpeg"), nil)
	serverAdapter.EXPECT().DownloadPhoto(gomock.Any(), testToken, spouseKey).Return(nil, adapter.ErrNoPhoto)
	photos.EXPECT().SavePhoto(gomock.Any(), founderKey, []byte("jpeg")).Return(nil)

	require.NoError(t, svc.DownloadPhotos(context.Background(), testToken, "77"))
}

func TestClientPhotoService_DownloadPhotos_FailuresJoined(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, photos, serverAdapter := newTestPhotoSvc(t, ctrl)

	serverAdapter.EXPECT().DownloadPhoto(gomock.Any(), testToken, founderKey).Return(nil, adapter.ErrBadGateway)
	serverAdapter.EXPECT().DownloadPhoto(gomock.Any(), testToken, spouseKey).Return([]byte("jpeg"), nil)
	photos.EXPECT().SavePhoto(gomock.Any(), spouseKey, []byte("jpeg")).Return(errors.New("disk full"))

	err := svc.DownloadPhotos(context.Background(), testToken, "77")
	assert.ErrorIs(t, err, adapter.ErrBadGateway)
	assert.Equal(t, 2, countErrors(err))
}

func TestClientPhotoService_MovePhotos(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, photos, _ := newTestPhotoSvc(t, ctrl)

	photos.EXPECT().RenamePhotos(gomock.Any(), "new-1", "77").Return(nil)
	require.NoError(t, svc.MovePhotos(context.Background(), "new-1", "77"))

	// same id: nothing to move
	require.NoError(t, svc.MovePhotos(context.Background(), "77", "77"))
}

func TestClientPhotoService_DeletePhotos(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, photos, _ := newTestPhotoSvc(t, ctrl)

	photos.EXPECT().DeletePhotos(gomock.Any(), "77").Return(nil)
	require.NoError(t, svc.DeletePhotos(context.Background(), "77"))
}

func TestCountErrors(t *testing.T) {
	assert.Equal(t, 0, countErrors(nil))
	assert.Equal(t, 1, countErrors(errors.New("one")))
	assert.Equal(t, 3, countErrors(errors.Join(errors.New("a"), errors.New("b"), errors.New("c"))))
}
