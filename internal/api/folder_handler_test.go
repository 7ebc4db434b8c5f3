package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"multi-ai/backend/internal/api"
	app_errors "multi-ai/backend/internal/errors"
	"multi-ai/backend/internal/interfaces/mocks"
	"multi-ai/backend/internal/model"
)

func setupFolderHandler(t *testing.T) (*api.FolderHandler, *mocks.MockFolderService) {
	mockSvc := mocks.NewMockFolderService(t)
	return api.NewFolderHandler(mockSvc), mockSvc
}

func TestFolderHandler_ListFolders(t *testing.T) {
	handler, mockSvc := setupFolderHandler(t)
	mockSvc.On("List", mock.Anything).Return([]*model.Folder{{ID: "folder_1", Name: "Work", Order: 1}, {ID: "folder_2", Name: "Home", Order: 2}}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/v1/folders", nil)
	rr := httptest.NewRecorder()
	handler.ListFolders(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var folders []*model.Folder
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &folders))
	require.Len(t, folders, 2)
	assert.Equal(t, "Work", folders[0].Name)
}

func TestFolderHandler_CreateFolder(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockSvc := setupFolderHandler(t)
		mockSvc.On("Create", mock.Anything, "Work").Return(&model.Folder{ID: "folder_1", Name: "Work"}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/v1/folders", strings.NewReader(`{"name":"Work"}`))
		rr := httptest.NewRecorder()
		handler.CreateFolder(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), `"id":"folder_1"`)
	})

	t.Run("Failure - Missing name", func(t *testing.T) {
		handler, _ := setupFolderHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/folders", strings.NewReader(`{"name":""}`))
		rr := httptest.NewRecorder()
		handler.CreateFolder(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Field 'Name' failed on the 'required' tag")
	})
}

func TestFolderHandler_RenameFolder(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockSvc := setupFolderHandler(t)
		mockSvc.On("Rename", mock.Anything, "folder_1", "Projects").Return(&model.Folder{ID: "folder_1", Name: "Projects"}, nil).Once()

		req := httptest.NewRequest(http.MethodPut, "/v1/folders/folder_1", strings.NewReader(`{"name":"Projects"}`))
		req = addChiURLParams(req, map[string]string{"folderID": "folder_1"})
		rr := httptest.NewRecorder()
		handler.RenameFolder(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Projects")
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		handler, mockSvc := setupFolderHandler(t)
		mockSvc.On("Rename", mock.Anything, "folder_x", "Projects").Return(nil, app_errors.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodPut, "/v1/folders/folder_x", strings.NewReader(`{"name":"Projects"}`))
		req = addChiURLParams(req, map[string]string{"folderID": "folder_x"})
		rr := httptest.NewRecorder()
		handler.RenameFolder(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestFolderHandler_DeleteFolder(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockSvc := setupFolderHandler(t)
		mockSvc.On("Delete", mock.Anything, "folder_1").Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/v1/folders/folder_1", nil)
		req = addChiURLParams(req, map[string]string{"folderID": "folder_1"})
		rr := httptest.NewRecorder()
		handler.DeleteFolder(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		handler, mockSvc := setupFolderHandler(t)
		mockSvc.On("Delete", mock.Anything, "folder_1").Return(app_errors.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodDelete, "/v1/folders/folder_1", nil)
		req = addChiURLParams(req, map[string]string{"folderID": "folder_1"})
		rr := httptest.NewRecorder()
		handler.DeleteFolder(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
