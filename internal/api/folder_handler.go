package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"multi-ai/backend/internal/interfaces"
)

// FolderRequest is the DTO for creating or renaming a folder.
type FolderRequest struct {
	Name string `json:"name" validate:"required,max=100" example:"Work"`
}

type FolderHandler struct {
	service interfaces.FolderService
}

func NewFolderHandler(svc interfaces.FolderService) *FolderHandler {
	return &FolderHandler{service: svc}
}

// ListFolders godoc
// @Summary      List folders
// @Description  Folders in display order.
// @Tags         Folders
// @Produce      json
// @Success      200  {array}   model.Folder
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/folders [get]
func (h *FolderHandler) ListFolders(w http.ResponseWriter, r *http.Request) {
	folders, err := h.service.List(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, folders)
}

// CreateFolder godoc
// @Summary      Create a folder
// @Tags         Folders
// @Accept       json
// @Produce      json
// @Param        request  body  FolderRequest  true  "Folder name"
// @Success      201  {object}  model.Folder
// @Failure      400  {object}  ErrorResponse
// @Router       /v1/folders [post]
func (h *FolderHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	var req FolderRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	folder, err := h.service.Create(r.Context(), req.Name)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, folder)
}

// RenameFolder godoc
// @Summary      Rename a folder
// @Tags         Folders
// @Accept       json
// @Produce      json
// @Param        folderID  path  string         true  "Folder ID"
// @Param        request   body  FolderRequest  true  "New name"
// @Success      200  {object}  model.Folder
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /v1/folders/{folderID} [put]
func (h *FolderHandler) RenameFolder(w http.ResponseWriter, r *http.Request) {
	var req FolderRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	folder, err := h.service.Rename(r.Context(), chi.URLParam(r, "folderID"), req.Name)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, folder)
}

// DeleteFolder godoc
// @Summary      Delete a folder
// @Description  Conversations filed in the folder move back to the general list.
// @Tags         Folders
// @Param        folderID  path  string  true  "Folder ID"
// @Success      204
// @Failure      404  {object}  ErrorResponse
// @Router       /v1/folders/{folderID} [delete]
func (h *FolderHandler) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "folderID")); err != nil {
		respondWithError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
