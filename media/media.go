package media

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"waymark/filemgr"
	"waymark/globals"
	"waymark/models"
	"waymark/mq"
	"waymark/storage"
	"waymark/utils"

	"github.com/julienschmidt/httprouter"
)

func GetMedias(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	list, err := storage.Current.ListMedia(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch media")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

func GetMedia(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("mediaid")

	m, err := storage.Current.GetMedia(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Media not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch media")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, m)
}

// AddMedia accepts a multipart upload under the "image" field, stores
// the photo on disk and records it in the media library.
func AddMedia(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Unable to parse form")
		return
	}

	files := r.MultipartForm.File["image"]
	if len(files) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "No image file uploaded")
		return
	}
	header := files[0]
	file, err := header.Open()
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Unable to read upload")
		return
	}

	saved, err := filemgr.SaveImage(file, header)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	userID, _ := ctx.Value(globals.UserIDKey).(string)

	m, err := storage.Current.CreateMedia(ctx, models.Media{
		Filename:     saved.Filename,
		OriginalName: header.Filename,
		URL:          "/uploads/" + saved.Filename,
		MimeType:     saved.MimeType,
		Size:         saved.Size,
		Width:        saved.Width,
		Height:       saved.Height,
		Alt:          r.FormValue("alt"),
		Caption:      r.FormValue("caption"),
		UploadedBy:   userID,
	})
	if err != nil {
		filemgr.RemoveImage(saved.Filename)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save media")
		return
	}

	go mq.Emit(context.Background(), "media-uploaded",
		models.Index{EntityType: "media", EntityId: m.MediaID, Method: "POST"})

	utils.RespondWithJSON(w, http.StatusCreated, m)
}

func UpdateMedia(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("mediaid")

	var upd models.MediaUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	m, err := storage.Current.UpdateMedia(r.Context(), id, upd)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Media not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update media")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, m)
}

// DeleteMedia removes the library record and the files behind it.
func DeleteMedia(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	id := ps.ByName("mediaid")

	m, err := storage.Current.GetMedia(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Media not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete media")
		return
	}

	if err := storage.Current.DeleteMedia(ctx, id); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete media")
		return
	}
	filemgr.RemoveImage(m.Filename)

	go mq.Emit(context.Background(), "media-deleted",
		models.Index{EntityType: "media", EntityId: id, Method: "DELETE"})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Media deleted successfully"})
}

// RecoverMedia scans the upload directory for files that exist on disk
// but have no library record and registers them.
func RecoverMedia(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	names, err := filemgr.ListUploads()
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to scan uploads")
		return
	}

	existing, err := storage.Current.ListMedia(ctx)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch media")
		return
	}
	known := make(map[string]bool, len(existing))
	for _, m := range existing {
		known[m.Filename] = true
	}

	userID, _ := ctx.Value(globals.UserIDKey).(string)

	recovered := 0
	for _, name := range names {
		if known[name] {
			continue
		}
		_, err := storage.Current.CreateMedia(ctx, models.Media{
			Filename:     name,
			OriginalName: name,
			URL:          "/uploads/" + name,
			MimeType:     "image/jpeg",
			UploadedBy:   userID,
		})
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to recover media")
			return
		}
		recovered++
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"recovered": recovered})
}
