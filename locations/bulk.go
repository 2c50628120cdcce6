package locations

import (
	"context"
	"encoding/json"
	"net/http"

	"waymark/importer"
	"waymark/models"
	"waymark/mq"
	"waymark/storage"
	"waymark/utils"

	"github.com/julienschmidt/httprouter"
)

type bulkUploadRequest struct {
	Content *string `json:"content"`
}

// BulkUpload ingests a comma-separated text payload, one location per
// line, and creates a location for every well-formed line. Malformed
// lines are reported per line and never abort the rest of the batch.
func BulkUpload(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var req bulkUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Content == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "content is required and must be a string")
		return
	}

	categories, err := storage.Current.ListCategories(ctx)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}
	vocab := importer.NewVocabulary(categories)

	result := importer.ParseBulkImport(*req.Content, vocab, func(loc models.Location) error {
		_, err := storage.Current.CreateLocation(ctx, loc)
		return err
	})

	if result.Success > 0 {
		invalidateListCache()
		go mq.Emit(context.Background(), "locations-imported",
			models.Index{EntityType: "location", Method: "POST"})
	}

	utils.RespondWithJSON(w, http.StatusOK, result)
}
