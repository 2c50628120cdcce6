package settings

import (
	"encoding/json"
	"errors"
	"net/http"

	"waymark/globals"
	"waymark/models"
	"waymark/storage"
	"waymark/utils"

	"github.com/julienschmidt/httprouter"
)

// GetSettings returns every stored setting as a flat key/value map.
func GetSettings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	list, err := storage.Current.ListSettings(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch settings")
		return
	}

	out := make(map[string]string, len(list))
	for _, s := range list {
		out[s.Key] = s.Value
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

func GetSetting(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	key := ps.ByName("key")

	s, err := storage.Current.GetSetting(r.Context(), key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Setting not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch setting")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, s)
}

// SetSetting creates or overwrites a setting. The authenticated user is
// recorded as the last writer.
func SetSetting(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	key := ps.ByName("key")

	var body struct {
		Value *string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Value == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "value is required")
		return
	}

	userID, _ := r.Context().Value(globals.UserIDKey).(string)

	s, err := storage.Current.SetSetting(r.Context(), models.Setting{
		Key:       key,
		Value:     *body.Value,
		UpdatedBy: userID,
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save setting")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, s)
}
