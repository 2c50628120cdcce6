package locations

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"waymark/models"
	"waymark/mq"
	"waymark/rdx"
	"waymark/search"
	"waymark/storage"
	"waymark/utils"

	"github.com/julienschmidt/httprouter"
)

const listCacheKey = "locations"

func invalidateListCache() {
	rdx.RdxDel(listCacheKey)
}

// GetLocations returns all locations, optionally narrowed by the search
// query parameter. Only the unfiltered listing is cached.
func GetLocations(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	q := r.URL.Query().Get("search")

	if strings.TrimSpace(q) == "" {
		if cached, _ := rdx.RdxGet(listCacheKey); cached != "" {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(cached))
			return
		}
	}

	locations, err := storage.Current.ListLocations(ctx)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch locations")
		return
	}

	filtered := search.FilterLocations(locations, q)

	if strings.TrimSpace(q) == "" {
		if data, err := json.Marshal(filtered); err == nil {
			rdx.RdxSet(listCacheKey, string(data))
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, filtered)
}

func GetLocation(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("locationid")

	loc, err := storage.Current.GetLocation(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Location not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch location")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, loc)
}

func CreateLocation(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var input models.Location
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	input.LocationID = ""
	input.Name = strings.TrimSpace(input.Name)

	if input.Name == "" || input.Category == "" || input.State == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "name, category and state are required")
		return
	}

	loc, err := storage.Current.CreateLocation(ctx, input)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create location")
		return
	}

	invalidateListCache()
	go mq.Emit(context.Background(), "location-created",
		models.Index{EntityType: "location", EntityId: loc.LocationID, Method: "POST"})

	utils.RespondWithJSON(w, http.StatusCreated, loc)
}

func UpdateLocation(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("locationid")

	var upd models.LocationUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	loc, err := storage.Current.UpdateLocation(r.Context(), id, upd)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Location not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update location")
		return
	}

	invalidateListCache()
	go mq.Emit(context.Background(), "location-updated",
		models.Index{EntityType: "location", EntityId: id, Method: "PUT"})

	utils.RespondWithJSON(w, http.StatusOK, loc)
}

func DeleteLocation(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("locationid")

	if err := storage.Current.DeleteLocation(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Location not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete location")
		return
	}

	invalidateListCache()
	go mq.Emit(context.Background(), "location-deleted",
		models.Index{EntityType: "location", EntityId: id, Method: "DELETE"})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Location deleted successfully"})
}
