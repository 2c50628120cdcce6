package categories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"waymark/models"
	"waymark/mq"
	"waymark/storage"
	"waymark/utils"

	"github.com/julienschmidt/httprouter"
)

func GetCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	categories, err := storage.Current.ListCategories(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, categories)
}

func GetCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("categoryid")

	cat, err := storage.Current.GetCategory(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Category not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch category")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, cat)
}

func CreateCategory(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var input models.Category
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	input.CategoryID = ""
	input.Name = strings.TrimSpace(input.Name)
	input.Slug = strings.TrimSpace(input.Slug)

	if input.Name == "" || input.Slug == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "name and slug are required")
		return
	}

	if _, err := storage.Current.GetCategoryBySlug(ctx, input.Slug); err == nil {
		utils.RespondWithError(w, http.StatusConflict, "A category with this slug already exists")
		return
	} else if !errors.Is(err, storage.ErrNotFound) {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create category")
		return
	}

	cat, err := storage.Current.CreateCategory(ctx, input)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create category")
		return
	}

	go mq.Emit(context.Background(), "category-created",
		models.Index{EntityType: "category", EntityId: cat.CategoryID, Method: "POST"})

	utils.RespondWithJSON(w, http.StatusCreated, cat)
}

func UpdateCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	id := ps.ByName("categoryid")

	var upd models.CategoryUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if upd.Slug != nil {
		existing, err := storage.Current.GetCategoryBySlug(ctx, *upd.Slug)
		if err == nil && existing.CategoryID != id {
			utils.RespondWithError(w, http.StatusConflict, "A category with this slug already exists")
			return
		}
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update category")
			return
		}
	}

	cat, err := storage.Current.UpdateCategory(ctx, id, upd)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Category not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update category")
		return
	}

	go mq.Emit(context.Background(), "category-updated",
		models.Index{EntityType: "category", EntityId: id, Method: "PUT"})

	utils.RespondWithJSON(w, http.StatusOK, cat)
}

// DeleteCategory removes a category unless any location still references
// its slug.
func DeleteCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	id := ps.ByName("categoryid")

	cat, err := storage.Current.GetCategory(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Category not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete category")
		return
	}

	locations, err := storage.Current.ListLocations(ctx)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete category")
		return
	}
	inUse := 0
	for _, loc := range locations {
		if loc.Category == cat.Slug {
			inUse++
		}
	}
	if inUse > 0 {
		utils.RespondWithError(w, http.StatusConflict,
			fmt.Sprintf("Cannot delete category. %d location(s) are using this category.", inUse))
		return
	}

	if err := storage.Current.DeleteCategory(ctx, id); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete category")
		return
	}

	go mq.Emit(context.Background(), "category-deleted",
		models.Index{EntityType: "category", EntityId: id, Method: "DELETE"})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Category deleted successfully"})
}
