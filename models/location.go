package models

import (
	"encoding/json"
	"fmt"
)

type Location struct {
	LocationID   string  `json:"id" bson:"locationid"`
	Name         string  `json:"name" bson:"name"`
	Latitude     float64 `json:"latitude" bson:"latitude"`
	Longitude    float64 `json:"longitude" bson:"longitude"`
	Category     string  `json:"category" bson:"category"`
	State        string  `json:"state" bson:"state"`
	City         string  `json:"city,omitempty" bson:"city,omitempty"`
	ZipCode      string  `json:"zipCode,omitempty" bson:"zipCode,omitempty"`
	PhotoURL     string  `json:"photoUrl" bson:"photourl"`
	PhotoID      string  `json:"photoId" bson:"photoid"`
	TaggedDate   string  `json:"taggedDate" bson:"taggeddate"`
	Description  string  `json:"description,omitempty" bson:"description,omitempty"`
	CustomFields string  `json:"customFields" bson:"customfields"`
}

// CustomFieldMap decodes the serialized custom-field bag. The stored value
// must be a JSON object; anything else (array, scalar, garbage) degrades to
// an empty map instead of an error.
func (l Location) CustomFieldMap() map[string]string {
	if l.CustomFields == "" {
		return map[string]string{}
	}
	var raw map[string]any
	if err := json.Unmarshal([]byte(l.CustomFields), &raw); err != nil {
		return map[string]string{}
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		out[k] = fmt.Sprint(v)
	}
	return out
}

// LocationUpdate carries a partial edit; nil fields are left untouched.
type LocationUpdate struct {
	Name         *string  `json:"name,omitempty" bson:"name,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty" bson:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty" bson:"longitude,omitempty"`
	Category     *string  `json:"category,omitempty" bson:"category,omitempty"`
	State        *string  `json:"state,omitempty" bson:"state,omitempty"`
	City         *string  `json:"city,omitempty" bson:"city,omitempty"`
	ZipCode      *string  `json:"zipCode,omitempty" bson:"zipCode,omitempty"`
	PhotoURL     *string  `json:"photoUrl,omitempty" bson:"photourl,omitempty"`
	PhotoID      *string  `json:"photoId,omitempty" bson:"photoid,omitempty"`
	TaggedDate   *string  `json:"taggedDate,omitempty" bson:"taggeddate,omitempty"`
	Description  *string  `json:"description,omitempty" bson:"description,omitempty"`
	CustomFields *string  `json:"customFields,omitempty" bson:"customfields,omitempty"`
}

// Apply copies the non-nil fields onto loc.
func (u LocationUpdate) Apply(loc *Location) {
	if u.Name != nil {
		loc.Name = *u.Name
	}
	if u.Latitude != nil {
		loc.Latitude = *u.Latitude
	}
	if u.Longitude != nil {
		loc.Longitude = *u.Longitude
	}
	if u.Category != nil {
		loc.Category = *u.Category
	}
	if u.State != nil {
		loc.State = *u.State
	}
	if u.City != nil {
		loc.City = *u.City
	}
	if u.ZipCode != nil {
		loc.ZipCode = *u.ZipCode
	}
	if u.PhotoURL != nil {
		loc.PhotoURL = *u.PhotoURL
	}
	if u.PhotoID != nil {
		loc.PhotoID = *u.PhotoID
	}
	if u.TaggedDate != nil {
		loc.TaggedDate = *u.TaggedDate
	}
	if u.Description != nil {
		loc.Description = *u.Description
	}
	if u.CustomFields != nil {
		loc.CustomFields = *u.CustomFields
	}
}

// BulkImportResult summarizes one bulk-import run. It is never persisted.
type BulkImportResult struct {
	Success int      `json:"success"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors"`
}
