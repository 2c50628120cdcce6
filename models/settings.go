package models

import "time"

type Setting struct {
	Key       string    `json:"key" bson:"key"`
	Value     string    `json:"value" bson:"value"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
	UpdatedBy string    `json:"updatedBy,omitempty" bson:"updatedby,omitempty"`
}
