package models

import "time"

type Category struct {
	CategoryID   string    `json:"id" bson:"categoryid"`
	Name         string    `json:"name" bson:"name"`
	Slug         string    `json:"slug" bson:"slug"`
	Description  string    `json:"description" bson:"description"`
	Icon         string    `json:"icon" bson:"icon"`
	Color        string    `json:"color" bson:"color"`
	DisplayOrder float64   `json:"displayOrder" bson:"displayorder"`
	CreatedAt    time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updated_at"`
}

type CategoryUpdate struct {
	Name         *string  `json:"name,omitempty" bson:"name,omitempty"`
	Slug         *string  `json:"slug,omitempty" bson:"slug,omitempty"`
	Description  *string  `json:"description,omitempty" bson:"description,omitempty"`
	Icon         *string  `json:"icon,omitempty" bson:"icon,omitempty"`
	Color        *string  `json:"color,omitempty" bson:"color,omitempty"`
	DisplayOrder *float64 `json:"displayOrder,omitempty" bson:"displayorder,omitempty"`
}

func (u CategoryUpdate) Apply(cat *Category) {
	if u.Name != nil {
		cat.Name = *u.Name
	}
	if u.Slug != nil {
		cat.Slug = *u.Slug
	}
	if u.Description != nil {
		cat.Description = *u.Description
	}
	if u.Icon != nil {
		cat.Icon = *u.Icon
	}
	if u.Color != nil {
		cat.Color = *u.Color
	}
	if u.DisplayOrder != nil {
		cat.DisplayOrder = *u.DisplayOrder
	}
}
