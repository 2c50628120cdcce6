package models

import "time"

type Media struct {
	MediaID      string    `json:"id" bson:"mediaid"`
	Filename     string    `json:"filename" bson:"filename"`
	OriginalName string    `json:"originalName" bson:"originalname"`
	URL          string    `json:"url" bson:"url"`
	MimeType     string    `json:"mimeType" bson:"mimetype"`
	Size         int64     `json:"size" bson:"size"`
	Width        int       `json:"width,omitempty" bson:"width,omitempty"`
	Height       int       `json:"height,omitempty" bson:"height,omitempty"`
	Alt          string    `json:"alt" bson:"alt"`
	Caption      string    `json:"caption" bson:"caption"`
	UploadedAt   time.Time `json:"uploadedAt" bson:"uploaded_at"`
	UploadedBy   string    `json:"uploadedBy,omitempty" bson:"uploadedby,omitempty"`
}

type MediaUpdate struct {
	Alt     *string `json:"alt,omitempty" bson:"alt,omitempty"`
	Caption *string `json:"caption,omitempty" bson:"caption,omitempty"`
}

func (u MediaUpdate) Apply(m *Media) {
	if u.Alt != nil {
		m.Alt = *u.Alt
	}
	if u.Caption != nil {
		m.Caption = *u.Caption
	}
}
