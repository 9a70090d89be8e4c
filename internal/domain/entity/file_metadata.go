package entity

import "time"

// FileMetadata records one object uploaded to cloud storage: where it
// lives, who uploaded it, and which record it belongs to. EntityType is
// "vehicle" or "user"; EntityID links back to that record and may be
// empty while an upload is not yet attached to a listing.
type FileMetadata struct {
	ID         string `json:"id" firestore:"id"`
	URL        string `json:"url" firestore:"url"`
	ObjectName string `json:"object_name" firestore:"objectName"`

	EntityType string `json:"entity_type" firestore:"entityType"`
	EntityID   string `json:"entity_id,omitempty" firestore:"entityId"`
	UploadedBy string `json:"uploaded_by" firestore:"uploadedBy"`

	Filename string `json:"filename" firestore:"filename"`
	FileType string `json:"file_type" firestore:"fileType"`
	FileSize int64  `json:"file_size" firestore:"fileSize"`
	IsPublic bool   `json:"is_public" firestore:"isPublic"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
