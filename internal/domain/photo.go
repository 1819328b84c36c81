package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProgressPhoto stores metadata about a progress photo. The image itself resides in S3.
type ProgressPhoto struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	OwnerID     primitive.ObjectID  `bson:"ownerId" json:"ownerId"`
	SessionID   *primitive.ObjectID `bson:"sessionId,omitempty" json:"sessionId,omitempty"` // optional link to a workout session
	S3ObjectKey string              `bson:"s3ObjectKey" json:"-"`
	FileName    string              `bson:"fileName" json:"fileName"` // original filename provided by the client
	ContentType string              `bson:"contentType" json:"contentType"`
	Width       int                 `bson:"width" json:"width"`
	Height      int                 `bson:"height" json:"height"`
	Size        int64               `bson:"size" json:"size"` // stored size in bytes after re-encoding
	TakenAt     time.Time           `bson:"takenAt" json:"takenAt"`
	UploadedAt  time.Time           `bson:"uploadedAt" json:"uploadedAt"`
}
