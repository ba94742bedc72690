package domain

// UnknownTitle is the title reported for a video with no metadata.
const UnknownTitle = "Unknown Title"

// Record is one video's performance snapshot.
// Connectors translate the file store's positional tuples into Records.
type Record struct {
	// Views is the view count at the time of the snapshot.
	Views int64

	// Likes is the like count at the time of the snapshot.
	Likes int64

	// Comments is the comment count at the time of the snapshot.
	Comments int64

	// Timestamp is the snapshot time exactly as stored at the source.
	Timestamp string

	// VideoID is the platform identifier and the join key into VideoMetadata.
	VideoID string
}

// VideoMetadata holds display metadata for a single video.
type VideoMetadata struct {
	VideoID   string
	Title     string
	Thumbnail string
}

// EnrichedRecord is a Record joined with its VideoMetadata.
type EnrichedRecord struct {
	Views     int64  `json:"views"`
	Likes     int64  `json:"likes"`
	Comments  int64  `json:"comments"`
	Timestamp string `json:"timestamp"`
	VideoID   string `json:"videoId"`
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
}

// Enrich joins r with meta. A nil meta yields the default title and
// an empty thumbnail.
func (r Record) Enrich(meta *VideoMetadata) EnrichedRecord {
	out := EnrichedRecord{
		Views:     r.Views,
		Likes:     r.Likes,
		Comments:  r.Comments,
		Timestamp: r.Timestamp,
		VideoID:   r.VideoID,
		Title:     UnknownTitle,
	}
	if meta == nil {
		return out
	}
	if meta.Title != "" {
		out.Title = meta.Title
	}
	out.Thumbnail = meta.Thumbnail
	return out
}
