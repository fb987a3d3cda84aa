// package models defines the data model for the lectern dashboard client.
//
// Entities mirror the REST API's wire format: ids are serialized as "_id"
// and playlists embed their videos.
package models

// Teacher represents an authenticated teacher account.
//
// Held exclusively by the session store while authenticated; nil when
// logged out.
type Teacher struct {
	ID              string     `json:"_id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	ProfilePicture  string     `json:"profilePicture,omitempty"`
	Qualification   string     `json:"qualification,omitempty"`
	Experience      string     `json:"experience,omitempty"`
	Subject         string     `json:"subject,omitempty"`
	GoogleAccount   string     `json:"googleAccount,omitempty"`
	GithubAccount   string     `json:"githubAccount,omitempty"`
	LinkedinAccount string     `json:"linkedinAccount,omitempty"`
	Playlists       []Playlist `json:"playlists,omitempty"`
}

// Playlist represents a course playlist owned by a teacher.
type Playlist struct {
	ID          string  `json:"_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	CoverImage  string  `json:"coverImage,omitempty"`
	Videos      []Video `json:"videos,omitempty"`
}

// Video represents a single lecture video. The playlist association is
// passed on upload, not stored on the entity.
type Video struct {
	ID           string `json:"_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	VideoURL     string `json:"videoUrl,omitempty"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
}
