package api

// Pagination is the pagination block the server attaches to every
// paged collection response.
type Pagination struct {
	Page    int  `json:"page"`
	PerPage int  `json:"per_page"`
	Total   int  `json:"total"`
	Pages   int  `json:"pages"`
	HasNext bool `json:"has_next"`
	HasPrev bool `json:"has_prev"`
}

// Student is a directory card as returned by /api/students and /api/search
type Student struct {
	UserID           int    `json:"user_id"`
	Name             string `json:"name"`
	Surname          string `json:"surname"`
	Faculty          string `json:"faculty"`
	Level            string `json:"level"`
	Hobbies          string `json:"hobbies,omitempty"`
	FavoriteSubjects string `json:"favorite_subjects,omitempty"`
	Relationship     string `json:"relationship,omitempty"`
	Sex              string `json:"sex,omitempty"`
	PhotoPath        string `json:"photo_path,omitempty"`
	PhotoThumbPath   string `json:"photo_thumb_path,omitempty"`
}

// Friend is an entry in the friends list
type Friend struct {
	UserID          int    `json:"user_id"`
	Name            string `json:"name"`
	Surname         string `json:"surname"`
	Faculty         string `json:"faculty"`
	Level           string `json:"level"`
	PhotoPath       string `json:"photo_path,omitempty"`
	PhotoThumbPath  string `json:"photo_thumb_path,omitempty"`
	FriendshipSince string `json:"friendship_since"`
}

// Sender identifies the user a notification came from
type Sender struct {
	UserID         int    `json:"user_id"`
	Name           string `json:"name"`
	Surname        string `json:"surname"`
	PhotoPath      string `json:"photo_path,omitempty"`
	PhotoThumbPath string `json:"photo_thumb_path,omitempty"`
}

// Notification types: friend_request, friend_accepted, friend_declined, voice_like
type Notification struct {
	ID        int                    `json:"id"`
	Type      string                 `json:"type"`
	Message   string                 `json:"message"`
	IsRead    bool                   `json:"is_read"`
	CreatedAt string                 `json:"created_at"`
	PostID    *int                   `json:"post_id,omitempty"`
	Sender    *Sender                `json:"sender,omitempty"`
	Data      map[string]interface{} `json:"data,omitempty"`
}

// VoiceAuthor is the author block embedded in a voice post
type VoiceAuthor struct {
	UserID         int    `json:"user_id"`
	Name           string `json:"name"`
	Surname        string `json:"surname"`
	Faculty        string `json:"faculty"`
	PhotoPath      string `json:"photo_path,omitempty"`
	PhotoThumbPath string `json:"photo_thumb_path,omitempty"`
}

// VoicePost is a post on the per-faculty student voice board
type VoicePost struct {
	ID           int          `json:"id"`
	Text         string       `json:"text"`
	LikesCount   int          `json:"likes_count"`
	UserLiked    bool         `json:"user_liked"`
	FacultyGroup string       `json:"faculty_group"`
	CreatedAt    string       `json:"created_at"`
	Author       *VoiceAuthor `json:"author,omitempty"`
}

// Profile is the current user's editable profile
type Profile struct {
	Name             string `json:"name"`
	Surname          string `json:"surname"`
	Birthday         string `json:"birthday,omitempty"`
	Level            string `json:"level"`
	Faculty          string `json:"faculty"`
	FavoriteSubjects string `json:"favorite_subjects,omitempty"`
	Professor        string `json:"professor,omitempty"`
	Relationship     string `json:"relationship,omitempty"`
	Hobbies          string `json:"hobbies,omitempty"`
	Telegram         string `json:"telegram,omitempty"`
	AboutMe          string `json:"about_me,omitempty"`
	Sex              string `json:"sex,omitempty"`
	PhotoPath        string `json:"photo_path,omitempty"`
	PhotoThumbPath   string `json:"photo_thumb_path,omitempty"`
}
