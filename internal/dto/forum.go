package dto

type CreatePostRequest struct {
	Title   string `json:"title" validate:"required,max=512"`
	Content string `json:"content" validate:"required"`
}

type UpdatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type PostResponse struct {
	ID        string `json:"id"`
	AuthorID  string `json:"author_id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Upvotes   int    `json:"upvotes"`
	CreatedAt string `json:"created_at"`
}

type PostWithRepliesResponse struct {
	PostResponse
	Replies []ReplyResponse `json:"replies"`
}

type CreateReplyRequest struct {
	Content       string `json:"content" validate:"required"`
	ParentReplyID string `json:"parent_reply_id,omitempty"`
}

type ReplyResponse struct {
	ID            string `json:"id"`
	PostID        string `json:"post_id"`
	AuthorID      string `json:"author_id"`
	ParentReplyID string `json:"parent_reply_id,omitempty"`
	Content       string `json:"content"`
	Upvotes       int    `json:"upvotes"`
	CreatedAt     string `json:"created_at"`
}

type VoteRequest struct {
	Value int `json:"value" validate:"required,eq=1"`
}

type LeaderboardEntry struct {
	Username string `json:"username"`
	XPPoints int    `json:"xp_points"`
}

type BadgeResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	AwardedAt   string `json:"awarded_at"`
}
