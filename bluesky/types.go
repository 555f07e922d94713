package bluesky

// FeedResponse represents the root structure of an app.bsky.feed.getFeed response.
type FeedResponse struct {
	Cursor string      `json:"cursor"`
	Feed   []FeedEntry `json:"feed"`
}

// FeedEntry represents each post in the feed.
type FeedEntry struct {
	Post Post `json:"post"`
}

// Post is the subset of a hydrated post the analyzer needs.
type Post struct {
	Author    Author  `json:"author"`
	CID       string  `json:"cid"`
	IndexedAt string  `json:"indexedAt"`
	Labels    []Label `json:"labels"`
	LikeCount int     `json:"likeCount"`
	Record    Record  `json:"record"`
	URI       string  `json:"uri"`
}

type Author struct {
	Avatar      string `json:"avatar"`
	DID         string `json:"did"`
	DisplayName string `json:"displayName"`
	Handle      string `json:"handle"`
}

type Label struct {
	Src string `json:"src"`
	URI string `json:"uri"`
	Val string `json:"val"`
}

// Record represents the content of a post.
type Record struct {
	Type      string   `json:"$type"`
	CreatedAt string   `json:"createdAt"`
	Langs     []string `json:"langs"`
	Text      string   `json:"text"`
}
