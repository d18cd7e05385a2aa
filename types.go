package main

// Post represents one archived post: its title and the flattened
// text content of its body. Posts are compared by full structural
// equality; two posts with the same title and content are the same
// post.
type Post struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// wpPost mirrors the fields we read from the WordPress REST API
// posts payload.
type wpPost struct {
	Title struct {
		Rendered string `json:"rendered"`
	} `json:"title"`
	Content struct {
		Rendered string `json:"rendered"`
	} `json:"content"`
}
