package wikipedia

// summaryResponse is the subset of the REST page summary payload we read.
type summaryResponse struct {
	Title         string     `json:"title"`
	Extract       string     `json:"extract"`
	Thumbnail     *imageInfo `json:"thumbnail"`
	OriginalImage *imageInfo `json:"originalimage"`
}

type imageInfo struct {
	Source string `json:"source"`
}

// searchResponse is the subset of the action=query&list=search payload we read.
type searchResponse struct {
	Query *struct {
		Search []struct {
			Title string `json:"title"`
		} `json:"search"`
	} `json:"query"`
}
