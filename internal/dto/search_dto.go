package dto

type SearchResultItem struct {
	Id      string `json:"id"`
	Type    string `json:"type"` // case | paper | image
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Source  string `json:"source"`
}

type SearchResponse struct {
	Results []SearchResultItem `json:"results"`
}
