package dto

type AssetResponse struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
	PreviewUrl  string `json:"preview_url,omitempty"`
	RemoteUrl   string `json:"remote_url,omitempty"`
}

type ListAssetsResponse struct {
	Assets []AssetResponse `json:"assets"`
}
