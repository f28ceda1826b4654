package dto

type UploadedFile struct {
	Url  string `json:"url"`
	Name string `json:"name"`
}

// UploadFailure reports one file that could not be stored. Sibling files in
// the same batch still succeed.
type UploadFailure struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}

type UploadResponse struct {
	Files  []UploadedFile  `json:"files"`
	Failed []UploadFailure `json:"failed,omitempty"`
}
