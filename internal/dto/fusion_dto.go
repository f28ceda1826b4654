package dto

type AnnotationDTO struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type FusionStateResponse struct {
	SelectedImageId string          `json:"selected_image_id,omitempty"`
	Annotations     []AnnotationDTO `json:"annotations"`
	Notes           string          `json:"notes"`
}

type SelectImageRequest struct {
	AssetId string `json:"asset_id" validate:"required,uuid"`
}

type AddAnnotationRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type SetNotesRequest struct {
	Text string `json:"text"`
}
