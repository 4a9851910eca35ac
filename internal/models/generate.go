package models

// UploadedFile is the photo received from the client. It lives for the
// duration of a single generate request.
type UploadedFile struct {
	Data        []byte
	ContentType string
	Filename    string
}

// GenerationRequest is the payload sent to the provider. One value is built
// per generate call and never modified afterwards.
type GenerationRequest struct {
	Prompt         string
	NegativePrompt string
	Image          UploadedFile
}

// GenerationResult is the body of a successful generate response. Exactly one
// of the image fields is set.
type GenerationResult struct {
	ImageURL     string `json:"imageUrl,omitempty" example:"https://images.unsplash.com/photo.jpg"`
	ImageDataURL string `json:"imageDataUrl,omitempty" example:"data:image/png;base64,iVBORw0KGgo..."`
	ImageBase64  string `json:"image_base64,omitempty" example:"iVBORw0KGgo..."`

	// Fallback is set when no provider is configured and a placeholder is returned.
	Fallback bool `json:"fallback,omitempty"`
}

type ErrorResponse struct {
	Message string `json:"message" example:"请上传一张照片。"`
}
