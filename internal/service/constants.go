package service

const (
	// ModelPrompt is the fixed style instruction sent with every photo.
	ModelPrompt = "Transform the photo into a high-end studio portrait in the style of Apple executive headshots. " +
		"The subject is shown in a half-body composition, wearing professional yet minimalist attire, " +
		"with a natural and confident expression. Use soft directional lighting to gently highlight the facial features, " +
		"leaving subtle catchlights in the eyes. The background should be a smooth gradient in neutral tones " +
		"(light gray or off-white), with clear separation between subject and background. " +
		"Add a touch of refined film grain for texture, and keep the atmosphere calm, timeless, and sophisticated. " +
		"Composition should follow minimalist principles, with negative space and non-centered framing for a modern look. " +
		"-- no text, logos, distracting objects, clutter."

	// PlaceholderURL is returned in demo mode, when no provider URL is set.
	PlaceholderURL = "https://images.unsplash.com/photo-1536548665027-b96d34a005ae?auto=format&fit=crop&w=800&q=80"

	defaultFilename    = "upload.jpg"
	defaultContentType = "image/jpeg"
)

// multipart field names expected by the provider
const (
	fieldPrompt         = "prompt"
	fieldImage          = "image"
	fieldNegativePrompt = "negative_prompt"
)

const (
	kindDemo = "demo"

	outcomeSuccess = "success"
	outcomeFailure = "failure"
	outcomeDemo    = "fallback"
)
