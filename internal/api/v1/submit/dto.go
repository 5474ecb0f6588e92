package submit

type SubmitRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Type        string   `json:"type"`
	Content     string   `json:"content"`
	Tags        []string `json:"tags"`
}

type PreviewRequest struct {
	Content string `json:"content"`
}

type PreviewResponse struct {
	HTML string `json:"html"`
}
