package export

import "promptshq/internal/services"

type ExportRequest struct {
	Title   string                `json:"title"`
	Content string                `json:"content"`
	Format  services.ExportFormat `json:"format"`
}

type ClipboardRequest struct {
	Content string `json:"content"`
}
