package home

import "promptshq/internal/services"

type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

type HomeResponse struct {
	Stats    *services.CatalogStats `json:"stats"`
	Features []Feature              `json:"features"`
}

var features = []Feature{
	{
		Title:       "Prompt Library",
		Description: "Browse curated prompts, custom instructions and bundles for everyday development work.",
		Link:        "/library",
	},
	{
		Title:       "Prompt Enhancer",
		Description: "Turn a rough idea into a structured prompt tuned for your target model.",
		Link:        "/create-prompt",
	},
	{
		Title:       "Mermaid Diagrams",
		Description: "Start from a ready-made Mermaid template for flowcharts, sequences, schemas and more.",
		Link:        "/create-mermaid",
	},
	{
		Title:       "Share Your Work",
		Description: "Contribute your own prompts and instructions to help the developer community grow and improve.",
		Link:        "/submit",
	},
}
