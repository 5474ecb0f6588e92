package services

import (
	"fmt"
	"strings"

	"promptshq/internal/models"
)

const qualityCriteriaSection = "## Quality Criteria\nEnsure your response meets these standards:\n" +
	"- ✅ Accuracy and reliability\n" +
	"- ✅ Clarity and readability\n" +
	"- ✅ Practical applicability\n" +
	"- ✅ Comprehensive coverage\n\n"

// enhancementSection returns the markdown section appended for one option.
func enhancementSection(option models.EnhancementOption, model string) string {
	switch option {
	case models.EnhancementClarity:
		return "## Clarity Requirements\nKeep the request unambiguous:\n" +
			"- Restate the task in one sentence before answering\n" +
			"- Define any domain-specific terms you rely on\n" +
			"- Prefer concrete, measurable statements over vague ones\n\n"
	case models.EnhancementContext:
		return fmt.Sprintf("## Context\nThis prompt is designed for %s to provide comprehensive and accurate responses. Consider the following background:\n", model) +
			"- Target audience: Technical professionals\n" +
			"- Expected output quality: High precision and detail\n" +
			"- Use case: Professional workflow optimization\n\n"
	case models.EnhancementExamples:
		return "## Examples\nHere are some example scenarios to guide your response:\n\n" +
			"**Example 1:**\n- Input: [Sample input]\n- Expected output: [Sample output]\n- Rationale: [Explanation]\n\n" +
			"**Example 2:**\n- Input: [Alternative input]\n- Expected output: [Alternative output]\n- Rationale: [Explanation]\n\n"
	case models.EnhancementStructure:
		return "## Instructions\nPlease follow these structured guidelines:\n\n" +
			"### 1. Analysis Phase\n- Review the provided information thoroughly\n- Identify key requirements and constraints\n- Consider potential edge cases\n\n" +
			"### 2. Response Structure\n- Provide a clear, organized response\n- Use headings and bullet points for clarity\n- Include relevant examples where appropriate\n\n"
	case models.EnhancementConstraints:
		return "## Constraints and Guidelines\n" +
			"- Response length: Aim for comprehensive yet concise answers\n" +
			"- Technical accuracy: Ensure all technical details are correct\n" +
			"- Clarity: Use clear, professional language\n" +
			"- Actionability: Provide practical, implementable advice\n\n"
	case models.EnhancementOutputFormat:
		return "## Expected Output Format\nPlease structure your response as follows:\n\n" +
			"1. **Summary** (2-3 sentences)\n" +
			"2. **Detailed Analysis** (organized sections)\n" +
			"3. **Recommendations** (actionable items)\n" +
			"4. **Next Steps** (if applicable)\n\n"
	}
	return ""
}

// EnhancePrompt wraps a raw prompt in the enhancement template. Sections
// follow models.EnhancementOptions order whatever order options come in.
func EnhancePrompt(raw, model string, options []models.EnhancementOption) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", invalid("prompt", "Please enter a prompt to enhance.")
	}
	if strings.TrimSpace(model) == "" {
		return "", invalid("model", "Please select an AI model.")
	}

	selected := make(map[models.EnhancementOption]bool, len(options))
	for _, o := range options {
		if !o.Valid() {
			return "", invalid("enhancements", fmt.Sprintf("Unknown enhancement option %q.", o))
		}
		selected[o] = true
	}

	var b strings.Builder
	b.WriteString("# Enhanced AI Prompt\n\n## Objective\n")
	b.WriteString(raw)
	b.WriteString("\n\n")
	for _, o := range models.EnhancementOptions {
		if selected[o] {
			b.WriteString(enhancementSection(o, model))
		}
	}
	b.WriteString(qualityCriteriaSection)
	b.WriteString("---\n\n**Original Prompt:** ")
	b.WriteString(raw)
	return b.String(), nil
}
