package service

import (
	"fmt"
	"strings"

	"lexipro-backend/provider"
)

const assistantSystemPrompt = `You are LexiPro's legal assistant. Answer questions about law and legal procedure in plain language.
Explain the relevant concepts, point out what depends on the jurisdiction, and suggest when the user should speak to a licensed attorney.
You provide general legal information, not legal advice.`

const documentSystemPrompt = `You are an experienced legal drafter. Produce complete, professionally formatted legal documents.
Use numbered sections, defined terms and signature blocks. Mark any information you had to assume with [BRACKETS] so the user can fill it in.`

const storySystemPrompt = `You are a storyteller who explains the law through narrative. Turn the user's situation into a short, engaging story
that walks through each legal step realistically, and end with a brief "What this means for you" summary.`

const predictionSystemPrompt = `You are a litigation analyst estimating case outcomes from the facts provided.
Reply with a single JSON object and nothing else.`

// buildFillMaskPrompt asks a masked language model which party the facts favour
func buildFillMaskPrompt(req PredictRequest) string {
	return fmt.Sprintf(
		"Case type: %s. Case description: %s. Relevant laws: %s. Based on these facts, the court is most likely to rule in favor of the %s.",
		req.CaseType, req.CaseDescription, req.RelevantLaws, provider.MaskToken,
	)
}

// buildPredictionPrompt asks the generative model for the structured estimate
func buildPredictionPrompt(req PredictRequest, candidates []provider.MaskPrediction) string {
	var b strings.Builder

	b.WriteString("Analyze the following legal case and predict its outcome.\n\n")
	b.WriteString("Case Type: " + req.CaseType + "\n")
	b.WriteString("Case Description: " + req.CaseDescription + "\n")
	b.WriteString("Relevant Laws: " + req.RelevantLaws + "\n\n")

	if len(candidates) > 0 {
		b.WriteString("A language model completing \"the court is most likely to rule in favor of the ___\" suggested:\n")
		for _, c := range candidates {
			fmt.Fprintf(&b, "- %s (%.1f%%)\n", strings.TrimSpace(c.TokenStr), c.Score*100)
		}
		b.WriteString("\n")
	}

	b.WriteString(`Respond with JSON using exactly these keys:
{
  "probability": <number 0-100, chance of a favorable outcome for the client>,
  "timeline": "<expected duration>",
  "estimatedCost": "<expected cost range>",
  "riskFactors": ["<risk>", ...],
  "favorableFactors": ["<favorable factor>", ...],
  "confidence": "<low|medium|high>"
}`)

	return b.String()
}

func buildDocumentPrompt(req DocumentRequest) string {
	var b strings.Builder

	b.WriteString("Draft a " + req.DocumentType + ".\n\n")
	b.WriteString("Details:\n" + req.Details + "\n")
	if req.Parties != "" {
		b.WriteString("\nParties: " + req.Parties + "\n")
	}
	if req.Jurisdiction != "" {
		b.WriteString("\nGoverning jurisdiction: " + req.Jurisdiction + "\n")
	}

	return b.String()
}

func buildStoryPrompt(req StoryRequest) string {
	return fmt.Sprintf(
		"Tell the story of this legal situation from the perspective of the %s.\n\nSituation: %s",
		req.Perspective, req.Scenario,
	)
}
