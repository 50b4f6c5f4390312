// Package gemini implements the completion gateway over the Google
// Generative AI SDK.
package gemini

import (
	"context"
	"strings"

	"cloud-architect/api/internal/gen"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Advisor instruction sent with every request. The submitted project
// description is appended as the user content.
const systemInstruction = `You are an expert Google Cloud Architect. Analyze the software project description provided by the user and provide a comprehensive Google Cloud architecture recommendation.

Please provide:
1. Recommended Google Cloud services and their specific configurations
2. Architecture diagram description or component relationships
3. Scalability considerations and best practices
4. Cost optimization suggestions
5. Security recommendations
6. Deployment strategy

Focus on practical, actionable recommendations that follow Google Cloud best practices. Structure your response clearly with headings and bullet points for easy reading.`

type Gateway struct {
	APIKey string
	Model  string
}

func New(apiKey, model string) *Gateway {
	return &Gateway{
		APIKey: strings.TrimSpace(apiKey),
		Model:  strings.TrimSpace(model),
	}
}

func (g *Gateway) Name() string { return "gemini" }

// Generate performs the single upstream call for a validated description.
// Every failure comes back as a categorized *gen.Error.
func (g *Gateway) Generate(ctx context.Context, description string) (string, error) {
	cl, err := genai.NewClient(ctx, option.WithAPIKey(g.APIKey))
	if err != nil {
		return "", gen.Categorize(err)
	}
	defer cl.Close()

	m := cl.GenerativeModel(g.Model)
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}

	resp, err := m.GenerateContent(ctx, genai.Text("Project Description: "+description))
	if err != nil {
		return "", gen.Categorize(err)
	}
	txt := firstText(resp)
	if strings.TrimSpace(txt) == "" {
		return "", gen.Unavailable()
	}
	return txt, nil
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}
