package assistant

import "hackmate/llmclient"

// ToolName enumerates the closed tool catalog. Dispatch switches over these
// constants rather than open-ended strings.
type ToolName string

const (
	ToolCreateProject    ToolName = "create_project"
	ToolDeployApp        ToolName = "deploy_app"
	ToolGetCodeSnippet   ToolName = "get_code_snippet"
	ToolGetHackathonInfo ToolName = "get_hackathon_info"
	ToolTroubleshoot     ToolName = "troubleshoot"
)

// Catalog returns the fixed tool declarations offered to the model on every
// auto-mode request.
func Catalog() []llmclient.Tool {
	return []llmclient.Tool{
		{
			Type: "function",
			Function: llmclient.ToolFunction{
				Name:        string(ToolCreateProject),
				Description: "Create a starter project with boilerplate code",
				Parameters: llmclient.Schema{
					Type: "object",
					Properties: map[string]llmclient.Property{
						"type": {
							Type:        "string",
							Description: "Project type (fastapi, react, express, flask, etc)",
						},
					},
					Required: []string{"type"},
				},
			},
		},
		{
			Type: "function",
			Function: llmclient.ToolFunction{
				Name:        string(ToolDeployApp),
				Description: "Deploy an application to the cloud",
				Parameters: llmclient.Schema{
					Type: "object",
					Properties: map[string]llmclient.Property{
						"name": {Type: "string", Description: "Application name"},
					},
					Required: []string{"name"},
				},
			},
		},
		{
			Type: "function",
			Function: llmclient.ToolFunction{
				Name: string(ToolGetCodeSnippet),
				Description: "Get a pre-defined code snippet or template by keyword or technology. " +
					"Use this for code examples, starter templates, and boilerplate code.",
				Parameters: llmclient.Schema{
					Type: "object",
					Properties: map[string]llmclient.Property{
						"query": {
							Type:        "string",
							Description: "Technology or keyword to search for (e.g., 'fastapi', 'react', 'express', 'jwt', 'mongodb', 'docker', 'websocket')",
						},
						"language": {
							Type:        "string",
							Description: "Optional language or framework filter (e.g., 'python', 'javascript', 'typescript')",
						},
					},
					Required: []string{"query"},
				},
			},
		},
		{
			Type: "function",
			Function: llmclient.ToolFunction{
				Name:        string(ToolGetHackathonInfo),
				Description: "Get hackathon information including rules, timeline, APIs, judging criteria, and prizes",
				Parameters: llmclient.Schema{
					Type: "object",
					Properties: map[string]llmclient.Property{
						"category": {
							Type:        "string",
							Enum:        []string{"rules", "timeline", "apis", "judging", "prizes", "contacts", "all"},
							Description: "Category of information to retrieve",
						},
					},
					Required: []string{"category"},
				},
			},
		},
		{
			Type: "function",
			Function: llmclient.ToolFunction{
				Name: string(ToolTroubleshoot),
				Description: "Find solutions to common development errors and issues. " +
					"Use this when user describes an error or problem.",
				Parameters: llmclient.Schema{
					Type: "object",
					Properties: map[string]llmclient.Property{
						"error_description": {
							Type:        "string",
							Description: "Description of the error or keywords from error message (e.g., 'cors', 'module not found', 'port in use', '401')",
						},
					},
					Required: []string{"error_description"},
				},
			},
		},
	}
}
