package model

// Priority is the urgency level of an action item.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Provider identifies an extraction backend.
type Provider string

const (
	ProviderRegex  Provider = "regex"
	ProviderOpenAI Provider = "openai"
	ProviderOllama Provider = "ollama"
)

// Valid reports whether p is a known provider.
func (p Provider) Valid() bool {
	switch p {
	case ProviderRegex, ProviderOpenAI, ProviderOllama:
		return true
	}
	return false
}

// ActionItem is one extracted action item. Assignee and DueDate are
// pointers so an absent value serializes as JSON null rather than "".
type ActionItem struct {
	Assignee *string  `json:"assignee"`
	Task     string   `json:"task"`
	DueDate  *string  `json:"due_date"`
	Priority Priority `json:"priority"`
	Context  string   `json:"context"`
}

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
