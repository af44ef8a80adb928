// Package dto defines data transfer objects for API requests and responses.
package dto

// AddRuleRequest represents the request body for adding a rule to a category.
type AddRuleRequest struct {
	Pattern string `json:"pattern" binding:"required,min=1,max=255"`
	Exact   bool   `json:"exact"`
}

// RemoveRuleRequest represents the request body for removing a rule.
type RemoveRuleRequest struct {
	Pattern string `json:"pattern" binding:"required,min=1,max=255"`
	Exact   bool   `json:"exact"`
}

// AddRuleResponse represents the response for adding a rule.
type AddRuleResponse struct {
	Added         bool                  `json:"added"`
	Recategorized RecategorizedResponse `json:"recategorized"`
}

// RemoveRuleResponse represents the response for removing a rule.
type RemoveRuleResponse struct {
	Removed       bool                  `json:"removed"`
	Recategorized RecategorizedResponse `json:"recategorized"`
}
