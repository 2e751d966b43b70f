package http

import (
	"github.com/google/uuid"

	"case-assistant/internal/inquiry"
	"case-assistant/internal/model"
)

type caseFactsReq struct {
	CaseID        string   `json:"case_id" binding:"required"`
	Name          string   `json:"name"`
	Species       string   `json:"species"`
	Location      string   `json:"location"`
	Condition     string   `json:"condition"`
	Status        string   `json:"status"`
	GuardianID    string   `json:"guardian_id"`
	GuardianAlias string   `json:"guardian_alias"`
	AlternateFund string   `json:"alternate_fund"`
	SocialLinks   []string `json:"social_links"`
}

type processReq struct {
	Message        string       `json:"message" binding:"required"`
	UserID         string       `json:"user_id" binding:"required"`
	ConversationID string       `json:"conversation_id"`
	Language       string       `json:"language"`
	CaseFacts      caseFactsReq `json:"case_facts" binding:"required"`
}

// scope resolves the caller identity. A missing conversation id starts a new
// logical conversation.
func (r processReq) scope() model.Scope {
	conversationID := r.ConversationID
	if conversationID == "" {
		conversationID = uuid.NewString()
	}
	return model.Scope{
		UserID:         r.UserID,
		ConversationID: conversationID,
		Language:       r.Language,
	}
}

func (r processReq) toInput() inquiry.ProcessInput {
	return inquiry.ProcessInput{
		Message: r.Message,
		Facts: model.CaseFacts{
			CaseID:        r.CaseFacts.CaseID,
			Name:          r.CaseFacts.Name,
			Species:       r.CaseFacts.Species,
			Location:      r.CaseFacts.Location,
			Condition:     r.CaseFacts.Condition,
			Status:        model.CaseStatus(r.CaseFacts.Status),
			GuardianID:    r.CaseFacts.GuardianID,
			GuardianAlias: r.CaseFacts.GuardianAlias,
			AlternateFund: r.CaseFacts.AlternateFund,
			SocialLinks:   r.CaseFacts.SocialLinks,
		},
	}
}

type processResp struct {
	Success        bool                  `json:"success"`
	Message        string                `json:"message"`
	Actions        model.QuickActionPlan `json:"actions"`
	Metadata       inquiry.Metadata      `json:"metadata"`
	ConversationID string                `json:"conversation_id"`
	ErrorCategory  string                `json:"error_category,omitempty"`
}

func newProcessResp(sc model.Scope, out inquiry.ProcessOutput) processResp {
	return processResp{
		Success:        out.Success,
		Message:        out.Message,
		Actions:        out.Actions,
		Metadata:       out.Metadata,
		ConversationID: sc.ConversationID,
		ErrorCategory:  string(out.ErrorCategory),
	}
}
