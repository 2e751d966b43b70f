package planner_test

import (
	"testing"
	"time"

	"case-assistant/internal/model"
	"case-assistant/internal/planner"
)

func sessionWith(texts ...string) *model.Session {
	s := &model.Session{ConversationID: "conv-1"}
	for i, text := range texts {
		s.Turns = append(s.Turns, model.Turn{
			Timestamp: time.Now().Add(time.Duration(i) * time.Second),
			Role:      model.RoleUser,
			Text:      text,
		})
	}
	return s
}

func TestPlanDonate(t *testing.T) {
	factsWithAlias := model.CaseFacts{
		CaseID:        "case-1",
		GuardianAlias: "luna.rescate.mp",
		AlternateFund: "fondo.compartido",
	}
	factsNoAlias := model.CaseFacts{
		CaseID:        "case-1",
		AlternateFund: "fondo.compartido",
	}

	t.Run("no amount yet prompts for one", func(t *testing.T) {
		plan := planner.Plan(model.IntentDonate, "Quiero donar", sessionWith(), factsWithAlias)
		if !plan.ShowAmountPrompt {
			t.Error("expected ShowAmountPrompt=true")
		}
		if plan.ShowPrimaryAlias {
			t.Error("expected ShowPrimaryAlias=false before an amount")
		}
		if len(plan.SuggestedAmounts) == 0 {
			t.Error("expected suggested amounts with the prompt")
		}
	})

	t.Run("amount in history unlocks primary alias", func(t *testing.T) {
		session := sessionWith("Quiero donar $500")
		plan := planner.Plan(model.IntentDonate, "Dale", session, factsWithAlias)
		if !plan.ShowPrimaryAlias {
			t.Error("expected ShowPrimaryAlias=true")
		}
		if plan.ShowAmountPrompt {
			t.Error("expected ShowAmountPrompt=false once an amount was stated")
		}
		if plan.ShowAlternateAlias {
			t.Error("expected ShowAlternateAlias=false when a primary alias exists")
		}
	})

	t.Run("no guardian alias falls back to alternate fund", func(t *testing.T) {
		plan := planner.Plan(model.IntentDonate, "Quiero donar $1.000", sessionWith(), factsNoAlias)
		if !plan.ShowAlternateAlias {
			t.Error("expected ShowAlternateAlias=true")
		}
		if plan.ShowPrimaryAlias {
			t.Error("expected ShowPrimaryAlias=false without a guardian alias")
		}
	})

	t.Run("asking for other ways forces the alternate fund", func(t *testing.T) {
		plan := planner.Plan(model.IntentDonate, "Ya doné $500, hay otra forma de donar?", sessionWith(), factsWithAlias)
		if !plan.ShowAlternateAlias {
			t.Error("expected ShowAlternateAlias=true when alternatives were asked for")
		}
		if plan.ShowPrimaryAlias {
			t.Error("expected ShowPrimaryAlias=false when alternatives were asked for")
		}
	})

	t.Run("amount prompt and primary alias are mutually exclusive", func(t *testing.T) {
		messages := []string{"Quiero donar", "Quiero donar $500", "Dale", "hay otra forma?"}
		sessions := []*model.Session{sessionWith(), sessionWith("Quiero donar $500")}
		for _, msg := range messages {
			for _, sess := range sessions {
				plan := planner.Plan(model.IntentDonate, msg, sess, factsWithAlias)
				if plan.ShowAmountPrompt && plan.ShowPrimaryAlias {
					t.Errorf("ShowAmountPrompt and ShowPrimaryAlias both true for %q", msg)
				}
			}
		}
	})
}

func TestPlanShare(t *testing.T) {
	facts := model.CaseFacts{
		CaseID:      "case-1",
		SocialLinks: []string{"https://instagram.com/p/abc"},
	}
	plan := planner.Plan(model.IntentShare, "Lo comparto en mis redes", sessionWith(), facts)
	if !plan.ShowSocialLinks {
		t.Error("expected ShowSocialLinks=true")
	}
	if len(plan.SocialLinks) != 1 {
		t.Errorf("expected the case's social links in the plan, got %v", plan.SocialLinks)
	}
	if plan.ShowAmountPrompt || plan.ShowPrimaryAlias {
		t.Error("share intent must not surface donation actions")
	}
}

func TestPlanGuardianContact(t *testing.T) {
	facts := model.CaseFacts{CaseID: "case-1", GuardianID: "guardian-7"}

	t.Run("adoption question with guardian id", func(t *testing.T) {
		plan := planner.Plan(model.IntentAdopt, "Puedo adoptar a la perrita?", sessionWith(), facts)
		if !plan.ShowGuardianContact {
			t.Error("expected ShowGuardianContact=true")
		}
	})

	t.Run("no guardian id", func(t *testing.T) {
		plan := planner.Plan(model.IntentAdopt, "Puedo adoptar?", sessionWith(), model.CaseFacts{CaseID: "case-1"})
		if plan.ShowGuardianContact {
			t.Error("expected ShowGuardianContact=false without a guardian id")
		}
	})

	t.Run("foster wording", func(t *testing.T) {
		plan := planner.Plan(model.IntentGeneral, "Ofrezco hogar de tránsito", sessionWith(), facts)
		if !plan.ShowGuardianContact {
			t.Error("expected ShowGuardianContact=true for foster offers")
		}
	})
}

func TestAmountStated(t *testing.T) {
	if planner.AmountStated("quiero donar", sessionWith("hola", "como está?")) {
		t.Error("expected no amount")
	}
	if !planner.AmountStated("dale", sessionWith("Quiero donar $1.000")) {
		t.Error("expected amount from history")
	}
	if !planner.AmountStated("dono 1000 pesos", sessionWith()) {
		t.Error("expected amount from current message")
	}
}
