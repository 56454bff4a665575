// Package policy evaluates the chat admission policy with OPA.
package policy

import (
	"context"
	"fmt"

	"github.com/open-policy-agent/opa/v1/rego"

	"github.com/xiaot623/tripplanner/internal/domain"
)

// Decision values produced by the policy.
const (
	DecisionAllow = "allow"
	DecisionDeny  = "deny"
)

// Engine is the OPA policy engine.
type Engine struct {
	query         rego.PreparedEvalQuery
	maxMessageLen int
}

// Decision is the outcome of a policy evaluation.
type Decision struct {
	Decision string
	Reasons  []string
}

// Allowed reports whether the request may proceed.
func (d Decision) Allowed() bool {
	return d.Decision == DecisionAllow
}

// NewEngine creates a new policy engine with the given policy content.
// maxMessageLen bounds the newest message only: earlier turns are already part of
// an append-only history and must not block later requests.
func NewEngine(ctx context.Context, policyContent string, maxMessageLen int) (*Engine, error) {
	r := rego.New(
		rego.Query("data.chat_policy.result"),
		rego.Module("chat_policy.rego", policyContent),
	)

	query, err := r.PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare rego: %w", err)
	}

	return &Engine{query: query, maxMessageLen: maxMessageLen}, nil
}

// Evaluate checks a chat request against the policy.
func (e *Engine) Evaluate(ctx context.Context, messages []domain.Message) (Decision, error) {
	input := map[string]interface{}{
		"messages":        messages,
		"max_message_len": e.maxMessageLen,
	}
	if messages == nil {
		input["messages"] = []domain.Message{}
	}

	results, err := e.query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return Decision{}, fmt.Errorf("failed to evaluate policy: %w", err)
	}

	if len(results) == 0 || len(results[0].Expressions) == 0 {
		return Decision{}, fmt.Errorf("policy produced no result")
	}

	obj, ok := results[0].Expressions[0].Value.(map[string]interface{})
	if !ok {
		return Decision{}, fmt.Errorf("unexpected policy result type %T", results[0].Expressions[0].Value)
	}

	decision := Decision{}
	decision.Decision, _ = obj["decision"].(string)
	if reasons, ok := obj["reasons"].([]interface{}); ok {
		for _, r := range reasons {
			if s, ok := r.(string); ok {
				decision.Reasons = append(decision.Reasons, s)
			}
		}
	}
	if decision.Decision == "" {
		return Decision{}, fmt.Errorf("policy result has no decision")
	}
	return decision, nil
}

// DefaultPolicy is the default admission policy for POST /api/chat.
const DefaultPolicy = `
package chat_policy

valid_roles := {"user", "assistant"}

deny contains "at least one message is required" if {
	count(input.messages) == 0
}

deny contains msg if {
	some i
	role := input.messages[i].role
	not valid_roles[role]
	msg := sprintf("message %d has unsupported role %q", [i, role])
}

deny contains msg if {
	count(input.messages) > 0
	count(input.messages[count(input.messages) - 1].content) > input.max_message_len
	msg := sprintf("the newest message exceeds %d characters", [input.max_message_len])
}

deny contains "the last message must come from the user" if {
	count(input.messages) > 0
	input.messages[count(input.messages) - 1].role != "user"
}

default decision := "allow"

decision := "deny" if {
	count(deny) > 0
}

result := {"decision": decision, "reasons": sort(deny)}
`
