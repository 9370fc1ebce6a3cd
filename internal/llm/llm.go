package llm

import (
	"context"
	"fmt"
)

// Message is a single role-tagged chat message.
type Message struct {
	Role    string
	Content string
}

// ChatRequest captures one completion request to the generative service.
type ChatRequest struct {
	Model       string
	Messages    []Message
	MaxTokens   int
	Temperature float32
}

// Client abstracts the generative text service. Implementations make exactly
// one provider call per Complete invocation; retries are the caller's policy.
type Client interface {
	Complete(ctx context.Context, req ChatRequest) (string, error)
}

// ServiceError marks any provider-level failure (network, auth, quota,
// malformed envelope). Callers treat all of them uniformly as "service
// unavailable" and fall back to deterministic synthesis.
type ServiceError struct {
	Provider string
	Err      error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s service error: %v", e.Provider, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Disabled is a Client for deployments without a configured provider. Every
// call fails with a ServiceError, so all flows run their deterministic path.
type Disabled struct{}

// Complete always reports the service as unavailable.
func (Disabled) Complete(ctx context.Context, req ChatRequest) (string, error) {
	_ = ctx
	_ = req
	return "", &ServiceError{Provider: "none", Err: fmt.Errorf("no generative provider configured")}
}

var _ Client = Disabled{}
