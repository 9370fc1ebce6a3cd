package health

// Service encapsulates health-related checks.
type Service struct {
	llmConfigured bool
}

// NewService constructs a new health service.
func NewService(llmConfigured bool) *Service {
	return &Service{llmConfigured: llmConfigured}
}

// Status returns a simple health payload.
func (s *Service) Status() map[string]any {
	llm := "not configured"
	if s.llmConfigured {
		llm = "connected"
	}
	return map[string]any{"ok": true, "llm": llm}
}
