package flip

// MockEngine is a scripted reorder engine for testing. It records every
// session it starts; tests emit notifications through the sessions.
type MockEngine struct {
	// InitErr, when set, is returned by Init instead of starting a session.
	InitErr error

	sessions []*MockSession
}

// Ensure MockEngine implements Engine.
var _ Engine = (*MockEngine)(nil)

// NewMockEngine creates a new mock engine.
func NewMockEngine() *MockEngine {
	return &MockEngine{}
}

// Init records a new session on target.
func (m *MockEngine) Init(target Target, cfg Config) (Session, error) {
	if m.InitErr != nil {
		return nil, m.InitErr
	}
	s := &MockSession{target: target, init: cfg}
	m.sessions = append(m.sessions, s)
	return s, nil
}

// Sessions returns every session started so far.
func (m *MockEngine) Sessions() []*MockSession {
	return m.sessions
}

// Last returns the most recent session, or nil if none was started.
func (m *MockEngine) Last() *MockSession {
	if len(m.sessions) == 0 {
		return nil
	}
	return m.sessions[len(m.sessions)-1]
}

// MockSession is a session started by MockEngine.
type MockSession struct {
	target    Target
	init      Config
	updates   []Config
	destroyed int
}

// Ensure MockSession implements Session.
var _ Session = (*MockSession)(nil)

// Update records cfg.
func (s *MockSession) Update(cfg Config) {
	s.updates = append(s.updates, cfg)
}

// Destroy marks the session destroyed.
func (s *MockSession) Destroy() {
	s.destroyed++
}

// Consider emits a provisional reorder on the session's target.
// Destroyed sessions emit nothing.
func (s *MockSession) Consider(items []any, info Info) {
	s.emit(EventConsider, items, info)
}

// Finalize emits a committed reorder on the session's target.
// Destroyed sessions emit nothing.
func (s *MockSession) Finalize(items []any, info Info) {
	s.emit(EventFinalize, items, info)
}

func (s *MockSession) emit(kind EventKind, items []any, info Info) {
	if s.destroyed > 0 {
		return
	}
	s.target.Dispatch(Event{Kind: kind, Detail: Detail{Items: items, Info: info}})
}

// Target returns the target the session was started on.
func (s *MockSession) Target() Target {
	return s.target
}

// InitConfig returns the configuration passed to Init.
func (s *MockSession) InitConfig() Config {
	return s.init
}

// Updates returns every configuration passed to Update.
func (s *MockSession) Updates() []Config {
	return s.updates
}

// DestroyCount returns how many times Destroy was called.
func (s *MockSession) DestroyCount() int {
	return s.destroyed
}
