package flip

// Engine is the external reorder engine: it detects that items are being
// reordered inside a container and emits EventConsider and EventFinalize on
// the container's Target.
type Engine interface {
	// Init starts the engine on target with the merged zone configuration.
	Init(target Target, cfg Config) (Session, error)
}

// Session is an engine running on one container.
type Session interface {
	// Update hands the session a new merged configuration.
	Update(cfg Config)

	// Destroy releases everything the session holds on the container.
	Destroy()
}
