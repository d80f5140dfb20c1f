package ports

// EngineMetrics counts outcomes of player commands and automation work.
type EngineMetrics interface {
	RecordCommand(name string)
	RecordFailure(name string)
	RecordMachineFire(machineName string)
}
