package inmemory

import "sync"

type Snapshot struct {
	CommandTotal   uint64            `json:"command_total"`
	CommandFailure uint64            `json:"command_failure"`
	MachineFires   uint64            `json:"machine_fires"`
	ByCommand      map[string]uint64 `json:"by_command"`
	ByMachine      map[string]uint64 `json:"by_machine"`
}

type Recorder struct {
	mu        sync.Mutex
	total     uint64
	failure   uint64
	fires     uint64
	byCommand map[string]uint64
	byMachine map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byCommand: map[string]uint64{},
		byMachine: map[string]uint64{},
	}
}

func (r *Recorder) RecordCommand(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.total++
	r.byCommand[name]++
}

func (r *Recorder) RecordFailure(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
}

func (r *Recorder) RecordMachineFire(machineName string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fires++
	r.byMachine[machineName]++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		CommandTotal:   r.total,
		CommandFailure: r.failure,
		MachineFires:   r.fires,
		ByCommand:      make(map[string]uint64, len(r.byCommand)),
		ByMachine:      make(map[string]uint64, len(r.byMachine)),
	}
	for k, v := range r.byCommand {
		out.ByCommand[k] = v
	}
	for k, v := range r.byMachine {
		out.ByMachine[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
