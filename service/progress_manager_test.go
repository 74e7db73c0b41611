package service

import "testing"

func TestNewProgressManager_Disabled(t *testing.T) {
	pm := NewProgressManager(false)
	if pm.IsInteractive() {
		t.Error("Disabled progress manager should not be interactive")
	}

	task := pm.StartTask("work", 10)
	task.Increment(5)
	task.Describe("halfway")
	task.Complete()
	pm.Close()
}

func TestNewProgressManager_NonTTYFallsBack(t *testing.T) {
	// Test runs never have a terminal on stderr, so even enabled
	// managers degrade to the no-op implementation
	pm := NewProgressManager(true)
	task := pm.StartTask("work", 3)
	task.Increment(3)
	task.Complete()
	pm.Close()
}

func TestNoOpTaskProgress(t *testing.T) {
	var task NoOpTaskProgress
	task.Increment(1)
	task.Describe("anything")
	task.Complete()

	var pm NoOpProgressManager
	if pm.IsInteractive() {
		t.Error("NoOp manager must report non-interactive")
	}
}
