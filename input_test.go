package main

import "testing"

func TestToggleInputConsumeFPSPrintRequestClearsFlag(t *testing.T) {
	ti := NewToggleInput(NewSettings())
	ti.printFPS = true

	if !ti.ConsumeFPSPrintRequest() {
		t.Fatal("expected first consume to report the pending request")
	}
	if ti.ConsumeFPSPrintRequest() {
		t.Fatal("expected second consume to find the flag already cleared")
	}
}

func TestToggleInputShouldQuitReflectsState(t *testing.T) {
	ti := NewToggleInput(NewSettings())
	if ti.ShouldQuit() {
		t.Fatal("expected fresh input to not request quit")
	}

	ti.quit = true
	if !ti.ShouldQuit() {
		t.Fatal("expected ShouldQuit to report true once set")
	}
}

func TestToggleInputStopWithoutStartIsNoop(t *testing.T) {
	ti := NewToggleInput(NewSettings())
	ti.Stop() // must not panic or block when never started
}
