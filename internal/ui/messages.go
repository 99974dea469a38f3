package ui

import (
	"dexbar/internal/search"
)

// stateMsg delivers a published snapshot to the model
type stateMsg struct {
	state search.State
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
