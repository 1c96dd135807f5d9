package tui

// savedMsg reports the outcome of the background save that follows every
// successful mutating command. A failed save never undoes the command.
type savedMsg struct {
	err error
}

// quitMsg is sent after the final save completes so the program exits with
// the data on disk.
type quitMsg struct{}
