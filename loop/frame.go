package loop

// Frame is handed to every system during one scheduler pass.
type Frame struct {
	// Number counts frames from 1.
	Number    int64
	DeltaTime float64
	Commands  *Commands
}

func newFrame(number int64, dt float64) *Frame {
	return &Frame{
		Number:    number,
		DeltaTime: dt,
		Commands:  newCommands(),
	}
}
