package tui

// RowUpdateMsg updates one probe row's fields, keyed by column header.
type RowUpdateMsg struct {
	Key    string
	Fields map[string]string
}

// WorkDoneMsg signals that the probe work finished and the table can settle.
type WorkDoneMsg struct{}

// ErrorMsg aborts the display with a fatal error from the work function.
type ErrorMsg struct {
	Err error
}
