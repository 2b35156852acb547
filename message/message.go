package message

import "okizeme/entity"

// ErrorMsg contains an error for the footer.
type ErrorMsg struct {
	Err error
}

// MovesLoadedMsg carries a freshly loaded record collection.
type MovesLoadedMsg struct {
	Moves []entity.Move
}

// ResultMsg carries one finished recompute from the scheduler.
type ResultMsg struct {
	Moves []entity.Move
	Seq   uint64
}

// ApplyFilterMsg carries the edited tree out of the filter dialog.
type ApplyFilterMsg struct {
	Nodes  []entity.Node
	RootOp entity.GroupOp
}

// CloseDialogMsg returns to the table screen.
type CloseDialogMsg struct{}

// ExportedMsg reports a finished CSV export.
type ExportedMsg struct {
	Path string
}
