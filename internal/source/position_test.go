package source

import "testing"

func TestAdvanceTracksLineAndColumn(t *testing.T) {
	pos := Position{Line: 1, Column: 1}
	pos.Advance("ab\ncd")

	if pos.Line != 2 {
		t.Errorf("Line = %d, want 2", pos.Line)
	}
	if pos.Column != 3 {
		t.Errorf("Column = %d, want 3", pos.Column)
	}
	if pos.Index != 5 {
		t.Errorf("Index = %d, want 5", pos.Index)
	}
}

func TestAdvanceTabCountsAsOneColumn(t *testing.T) {
	pos := Position{Line: 1, Column: 1}
	pos.Advance("\tx")

	if pos.Column != 3 {
		t.Errorf("Column = %d, want 3 (tab advances by exactly one column)", pos.Column)
	}
}
