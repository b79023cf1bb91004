package diag

import "testing"

func TestBagRespectsLimit(t *testing.T) {
	bag := NewBag(2)
	if !bag.Add(Diagnostic{Code: CfgBadIndex}) || !bag.Add(Diagnostic{Code: CfgBadIndex}) {
		t.Fatalf("adds under the limit must succeed")
	}
	if bag.Add(Diagnostic{Code: CfgBadIndex}) {
		t.Fatalf("add over the limit must be rejected")
	}
	if bag.Len() != 2 {
		t.Fatalf("Len = %d, want 2", bag.Len())
	}
}

func TestBagSeverityQueries(t *testing.T) {
	bag := NewBag(8)
	bag.Add(Diagnostic{Severity: SevInfo})
	if bag.HasWarnings() || bag.HasErrors() {
		t.Fatalf("info-only bag should report no warnings or errors")
	}
	bag.Add(Diagnostic{Severity: SevWarning})
	if !bag.HasWarnings() || bag.HasErrors() {
		t.Fatalf("warning should register as warning only")
	}
	bag.Add(Diagnostic{Severity: SevError})
	if !bag.HasErrors() {
		t.Fatalf("error not detected")
	}
}

func TestBagSortOrdersByLineThenSeverity(t *testing.T) {
	bag := NewBag(8)
	bag.Add(Diagnostic{Line: 5, Severity: SevInfo, Code: CfgBadIndex})
	bag.Add(Diagnostic{Line: 2, Severity: SevWarning, Code: CfgWrongFieldCount})
	bag.Add(Diagnostic{Line: 5, Severity: SevError, Code: CfgBadIndex})
	bag.Sort()
	items := bag.Items()
	if items[0].Line != 2 {
		t.Fatalf("expected line 2 first, got %+v", items[0])
	}
	if items[1].Severity != SevError || items[2].Severity != SevInfo {
		t.Fatalf("same line should order by severity desc: %+v", items)
	}
}

func TestBagCountBy(t *testing.T) {
	bag := NewBag(8)
	bag.Add(Diagnostic{Code: CfgBadIndex})
	bag.Add(Diagnostic{Code: CfgBadIndex})
	bag.Add(Diagnostic{Code: FieldIndexOrder})
	if n := bag.CountBy(CfgBadIndex); n != 2 {
		t.Fatalf("CountBy = %d, want 2", n)
	}
}

func TestCodeIDs(t *testing.T) {
	if got := CfgWrongFieldCount.ID(); got != "CFG1002" {
		t.Fatalf("CfgWrongFieldCount.ID() = %q", got)
	}
	if got := FieldIndexOrder.ID(); got != "FLD2001" {
		t.Fatalf("FieldIndexOrder.ID() = %q", got)
	}
	if got := UnknownCode.ID(); got != "E0000" {
		t.Fatalf("UnknownCode.ID() = %q", got)
	}
}

func TestNopReporterDiscards(t *testing.T) {
	var r Reporter = NopReporter{}
	r.Report(CfgBadIndex, SevError, 1, "ignored")
}
