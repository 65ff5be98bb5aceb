package finding

import (
	"strings"
	"testing"
)

func TestList_Accumulates(t *testing.T) {
	var list List

	list.Add(Errorf(KindValidationError, "components[0].id", "bad id %q", "X!"))
	list.Add(
		Warnf(KindClassificationWarning, "components.s1", "no match"),
		Warnf(KindStructuralWarning, "components.s2", "outside parent"),
	)

	if list.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", list.Len())
	}
	if !list.HasErrors() {
		t.Error("HasErrors() = false with one error present")
	}
	if len(list.Errors()) != 1 || len(list.Warnings()) != 2 {
		t.Errorf("Errors/Warnings = %d/%d, want 1/2", len(list.Errors()), len(list.Warnings()))
	}

	// Insertion order preserved.
	all := list.All()
	if all[0].Kind != KindValidationError || all[2].Kind != KindStructuralWarning {
		t.Errorf("findings out of insertion order: %v", all)
	}

	counts := list.CountByKind()
	if counts[KindClassificationWarning] != 1 || counts[KindValidationError] != 1 {
		t.Errorf("CountByKind() = %v", counts)
	}
}

func TestList_ZeroValue(t *testing.T) {
	var list List
	if list.HasErrors() || list.Len() != 0 {
		t.Error("zero-value list must be empty and error-free")
	}
}

func TestFinding_String(t *testing.T) {
	f := Errorf(KindDanglingReference, "relations[2]", "unresolved target %q", "ghost")
	s := f.String()
	for _, want := range []string{"error", "dangling-reference", "relations[2]", "ghost"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q missing %q", s, want)
		}
	}

	noLoc := Warnf(KindStructuralWarning, "", "floating shape")
	if strings.Contains(noLoc.String(), " at ") {
		t.Errorf("locationless finding should not print a location: %q", noLoc.String())
	}
}
