package sqlutil

import (
	"strings"
	"testing"

	"periodica/pkg/chem"
)

func TestPlaceholders(t *testing.T) {
	if Question(3) != "?" {
		t.Fatalf("question: %q", Question(3))
	}
	if Dollar(3) != "$3" {
		t.Fatalf("dollar: %q", Dollar(3))
	}
}

func TestTableDDL(t *testing.T) {
	ddl, err := TableDDL(chem.TableScreeningConstants)
	if err != nil {
		t.Fatalf("ddl: %v", err)
	}
	if !strings.HasPrefix(ddl, `CREATE TABLE IF NOT EXISTS "screeningconstants" (`) {
		t.Fatalf("ddl prefix: %s", ddl)
	}
	// keyword-colliding column names come out quoted
	for _, want := range []string{`"n" INTEGER`, `"s" TEXT`, `"screening" DOUBLE PRECISION`} {
		if !strings.Contains(ddl, want) {
			t.Fatalf("ddl missing %q: %s", want, ddl)
		}
	}

	ddl, err = TableDDL(chem.TableIonizationEnergies)
	if err != nil {
		t.Fatalf("ddl: %v", err)
	}
	if !strings.Contains(ddl, `"references" TEXT`) || !strings.Contains(ddl, `"is_theoretical" BOOLEAN`) {
		t.Fatalf("ddl columns: %s", ddl)
	}

	if _, err := TableDDL("molecules"); err == nil {
		t.Fatal("unknown table should fail")
	}
}
