package data

import "testing"

func TestNewRow_AssignsIdentity(t *testing.T) {
	a := NewRow(map[string]interface{}{"label": "x"})
	b := NewRow(map[string]interface{}{"label": "x"})

	if a.ID == b.ID {
		t.Error("Expected distinct rows to get distinct identities")
	}
}

func TestRowCopy_IsIndependent(t *testing.T) {
	original := NewRow(map[string]interface{}{"label": "x", "count": int64(1)})
	original.Meta["source"] = "crawler-1"

	cp := original.Copy()

	if cp.ID == original.ID {
		t.Error("Expected the copy to get a new identity")
	}

	cp.Set("label", "y")
	cp.Meta["source"] = "crawler-2"

	if v, _ := original.Value("label"); v != "x" {
		t.Errorf("Expected original data untouched, got %v", v)
	}
	if original.Meta["source"] != "crawler-1" {
		t.Errorf("Expected original metadata untouched, got %v", original.Meta["source"])
	}
}

func TestFoldMeta_OverwritesOnConflict(t *testing.T) {
	row := NewRow(nil)
	row.Meta["source"] = "crawler-1"
	row.Meta["region"] = "us"

	row.FoldMeta(map[string]interface{}{"source": "crawler-2", "host": "h1"})

	if row.Meta["source"] != "crawler-2" {
		t.Errorf("Expected incoming value to win, got %v", row.Meta["source"])
	}
	if row.Meta["region"] != "us" {
		t.Errorf("Expected untouched key to survive, got %v", row.Meta["region"])
	}
	if row.Meta["host"] != "h1" {
		t.Errorf("Expected new key to be added, got %v", row.Meta["host"])
	}
}
