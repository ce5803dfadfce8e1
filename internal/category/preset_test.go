package category

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestPresetSetNames(t *testing.T) {
	ps := NewPresetSet()
	ps["Work"] = NewPresetConfig()
	ps["Archive"] = NewPresetConfig()

	want := []string{DefaultPreset, "Archive", "Work"}
	if got := ps.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestPresetSetRename(t *testing.T) {
	ps := NewPresetSet()
	ps["Old"] = Config{{Name: "A", Extensions: []string{".a"}}}

	if _, err := ps.Rename(DefaultPreset, "Anything"); !errors.Is(err, ErrReservedPreset) {
		t.Errorf("renaming Default: %v", err)
	}
	if _, err := ps.Rename("Missing", "New"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("renaming unknown: %v", err)
	}

	if changed, err := ps.Rename("Old", ""); changed || err != nil {
		t.Errorf("empty new name: changed=%v err=%v", changed, err)
	}
	if changed, err := ps.Rename("Old", "Old"); changed || err != nil {
		t.Errorf("unchanged name: changed=%v err=%v", changed, err)
	}

	changed, err := ps.Rename("Old", "New")
	if err != nil || !changed {
		t.Fatalf("Rename: changed=%v err=%v", changed, err)
	}
	if _, ok := ps["Old"]; ok {
		t.Error("old name still present")
	}
	if exts, _ := ps["New"].Get("A"); !reflect.DeepEqual(exts, []string{".a"}) {
		t.Errorf("configuration lost in rename: %v", exts)
	}
}

func TestPresetSetUpdate(t *testing.T) {
	ps := NewPresetSet()
	ps["Mine"] = NewPresetConfig()

	if err := ps.Update(DefaultPreset, DefaultConfig()); !errors.Is(err, ErrReservedPreset) {
		t.Errorf("updating Default: %v", err)
	}
	if err := ps.Update("Missing", DefaultConfig()); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("updating unknown: %v", err)
	}

	working := Config{{Name: "Only", Extensions: []string{".x"}}}
	if err := ps.Update("Mine", working); err != nil {
		t.Fatalf("Update: %v", err)
	}
	working[0].Extensions[0] = ".mutated"
	if exts, _ := ps["Mine"].Get("Only"); !reflect.DeepEqual(exts, []string{".x"}) {
		t.Errorf("Update stored a shared slice: %v", exts)
	}
}

func TestPresetSetRemove(t *testing.T) {
	ps := NewPresetSet()
	ps["Mine"] = NewPresetConfig()

	removed, err := ps.Remove(DefaultPreset)
	if removed || err != nil {
		t.Errorf("removing Default: removed=%v err=%v", removed, err)
	}
	if len(ps) != 2 {
		t.Errorf("set changed by Default removal: %v", ps.Names())
	}

	if _, err := ps.Remove("Missing"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("removing unknown: %v", err)
	}

	removed, err = ps.Remove("Mine")
	if err != nil || !removed {
		t.Fatalf("Remove: removed=%v err=%v", removed, err)
	}
	if _, ok := ps["Mine"]; ok {
		t.Error("preset still present after Remove")
	}
}

func TestNewPresetConfig(t *testing.T) {
	cfg := NewPresetConfig()
	want := []string{"Category 1", "Category 2", "Category 3"}
	if !reflect.DeepEqual(cfg.Names(), want) {
		t.Errorf("placeholder names = %v, want %v", cfg.Names(), want)
	}
	for _, cat := range cfg {
		if len(cat.Extensions) != 0 {
			t.Errorf("placeholder %q not empty: %v", cat.Name, cat.Extensions)
		}
	}
}

func TestDefaultPresetName(t *testing.T) {
	at := time.Date(2025, time.March, 9, 14, 30, 5, 0, time.UTC)
	if got := DefaultPresetName(at); got != "Preset 2025-03-09 14-30-05" {
		t.Errorf("DefaultPresetName = %q", got)
	}
}
