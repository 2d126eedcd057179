package races

import (
	"reflect"
	"testing"
)

func TestCompoundValues(t *testing.T) {
	expected := map[Compound]string{
		CompoundSoft:         "SOFT",
		CompoundMedium:       "MEDIUM",
		CompoundHard:         "HARD",
		CompoundIntermediate: "INTERMEDIATE",
		CompoundWet:          "WET",
	}

	for compound, want := range expected {
		if string(compound) != want {
			t.Fatalf("expected %q got %q", want, compound)
		}
		if !compound.Known() {
			t.Fatalf("expected %s to be known", compound)
		}
	}
	if Compound("UNKNOWN").Known() {
		t.Fatal("expected UNKNOWN to be unrecognized")
	}
}

func TestNormalizeCompound(t *testing.T) {
	if got := NormalizeCompound(" soft "); got != CompoundSoft {
		t.Fatalf("expected SOFT, got %q", got)
	}
	if got := NormalizeCompound("nan"); got != "nan" {
		t.Fatalf("expected unknown value preserved, got %q", got)
	}
}

func TestPodiumCopiesAtMostThree(t *testing.T) {
	set := ResultSet{Results: []ResultEntry{{Driver: "VER"}, {Driver: "PER"}, {Driver: "ALO"}, {Driver: "SAI"}}}

	podium := set.Podium()
	if len(podium) != 3 || podium[2].Driver != "ALO" {
		t.Fatalf("unexpected podium %+v", podium)
	}
	podium[0].Driver = "XXX"
	if set.Results[0].Driver != "VER" {
		t.Fatal("expected podium to be a copy")
	}

	if got := (ResultSet{Results: []ResultEntry{{Driver: "VER"}}}).Podium(); len(got) != 1 {
		t.Fatalf("expected single entry podium, got %+v", got)
	}
	if got := (ResultSet{}).Podium(); len(got) != 0 {
		t.Fatalf("expected empty podium, got %+v", got)
	}
}

func TestTyreStintJSONTags(t *testing.T) {
	type fieldCheck struct {
		name string
		tag  string
	}
	stintType := reflect.TypeOf(TyreStint{})
	fields := []fieldCheck{
		{"Driver", "driver"},
		{"Stint", "stint"},
		{"Compound", "compound"},
		{"LapsCount", "laps_count"},
		{"MeanLapTime", "mean_lap_time"},
	}
	for _, fc := range fields {
		f, ok := stintType.FieldByName(fc.name)
		if !ok {
			t.Fatalf("missing field %s", fc.name)
		}
		if tag := f.Tag.Get("json"); tag != fc.tag {
			t.Fatalf("field %s expected tag %s, got %s", fc.name, fc.tag, tag)
		}
	}
}
