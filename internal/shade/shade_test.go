package shade

import (
	"errors"
	"testing"
)

func TestLadderPartition(t *testing.T) {
	light := Light()
	dark := Dark()

	if len(light)+len(dark)+1 != len(Keys) {
		t.Fatalf("light(%d) + dark(%d) + base != %d", len(light), len(dark), len(Keys))
	}
	if light[0] != "25" || light[len(light)-1] != "400" {
		t.Errorf("Light() = %v, want 25..400", light)
	}
	if dark[0] != "600" || dark[len(dark)-1] != "950" {
		t.Errorf("Dark() = %v, want 600..950", dark)
	}

	// callers must not be able to corrupt the ladder
	light[0] = "nope"
	if Keys[0] != "25" {
		t.Error("Light() should return a copy")
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"25", false},
		{"500", false},
		{"950", false},
		{"1000", true},
		{"", true},
		{"p500", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			k, err := ParseKey(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKey(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrUnknownShade) {
				t.Errorf("ParseKey(%q) error = %v, want ErrUnknownShade", tt.in, err)
			}
			if err == nil && string(k) != tt.in {
				t.Errorf("ParseKey(%q) = %q", tt.in, k)
			}
		})
	}
}

func TestAlphaTableMonotonic(t *testing.T) {
	if AlphaPercent("25") != 2 || AlphaPercent("950") != 92 {
		t.Fatalf("alpha endpoints = %d..%d, want 2..92", AlphaPercent("25"), AlphaPercent("950"))
	}
	prev := 0
	for _, k := range Keys {
		p := AlphaPercent(k)
		if p <= prev {
			t.Errorf("AlphaPercent(%s) = %d, not above previous %d", k, p, prev)
		}
		prev = p
	}
	if Alpha("200") != 0.16 {
		t.Errorf("Alpha(200) = %v, want 0.16", Alpha("200"))
	}
}

func TestDefinitionsMoveAwayFromBase(t *testing.T) {
	if d := DefinitionOf(Base); d.Op != OpBase {
		t.Fatalf("DefinitionOf(500).Op = %v, want base", d.Op)
	}

	light := Light()
	for i := 1; i < len(light); i++ {
		prev, cur := DefinitionOf(light[i-1]), DefinitionOf(light[i])
		if prev.Op != OpLighten || cur.Op != OpLighten {
			t.Fatalf("light shades must lighten: %s=%v %s=%v", light[i-1], prev.Op, light[i], cur.Op)
		}
		if cur.Amount >= prev.Amount {
			t.Errorf("lighten amount should shrink towards 500: %s=%d %s=%d", light[i-1], prev.Amount, light[i], cur.Amount)
		}
	}

	dark := Dark()
	for i := 1; i < len(dark); i++ {
		prev, cur := DefinitionOf(dark[i-1]), DefinitionOf(dark[i])
		if prev.Op != OpDarken || cur.Op != OpDarken {
			t.Fatalf("dark shades must darken: %s=%v %s=%v", dark[i-1], prev.Op, dark[i], cur.Op)
		}
		if cur.Amount <= prev.Amount {
			t.Errorf("darken amount should grow away from 500: %s=%d %s=%d", dark[i-1], prev.Amount, dark[i], cur.Amount)
		}
	}

	if DefinitionOf("25").Amount != DefinitionOf("950").Amount {
		t.Errorf("tails should be symmetric: 25=%d 950=%d", DefinitionOf("25").Amount, DefinitionOf("950").Amount)
	}
}

func TestScale(t *testing.T) {
	s := NewScale[int]()
	if s.Complete() {
		t.Fatal("new scale should not be complete")
	}
	if err := s.Set("123", 1); !errors.Is(err, ErrUnknownShade) {
		t.Errorf("Set(123) error = %v, want ErrUnknownShade", err)
	}

	for i, k := range Keys {
		if err := s.Set(k, i); err != nil {
			t.Fatalf("Set(%s) failed: %v", k, err)
		}
	}
	if !s.Complete() {
		t.Error("scale should be complete after setting every key")
	}

	var order []Key
	s.Each(func(k Key, v int) {
		if v != k.Index() {
			t.Errorf("value for %s = %d, want %d", k, v, k.Index())
		}
		order = append(order, k)
	})
	if len(order) != len(Keys) {
		t.Fatalf("Each visited %d keys, want %d", len(order), len(Keys))
	}
	for i := range order {
		if order[i] != Keys[i] {
			t.Errorf("Each order[%d] = %s, want %s", i, order[i], Keys[i])
		}
	}

	doubled := Map(s, func(v int) int { return v * 2 })
	if v, _ := doubled.Get("950"); v != 28 {
		t.Errorf("Map(950) = %d, want 28", v)
	}
}

func TestPrefixed(t *testing.T) {
	s := NewScale[string]()
	_ = s.Set("500", "red")
	_ = s.Set("700", "maroon")

	got := Prefixed("brand-", s)
	if len(got) != 2 {
		t.Fatalf("Prefixed returned %d entries, want 2", len(got))
	}
	if got["brand-500"] != "red" || got["brand-700"] != "maroon" {
		t.Errorf("Prefixed = %v", got)
	}
}

func TestOptionValidate(t *testing.T) {
	all := make(map[Key]string, len(Keys))
	for _, k := range Keys {
		all[k] = "red"
	}

	tests := []struct {
		name       string
		opt        *Option
		requireAll bool
		wantErr    error
	}{
		{"nil option", nil, false, nil},
		{"single color", Color("red"), true, nil},
		{"shades with base", Shades(map[Key]string{"500": "red", "700": "blue"}), false, nil},
		{"shades without base", Shades(map[Key]string{"700": "red"}), false, ErrMissingBaseShade},
		{"unknown shade", Shades(map[Key]string{"500": "red", "42": "blue"}), false, ErrUnknownShade},
		{"alpha partial", Shades(map[Key]string{"500": "red", "700": "blue"}), true, ErrIncompleteAlphaScale},
		{"alpha missing base", Shades(map[Key]string{"700": "red"}), true, ErrMissingBaseShade},
		{"alpha complete", Shades(all), true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opt.Validate(tt.requireAll)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestOptionShade(t *testing.T) {
	single := Color("#336699")
	if c, err := single.BaseColor(); err != nil || c != "#336699" {
		t.Errorf("BaseColor() = %q, %v", c, err)
	}
	if _, ok := single.Shade("700"); ok {
		t.Error("single color option should only supply the base shade")
	}

	src := map[Key]string{"500": "red"}
	opt := Shades(src)
	src["700"] = "blue"
	if _, ok := opt.Shade("700"); ok {
		t.Error("Shades should copy its input")
	}

	overrides := Shades(map[Key]string{"500": "red", "700": "blue"}).Overrides()
	if v, ok := overrides.Get("700"); !ok || v != "blue" {
		t.Errorf("Overrides()[700] = %q, %v", v, ok)
	}
	if overrides.Has("600") {
		t.Error("Overrides() should leave unspecified shades absent")
	}
}
