package activity

import (
	"encoding/json"
	"testing"
)

func TestCategoryString(t *testing.T) {
	if Food.String() != "Food" {
		t.Errorf("Food.String() = %q", Food.String())
	}
	if Exercise.String() != "Exercise" {
		t.Errorf("Exercise.String() = %q", Exercise.String())
	}
	if got := Category(7).String(); got != "Category(7)" {
		t.Errorf("Category(7).String() = %q", got)
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input   string
		want    Category
		wantErr bool
	}{
		{"food", Food, false},
		{"FOOD", Food, false},
		{" exercise ", Exercise, false},
		{"1", Food, false},
		{"2", Exercise, false},
		{"3", 0, true},
		{"", 0, true},
		{"snack", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCategory(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseCategory(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewID(t *testing.T) {
	a, err := NewID()
	if err != nil {
		t.Fatalf("NewID() error = %v", err)
	}
	b, err := NewID()
	if err != nil {
		t.Fatalf("NewID() error = %v", err)
	}
	if len(a) != 26 {
		t.Errorf("len(id) = %d, want 26 (ULID)", len(a))
	}
	if a == b {
		t.Errorf("NewID() returned duplicate id %q", a)
	}
}

func TestDraft(t *testing.T) {
	d, err := Draft()
	if err != nil {
		t.Fatalf("Draft() error = %v", err)
	}
	if d.ID == "" {
		t.Error("draft ID should not be empty")
	}
	if d.Category != Food {
		t.Errorf("draft Category = %v, want Food", d.Category)
	}
	if Valid(d) {
		t.Error("a fresh draft must not be savable")
	}
}

func TestActivityJSONShape(t *testing.T) {
	a := Activity{ID: "a", Category: Exercise, Name: "Run", Calories: 300}
	data, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	want := `{"id":"a","category":2,"name":"Run","calories":300}`
	if string(data) != want {
		t.Errorf("json = %s, want %s", data, want)
	}
}
