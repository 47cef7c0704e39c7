package activity

import "testing"

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		act     Activity
		wantErr error
	}{
		{"valid food", Activity{Name: "Banana", Calories: 100, Category: Food}, nil},
		{"valid exercise", Activity{Name: "Bike", Calories: 1, Category: Exercise}, nil},
		{"empty name", Activity{Name: "", Calories: 100}, errEmptyName},
		{"whitespace name", Activity{Name: "  \t ", Calories: 100}, errEmptyName},
		{"zero calories", Activity{Name: "Water", Calories: 0}, errNonPositiveCalories},
		{"negative calories", Activity{Name: "Water", Calories: -5}, errNonPositiveCalories},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.act)
			if err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
			if Valid(tt.act) != (tt.wantErr == nil) {
				t.Errorf("Valid() = %v, want %v", Valid(tt.act), tt.wantErr == nil)
			}
		})
	}
}

func TestCleanName(t *testing.T) {
	if got := CleanName("  Orange juice \n"); got != "Orange juice" {
		t.Errorf("CleanName() = %q", got)
	}
}
