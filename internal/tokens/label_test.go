package tokens

import "testing"

func TestMealTypeLabel(t *testing.T) {
	cases := []struct {
		beef, fish bool
		want       string
	}{
		{true, true, "Beef + Fish"},
		{false, true, "Mutton + Fish"},
		{true, false, "Beef + Egg"},
		{false, false, "Mutton + Egg"},
	}

	for _, c := range cases {
		if got := MealTypeLabel(c.beef, c.fish); got != c.want {
			t.Errorf("MealTypeLabel(%v, %v) = %q, beklenen %q", c.beef, c.fish, got, c.want)
		}
	}
}
