package layout

import "testing"

func TestCrossSize(t *testing.T) {
	type tc struct {
		policy   Policy
		length   int
		want     int
		tooSmall bool
	}

	tests := map[string]tc{
		"fixed fits":                 {policy: FixedPolicy(5), length: 10, want: 5},
		"fixed clamped to container": {policy: FixedPolicy(15), length: 10, want: 10, tooSmall: true},
		"minimum fills container":    {policy: MinimumPolicy(3), length: 10, want: 10},
		"minimum raised to hint":     {policy: MinimumPolicy(12), length: 10, want: 12, tooSmall: true},
		"minimum capped by max":      {policy: MinimumPolicy(3).WithMax(8), length: 10, want: 8},
		"minimum expanding":          {policy: MinimumExpandingPolicy(4), length: 10, want: 10},
		"maximum capped at hint":     {policy: MaximumPolicy(4), length: 10, want: 4},
		"maximum under hint":         {policy: MaximumPolicy(40), length: 10, want: 10},
		"maximum raised to min":      {policy: MaximumPolicy(20).WithMin(12), length: 10, want: 12, tooSmall: true},
		"preferred fills container":  {policy: PreferredPolicy(2), length: 10, want: 10},
		"preferred capped by max":    {policy: PreferredPolicy(2).WithMax(6), length: 10, want: 6},
		"expanding raised to min":    {policy: ExpandingPolicy(12).WithMin(12), length: 10, want: 12, tooSmall: true},
		"ignored fills container":    {policy: IgnoredPolicy(), length: 10, want: 10},
		"negative length":            {policy: PreferredPolicy(2), length: -4, want: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, tooSmall := CrossSize(tt.policy, tt.length)
			if got != tt.want {
				t.Errorf("CrossSize(%v, %d) = %d, want %d", tt.policy, tt.length, got, tt.want)
			}
			if tooSmall != tt.tooSmall {
				t.Errorf("CrossSize(%v, %d) tooSmall = %v, want %v", tt.policy, tt.length, tooSmall, tt.tooSmall)
			}
		})
	}
}
