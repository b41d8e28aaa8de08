package core

import "testing"

func TestResultString(t *testing.T) {
	tests := []struct {
		name string
		res  Result
		want string
	}{
		{
			name: "command",
			res:  Result{Kind: ResultCommand, Name: "GetStatus"},
			want: "GetStatus",
		},
		{
			name: "unknown command",
			res:  Result{Kind: ResultCommand, Name: "Unknown"},
			want: "Unknown",
		},
		{
			name: "error",
			res:  Result{Kind: ResultError, Message: "invalid transaction"},
			want: "ERROR: invalid transaction",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.res.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}
