package xpath

import "testing"

func TestCheckSyntax(t *testing.T) {
	tests := []struct {
		expr    string
		wantErr bool
	}{
		{expr: "../condition = 'alpha'"},
		{expr: "current()/orig:beta = 'nihaoWorld'"},
		{expr: "", wantErr: true},
		{expr: "(((", wantErr: true},
	}
	for _, tt := range tests {
		err := CheckSyntax(tt.expr)
		if (err != nil) != tt.wantErr {
			t.Errorf("CheckSyntax(%q) = %v, wantErr %v", tt.expr, err, tt.wantErr)
		}
	}
}
