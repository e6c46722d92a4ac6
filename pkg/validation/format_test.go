package validation

import "testing"

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{name: "pretty is valid", format: "pretty", wantErr: false},
		{name: "csv is valid", format: "csv", wantErr: false},
		{name: "json is not supported", format: "json", wantErr: true},
		{name: "empty format is invalid", format: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}

func TestValidateReportType(t *testing.T) {
	tests := []struct {
		name    string
		report  string
		wantErr bool
	}{
		{name: "projection", report: "projection", wantErr: false},
		{name: "waterfall", report: "waterfall", wantErr: false},
		{name: "deals", report: "deals", wantErr: false},
		{name: "spreads", report: "spreads", wantErr: false},
		{name: "unknown report", report: "holdings", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateReportType(tt.report)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateReportType(%q) error = %v, wantErr %v", tt.report, err, tt.wantErr)
			}
		})
	}
}

func TestValidateRate(t *testing.T) {
	tests := []struct {
		name    string
		rate    float64
		wantErr bool
	}{
		{name: "zero", rate: 0, wantErr: false},
		{name: "mid range", rate: 15.0, wantErr: false},
		{name: "upper bound", rate: 100, wantErr: false},
		{name: "negative", rate: -0.5, wantErr: true},
		{name: "above 100", rate: 100.01, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRate("cpr", tt.rate)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRate(%v) error = %v, wantErr %v", tt.rate, err, tt.wantErr)
			}
		})
	}
}

func TestValidateHorizon(t *testing.T) {
	if err := ValidateHorizon(0); err == nil {
		t.Error("ValidateHorizon(0) expected error, got nil")
	}
	if err := ValidateHorizon(60); err != nil {
		t.Errorf("ValidateHorizon(60) unexpected error: %v", err)
	}
}
