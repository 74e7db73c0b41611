package domain

import (
	"errors"
	"testing"
)

func TestDomainError_Error(t *testing.T) {
	err := DomainError{
		Code:    "CODE",
		Message: "something went wrong",
	}
	if err.Error() != "CODE: something went wrong" {
		t.Errorf("Unexpected error string: %s", err.Error())
	}

	errWithCause := DomainError{
		Code:    "CODE",
		Message: "something went wrong",
		Cause:   errors.New("root cause"),
	}
	if errWithCause.Error() != "CODE: something went wrong: root cause" {
		t.Errorf("Unexpected error string: %s", errWithCause.Error())
	}
}

func TestDomainError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := DomainError{Code: "CODE", Message: "msg", Cause: cause}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the cause")
	}

	errNoCause := DomainError{Code: "CODE", Message: "msg"}
	if errNoCause.Unwrap() != nil {
		t.Error("Unwrap should return nil without a cause")
	}
}

func TestNewDomainError(t *testing.T) {
	cause := errors.New("cause")
	err := NewDomainError("CODE", "message", cause)

	domainErr, ok := err.(DomainError)
	if !ok {
		t.Fatal("Should return DomainError type")
	}
	if domainErr.Code != "CODE" || domainErr.Message != "message" {
		t.Errorf("Unexpected fields: %+v", domainErr)
	}
}

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"validation", NewValidationError("bad input"), ErrCodeInvalidInput},
		{"file not found", NewFileNotFoundError("/path/to/file", nil), ErrCodeFileNotFound},
		{"parse", NewParseError("test.js", errors.New("syntax error")), ErrCodeParseError},
		{"analysis", NewAnalysisError("analysis failed", nil), ErrCodeAnalysisError},
		{"config", NewConfigError("invalid config", nil), ErrCodeConfigError},
		{"output", NewOutputError("write failed", nil), ErrCodeOutputError},
		{"unsupported format", NewUnsupportedFormatError("xml"), ErrCodeUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			domainErr, ok := tt.err.(DomainError)
			if !ok {
				t.Fatal("Should return DomainError type")
			}
			if domainErr.Code != tt.wantCode {
				t.Errorf("Expected code '%s', got '%s'", tt.wantCode, domainErr.Code)
			}
		})
	}
}

func TestNewFileNotFoundError_Message(t *testing.T) {
	err := NewFileNotFoundError("/path/to/file", nil)
	domainErr := err.(DomainError)
	if domainErr.Message != "file not found: /path/to/file" {
		t.Errorf("Unexpected message: %s", domainErr.Message)
	}
}

func TestOutputFormat_Constants(t *testing.T) {
	formats := map[OutputFormat]string{
		OutputFormatText: "text",
		OutputFormatJSON: "json",
		OutputFormatYAML: "yaml",
		OutputFormatCSV:  "csv",
	}

	for format, expected := range formats {
		if string(format) != expected {
			t.Errorf("Format should be '%s', got '%s'", expected, format)
		}
	}
}

func TestSeverity_Rank(t *testing.T) {
	if SeverityInfo.Rank() >= SeverityWarning.Rank() {
		t.Error("info should rank below warning")
	}
	if SeverityWarning.Rank() >= SeverityError.Rank() {
		t.Error("warning should rank below error")
	}
	if Severity("bogus").Rank() != 0 {
		t.Error("unknown severity should rank 0")
	}
}
