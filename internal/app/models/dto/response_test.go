package dto

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
)

func TestNewSuccessResponse(t *testing.T) {
	resp := NewSuccessResponse(map[string]string{"id": "1"}, "Created", http.StatusCreated)

	if !resp.Success {
		t.Error("Success = false, want true")
	}
	if resp.Message != "Created" {
		t.Errorf("Message = %q, want %q", resp.Message, "Created")
	}
	if resp.StatusCode != http.StatusCreated {
		t.Errorf("StatusCode = %d, want %d", resp.StatusCode, http.StatusCreated)
	}
	if resp.Error != nil {
		t.Error("Error is set on a success envelope")
	}
	if resp.Timestamp.IsZero() {
		t.Error("Timestamp is zero")
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	if strings.Contains(string(raw), `"error"`) {
		t.Errorf("success envelope serializes an error field: %s", raw)
	}
}

func TestNewErrorResponse(t *testing.T) {
	detail := NewErrorDetail(ErrorCodeResourceNotFound, "Department not found")
	resp := NewErrorResponse(detail, "Department not found", http.StatusNotFound)

	if resp.Success {
		t.Error("Success = true, want false")
	}
	if resp.Data != nil {
		t.Error("Data is set on an error envelope")
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	if strings.Contains(string(raw), `"data"`) {
		t.Errorf("error envelope serializes a data field: %s", raw)
	}
	if !strings.Contains(string(raw), `"RES_001"`) {
		t.Errorf("envelope does not carry the error code: %s", raw)
	}
}
