package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
)

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer

	cfg := Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "test-service",
		Environment: "test",
	}

	Init(cfg, &buf)

	FromContext(context.Background()).Info("test message", "key", "value")

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}

	if logEntry["service"] != "test-service" {
		t.Errorf("Expected service=test-service, got %v", logEntry["service"])
	}
	if logEntry["msg"] != "test message" {
		t.Errorf("Expected msg='test message', got %v", logEntry["msg"])
	}
	if logEntry["key"] != "value" {
		t.Errorf("Expected key=value, got %v", logEntry["key"])
	}
}

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := context.Background()

	if _, ok := RequestIDFromContext(ctx); ok {
		t.Fatal("empty context should not carry a request ID")
	}

	id := GenerateRequestID()
	ctx = WithRequestID(ctx, id)

	got, ok := RequestIDFromContext(ctx)
	if !ok {
		t.Fatal("request ID not found in context")
	}
	if got != id {
		t.Errorf("Expected %s, got %s", id, got)
	}
}

func TestDebugLevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	Init(Config{Level: "warn", Format: "text", ServiceName: "test", Environment: "test"}, &buf)

	FromContext(context.Background()).Info("should be filtered")
	if buf.Len() != 0 {
		t.Errorf("info log should have been filtered at warn level, got: %s", buf.String())
	}

	FromContext(context.Background()).Warn("should appear")
	if buf.Len() == 0 {
		t.Error("warn log should have been written")
	}
}
