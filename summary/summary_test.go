package summary

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestFallback(t *testing.T) {
	tests := []struct {
		title   string
		address string
		want    string
	}{
		{"Sunny Villa", "123 Lake Rd", "Sunny Villa is an exceptional property located at 123 Lake Rd."},
		{"", "123 Lake Rd", "This property is an exceptional property located at 123 Lake Rd."},
		{"Sunny Villa", "  ", "Sunny Villa is an exceptional property located at a prime location."},
		{"", "", "This property is an exceptional property located at a prime location."},
	}

	for _, tt := range tests {
		if got := Fallback(tt.title, tt.address); got != tt.want {
			t.Errorf("Fallback(%q, %q) = %q, want %q", tt.title, tt.address, got, tt.want)
		}
	}
}

func TestGenerate_Generated(t *testing.T) {
	var gotSystem, gotUser string
	client := ClientFunc(func(ctx context.Context, system, user string) (string, error) {
		if _, ok := ctx.Deadline(); !ok {
			t.Error("expected a deadline on the request context")
		}
		gotSystem, gotUser = system, user
		return "  A bright, modern home near the lake.\n", nil
	})

	res := NewGenerator(client).Generate(context.Background(), "Sunny Villa", "123 Lake Rd")

	if res.Source != SourceGenerated || res.Degraded() || res.Err != nil {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.Text != "A bright, modern home near the lake." {
		t.Errorf("Text = %q", res.Text)
	}
	if gotSystem != "You are a professional real estate copywriter." {
		t.Errorf("system prompt = %q", gotSystem)
	}
	if !strings.Contains(gotUser, "Sunny Villa") || !strings.Contains(gotUser, "123 Lake Rd") {
		t.Errorf("user prompt does not embed title and address: %q", gotUser)
	}
}

func TestGenerate_Fallback(t *testing.T) {
	boom := errors.New("connection refused")

	tests := []struct {
		name    string
		gen     *Generator
		wantErr error
	}{
		{"nil generator", nil, ErrNoClient},
		{"no client", NewGenerator(nil), ErrNoClient},
		{"client error", NewGenerator(ClientFunc(func(context.Context, string, string) (string, error) {
			return "", boom
		})), boom},
		{"empty text", NewGenerator(Fixed("   ")), ErrEmptyResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := tt.gen.Generate(context.Background(), "Sunny Villa", "123 Lake Rd")
			if res.Source != SourceFallback || !res.Degraded() {
				t.Errorf("expected fallback, got %v", res.Source)
			}
			if res.Text != "Sunny Villa is an exceptional property located at 123 Lake Rd." {
				t.Errorf("Text = %q", res.Text)
			}
			if !errors.Is(res.Err, tt.wantErr) {
				t.Errorf("Err = %v, want %v", res.Err, tt.wantErr)
			}
		})
	}
}

func TestGenerate_Timeout(t *testing.T) {
	slow := ClientFunc(func(ctx context.Context, _, _ string) (string, error) {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(5 * time.Second):
			return "too late", nil
		}
	})

	start := time.Now()
	res := NewGenerator(slow, WithTimeout(20*time.Millisecond)).Generate(context.Background(), "Sunny Villa", "123 Lake Rd")

	if time.Since(start) > 2*time.Second {
		t.Error("timeout was not applied")
	}
	if !res.Degraded() {
		t.Fatal("expected fallback after timeout")
	}
	if !errors.Is(res.Err, context.DeadlineExceeded) {
		t.Errorf("expected DeadlineExceeded, got %v", res.Err)
	}
}

func TestGenerate_TimeoutReportedWhenClientHidesIt(t *testing.T) {
	client := ClientFunc(func(ctx context.Context, _, _ string) (string, error) {
		<-ctx.Done()
		return "", errors.New("request aborted")
	})

	res := NewGenerator(client, WithTimeout(10*time.Millisecond)).Generate(context.Background(), "A", "B")
	if !errors.Is(res.Err, context.DeadlineExceeded) {
		t.Errorf("expected DeadlineExceeded, got %v", res.Err)
	}
}

func TestGenerate_CallerCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := ClientFunc(func(ctx context.Context, _, _ string) (string, error) {
		return "", ctx.Err()
	})
	res := NewGenerator(client).Generate(ctx, "Sunny Villa", "")
	if !res.Degraded() || !errors.Is(res.Err, context.Canceled) {
		t.Errorf("expected cancelled fallback, got %+v", res)
	}
}

func TestWithTimeout(t *testing.T) {
	if got := NewGenerator(nil).Timeout(); got != 15*time.Second {
		t.Errorf("default timeout = %v", got)
	}
	if got := NewGenerator(nil, WithTimeout(0)).Timeout(); got != DefaultTimeout {
		t.Errorf("zero timeout should keep default, got %v", got)
	}
	if got := NewGenerator(nil, WithTimeout(time.Second)).Timeout(); got != time.Second {
		t.Errorf("timeout = %v", got)
	}
}

func TestSource_String(t *testing.T) {
	if SourceGenerated.String() != "generated" || SourceFallback.String() != "fallback" {
		t.Error("unexpected source names")
	}
}

func TestNewClient(t *testing.T) {
	ctx := context.Background()

	for _, provider := range []string{"", "none", "NONE"} {
		c, err := NewClient(ctx, ProviderConfig{Provider: provider, APIKey: "k"})
		if err != nil || c != nil {
			t.Errorf("provider %q: expected nil client, got %v, %v", provider, c, err)
		}
	}

	if c, err := NewClient(ctx, ProviderConfig{Provider: "openai"}); err != nil || c != nil {
		t.Errorf("missing key: expected nil client, got %v, %v", c, err)
	}

	c, err := NewClient(ctx, ProviderConfig{Provider: "OpenAI", APIKey: "k", Model: "gpt-test"})
	if err != nil {
		t.Fatal(err)
	}
	oc, ok := c.(*OpenAIClient)
	if !ok || oc.Model() != "gpt-test" {
		t.Errorf("expected OpenAI client, got %T", c)
	}

	c, err = NewClient(ctx, ProviderConfig{Provider: "gemini", APIKey: "k"})
	if err != nil {
		t.Fatal(err)
	}
	if gc, ok := c.(*GeminiClient); !ok || gc.Model() != "gemini-2.5-flash" {
		t.Errorf("expected Gemini client, got %T", c)
	}

	if _, err := NewClient(ctx, ProviderConfig{Provider: "llama", APIKey: "k"}); err == nil {
		t.Error("expected error for unknown provider")
	}
}
