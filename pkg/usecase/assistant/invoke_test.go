package assistant_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/t-okazaki/satchel/pkg/usecase/assistant"
)

type mockProvider struct {
	name    string
	text    string
	err     error
	calls   int
	prompts []string
}

func (m *mockProvider) Name() string { return m.name }

func (m *mockProvider) Generate(ctx context.Context, prompt string) (string, error) {
	m.calls++
	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return "", m.err
	}
	return m.text, nil
}

func TestInvokePrimary(t *testing.T) {
	primary := &mockProvider{name: "gemini", text: "primary answer"}
	backup := &mockProvider{name: "groq", text: "backup answer"}
	iv := assistant.NewInvoker(primary, backup)

	result := iv.Invoke(context.Background(), "prompt", "question")
	gt.Equal(t, result.Text, "primary answer")
	gt.Equal(t, result.Provider, "gemini")
	gt.False(t, result.Degraded)
	gt.Nil(t, result.Cause)
	gt.Equal(t, backup.calls, 0)
}

func TestInvokeFallback(t *testing.T) {
	primary := &mockProvider{name: "gemini", err: goerr.New("quota exceeded")}
	backup := &mockProvider{name: "groq", text: "backup answer"}
	iv := assistant.NewInvoker(primary, backup)

	result := iv.Invoke(context.Background(), "prompt", "question")
	gt.Equal(t, result.Text, "backup answer")
	gt.Equal(t, result.Provider, "groq")
	gt.True(t, result.Degraded)
	gt.V(t, result.Cause).NotNil()
	gt.Equal(t, primary.calls, 1)
	gt.Equal(t, backup.calls, 1)
}

func TestInvokeAllFail(t *testing.T) {
	primary := &mockProvider{name: "gemini", err: goerr.New("quota exceeded")}
	backup := &mockProvider{name: "groq", err: goerr.New("connection refused")}
	iv := assistant.NewInvoker(primary, backup)

	result := iv.Invoke(context.Background(), "prompt", "how do tides work?")
	gt.Equal(t, result.Provider, "none")
	gt.True(t, result.Degraded)
	gt.S(t, result.Text).Contains("connection refused")
	gt.S(t, result.Text).Contains("how do tides work?")
	gt.V(t, result.Cause).NotNil()
}

func TestInvokeNoProviders(t *testing.T) {
	iv := assistant.NewInvoker()

	result := iv.Invoke(context.Background(), "prompt", "anyone there?")
	gt.Equal(t, result.Provider, "none")
	gt.True(t, result.Degraded)
	gt.Nil(t, result.Cause)
	gt.S(t, result.Text).Contains("anyone there?")
}

func TestInvokerSkipsNilProviders(t *testing.T) {
	backup := &mockProvider{name: "groq", text: "ok"}
	iv := assistant.NewInvoker(nil, backup, nil)

	gt.A(t, iv.Providers()).Length(1)
	gt.Equal(t, iv.Providers()[0], "groq")

	result := iv.Invoke(context.Background(), "prompt", "q")
	gt.Equal(t, result.Text, "ok")
	gt.False(t, result.Degraded)
}
