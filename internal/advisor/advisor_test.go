package advisor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chris/morning/internal/llm"
)

type fakeClient struct {
	reply  string
	err    error
	system string
	got    []llm.Message
}

func (f *fakeClient) Chat(_ context.Context, systemPrompt string, messages []llm.Message) (*llm.Response, error) {
	f.system = systemPrompt
	f.got = messages
	if f.err != nil {
		return nil, f.err
	}
	return &llm.Response{Content: f.reply}, nil
}

func TestSuggest(t *testing.T) {
	fc := &fakeClient{reply: "  微风轻拂，带件薄外套  \n"}
	got, err := New(fc).Suggest(context.Background(), "多云 16~26°C")
	require.NoError(t, err)

	assert.Equal(t, "✨ 温馨提示：\n微风轻拂，带件薄外套", got)
	assert.Equal(t, llm.SystemPrompt, fc.system)
	require.Len(t, fc.got, 1)
	assert.Equal(t, "user", fc.got[0].Role)
	assert.Equal(t, "多云 16~26°C，给出健康、出行、穿衣等建议", fc.got[0].Content)
}

func TestSuggest_CustomPrompt(t *testing.T) {
	fc := &fakeClient{reply: "ok"}
	_, err := New(fc, WithPrompt("be brief")).Suggest(context.Background(), "晴")
	require.NoError(t, err)
	assert.Equal(t, "be brief", fc.system)
}

func TestSuggest_Errors(t *testing.T) {
	boom := errors.New("boom")
	_, err := New(&fakeClient{err: boom}).Suggest(context.Background(), "晴")
	assert.ErrorIs(t, err, boom)

	_, err = New(&fakeClient{reply: "   "}).Suggest(context.Background(), "晴")
	assert.ErrorIs(t, err, ErrEmptySuggestion)
}
