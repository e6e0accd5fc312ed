package contact

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// recordingSink collects submissions for inspection.
type recordingSink struct {
	got []Submission
}

func (r *recordingSink) Record(_ context.Context, sub Submission) {
	r.got = append(r.got, sub)
}

func TestSubmit_Example(t *testing.T) {
	sink := &recordingSink{}
	h := NewHandler(sink)

	form := Form{}.With(FieldName, "Ada").With(FieldEmail, "a@x.com").With(FieldMessage, "Hi")
	ack, reset := h.Submit(context.Background(), form)

	assert.Equal(t, Acknowledgment("Thank you, Ada! Your message has been sent."), ack)
	assert.True(t, reset.IsEmpty())
	assert.Equal(t, "", reset.Name)
	assert.Equal(t, "", reset.Email)
	assert.Equal(t, "", reset.Message)
	require.Len(t, sink.got, 1)
	assert.Equal(t, Submission{Name: "Ada", Email: "a@x.com", Message: "Hi"}, sink.got[0])
}

func TestSubmit_AnyInputEchoed(t *testing.T) {
	tests := []struct {
		name string
		form Form
	}{
		{"empty", Form{}},
		{"only name", Form{Name: "Grace"}},
		{"malformed email", Form{Name: "x", Email: "not-an-email", Message: "m"}},
		{"unicode", Form{Name: "Zoë 山田", Email: "z@例え.jp", Message: "héllo\nworld"}},
		{"format verbs", Form{Name: "%s %d", Email: "%v", Message: "100%"}},
		{"whitespace", Form{Name: "  ", Email: "\t", Message: " \n "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &recordingSink{}
			ack, reset := NewHandler(sink).Submit(context.Background(), tt.form)

			want := "Thank you, " + tt.form.Name + "! Your message has been sent."
			assert.Equal(t, want, string(ack))
			assert.True(t, reset.IsEmpty())
			require.Len(t, sink.got, 1)
			assert.Equal(t, Submission(tt.form), sink.got[0])
		})
	}
}

func TestSubmit_NilSink(t *testing.T) {
	ack, reset := NewHandler(nil).Submit(context.Background(), Form{Name: "Ada"})
	assert.True(t, strings.Contains(string(ack), "Ada"))
	assert.True(t, reset.IsEmpty())
}

func TestForm_WithGet(t *testing.T) {
	f := Form{}
	for _, field := range Fields() {
		f = f.With(field, field.String()+"-value")
	}
	for _, field := range Fields() {
		assert.Equal(t, field.String()+"-value", f.Get(field))
	}
	assert.False(t, f.IsEmpty())
	assert.Equal(t, "", f.Get(Field(9)))
}

func TestLogSink_RecordsTriple(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	sink := NewLogSink(zap.New(core))

	NewHandler(sink).Submit(context.Background(), Form{Name: "Ada", Email: "a@x.com", Message: "Hi"})

	entries := logs.FilterMessage("contact form submitted").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "Ada", fields["name"])
	assert.Equal(t, "a@x.com", fields["email"])
	assert.Equal(t, "Hi", fields["message"])
	assert.NotEmpty(t, fields["submission_id"])
}

func TestMultiSink(t *testing.T) {
	a, b := &recordingSink{}, &recordingSink{}
	sink := MultiSink{a, nil, b}
	sink.Record(context.Background(), Submission{Name: "n"})
	assert.Len(t, a.got, 1)
	assert.Len(t, b.got, 1)
}
