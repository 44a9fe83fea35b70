package rc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSetReply_Frames(t *testing.T) {
	tests := []struct {
		name   string
		frames []string
		want   SetOutcome
	}{
		{"ok", []string{"ok"}, SetOutcome{OK: true}},
		{"ok with trailing frames", []string{"ok", "extra"}, SetOutcome{OK: true}},
		{"fail with reason", []string{"fail", "busy"}, SetOutcome{Reason: "busy"}},
		{"fail without reason", []string{"fail"}, SetOutcome{Reason: "unknown error"}},
		{"empty", nil, SetOutcome{Reason: "unknown error"}},
		{"unexpected status", []string{"OK"}, SetOutcome{Reason: "unknown error"}},
		{"json echo is not ok", []string{`["ok"]`}, SetOutcome{Reason: "unknown error"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeSetReply(SetReplyFrames, tt.frames)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeSetReply_JSON(t *testing.T) {
	tests := []struct {
		name   string
		frames []string
		want   SetOutcome
	}{
		{"ok", []string{`["ok"]`}, SetOutcome{OK: true}},
		{"ok echo", []string{`["ok", "srv", "label", "Foo,F"]`}, SetOutcome{OK: true}},
		{"fail with reason", []string{`["fail", "busy"]`}, SetOutcome{Reason: "busy"}},
		{"fail without reason", []string{`["fail"]`}, SetOutcome{Reason: "unknown error"}},
		{"empty array", []string{`[]`}, SetOutcome{Reason: "unknown error"}},
		{"no frames", nil, SetOutcome{Reason: "unknown error"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeSetReply(SetReplyJSON, tt.frames)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeSetReply_JSONMalformed(t *testing.T) {
	for _, frame := range []string{"ok", `{"status": "ok"}`, `["ok"`} {
		_, err := DecodeSetReply(SetReplyJSON, []string{frame})
		assert.ErrorIs(t, err, ErrMalformedResponse, frame)
	}
}

func TestSetOutcome_Err(t *testing.T) {
	assert.NoError(t, SetOutcome{OK: true}.Err())

	err := SetOutcome{Reason: "busy"}.Err()
	require.ErrorIs(t, err, ErrSetRejected)
	assert.Contains(t, err.Error(), "busy")
}

func TestParseSetReplyFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    SetReplyFormat
		wantErr bool
	}{
		{"", SetReplyFrames, false},
		{"frames", SetReplyFrames, false},
		{" JSON ", SetReplyJSON, false},
		{"both", SetReplyFrames, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSetReplyFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustFormat(t, got.String()))
		})
	}
}

func mustFormat(t *testing.T, s string) SetReplyFormat {
	t.Helper()
	f, err := ParseSetReplyFormat(s)
	require.NoError(t, err)
	return f
}
