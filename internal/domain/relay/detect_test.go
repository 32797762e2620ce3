package relay

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContainsLink(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "short link", text: "봐봐 https://youtu.be/dQw4w9WgXcQ", want: true},
		{name: "watch link", text: "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=10", want: true},
		{name: "live link", text: "https://youtube.com/live/abc123", want: true},
		{name: "shorts link", text: "https://www.youtube.com/shorts/xyz_-9", want: true},
		{name: "channel page", text: "https://www.youtube.com/@golang", want: false},
		{name: "embed is not recognised", text: "https://www.youtube.com/embed/dQw4w9WgXcQ", want: false},
		{name: "plain text", text: "점심 뭐 먹지", want: false},
		{name: "empty", text: "", want: false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, ContainsLink(tt.text))
		})
	}
}

func TestVideoID(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "short link", text: "see https://youtu.be/dQw4w9WgXcQ?si=abc", want: "dQw4w9WgXcQ"},
		{name: "watch with extra params", text: "https://www.youtube.com/watch?feature=share&v=abc-_123", want: "abc-_123"},
		{name: "shorts", text: "https://youtube.com/shorts/SHORT1", want: "SHORT1"},
		{name: "live", text: "https://youtube.com/live/LIVE1?feature=shared", want: "LIVE1"},
		{name: "watch without id", text: "https://www.youtube.com/watch", want: ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, VideoID(tt.text))
		})
	}
}

func TestRoomAllowed(t *testing.T) {
	require.True(t, roomAllowed(nil, "anything"))
	require.True(t, roomAllowed([]string{"가족", " 친구들 "}, "친구들"))
	require.False(t, roomAllowed([]string{"가족"}, "업무방"))
}
