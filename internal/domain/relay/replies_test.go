package relay

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/linkrelay/pkg/errors"
)

func TestInterpret(t *testing.T) {
	tests := []struct {
		name        string
		body        SummarizeResponse
		wantOutcome Outcome
		wantReply   string
	}{
		{
			name:        "summary wins over error",
			body:        SummarizeResponse{VideoTitle: "T", Summary: "S", Error: "ignored"},
			wantOutcome: OutcomeSummary,
			wantReply:   "📝 YouTube 영상 요약:\n\n🎥 T\n\nS",
		},
		{
			name:        "summary without title",
			body:        SummarizeResponse{Summary: "S"},
			wantOutcome: OutcomeSummary,
			wantReply:   "📝 YouTube 영상 요약:\n\n🎥 제목 없음\n\nS",
		},
		{
			name:        "summary with blank title",
			body:        SummarizeResponse{VideoTitle: "  \t", Summary: "S"},
			wantOutcome: OutcomeSummary,
			wantReply:   "📝 YouTube 영상 요약:\n\n🎥 제목 없음\n\nS",
		},
		{
			name:        "no subtitles",
			body:        SummarizeResponse{Error: "자막을 추출할 수 없습니다."},
			wantOutcome: OutcomeNoSubtitles,
			wantReply:   noSubtitlesReply,
		},
		{
			name:        "summary generation failed",
			body:        SummarizeResponse{Error: "요약을 생성할 수 없습니다."},
			wantOutcome: OutcomeSummaryFailed,
			wantReply:   summaryFailedReply,
		},
		{
			name:        "other error text",
			body:        SummarizeResponse{Error: "Too many requests, please try again later."},
			wantOutcome: OutcomeRemoteError,
			wantReply:   "❌ 처리 실패: Too many requests, please try again later.",
		},
		{
			name:        "empty payload",
			body:        SummarizeResponse{},
			wantOutcome: OutcomeUnknownError,
			wantReply:   unknownErrorReply,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			outcome, reply := interpret(tt.body)
			require.Equal(t, tt.wantOutcome, outcome)
			require.Equal(t, tt.wantReply, reply)
		})
	}
}

func TestDescribeFailure(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantOutcome Outcome
		wantReply   string
	}{
		{
			name:        "timeout",
			err:         apperrors.Wrap(apperrors.CodeUpstreamTimeout, "summarizer timed out", errors.New("deadline")),
			wantOutcome: OutcomeTimeout,
			wantReply:   connectionFailedHead + timeoutDetail,
		},
		{
			name:        "unreachable",
			err:         apperrors.Wrap(apperrors.CodeUpstreamUnreachable, "summarizer unreachable", errors.New("refused")),
			wantOutcome: OutcomeUnreachable,
			wantReply:   connectionFailedHead + unreachableDetail,
		},
		{
			name:        "malformed body falls through",
			err:         apperrors.Wrap(apperrors.CodeUpstreamMalformed, "decode summarizer response", errors.New("invalid character '<'")),
			wantOutcome: OutcomeConnectionFailed,
			wantReply:   connectionFailedHead + "오류: decode summarizer response: invalid character '<'",
		},
		{
			name:        "plain error",
			err:         errors.New("tls: handshake failure"),
			wantOutcome: OutcomeConnectionFailed,
			wantReply:   connectionFailedHead + "오류: tls: handshake failure",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			outcome, reply := describeFailure(tt.err)
			require.Equal(t, tt.wantOutcome, outcome)
			require.Equal(t, tt.wantReply, reply)
		})
	}
}

func TestServerErrorReply(t *testing.T) {
	require.Equal(t, "❌ 서버 오류 (HTTP 502)", serverErrorReply(502))
}
