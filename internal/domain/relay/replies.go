package relay

import (
	"fmt"
	"strings"

	apperrors "github.com/yanqian/linkrelay/pkg/errors"
)

const (
	ackReply             = "🔄 YouTube 영상 요약 중입니다... 잠시만 기다려주세요!"
	noSubtitlesReply     = "❌ 이 영상은 자막이 없어서 요약할 수 없습니다."
	summaryFailedReply   = "❌ 요약 생성에 실패했습니다. 잠시 후 다시 시도해주세요."
	unknownErrorReply    = "❌ 알 수 없는 오류가 발생했습니다."
	connectionFailedHead = "❌ PC 서버 연결 실패\n"
	timeoutDetail        = "⏰ 처리 시간이 너무 오래 걸립니다. 잠시 후 다시 시도해주세요."
	unreachableDetail    = "🔌 서버에 연결할 수 없습니다. PC 서버가 실행 중인지 확인해주세요."
	untitledVideo        = "제목 없음"
)

// Error texts emitted by the summarization service.
const (
	remoteNoSubtitles   = "자막을 추출할 수 없습니다"
	remoteSummaryFailed = "요약을 생성할 수 없습니다"
)

type remoteErrorRule struct {
	contains string
	outcome  Outcome
	reply    string
}

// Evaluated in order; the first rule whose text is contained in the remote
// error wins. Unmatched errors fall through to remoteErrorReply.
var remoteErrorRules = []remoteErrorRule{
	{contains: remoteNoSubtitles, outcome: OutcomeNoSubtitles, reply: noSubtitlesReply},
	{contains: remoteSummaryFailed, outcome: OutcomeSummaryFailed, reply: summaryFailedReply},
}

type failureRule struct {
	code    string
	outcome Outcome
	detail  string
}

var failureRules = []failureRule{
	{code: apperrors.CodeUpstreamTimeout, outcome: OutcomeTimeout, detail: timeoutDetail},
	{code: apperrors.CodeUpstreamUnreachable, outcome: OutcomeUnreachable, detail: unreachableDetail},
}

// interpret maps a decoded 200/400 payload to the final reply.
func interpret(body SummarizeResponse) (Outcome, string) {
	if body.Summary != "" {
		return OutcomeSummary, summaryReply(body.VideoTitle, body.Summary)
	}
	if body.Error != "" {
		for _, rule := range remoteErrorRules {
			if strings.Contains(body.Error, rule.contains) {
				return rule.outcome, rule.reply
			}
		}
		return OutcomeRemoteError, remoteErrorReply(body.Error)
	}
	return OutcomeUnknownError, unknownErrorReply
}

// describeFailure maps a failed call to the final reply.
func describeFailure(err error) (Outcome, string) {
	code := apperrors.CodeOf(err)
	for _, rule := range failureRules {
		if code == rule.code {
			return rule.outcome, connectionFailedHead + rule.detail
		}
	}
	return OutcomeConnectionFailed, connectionFailedHead + "오류: " + failureDetail(err)
}

func failureDetail(err error) string {
	if err == nil {
		return "unknown"
	}
	return err.Error()
}

func summaryReply(title, summary string) string {
	if strings.TrimSpace(title) == "" {
		title = untitledVideo
	}
	return fmt.Sprintf("📝 YouTube 영상 요약:\n\n🎥 %s\n\n%s", title, summary)
}

func remoteErrorReply(message string) string {
	return "❌ 처리 실패: " + message
}

func serverErrorReply(status int) string {
	return fmt.Sprintf("❌ 서버 오류 (HTTP %d)", status)
}
