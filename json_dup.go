package customs

import (
	"errors"
	"io"

	eng "github.com/fishbait/customs/internal/engine"
)

// DetectDuplicateKeys scans src and reports every duplicated object key with
// its JSON Pointer. It is the collect-mode companion of
// Strictness{OnDuplicateKey: Warn}: DecodeFrom lets such documents through and
// callers that want the warnings run this scan. maxIssues <= 0 means unlimited.
func DetectDuplicateKeys(src Source, maxIssues int) (Issues, error) {
	if src == nil {
		return nil, singleIssue(CodeParseError, "nil source")
	}
	var iss Issues
	enforced := eng.WrapWithEnforcement(EngineTokenSource(src), eng.EnforceOptions{
		OnDuplicate: eng.DupWarn,
		IssueSink: func(si eng.SimpleIssue) {
			iss = AppendIssues(iss, Issue{Code: si.Code, Path: si.Path, Message: si.Message})
		},
	})
	for {
		if _, err := enforced.NextToken(); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return iss, toIssues(err)
		}
		if maxIssues > 0 && len(iss) >= maxIssues {
			iss = AppendIssues(iss[:maxIssues], Issue{Code: CodeTruncated, Path: "/", Message: "max issues reached"})
			break
		}
	}
	return iss, nil
}

func toEngineDup(s Severity) eng.DuplicateStrictness {
	switch s {
	case Error:
		return eng.DupError
	case Warn:
		return eng.DupWarn
	default:
		return eng.DupIgnore
	}
}
