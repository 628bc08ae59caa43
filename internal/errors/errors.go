package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/tripweaver/internal/client"
	"github.com/julianstephens/tripweaver/internal/constants"
	"github.com/julianstephens/tripweaver/internal/logger"
	"github.com/julianstephens/tripweaver/internal/request"
)

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// UserMessage maps an error to the text shown to the user. Transport and
// service failures collapse into one stable message; the cause stays in the log.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case stderrors.Is(err, request.ErrEmptyQuery):
		return constants.MsgEmptyQuery
	case stderrors.Is(err, request.ErrUnknownPace), stderrors.Is(err, request.ErrUnknownDataSource):
		return Format(err)
	case client.IsPlanningFailure(err):
		return constants.MsgPlanFailed
	default:
		return Format(err)
	}
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
